package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stokado/internal/core/id"
	"stokado/internal/domain"
	"stokado/internal/domain/documents/sales"
	"stokado/internal/infrastructure/storage/postgres"
)

const (
	salesTable      = "doc_sales"
	salesLinesTable = "doc_sales_lines"
)

// SalesRepo implements sales.Repository.
type SalesRepo struct {
	*BaseDocumentRepo[*sales.Transaction]
}

var _ sales.Repository = (*SalesRepo)(nil)

// NewSalesRepo creates a new sales transaction repository.
func NewSalesRepo(txManager *postgres.TxManager) *SalesRepo {
	return &SalesRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*sales.Transaction](
			txManager,
			salesTable,
			postgres.ExtractDBColumns[sales.Transaction](),
			func() *sales.Transaction { return &sales.Transaction{} },
		),
	}
}

// Create inserts document header and lines.
func (r *SalesRepo) Create(ctx context.Context, t *sales.Transaction) error {
	if err := r.CreateHeader(ctx, t); err != nil {
		return err
	}
	return r.saveLines(ctx, t.ID, t.Lines)
}

// GetByID retrieves a transaction with lines.
func (r *SalesRepo) GetByID(ctx context.Context, docID id.ID) (*sales.Transaction, error) {
	t, err := r.GetHeaderByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	t.Lines, err = r.getLines(ctx, docID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetByNumber retrieves a transaction by business number, with lines.
func (r *SalesRepo) GetByNumber(ctx context.Context, number string) (*sales.Transaction, error) {
	t, err := r.GetHeaderByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	t.Lines, err = r.getLines(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Update rewrites header and lines.
func (r *SalesRepo) Update(ctx context.Context, t *sales.Transaction) error {
	if err := r.UpdateHeader(ctx, t); err != nil {
		return err
	}
	return r.saveLines(ctx, t.ID, t.Lines)
}

// List retrieves document headers (without lines).
func (r *SalesRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*sales.Transaction], error) {
	return r.ListHeaders(ctx, filter)
}

func (r *SalesRepo) getLines(ctx context.Context, docID id.ID) ([]sales.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "item_id", "quantity", "unit_price", "amount").
		From(salesLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []sales.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// saveLines replaces all lines for a document (delete existing + insert new).
func (r *SalesRepo) saveLines(ctx context.Context, docID id.ID, lines []sales.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + salesLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(salesLinesTable).
		Columns("line_id", "document_id", "line_no", "item_id", "quantity", "unit_price", "amount")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, line.LineNo, line.ItemID, line.Quantity, line.UnitPrice, line.Amount)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}
