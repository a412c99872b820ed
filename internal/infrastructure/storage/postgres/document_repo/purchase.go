package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stokado/internal/core/id"
	"stokado/internal/domain"
	"stokado/internal/domain/documents/purchase"
	"stokado/internal/infrastructure/storage/postgres"
)

const (
	purchasesTable     = "doc_purchases"
	purchaseLinesTable = "doc_purchase_lines"
)

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	*BaseDocumentRepo[*purchase.Transaction]
}

var _ purchase.Repository = (*PurchaseRepo)(nil)

// NewPurchaseRepo creates a new purchase transaction repository.
func NewPurchaseRepo(txManager *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*purchase.Transaction](
			txManager,
			purchasesTable,
			postgres.ExtractDBColumns[purchase.Transaction](),
			func() *purchase.Transaction { return &purchase.Transaction{} },
		),
	}
}

// Create inserts document header and lines.
func (r *PurchaseRepo) Create(ctx context.Context, t *purchase.Transaction) error {
	if err := r.CreateHeader(ctx, t); err != nil {
		return err
	}
	return r.saveLines(ctx, t.ID, t.Lines)
}

// GetByID retrieves a transaction with lines.
func (r *PurchaseRepo) GetByID(ctx context.Context, docID id.ID) (*purchase.Transaction, error) {
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
func (r *PurchaseRepo) GetByNumber(ctx context.Context, number string) (*purchase.Transaction, error) {
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
func (r *PurchaseRepo) Update(ctx context.Context, t *purchase.Transaction) error {
	if err := r.UpdateHeader(ctx, t); err != nil {
		return err
	}
	return r.saveLines(ctx, t.ID, t.Lines)
}

// List retrieves document headers (without lines).
func (r *PurchaseRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*purchase.Transaction], error) {
	return r.ListHeaders(ctx, filter)
}

func (r *PurchaseRepo) getLines(ctx context.Context, docID id.ID) ([]purchase.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "item_id", "quantity", "unit_price", "amount").
		From(purchaseLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []purchase.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// saveLines replaces all lines for a document (delete existing + insert new).
func (r *PurchaseRepo) saveLines(ctx context.Context, docID id.ID, lines []purchase.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + purchaseLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(purchaseLinesTable).
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
