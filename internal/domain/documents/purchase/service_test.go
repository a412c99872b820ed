package purchase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stokado/internal/core/apperror"
	"stokado/internal/core/entity"
	"stokado/internal/core/id"
	"stokado/internal/core/sequence"
	"stokado/internal/core/types"
	"stokado/internal/domain"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	byID map[id.ID]*Transaction
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[id.ID]*Transaction)}
}

func (r *fakeRepo) Create(ctx context.Context, t *Transaction) error {
	r.byID[t.ID] = t
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, txID id.ID) (*Transaction, error) {
	t, ok := r.byID[txID]
	if !ok {
		return nil, apperror.NewNotFound("record", txID.String())
	}
	return t, nil
}

func (r *fakeRepo) GetByNumber(ctx context.Context, number string) (*Transaction, error) {
	for _, t := range r.byID {
		if t.Number == number {
			return t, nil
		}
	}
	return nil, apperror.NewNotFound("record", number)
}

func (r *fakeRepo) Update(ctx context.Context, t *Transaction) error {
	if _, ok := r.byID[t.ID]; !ok {
		return apperror.NewNotFound("record", t.ID.String())
	}
	r.byID[t.ID] = t
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Transaction], error) {
	items := make([]*Transaction, 0, len(r.byID))
	for _, t := range r.byID {
		items = append(items, t)
	}
	return domain.ListResult[*Transaction]{Items: items, TotalCount: int64(len(items))}, nil
}

func newDraft() *Transaction {
	t := NewTransaction(time.Now(), id.New(), id.New())
	t.AddLine(id.New(), types.NewQuantityFromFloat64(10), types.MustMoney("2.50"))
	return t
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, fakeTxManager{}, &sequence.MockGenerator{}, nil)
}

func TestService_Create_AssignsNumber(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	doc := newDraft()
	require.NoError(t, svc.Create(context.Background(), doc))

	assert.Equal(t, "PUR-AAA0001", doc.Number)
	assert.Equal(t, entity.StatusDraft, doc.Status)
	assert.True(t, doc.TotalAmount.Equal(types.MustMoney("25.00")))
}

func TestService_Create_RejectsEmptyLines(t *testing.T) {
	svc := newTestService(newFakeRepo())

	doc := NewTransaction(time.Now(), id.New(), id.New())
	err := svc.Create(context.Background(), doc)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestService_Update_DraftOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	doc := newDraft()
	require.NoError(t, svc.Create(ctx, doc))

	// Draft updates pass, and the assigned number survives.
	doc.Number = "PUR-XXX9999"
	require.NoError(t, svc.Update(ctx, doc))
	assert.Equal(t, "PUR-AAA0001", doc.Number)

	_, err := svc.Confirm(ctx, doc.ID)
	require.NoError(t, err)

	err = svc.Update(ctx, doc)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeBusinessRule, appErr.Code)
}

func TestService_StatusTransitions(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	doc := newDraft()
	require.NoError(t, svc.Create(ctx, doc))

	got, err := svc.Confirm(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, got.Status)

	got, err = svc.Complete(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, got.Status)

	// Completed transactions cannot be cancelled.
	_, err = svc.Cancel(ctx, doc.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidStatusTransition, appErr.Code)
}

func TestService_Transition_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Confirm(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_GetByNumber(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	doc := newDraft()
	require.NoError(t, svc.Create(ctx, doc))

	got, err := svc.GetByNumber(ctx, doc.Number)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)

	_, err = svc.GetByNumber(ctx, "PUR-ZZZ0000")
	assert.True(t, apperror.IsNotFound(err))
}

func TestTransaction_Totals(t *testing.T) {
	doc := NewTransaction(time.Now(), id.New(), id.New())
	doc.AddLine(id.New(), types.NewQuantityFromFloat64(2), types.MustMoney("10.00"))
	doc.AddLine(id.New(), types.NewQuantityFromFloat64(0.5), types.MustMoney("8.00"))

	assert.True(t, doc.TotalAmount.Equal(types.MustMoney("24.00")))

	doc.TaxAmount = types.MustMoney("2.40")
	doc.RecalculateTotals()
	assert.True(t, doc.GrandTotal.Equal(types.MustMoney("26.40")))

	assert.Equal(t, 1, doc.Lines[0].LineNo)
	assert.Equal(t, 2, doc.Lines[1].LineNo)
}
