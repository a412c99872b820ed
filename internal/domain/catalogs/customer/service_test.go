package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stokado/internal/core/apperror"
	"stokado/internal/core/id"
	"stokado/internal/core/sequence"
	"stokado/internal/domain"
)

// fakeTxManager runs the function directly, no transaction.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo is an in-memory Repository.
type fakeRepo struct {
	byID map[id.ID]*Customer
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[id.ID]*Customer)}
}

func (r *fakeRepo) Create(ctx context.Context, c *Customer) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, entityID id.ID) (*Customer, error) {
	c, ok := r.byID[entityID]
	if !ok {
		return nil, apperror.NewNotFound("record", entityID.String())
	}
	return c, nil
}

func (r *fakeRepo) GetByCode(ctx context.Context, code string) (*Customer, error) {
	for _, c := range r.byID {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, apperror.NewNotFound("record", code)
}

func (r *fakeRepo) Update(ctx context.Context, c *Customer) error {
	if _, ok := r.byID[c.ID]; !ok {
		return apperror.NewNotFound("record", c.ID.String())
	}
	c.Version++
	r.byID[c.ID] = c
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, entityID id.ID) error {
	return r.SetDeletionMark(ctx, entityID, true)
}

func (r *fakeRepo) SetDeletionMark(ctx context.Context, entityID id.ID, marked bool) error {
	c, ok := r.byID[entityID]
	if !ok {
		return apperror.NewNotFound("record", entityID.String())
	}
	c.DeletionMark = marked
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Customer], error) {
	items := make([]*Customer, 0, len(r.byID))
	for _, c := range r.byID {
		if c.DeletionMark && !filter.IncludeDeleted {
			continue
		}
		items = append(items, c)
	}
	return domain.ListResult[*Customer]{
		Items:      items,
		TotalCount: int64(len(items)),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}, nil
}

func (r *fakeRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	if apperror.IsNotFound(err) {
		return false, nil
	}
	return err == nil, err
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, fakeTxManager{}, &sequence.MockGenerator{})
}

func TestService_Create_AssignsCode(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	c := NewCustomer("", "  Acme Corp  ")
	require.NoError(t, svc.Create(ctx, c))

	assert.Equal(t, "CUS-AAA0001", c.Code)
	assert.Equal(t, "Acme Corp", c.Name)

	c2 := NewCustomer("", "Globex")
	require.NoError(t, svc.Create(ctx, c2))
	assert.Equal(t, "CUS-AAA0002", c2.Code)
}

func TestService_Create_KeepsSuppliedCode(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	c := NewCustomer("CUS-ZZZ0001", "Imported")
	require.NoError(t, svc.Create(context.Background(), c))
	assert.Equal(t, "CUS-ZZZ0001", c.Code)
}

func TestService_Create_ValidationFails(t *testing.T) {
	svc := newTestService(newFakeRepo())

	c := NewCustomer("", "")
	err := svc.Create(context.Background(), c)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	email := "not-an-email"
	c = NewCustomer("", "Acme")
	c.Email = &email
	assert.Error(t, svc.Create(context.Background(), c))
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.GetByID(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	appErr, _ := apperror.AsAppError(err)
	assert.Contains(t, appErr.Message, "customer")
}

func TestService_Delete_SoftDeletes(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	c := NewCustomer("", "Acme")
	require.NoError(t, svc.Create(ctx, c))

	require.NoError(t, svc.Delete(ctx, c.ID))

	got, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.DeletionMark)

	// Deleted entities drop out of default listings.
	res, err := svc.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, res.Items)

	// Clearing the mark restores them.
	require.NoError(t, svc.SetDeletionMark(ctx, c.ID, false))
	res, err = svc.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
}

func TestService_Update_Normalizes(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	c := NewCustomer("", "Acme")
	require.NoError(t, svc.Create(ctx, c))

	email := "  sales@acme.example  "
	c.Email = &email
	require.NoError(t, svc.Update(ctx, c))
	require.NotNil(t, c.Email)
	assert.Equal(t, "sales@acme.example", *c.Email)
}
