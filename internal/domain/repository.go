// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"stokado/internal/core/entity"
	"stokado/internal/core/id"
)

// --- Filter & Pagination ---

// ListFilter contains common filtering options for list operations.
type ListFilter struct {
	// Search matches against code and name
	Search string

	// IncludeDeleted includes soft-deleted records
	IncludeDeleted bool

	// Status filters documents by lifecycle status
	Status string

	// OrderBy specifies sorting (e.g., "name", "-created_at")
	OrderBy string

	// Pagination
	Limit  int
	Offset int
}

// DefaultListFilter returns sensible defaults.
func DefaultListFilter() ListFilter {
	return ListFilter{
		Limit:   50,
		OrderBy: "name",
	}
}

// ListResult contains paginated results.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Repository Interfaces ---

// CatalogRepository defines CRUD operations for catalog entities.
type CatalogRepository[T entity.Validatable] interface {
	// Create inserts a new entity
	Create(ctx context.Context, entity T) error

	// GetByID retrieves entity by ID
	GetByID(ctx context.Context, id id.ID) (T, error)

	// GetByCode retrieves entity by business code
	GetByCode(ctx context.Context, code string) (T, error)

	// Update modifies existing entity (with optimistic locking)
	Update(ctx context.Context, entity T) error

	// Delete performs soft delete (sets deletion_mark=true)
	Delete(ctx context.Context, id id.ID) error

	// SetDeletionMark sets or clears the deletion mark
	SetDeletionMark(ctx context.Context, id id.ID, marked bool) error

	// List retrieves entities with filtering and pagination
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)

	// ExistsByCode checks if entity with given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// DocumentRepository defines persistence for document entities
// (header plus line items).
type DocumentRepository[T entity.Validatable] interface {
	// Create inserts document header and lines in one transaction
	Create(ctx context.Context, doc T) error

	// GetByID retrieves document with lines
	GetByID(ctx context.Context, id id.ID) (T, error)

	// GetByNumber retrieves document by business number
	GetByNumber(ctx context.Context, number string) (T, error)

	// Update rewrites header and lines (optimistic locking on header)
	Update(ctx context.Context, doc T) error

	// List retrieves document headers with filtering and pagination
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
	AfterUpdate  HookEvent = "after_update"
	BeforeDelete HookEvent = "before_delete"
	AfterDelete  HookEvent = "after_delete"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for an event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// OnBeforeCreate registers a before-create hook.
func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) { r.On(BeforeCreate, hook) }

// OnAfterCreate registers an after-create hook.
func (r *HookRegistry[T]) OnAfterCreate(hook Hook[T]) { r.On(AfterCreate, hook) }

// OnBeforeUpdate registers a before-update hook.
func (r *HookRegistry[T]) OnBeforeUpdate(hook Hook[T]) { r.On(BeforeUpdate, hook) }

// OnAfterUpdate registers an after-update hook.
func (r *HookRegistry[T]) OnAfterUpdate(hook Hook[T]) { r.On(AfterUpdate, hook) }

// OnBeforeDelete registers a before-delete hook.
func (r *HookRegistry[T]) OnBeforeDelete(hook Hook[T]) { r.On(BeforeDelete, hook) }

// Run executes all hooks for an event, stopping at the first error.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// RunBeforeCreate executes before-create hooks.
func (r *HookRegistry[T]) RunBeforeCreate(ctx context.Context, e T) error {
	return r.Run(ctx, BeforeCreate, e)
}

// RunAfterCreate executes after-create hooks.
func (r *HookRegistry[T]) RunAfterCreate(ctx context.Context, e T) error {
	return r.Run(ctx, AfterCreate, e)
}

// RunBeforeUpdate executes before-update hooks.
func (r *HookRegistry[T]) RunBeforeUpdate(ctx context.Context, e T) error {
	return r.Run(ctx, BeforeUpdate, e)
}

// RunAfterUpdate executes after-update hooks.
func (r *HookRegistry[T]) RunAfterUpdate(ctx context.Context, e T) error {
	return r.Run(ctx, AfterUpdate, e)
}

// RunBeforeDelete executes before-delete hooks.
func (r *HookRegistry[T]) RunBeforeDelete(ctx context.Context, e T) error {
	return r.Run(ctx, BeforeDelete, e)
}
