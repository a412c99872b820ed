package domain

import (
	"context"

	"stokado/internal/core/id"
)

// AuditRecorder records who did what to which entity. The postgres
// implementation lives in infrastructure; recording is best-effort and
// must never fail a business operation.
type AuditRecorder interface {
	Record(ctx context.Context, entityType string, entityID id.ID, action string, changes any) error
}
