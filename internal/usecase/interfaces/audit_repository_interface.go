package interfaces

import (
	"context"

	"catering_portal/internal/domain/entities"
)

// IAuditRepository is the append-only sink for committed transitions.
//
// Append failures are reported to the caller but must never roll back the
// already-committed status change; the audit log is observability, not a
// transactional participant.

type IAuditRepository interface {
	Append(ctx context.Context, rec entities.StatusTransitionRecord) error
	// ListByEntity returns the entity's transition records, most recent
	// first.
	ListByEntity(ctx context.Context, kind entities.EntityKind, entityID string) ([]entities.StatusTransitionRecord, error)
}
