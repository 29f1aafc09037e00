package interfaces

import (
	"context"

	"catering_portal/internal/domain/entities"
)

// StatusNotification is the customer-facing message emitted for transitions
// whose rule requires notification. Description comes from the matched
// transition rule, never re-derived by callers.
type StatusNotification struct {
	Recipient   string              `json:"recipient"`
	EntityKind  entities.EntityKind `json:"entity_kind"`
	EntityID    string              `json:"entity_id"`
	NewStatus   string              `json:"new_status"`
	Description string              `json:"description"`
}

// INotificationDispatcher abstracts the outbound notification channel
// (NATS in production). Dispatch is advisory and at-most-once-attempted:
// a send failure never un-commits the transition that triggered it.

type INotificationDispatcher interface {
	Send(ctx context.Context, n StatusNotification) error
}
