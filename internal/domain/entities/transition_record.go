package entities

import "time"

// EntityKind names the workflow-governed entity families.

type EntityKind string

const (
	EntityKindQuote   EntityKind = "quote"
	EntityKindInvoice EntityKind = "invoice"
)

// StatusTransitionRecord is the immutable audit entry for a committed
// transition. Records are append-only; they are never mutated or deleted.
type StatusTransitionRecord struct {
	EntityKind     EntityKind `json:"entity_kind"`
	EntityID       string     `json:"entity_id"`
	PreviousStatus string     `json:"previous_status"`
	NewStatus      string     `json:"new_status"`
	Actor          ActorRole  `json:"actor"`
	Reason         string     `json:"reason,omitempty"`
	RecordedAt     time.Time  `json:"recorded_at"`
}
