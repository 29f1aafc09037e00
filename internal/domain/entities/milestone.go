package entities

import "time"

// MilestoneStatus is the payment state of a single milestone.

type MilestoneStatus string

const (
	MilestoneStatusPending   MilestoneStatus = "pending"
	MilestoneStatusPaid      MilestoneStatus = "paid"
	MilestoneStatusCompleted MilestoneStatus = "completed"
)

// Settled reports whether the milestone obligation has been met.
// Both "paid" and "completed" count toward invoice reconciliation.
func (s MilestoneStatus) Settled() bool {
	return s == MilestoneStatusPaid || s == MilestoneStatusCompleted
}

// PaymentMilestone is a scheduled partial payment obligation against an
// invoice. Invoice payment status is a derived aggregate over its
// milestones; milestones themselves never drive quote status directly.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
type PaymentMilestone struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	Description string          `json:"description,omitempty"`
	AmountCents int64           `json:"amount_cents"`
	Status      MilestoneStatus `json:"status"`
	DueDate     time.Time       `json:"due_date"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
