package entities

import "time"

// QuoteStatus represents the lifecycle of a catering quote request.
//
// Domain notes:
//   - The status field only changes through the workflow transition
//     mechanism; no other component writes it directly.
//   - Cancellation is a terminal status, not a row removal.

type QuoteStatus string

const (
	QuoteStatusPending         QuoteStatus = "pending"
	QuoteStatusUnderReview     QuoteStatus = "under_review"
	QuoteStatusQuoted          QuoteStatus = "quoted"
	QuoteStatusEstimated       QuoteStatus = "estimated"
	QuoteStatusApproved        QuoteStatus = "approved"
	QuoteStatusAwaitingPayment QuoteStatus = "awaiting_payment"
	QuoteStatusPaid            QuoteStatus = "paid"
	QuoteStatusConfirmed       QuoteStatus = "confirmed"
	QuoteStatusInProgress      QuoteStatus = "in_progress"
	QuoteStatusCompleted       QuoteStatus = "completed"
	QuoteStatusCancelled       QuoteStatus = "cancelled"
)

// KnownQuoteStatus reports whether s is a member of the closed quote enum.
func KnownQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusUnderReview, QuoteStatusQuoted,
		QuoteStatusEstimated, QuoteStatusApproved, QuoteStatusAwaitingPayment,
		QuoteStatusPaid, QuoteStatusConfirmed, QuoteStatusInProgress,
		QuoteStatusCompleted, QuoteStatusCancelled:
		return true
	}
	return false
}

// Quote is a customer's catering request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
type Quote struct {
	ID               string      `json:"id"`
	CustomerName     string      `json:"customer_name"`
	CustomerEmail    string      `json:"customer_email"`
	CustomerPhone    string      `json:"customer_phone,omitempty"`
	EventDate        time.Time   `json:"event_date"`
	GuestCount       int         `json:"guest_count"`
	EventLocation    string      `json:"event_location"`
	Status           QuoteStatus `json:"status"`
	LastStatusChange time.Time   `json:"last_status_change"`
	StatusChangedBy  string      `json:"status_changed_by"`
	CreatedAt        time.Time   `json:"created_at"`
}
