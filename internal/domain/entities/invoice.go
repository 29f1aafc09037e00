package entities

import "time"

// InvoiceStatus represents the lifecycle of an estimate/invoice document.

type InvoiceStatus string

const (
	InvoiceStatusDraft          InvoiceStatus = "draft"
	InvoiceStatusPendingReview  InvoiceStatus = "pending_review"
	InvoiceStatusSent           InvoiceStatus = "sent"
	InvoiceStatusViewed         InvoiceStatus = "viewed"
	InvoiceStatusApproved       InvoiceStatus = "approved"
	InvoiceStatusPaymentPending InvoiceStatus = "payment_pending"
	InvoiceStatusPartiallyPaid  InvoiceStatus = "partially_paid"
	InvoiceStatusPaid           InvoiceStatus = "paid"
	InvoiceStatusOverdue        InvoiceStatus = "overdue"
	InvoiceStatusCancelled      InvoiceStatus = "cancelled"
)

// KnownInvoiceStatus reports whether s is a member of the closed invoice enum.
func KnownInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPendingReview, InvoiceStatusSent,
		InvoiceStatusViewed, InvoiceStatusApproved, InvoiceStatusPaymentPending,
		InvoiceStatusPartiallyPaid, InvoiceStatusPaid, InvoiceStatusOverdue,
		InvoiceStatusCancelled:
		return true
	}
	return false
}

// AcceptsPayments reports whether a document in this status can take a
// milestone payment. Only statuses the workflow can move to partially_paid
// or paid qualify; charging any other status would strand the money.
func (s InvoiceStatus) AcceptsPayments() bool {
	switch s {
	case InvoiceStatusPaymentPending, InvoiceStatusPartiallyPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// DocumentType distinguishes a priced offer from a billing document.

type DocumentType string

const (
	DocumentTypeEstimate DocumentType = "estimate"
	DocumentTypeInvoice  DocumentType = "invoice"
)

// Invoice is the estimate/invoice document tied to exactly one quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Monetary representation: integer minor-currency units (cents).
// TotalCents is always recomputed as SubtotalCents + TaxCents; it is never
// edited independently.
type Invoice struct {
	ID            string        `json:"id"`
	QuoteID       string        `json:"quote_id"`
	DocumentType  DocumentType  `json:"document_type"`
	IsDraft       bool          `json:"is_draft"`
	SubtotalCents int64         `json:"subtotal_cents"`
	TaxCents      int64         `json:"tax_cents"`
	TotalCents    int64         `json:"total_cents"`
	Status        InvoiceStatus `json:"status"`

	SentAt   *time.Time `json:"sent_at,omitempty"`
	ViewedAt *time.Time `json:"viewed_at,omitempty"`
	PaidAt   *time.Time `json:"paid_at,omitempty"`

	LastStatusChange time.Time `json:"last_status_change"`
	StatusChangedBy  string    `json:"status_changed_by"`
	CreatedAt        time.Time `json:"created_at"`
}

// Total recomputes the invoice total from its parts.
func (i Invoice) Total() int64 {
	return i.SubtotalCents + i.TaxCents
}
