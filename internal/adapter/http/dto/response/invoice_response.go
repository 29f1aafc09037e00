package response

import (
	"time"

	"catering_portal/internal/domain/entities"
)

type InvoiceResponse struct {
	ID               string     `json:"id"`
	QuoteID          string     `json:"quote_id"`
	DocumentType     string     `json:"document_type"`
	IsDraft          bool       `json:"is_draft"`
	SubtotalCents    int64      `json:"subtotal_cents"`
	TaxCents         int64      `json:"tax_cents"`
	TotalCents       int64      `json:"total_cents"`
	Status           string     `json:"status"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
	ViewedAt         *time.Time `json:"viewed_at,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	LastStatusChange time.Time  `json:"last_status_change"`
	StatusChangedBy  string     `json:"status_changed_by"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:               inv.ID,
		QuoteID:          inv.QuoteID,
		DocumentType:     string(inv.DocumentType),
		IsDraft:          inv.IsDraft,
		SubtotalCents:    inv.SubtotalCents,
		TaxCents:         inv.TaxCents,
		TotalCents:       inv.TotalCents,
		Status:           string(inv.Status),
		SentAt:           inv.SentAt,
		ViewedAt:         inv.ViewedAt,
		PaidAt:           inv.PaidAt,
		LastStatusChange: inv.LastStatusChange,
		StatusChangedBy:  inv.StatusChangedBy,
		CreatedAt:        inv.CreatedAt,
	}
}

type MilestoneResponse struct {
	ID          string     `json:"id"`
	InvoiceID   string     `json:"invoice_id"`
	Description string     `json:"description,omitempty"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	DueDate     time.Time  `json:"due_date"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromMilestone(m entities.PaymentMilestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		AmountCents: m.AmountCents,
		Status:      string(m.Status),
		DueDate:     m.DueDate,
		PaidAt:      m.PaidAt,
		CreatedAt:   m.CreatedAt,
	}
}
