package request

import (
	"encoding/json"
	"time"
)

// InvoiceCreateRequest creates an estimate/invoice document from an
// approved quote. Amounts are integer minor-currency units (cents); the
// total is recomputed server-side and never accepted from the client.
type InvoiceCreateRequest struct {
	QuoteID       string `json:"quote_id" binding:"required"`
	DocumentType  string `json:"document_type" binding:"required,oneof=estimate invoice"`
	SubtotalCents int64  `json:"subtotal_cents" binding:"required"`
	TaxCents      int64  `json:"tax_cents"`
}

// MilestoneCreateRequest schedules a partial payment obligation.
type MilestoneCreateRequest struct {
	Description string    `json:"description"`
	AmountCents int64     `json:"amount_cents" binding:"required"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

// MilestonePaymentRequest carries the provider payment payload for a
// milestone charge. It is stored as raw JSON to tolerate varying Mercado
// Pago schemas.
type MilestonePaymentRequest struct {
	PaymentPayload json.RawMessage `json:"payment_payload"`
}

// PaymentWebhookRequest is the payment-provider callback that triggers
// reconciliation of an invoice's milestones.
type PaymentWebhookRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required"`
}
