package response

import (
	"testing"
	"time"

	"catering_portal/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	now := time.Now().UTC()
	sentAt := now.Add(-time.Hour)
	inv := entities.Invoice{
		ID:               "inv-1",
		QuoteID:          "q-1",
		DocumentType:     entities.DocumentTypeInvoice,
		SubtotalCents:    100_000,
		TaxCents:         10_000,
		TotalCents:       110_000,
		Status:           entities.InvoiceStatusSent,
		SentAt:           &sentAt,
		LastStatusChange: now,
		StatusChangedBy:  "admin",
		CreatedAt:        now,
	}

	res := FromInvoice(inv)
	if res.ID != "inv-1" || res.QuoteID != "q-1" || res.Status != "sent" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.TotalCents != 110_000 || res.DocumentType != "invoice" {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if res.SentAt == nil || !res.SentAt.Equal(sentAt) {
		t.Fatalf("expected sent_at to carry over: %+v", res)
	}
	if res.ViewedAt != nil || res.PaidAt != nil {
		t.Fatalf("expected unset stamps to stay nil: %+v", res)
	}
}

func TestFromMilestone(t *testing.T) {
	now := time.Now().UTC()
	paidAt := now.Add(-time.Minute)
	m := entities.PaymentMilestone{
		ID:          "m-1",
		InvoiceID:   "inv-1",
		Description: "deposit",
		AmountCents: 50_000,
		Status:      entities.MilestoneStatusPaid,
		DueDate:     now.AddDate(0, 1, 0),
		PaidAt:      &paidAt,
		CreatedAt:   now,
	}

	res := FromMilestone(m)
	if res.ID != "m-1" || res.Status != "paid" || res.AmountCents != 50_000 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.PaidAt == nil || !res.PaidAt.Equal(paidAt) {
		t.Fatalf("expected paid_at to carry over: %+v", res)
	}
}
