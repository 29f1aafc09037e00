package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"catering_portal/internal/domain/entities"
	"catering_portal/internal/domain/workflow"
	mock_interfaces "catering_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	milestones *mock_interfaces.MockIMilestoneRepository
	invoices   *mock_interfaces.MockIInvoiceRepository
	quotes     *mock_interfaces.MockIQuoteRepository
	audit      *mock_interfaces.MockIAuditRepository
	notifier   *mock_interfaces.MockINotificationDispatcher
	gateway    *mock_interfaces.MockIPaymentGateway
}

// The payment usecase is wired to a real reconciler and transition
// pipeline over mocked repositories.
func newMilestonePaymentUseCase(t *testing.T) (*MilestonePaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		milestones: mock_interfaces.NewMockIMilestoneRepository(ctrl),
		invoices:   mock_interfaces.NewMockIInvoiceRepository(ctrl),
		quotes:     mock_interfaces.NewMockIQuoteRepository(ctrl),
		audit:      mock_interfaces.NewMockIAuditRepository(ctrl),
		notifier:   mock_interfaces.NewMockINotificationDispatcher(ctrl),
		gateway:    mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	transitions := NewTransitionUseCase(workflow.NewValidator(workflow.DefaultTable()), m.quotes, m.invoices, m.audit, m.notifier)
	reconciler := NewPaymentReconcilerUseCase(m.invoices, m.quotes, m.milestones, transitions)
	return NewMilestonePaymentUseCase(m.milestones, m.invoices, m.gateway, reconciler), m
}

func TestMilestonePaymentUseCase_PayMilestone(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newMilestonePaymentUseCase(t)
		if _, err := uc.PayMilestone(context.Background(), "  ", nil); !errors.Is(err, ErrInvalidMilestoneID) {
			t.Fatalf("expected ErrInvalidMilestoneID, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		uc, _ := newMilestonePaymentUseCase(t)
		if _, err := uc.PayMilestone(context.Background(), "m-1", json.RawMessage("{")); !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("milestone not found", func(t *testing.T) {
		uc, m := newMilestonePaymentUseCase(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.PaymentMilestone{}, nil)

		if _, err := uc.PayMilestone(context.Background(), "m-1", nil); !errors.Is(err, ErrMilestoneNotFound) {
			t.Fatalf("expected ErrMilestoneNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, m := newMilestonePaymentUseCase(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "m-1").
			Return(entities.PaymentMilestone{ID: "m-1", InvoiceID: "inv-1", Status: entities.MilestoneStatusPaid}, nil)

		if _, err := uc.PayMilestone(context.Background(), "m-1", nil); !errors.Is(err, ErrMilestoneAlreadyPaid) {
			t.Fatalf("expected ErrMilestoneAlreadyPaid, got %v", err)
		}
	})

	t.Run("only statuses reconciliation can advance are payable", func(t *testing.T) {
		// An approved charge on e.g. a sent invoice would strand the money:
		// there is no sent→partially_paid rule for reconciliation to apply.
		// The guard must fire before the gateway is called; the gateway mock
		// has no expectation here, so any charge attempt fails the test.
		notPayable := []entities.InvoiceStatus{
			entities.InvoiceStatusDraft,
			entities.InvoiceStatusPendingReview,
			entities.InvoiceStatusSent,
			entities.InvoiceStatusViewed,
			entities.InvoiceStatusApproved,
			entities.InvoiceStatusPaid,
			entities.InvoiceStatusCancelled,
		}
		for _, status := range notPayable {
			uc, m := newMilestonePaymentUseCase(t)
			m.milestones.EXPECT().GetByID(gomock.Any(), "m-1").
				Return(entities.PaymentMilestone{ID: "m-1", InvoiceID: "inv-1", Status: entities.MilestoneStatusPending}, nil)
			m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").
				Return(entities.Invoice{ID: "inv-1", Status: status}, nil)

			if _, err := uc.PayMilestone(context.Background(), "m-1", nil); !errors.Is(err, ErrInvoiceNotPayable) {
				t.Fatalf("status %s: expected ErrInvoiceNotPayable, got %v", status, err)
			}
		}
	})

	t.Run("overdue invoice is payable", func(t *testing.T) {
		uc, m := newMilestonePaymentUseCase(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "m-1").
			Return(entities.PaymentMilestone{ID: "m-1", InvoiceID: "inv-1", AmountCents: 50_000, Status: entities.MilestoneStatusPending}, nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusOverdue}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("pay-1", "rejected", nil, nil)

		if _, err := uc.PayMilestone(context.Background(), "m-1", nil); !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
	})

	t.Run("provider rejection leaves the milestone pending", func(t *testing.T) {
		uc, m := newMilestonePaymentUseCase(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "m-1").
			Return(entities.PaymentMilestone{ID: "m-1", InvoiceID: "inv-1", AmountCents: 50_000, Status: entities.MilestoneStatusPending}, nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaymentPending}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("pay-1", "rejected", nil, nil)

		if _, err := uc.PayMilestone(context.Background(), "m-1", nil); !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
	})

	t.Run("charge amount comes from the stored milestone", func(t *testing.T) {
		uc, m := newMilestonePaymentUseCase(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "m-1").
			Return(entities.PaymentMilestone{ID: "m-1", InvoiceID: "inv-1", AmountCents: 55_000, Status: entities.MilestoneStatusPending}, nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", QuoteID: "q-1", Status: entities.InvoiceStatusPaymentPending}, nil).AnyTimes()
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
				var charge map[string]any
				if err := json.Unmarshal(body, &charge); err != nil {
					t.Fatalf("charge body is not JSON: %v", err)
				}
				// Caller-supplied amount must be overridden by the stored one.
				if charge["transaction_amount"] != 550.0 {
					t.Fatalf("expected amount 550.0 from the milestone, got %v", charge["transaction_amount"])
				}
				if charge["external_reference"] != "m-1" {
					t.Fatalf("expected external_reference m-1, got %v", charge["external_reference"])
				}
				return "pay-1", "approved", nil, nil
			},
		)
		m.milestones.EXPECT().MarkPaid(gomock.Any(), "m-1", gomock.Any()).
			Return(entities.PaymentMilestone{ID: "m-1", InvoiceID: "inv-1", AmountCents: 55_000, Status: entities.MilestoneStatusPaid}, nil)
		// Reconciliation: one of two milestones settled → partially_paid.
		m.milestones.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.PaymentMilestone{
			{ID: "m-1", InvoiceID: "inv-1", Status: entities.MilestoneStatusPaid},
			{ID: "m-2", InvoiceID: "inv-1", Status: entities.MilestoneStatusPending},
		}, nil)
		m.invoices.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusPaymentPending, entities.InvoiceStatusPartiallyPaid, "system", gomock.Any()).
			Return(entities.Invoice{ID: "inv-1", QuoteID: "q-1", Status: entities.InvoiceStatusPartiallyPaid}, nil)
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", CustomerEmail: "ana@example.com"}, nil)
		m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		paid, err := uc.PayMilestone(context.Background(), "m-1", json.RawMessage(`{"transaction_amount": 1, "payment_method_id": "pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if paid.Status != entities.MilestoneStatusPaid {
			t.Fatalf("expected paid milestone, got %s", paid.Status)
		}
	})

	t.Run("cascade inconsistency still returns the paid milestone", func(t *testing.T) {
		uc, m := newMilestonePaymentUseCase(t)
		m.milestones.EXPECT().GetByID(gomock.Any(), "m-1").
			Return(entities.PaymentMilestone{ID: "m-1", InvoiceID: "inv-1", AmountCents: 55_000, Status: entities.MilestoneStatusPending}, nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", QuoteID: "q-1", Status: entities.InvoiceStatusPaymentPending}, nil).AnyTimes()
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", nil, nil)
		m.milestones.EXPECT().MarkPaid(gomock.Any(), "m-1", gomock.Any()).
			Return(entities.PaymentMilestone{ID: "m-1", InvoiceID: "inv-1", Status: entities.MilestoneStatusPaid}, nil)
		m.milestones.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.PaymentMilestone{
			{ID: "m-1", InvoiceID: "inv-1", Status: entities.MilestoneStatusPaid},
		}, nil)
		m.invoices.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusPaymentPending, entities.InvoiceStatusPaid, "system", gomock.Any()).
			Return(entities.Invoice{ID: "inv-1", QuoteID: "q-1", Status: entities.InvoiceStatusPaid}, nil)
		m.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		// Quote side fails; the invoice leg is already durable.
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("dynamodb unavailable")).AnyTimes()

		paid, err := uc.PayMilestone(context.Background(), "m-1", nil)
		if !errors.Is(err, ErrCascadeInconsistency) {
			t.Fatalf("expected ErrCascadeInconsistency, got %v", err)
		}
		if paid.ID != "m-1" || paid.Status != entities.MilestoneStatusPaid {
			t.Fatalf("expected the paid milestone alongside the error, got %+v", paid)
		}
	})
}
