package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catering_portal/internal/domain/entities"
	"catering_portal/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// ErrCascadeInconsistency means the invoice-side transition committed but
// the dependent quote-side transition did not. The two entities are
// temporarily inconsistent; a retry of the reconciler completes the
// cascade without repeating the invoice-side transition.
var ErrCascadeInconsistency = errors.New("invoice and quote status are inconsistent")

// IPaymentReconcilerUseCase derives invoice payment status from the
// aggregate state of its milestones and cascades full payment to the
// linked quote.

type IPaymentReconcilerUseCase interface {
	ReconcileInvoicePayments(ctx context.Context, invoiceID string) error
}

type PaymentReconcilerUseCase struct {
	invoices    interfaces.IInvoiceRepository
	quotes      interfaces.IQuoteRepository
	milestones  interfaces.IMilestoneRepository
	transitions ITransitionUseCase
}

var _ IPaymentReconcilerUseCase = (*PaymentReconcilerUseCase)(nil)

func NewPaymentReconcilerUseCase(
	invoices interfaces.IInvoiceRepository,
	quotes interfaces.IQuoteRepository,
	milestones interfaces.IMilestoneRepository,
	transitions ITransitionUseCase,
) *PaymentReconcilerUseCase {
	return &PaymentReconcilerUseCase{
		invoices:    invoices,
		quotes:      quotes,
		milestones:  milestones,
		transitions: transitions,
	}
}

// ReconcileInvoicePayments runs the milestone aggregation:
//
//   - all milestones settled  → invoice becomes paid, then the linked
//     quote becomes paid (actor system, normal transition pipeline)
//   - some but not all settled → invoice becomes partially_paid
//   - none settled            → no transition at all
//
// The call is idempotent: statuses already reached are skipped, so
// re-running with the same milestone snapshot is a no-op, and a retry
// after a failed cascade only performs the missing quote-side leg.
func (u *PaymentReconcilerUseCase) ReconcileInvoicePayments(ctx context.Context, invoiceID string) error {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if inv.ID == "" {
		return ErrInvoiceNotFound
	}

	milestones, err := u.milestones.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if len(milestones) == 0 {
		return nil
	}

	settled := 0
	for _, m := range milestones {
		if m.Status.Settled() {
			settled++
		}
	}

	switch {
	case settled == len(milestones):
		if inv.Status != entities.InvoiceStatusPaid {
			if _, err := u.transitions.ApplyInvoiceTransition(ctx, invoiceID, entities.InvoiceStatusPaid, entities.ActorRoleSystem, "all payment milestones settled"); err != nil {
				return err
			}
		}
		return u.cascadeQuotePaid(ctx, inv)

	case settled > 0:
		if inv.Status == entities.InvoiceStatusPartiallyPaid {
			return nil
		}
		_, err := u.transitions.ApplyInvoiceTransition(ctx, invoiceID, entities.InvoiceStatusPartiallyPaid, entities.ActorRoleSystem, "partial payment milestones settled")
		return err

	default:
		// No milestones settled yet; not a transition.
		return nil
	}
}

// cascadeQuotePaid drives the parent quote to paid once the invoice is
// fully paid. A failure here is escalated as a cascade inconsistency: the
// invoice-side leg is already durable.
func (u *PaymentReconcilerUseCase) cascadeQuotePaid(ctx context.Context, inv entities.Invoice) error {
	q, err := u.quotes.GetByID(ctx, inv.QuoteID)
	if err == nil && q.ID == "" {
		err = ErrQuoteNotFound
	}
	if err != nil {
		return u.escalate(inv, err)
	}
	if quoteSettled(q.Status) {
		return nil
	}

	if _, err := u.transitions.ApplyQuoteTransition(ctx, inv.QuoteID, entities.QuoteStatusPaid, entities.ActorRoleSystem, "invoice paid in full"); err != nil {
		return u.escalate(inv, err)
	}
	return nil
}

func (u *PaymentReconcilerUseCase) escalate(inv entities.Invoice, cause error) error {
	logrus.WithFields(logrus.Fields{
		"component":  "reconciler",
		"invoice_id": inv.ID,
		"quote_id":   inv.QuoteID,
	}).WithError(cause).Error("invoice is paid but quote cascade failed; manual reconciliation may be required")
	return fmt.Errorf("%w: invoice %s is paid but quote %s was not updated: %v", ErrCascadeInconsistency, inv.ID, inv.QuoteID, cause)
}

// quoteSettled reports whether the quote has already absorbed the paid
// cascade (paid or any later stage).
func quoteSettled(s entities.QuoteStatus) bool {
	switch s {
	case entities.QuoteStatusPaid, entities.QuoteStatusConfirmed,
		entities.QuoteStatusInProgress, entities.QuoteStatusCompleted:
		return true
	}
	return false
}
