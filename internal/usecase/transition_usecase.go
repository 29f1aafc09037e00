package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catering_portal/internal/domain/entities"
	"catering_portal/internal/domain/workflow"
	"catering_portal/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrInvalidInvoiceID = errors.New("invalid invoice id")

	// ErrInvalidTransition means the transition table has no rule for the
	// requested (from, to, role) triple. Always safe to reject; no side
	// effects have occurred.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStatusConflict means the entity's status changed between the
	// legality check and the conditional write. The caller should re-read
	// and retry.
	ErrStatusConflict = errors.New("status changed concurrently")

	// ErrPersistenceFailure means the store rejected the status write. No
	// audit entry was produced and no notification fired.
	ErrPersistenceFailure = errors.New("status update failed")
)

// ITransitionUseCase applies workflow transitions to quotes and invoices.
//
// Every transition runs the same pipeline: re-read current status,
// validate against the transition table, commit the status atomically
// (conditioned on the status that was just read), append an audit record,
// and notify the customer when the matched rule requires it. Audit and
// notification are best-effort after the commit: their failure is logged
// but never rolls back the status change.

type ITransitionUseCase interface {
	ApplyQuoteTransition(ctx context.Context, quoteID string, desired entities.QuoteStatus, role entities.ActorRole, reason string) (entities.Quote, error)
	ApplyInvoiceTransition(ctx context.Context, invoiceID string, desired entities.InvoiceStatus, role entities.ActorRole, reason string) (entities.Invoice, error)
	QuoteHistory(ctx context.Context, quoteID string) ([]entities.StatusTransitionRecord, error)
	InvoiceHistory(ctx context.Context, invoiceID string) ([]entities.StatusTransitionRecord, error)
}

type TransitionUseCase struct {
	validator *workflow.Validator
	quotes    interfaces.IQuoteRepository
	invoices  interfaces.IInvoiceRepository
	audit     interfaces.IAuditRepository
	notifier  interfaces.INotificationDispatcher
}

var _ ITransitionUseCase = (*TransitionUseCase)(nil)

func NewTransitionUseCase(
	validator *workflow.Validator,
	quotes interfaces.IQuoteRepository,
	invoices interfaces.IInvoiceRepository,
	audit interfaces.IAuditRepository,
	notifier interfaces.INotificationDispatcher,
) *TransitionUseCase {
	return &TransitionUseCase{
		validator: validator,
		quotes:    quotes,
		invoices:  invoices,
		audit:     audit,
		notifier:  notifier,
	}
}

func (u *TransitionUseCase) ApplyQuoteTransition(ctx context.Context, quoteID string, desired entities.QuoteStatus, role entities.ActorRole, reason string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	rule, ok := u.validator.Match(entities.EntityKindQuote, string(q.Status), string(desired), role)
	if !ok {
		return entities.Quote{}, fmt.Errorf("%w: quote %s cannot move from %q to %q as %s", ErrInvalidTransition, quoteID, q.Status, desired, role)
	}

	now := time.Now().UTC()
	updated, err := u.quotes.UpdateStatus(ctx, quoteID, q.Status, desired, string(role), now)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Quote{}, fmt.Errorf("%w: quote %s no longer at %q", ErrStatusConflict, quoteID, q.Status)
		}
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	u.finish(ctx, rule, entities.StatusTransitionRecord{
		EntityKind:     entities.EntityKindQuote,
		EntityID:       quoteID,
		PreviousStatus: string(q.Status),
		NewStatus:      string(desired),
		Actor:          role,
		Reason:         reason,
		RecordedAt:     now,
	}, updated.CustomerEmail)

	return updated, nil
}

func (u *TransitionUseCase) ApplyInvoiceTransition(ctx context.Context, invoiceID string, desired entities.InvoiceStatus, role entities.ActorRole, reason string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	rule, ok := u.validator.Match(entities.EntityKindInvoice, string(inv.Status), string(desired), role)
	if !ok {
		return entities.Invoice{}, fmt.Errorf("%w: invoice %s cannot move from %q to %q as %s", ErrInvalidTransition, invoiceID, inv.Status, desired, role)
	}

	now := time.Now().UTC()
	updated, err := u.invoices.UpdateStatus(ctx, invoiceID, inv.Status, desired, string(role), now)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Invoice{}, fmt.Errorf("%w: invoice %s no longer at %q", ErrStatusConflict, invoiceID, inv.Status)
		}
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	u.finish(ctx, rule, entities.StatusTransitionRecord{
		EntityKind:     entities.EntityKindInvoice,
		EntityID:       invoiceID,
		PreviousStatus: string(inv.Status),
		NewStatus:      string(desired),
		Actor:          role,
		Reason:         reason,
		RecordedAt:     now,
	}, u.invoiceContact(ctx, updated))

	return updated, nil
}

// finish runs the post-commit steps: audit append, then notification when
// the rule requires it. Both are best-effort; the transition is already
// durable when finish runs.
func (u *TransitionUseCase) finish(ctx context.Context, rule workflow.Rule, rec entities.StatusTransitionRecord, contact string) {
	if err := u.audit.Append(ctx, rec); err != nil {
		logrus.WithFields(logrus.Fields{
			"component":   "workflow",
			"entity_kind": rec.EntityKind,
			"entity_id":   rec.EntityID,
			"new_status":  rec.NewStatus,
		}).WithError(err).Warn("audit append failed after committed transition")
	}

	if !rule.Notify {
		return
	}
	if contact == "" {
		logrus.WithFields(logrus.Fields{
			"component":   "workflow",
			"entity_kind": rec.EntityKind,
			"entity_id":   rec.EntityID,
		}).Warn("notification required but no customer contact resolved")
		return
	}
	err := u.notifier.Send(ctx, interfaces.StatusNotification{
		Recipient:   contact,
		EntityKind:  rec.EntityKind,
		EntityID:    rec.EntityID,
		NewStatus:   rec.NewStatus,
		Description: rule.Description,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"component":   "workflow",
			"entity_kind": rec.EntityKind,
			"entity_id":   rec.EntityID,
			"new_status":  rec.NewStatus,
		}).WithError(err).Warn("notification dispatch failed; transition remains committed")
	}
}

// invoiceContact resolves the customer contact through the parent quote.
func (u *TransitionUseCase) invoiceContact(ctx context.Context, inv entities.Invoice) string {
	q, err := u.quotes.GetByID(ctx, inv.QuoteID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"component":  "workflow",
			"invoice_id": inv.ID,
			"quote_id":   inv.QuoteID,
		}).WithError(err).Warn("could not resolve quote contact for invoice notification")
		return ""
	}
	return q.CustomerEmail
}

func (u *TransitionUseCase) QuoteHistory(ctx context.Context, quoteID string) ([]entities.StatusTransitionRecord, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.audit.ListByEntity(ctx, entities.EntityKindQuote, quoteID)
}

func (u *TransitionUseCase) InvoiceHistory(ctx context.Context, invoiceID string) ([]entities.StatusTransitionRecord, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.audit.ListByEntity(ctx, entities.EntityKindInvoice, invoiceID)
}
