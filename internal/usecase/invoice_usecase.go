package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"catering_portal/internal/domain/entities"
	"catering_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceAlreadyExists  = errors.New("invoice already exists for this quote")
	ErrQuoteNotApproved      = errors.New("quote is not approved")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidDocumentType   = errors.New("invalid document type")
	ErrInvalidMilestoneID    = errors.New("invalid milestone id")
	ErrMilestoneNotFound     = errors.New("payment milestone not found")
	ErrMilestonesExceedTotal = errors.New("milestone amounts exceed invoice total")
)

// IInvoiceUseCase exposes estimate/invoice document creation and lookup,
// plus payment milestone scheduling.

type IInvoiceUseCase interface {
	CreateFromQuote(ctx context.Context, quoteID string, docType entities.DocumentType, subtotalCents, taxCents int64) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Invoice, error)
	CreateMilestone(ctx context.Context, invoiceID, description string, amountCents int64, dueDate time.Time) (entities.PaymentMilestone, error)
	GetMilestone(ctx context.Context, id string) (entities.PaymentMilestone, error)
}

type InvoiceUseCase struct {
	invoices   interfaces.IInvoiceRepository
	quotes     interfaces.IQuoteRepository
	milestones interfaces.IMilestoneRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(invoices interfaces.IInvoiceRepository, quotes interfaces.IQuoteRepository, milestones interfaces.IMilestoneRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, quotes: quotes, milestones: milestones}
}

// CreateFromQuote creates a draft document for an approved quote. The
// total is recomputed from subtotal and tax; it is never accepted from the
// caller. One document per quote.
func (u *InvoiceUseCase) CreateFromQuote(ctx context.Context, quoteID string, docType entities.DocumentType, subtotalCents, taxCents int64) (entities.Invoice, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Invoice{}, ErrInvalidQuoteID
	}
	if docType != entities.DocumentTypeEstimate && docType != entities.DocumentTypeInvoice {
		return entities.Invoice{}, ErrInvalidDocumentType
	}
	if subtotalCents <= 0 || taxCents < 0 {
		return entities.Invoice{}, ErrInvalidAmount
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if q.ID == "" {
		return entities.Invoice{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusApproved {
		return entities.Invoice{}, ErrQuoteNotApproved
	}

	if existing, err := u.invoices.GetByQuoteID(ctx, quoteID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrInvoiceAlreadyExists
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:               uuid.NewString(),
		QuoteID:          quoteID,
		DocumentType:     docType,
		IsDraft:          true,
		SubtotalCents:    subtotalCents,
		TaxCents:         taxCents,
		TotalCents:       subtotalCents + taxCents,
		Status:           entities.InvoiceStatusDraft,
		LastStatusChange: now,
		StatusChangedBy:  string(entities.ActorRoleAdmin),
		CreatedAt:        now,
	}
	return u.invoices.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) GetByQuoteID(ctx context.Context, quoteID string) (entities.Invoice, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Invoice{}, ErrInvalidQuoteID
	}

	inv, err := u.invoices.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// CreateMilestone schedules a partial payment obligation. The sum of all
// milestone amounts may not exceed the invoice total.
func (u *InvoiceUseCase) CreateMilestone(ctx context.Context, invoiceID, description string, amountCents int64, dueDate time.Time) (entities.PaymentMilestone, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.PaymentMilestone{}, ErrInvalidInvoiceID
	}
	if amountCents <= 0 {
		return entities.PaymentMilestone{}, ErrInvalidAmount
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.PaymentMilestone{}, err
	}
	if inv.ID == "" {
		return entities.PaymentMilestone{}, ErrInvoiceNotFound
	}

	existing, err := u.milestones.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return entities.PaymentMilestone{}, err
	}
	var scheduled int64
	for _, m := range existing {
		scheduled += m.AmountCents
	}
	if scheduled+amountCents > inv.TotalCents {
		return entities.PaymentMilestone{}, ErrMilestonesExceedTotal
	}

	m := entities.PaymentMilestone{
		ID:          uuid.NewString(),
		InvoiceID:   invoiceID,
		Description: strings.TrimSpace(description),
		AmountCents: amountCents,
		Status:      entities.MilestoneStatusPending,
		DueDate:     dueDate.UTC(),
		CreatedAt:   time.Now().UTC(),
	}
	return u.milestones.Create(ctx, m)
}

func (u *InvoiceUseCase) GetMilestone(ctx context.Context, id string) (entities.PaymentMilestone, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentMilestone{}, ErrInvalidMilestoneID
	}

	m, err := u.milestones.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentMilestone{}, err
	}
	if m.ID == "" {
		return entities.PaymentMilestone{}, ErrMilestoneNotFound
	}
	return m, nil
}
