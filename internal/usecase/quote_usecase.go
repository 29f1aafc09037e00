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
	ErrInvalidCustomerName  = errors.New("invalid customer name")
	ErrInvalidCustomerEmail = errors.New("invalid customer email")
	ErrInvalidGuestCount    = errors.New("invalid guest count")
	ErrInvalidEventDate     = errors.New("invalid event date")
)

// SubmitQuoteCommand carries the intake form fields for a new quote
// request.
type SubmitQuoteCommand struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	EventDate     time.Time
	GuestCount    int
	EventLocation string
}

// IQuoteUseCase exposes quote request intake and lookup.

type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, cmd SubmitQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

// SubmitQuote creates a quote request in the initial pending status. The
// status field is never written directly after this point; all later
// changes go through the transition pipeline.
func (u *QuoteUseCase) SubmitQuote(ctx context.Context, cmd SubmitQuoteCommand) (entities.Quote, error) {
	name := strings.TrimSpace(cmd.CustomerName)
	if name == "" {
		return entities.Quote{}, ErrInvalidCustomerName
	}
	email := strings.TrimSpace(cmd.CustomerEmail)
	if email == "" || !strings.Contains(email, "@") {
		return entities.Quote{}, ErrInvalidCustomerEmail
	}
	if cmd.GuestCount <= 0 {
		return entities.Quote{}, ErrInvalidGuestCount
	}
	if cmd.EventDate.IsZero() {
		return entities.Quote{}, ErrInvalidEventDate
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:               uuid.NewString(),
		CustomerName:     name,
		CustomerEmail:    email,
		CustomerPhone:    strings.TrimSpace(cmd.CustomerPhone),
		EventDate:        cmd.EventDate.UTC(),
		GuestCount:       cmd.GuestCount,
		EventLocation:    strings.TrimSpace(cmd.EventLocation),
		Status:           entities.QuoteStatusPending,
		LastStatusChange: now,
		StatusChangedBy:  string(entities.ActorRoleCustomer),
		CreatedAt:        now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
