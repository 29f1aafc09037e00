package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"catering_portal/internal/domain/entities"
	"catering_portal/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPaymentPayload = errors.New("invalid payment payload")
	ErrMilestoneAlreadyPaid  = errors.New("payment milestone already paid")
	ErrPaymentNotApproved    = errors.New("payment was not approved by the provider")
	ErrInvoiceNotPayable     = errors.New("invoice is not accepting payments")
)

// IMilestonePaymentUseCase charges a payment milestone through the payment
// gateway, marks it paid, and triggers reconciliation of the invoice and
// its quote.

type IMilestonePaymentUseCase interface {
	PayMilestone(ctx context.Context, milestoneID string, payload json.RawMessage) (entities.PaymentMilestone, error)
}

type MilestonePaymentUseCase struct {
	milestones interfaces.IMilestoneRepository
	invoices   interfaces.IInvoiceRepository
	gateway    interfaces.IPaymentGateway
	reconciler IPaymentReconcilerUseCase
}

var _ IMilestonePaymentUseCase = (*MilestonePaymentUseCase)(nil)

func NewMilestonePaymentUseCase(
	milestones interfaces.IMilestoneRepository,
	invoices interfaces.IInvoiceRepository,
	gateway interfaces.IPaymentGateway,
	reconciler IPaymentReconcilerUseCase,
) *MilestonePaymentUseCase {
	return &MilestonePaymentUseCase{
		milestones: milestones,
		invoices:   invoices,
		gateway:    gateway,
		reconciler: reconciler,
	}
}

// PayMilestone charges the milestone amount via the gateway. The amount is
// always taken from the stored milestone, never from the caller's payload.
// On an approved charge the milestone is marked paid and the reconciler
// runs; a reconciliation error (including a cascade inconsistency) is
// returned alongside the already-paid milestone so callers can surface it.
func (u *MilestonePaymentUseCase) PayMilestone(ctx context.Context, milestoneID string, payload json.RawMessage) (entities.PaymentMilestone, error) {
	milestoneID = strings.TrimSpace(milestoneID)
	if milestoneID == "" {
		return entities.PaymentMilestone{}, ErrInvalidMilestoneID
	}
	if len(payload) > 0 && !json.Valid(payload) {
		return entities.PaymentMilestone{}, ErrInvalidPaymentPayload
	}

	m, err := u.milestones.GetByID(ctx, milestoneID)
	if err != nil {
		return entities.PaymentMilestone{}, err
	}
	if m.ID == "" {
		return entities.PaymentMilestone{}, ErrMilestoneNotFound
	}
	if m.Status.Settled() {
		return entities.PaymentMilestone{}, ErrMilestoneAlreadyPaid
	}

	inv, err := u.invoices.GetByID(ctx, m.InvoiceID)
	if err != nil {
		return entities.PaymentMilestone{}, err
	}
	if inv.ID == "" {
		return entities.PaymentMilestone{}, ErrInvoiceNotFound
	}
	if !inv.Status.AcceptsPayments() {
		return entities.PaymentMilestone{}, ErrInvoiceNotPayable
	}

	charge := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &charge); err != nil {
			return entities.PaymentMilestone{}, ErrInvalidPaymentPayload
		}
	}
	charge["external_reference"] = milestoneID
	charge["transaction_amount"] = float64(m.AmountCents) / 100
	if _, ok := charge["description"]; !ok {
		charge["description"] = fmt.Sprintf("Catering milestone %s", milestoneID)
	}
	body, err := json.Marshal(charge)
	if err != nil {
		return entities.PaymentMilestone{}, err
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		return entities.PaymentMilestone{}, err
	}
	if providerStatus != "approved" {
		logrus.WithFields(logrus.Fields{
			"component":           "payments",
			"milestone_id":        milestoneID,
			"provider_payment_id": providerPaymentID,
			"provider_status":     providerStatus,
		}).Warn("provider did not approve milestone payment")
		return entities.PaymentMilestone{}, ErrPaymentNotApproved
	}

	paid, err := u.milestones.MarkPaid(ctx, milestoneID, time.Now().UTC())
	if err != nil {
		return entities.PaymentMilestone{}, err
	}
	if paid.ID == "" {
		return entities.PaymentMilestone{}, ErrMilestoneNotFound
	}

	if err := u.reconciler.ReconcileInvoicePayments(ctx, m.InvoiceID); err != nil {
		return paid, err
	}
	return paid, nil
}
