package handlers

import (
	"errors"
	"net/http"

	request "catering_portal/internal/adapter/http/dto/request"
	response "catering_portal/internal/adapter/http/dto/response"
	"catering_portal/internal/usecase"
	"catering_portal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles milestone payments and payment-provider
// callbacks.

type PaymentHandler struct {
	payments   usecase.IMilestonePaymentUseCase
	reconciler usecase.IPaymentReconcilerUseCase
}

func NewPaymentHandler(payments usecase.IMilestonePaymentUseCase, reconciler usecase.IPaymentReconcilerUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, reconciler: reconciler}
}

// PayMilestone charges the milestone via the payment gateway and triggers
// reconciliation. When the charge succeeded but reconciliation left the
// invoice and quote inconsistent, the milestone is still paid; the
// response reports the inconsistency instead of pretending failure.
func (h *PaymentHandler) PayMilestone(c *gin.Context) {
	milestoneID := c.Param("id")

	var payload request.MilestonePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	paid, err := h.payments.PayMilestone(c.Request.Context(), milestoneID, payload.PaymentPayload)
	if err != nil {
		if errors.Is(err, usecase.ErrCascadeInconsistency) && paid.ID != "" {
			logrus.WithFields(logrus.Fields{
				"component":    "payments",
				"milestone_id": milestoneID,
			}).WithError(err).Error("milestone paid but reconciliation incomplete")
			c.JSON(http.StatusInternalServerError, gin.H{
				"milestone": response.FromMilestone(paid),
				"error":     mapWorkflowError(err).ToHTTPError(),
			})
			return
		}
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMilestone(paid))
}

// PaymentWebhook re-runs reconciliation for an invoice. Retrying after a
// cascade inconsistency completes the quote-side leg without repeating
// the invoice-side transition.
func (h *PaymentHandler) PaymentWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	if err := h.reconciler.ReconcileInvoicePayments(c.Request.Context(), payload.InvoiceID); err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reconciled"})
}
