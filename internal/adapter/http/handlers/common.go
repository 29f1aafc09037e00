package handlers

import (
	"errors"
	"net/http"

	"catering_portal/internal/domain/entities"
	"catering_portal/internal/usecase"
	"catering_portal/pkg"

	"github.com/gin-gonic/gin"
)

// actorRoleHeader carries the acting role resolved by the portal's edge
// after authentication. The workflow core trusts it; session handling is
// an external collaborator.
const actorRoleHeader = "X-Actor-Role"

var errInvalidActorRole = pkg.NewDomainErrorSimple("INVALID_ACTOR_ROLE", "Missing or unknown X-Actor-Role header", http.StatusBadRequest)

func actorRole(c *gin.Context) (entities.ActorRole, bool) {
	role, ok := entities.ParseActorRole(c.GetHeader(actorRoleHeader))
	if !ok {
		c.JSON(errInvalidActorRole.HTTPStatus, errInvalidActorRole.ToHTTPError())
		return "", false
	}
	return role, true
}

// mapWorkflowError translates usecase sentinels to HTTP errors. Invalid
// transitions keep the underlying message: it names the current and
// attempted status, which is what the caller needs to act on.
func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidMilestoneID),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidCustomerEmail),
		errors.Is(err, usecase.ErrInvalidGuestCount),
		errors.Is(err, usecase.ErrInvalidEventDate),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidDocumentType),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Payment milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Status changed concurrently; reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote must be approved before invoicing", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrMilestonesExceedTotal):
		return pkg.NewDomainErrorSimple("MILESTONES_EXCEED_TOTAL", "Milestone amounts exceed the invoice total", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMilestoneAlreadyPaid):
		return pkg.NewDomainErrorSimple("MILESTONE_ALREADY_PAID", "Payment milestone already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice is not accepting payments", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCascadeInconsistency):
		return pkg.NewDomainError("CASCADE_INCONSISTENCY", "Invoice and quote status are temporarily inconsistent", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Could not persist the status change", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
