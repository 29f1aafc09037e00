package handlers

import (
	"net/http"

	request "catering_portal/internal/adapter/http/dto/request"
	response "catering_portal/internal/adapter/http/dto/response"
	"catering_portal/internal/domain/entities"
	"catering_portal/internal/usecase"
	"catering_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles HTTP requests for estimate/invoice documents and
// their payment milestones.

type InvoiceHandler struct {
	invoices    usecase.IInvoiceUseCase
	transitions usecase.ITransitionUseCase
}

func NewInvoiceHandler(invoices usecase.IInvoiceUseCase, transitions usecase.ITransitionUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, transitions: transitions}
}

// CreateInvoice creates a draft document from an approved quote.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.invoices.CreateFromQuote(
		c.Request.Context(),
		payload.QuoteID,
		entities.DocumentType(payload.DocumentType),
		payload.SubtotalCents,
		payload.TaxCents,
	)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.invoices.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// TransitionInvoice applies a workflow transition to the document.
func (h *InvoiceHandler) TransitionInvoice(c *gin.Context) {
	role, ok := actorRole(c)
	if !ok {
		return
	}

	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.transitions.ApplyInvoiceTransition(
		c.Request.Context(),
		c.Param("id"),
		entities.InvoiceStatus(payload.ResolveStatus()),
		role,
		payload.Reason,
	)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// InvoiceHistory returns the document's transition records, most recent
// first.
func (h *InvoiceHandler) InvoiceHistory(c *gin.Context) {
	records, err := h.transitions.InvoiceHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransitionRecords(records))
}

// CreateMilestone schedules a payment milestone against the invoice.
func (h *InvoiceHandler) CreateMilestone(c *gin.Context) {
	var payload request.MilestoneCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	m, err := h.invoices.CreateMilestone(
		c.Request.Context(),
		c.Param("id"),
		payload.Description,
		payload.AmountCents,
		payload.DueDate,
	)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMilestone(m))
}

func (h *InvoiceHandler) GetMilestone(c *gin.Context) {
	m, err := h.invoices.GetMilestone(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMilestone(m))
}
