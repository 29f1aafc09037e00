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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for catering quote requests.

type QuoteHandler struct {
	quotes      usecase.IQuoteUseCase
	transitions usecase.ITransitionUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, transitions usecase.ITransitionUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, transitions: transitions}
}

// SubmitQuote accepts the public intake form and creates a pending quote.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.quotes.SubmitQuote(c.Request.Context(), usecase.SubmitQuoteCommand{
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		EventDate:     payload.EventDate,
		GuestCount:    payload.GuestCount,
		EventLocation: payload.EventLocation,
	})
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.quotes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// TransitionQuote applies a workflow transition to the quote. Legality is
// decided by the transition table for the acting role.
func (h *QuoteHandler) TransitionQuote(c *gin.Context) {
	role, ok := actorRole(c)
	if !ok {
		return
	}

	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.transitions.ApplyQuoteTransition(
		c.Request.Context(),
		c.Param("id"),
		entities.QuoteStatus(payload.ResolveStatus()),
		role,
		payload.Reason,
	)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// QuoteHistory returns the quote's transition records, most recent first.
func (h *QuoteHandler) QuoteHistory(c *gin.Context) {
	records, err := h.transitions.QuoteHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransitionRecords(records))
}
