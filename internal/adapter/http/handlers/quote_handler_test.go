package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catering_portal/internal/adapter/http/handlers/mocks"
	"catering_portal/internal/domain/entities"
	"catering_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), mocks.NewMockITransitionUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quotes", h.SubmitQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("binding rejects a malformed email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), mocks.NewMockITransitionUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quotes", h.SubmitQuote)

		body := `{"customer_name":"Ana","customer_email":"nope","event_date":"2026-10-17T18:00:00Z","guest_count":120}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, mocks.NewMockITransitionUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quotes", h.SubmitQuote)

		now := time.Now().UTC()
		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.AssignableToTypeOf(usecase.SubmitQuoteCommand{})).Return(entities.Quote{
			ID:            "q-1",
			CustomerName:  "Ana",
			CustomerEmail: "ana@example.com",
			GuestCount:    120,
			Status:        entities.QuoteStatusPending,
			CreatedAt:     now,
		}, nil)

		body := `{"customer_name":"Ana","customer_email":"ana@example.com","event_date":"2026-10-17T18:00:00Z","guest_count":120}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "q-1" || resp["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_TransitionQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *QuoteHandler) *gin.Engine {
		r := gin.New()
		r.PATCH("/v1/quotes/:id/status", h.TransitionQuote)
		return r
	}

	t.Run("missing actor role header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"under_review"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INVALID_ACTOR_ROLE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown actor role header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"under_review"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Role", "superuser")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transitions := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), transitions)
		r := newRouter(h)

		transitions.EXPECT().ApplyQuoteTransition(gomock.Any(), "q-1", entities.QuoteStatusPaid, entities.ActorRoleCustomer, "").
			Return(entities.Quote{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Role", "customer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("status conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transitions := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), transitions)
		r := newRouter(h)

		transitions.EXPECT().ApplyQuoteTransition(gomock.Any(), "q-1", entities.QuoteStatusQuoted, entities.ActorRoleAdmin, "").
			Return(entities.Quote{}, usecase.ErrStatusConflict)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"quoted"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Role", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transitions := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), transitions)
		r := newRouter(h)

		transitions.EXPECT().ApplyQuoteTransition(gomock.Any(), "missing", entities.QuoteStatusQuoted, entities.ActorRoleAdmin, "").
			Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/missing/status", bytes.NewBufferString(`{"status":"quoted"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Role", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transitions := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), transitions)
		r := newRouter(h)

		transitions.EXPECT().ApplyQuoteTransition(gomock.Any(), "q-1", entities.QuoteStatusCancelled, entities.ActorRoleAdmin, "customer request").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"cancelled","reason":"customer request"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Role", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "cancelled" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_QuoteHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transitions := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), transitions)

		r := gin.New()
		r.GET("/v1/quotes/:id/history", h.QuoteHistory)

		transitions.EXPECT().QuoteHistory(gomock.Any(), "q-1").Return([]entities.StatusTransitionRecord{
			{EntityKind: entities.EntityKindQuote, EntityID: "q-1", PreviousStatus: "pending", NewStatus: "under_review", Actor: entities.ActorRoleAdmin},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 1 || resp[0]["new_status"] != "under_review" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty history is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transitions := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl), transitions)

		r := gin.New()
		r.GET("/v1/quotes/:id/history", h.QuoteHistory)

		transitions.EXPECT().QuoteHistory(gomock.Any(), "q-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc, mocks.NewMockITransitionUseCase(ctrl))

	r := gin.New()
	r.GET("/v1/quotes/:id", h.GetQuote)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
