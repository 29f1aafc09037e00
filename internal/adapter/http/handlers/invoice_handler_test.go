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

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoiceHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)
		return r
	}

	t.Run("document type outside the enum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl), mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		body := `{"quote_id":"q-1","document_type":"receipt","subtotal_cents":100000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not approved maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		uc.EXPECT().CreateFromQuote(gomock.Any(), "q-1", entities.DocumentTypeEstimate, int64(100_000), int64(10_000)).
			Return(entities.Invoice{}, usecase.ErrQuoteNotApproved)

		body := `{"quote_id":"q-1","document_type":"estimate","subtotal_cents":100000,"tax_cents":10000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "QUOTE_NOT_APPROVED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("duplicate document maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		uc.EXPECT().CreateFromQuote(gomock.Any(), "q-1", entities.DocumentTypeInvoice, int64(100_000), int64(0)).
			Return(entities.Invoice{}, usecase.ErrInvoiceAlreadyExists)

		body := `{"quote_id":"q-1","document_type":"invoice","subtotal_cents":100000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		uc.EXPECT().CreateFromQuote(gomock.Any(), "q-1", entities.DocumentTypeEstimate, int64(100_000), int64(10_000)).
			Return(entities.Invoice{ID: "inv-1", QuoteID: "q-1", DocumentType: entities.DocumentTypeEstimate, IsDraft: true, SubtotalCents: 100_000, TaxCents: 10_000, TotalCents: 110_000, Status: entities.InvoiceStatusDraft}, nil)

		body := `{"quote_id":"q-1","document_type":"estimate","subtotal_cents":100000,"tax_cents":10000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "inv-1" || resp["status"] != "draft" || resp["total_cents"] != 110000.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_TransitionInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoiceHandler) *gin.Engine {
		r := gin.New()
		r.PATCH("/v1/invoices/:id/status", h.TransitionInvoice)
		return r
	}

	t.Run("missing actor role header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl), mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/status", bytes.NewBufferString(`{"status":"sent"}`))
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
		transitions := mocks.NewMockITransitionUseCase(ctrl)
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl), transitions)
		r := newRouter(h)

		sentAt := time.Now().UTC()
		transitions.EXPECT().ApplyInvoiceTransition(gomock.Any(), "inv-1", entities.InvoiceStatusSent, entities.ActorRoleAdmin, "").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent, SentAt: &sentAt}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/status", bytes.NewBufferString(`{"status":"sent"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Role", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "sent" || resp["sent_at"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid transition maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transitions := mocks.NewMockITransitionUseCase(ctrl)
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl), transitions)
		r := newRouter(h)

		transitions.EXPECT().ApplyInvoiceTransition(gomock.Any(), "inv-1", entities.InvoiceStatusPaid, entities.ActorRoleCustomer, "").
			Return(entities.Invoice{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/status", bytes.NewBufferString(`{"status":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Role", "customer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_CreateMilestone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoiceHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/invoices/:id/milestones", h.CreateMilestone)
		return r
	}

	t.Run("milestones exceeding the total map to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		uc.EXPECT().CreateMilestone(gomock.Any(), "inv-1", "final", int64(60_000), gomock.Any()).
			Return(entities.PaymentMilestone{}, usecase.ErrMilestonesExceedTotal)

		body := `{"description":"final","amount_cents":60000,"due_date":"2026-09-30T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/milestones", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		uc.EXPECT().CreateMilestone(gomock.Any(), "inv-1", "deposit", int64(50_000), gomock.Any()).
			Return(entities.PaymentMilestone{ID: "m-1", InvoiceID: "inv-1", Description: "deposit", AmountCents: 50_000, Status: entities.MilestoneStatusPending}, nil)

		body := `{"description":"deposit","amount_cents":50000,"due_date":"2026-09-30T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/milestones", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "m-1" || resp["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_GetMilestone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoiceHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/milestones/:id", h.GetMilestone)
		return r
	}

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		uc.EXPECT().GetMilestone(gomock.Any(), "m-404").Return(entities.PaymentMilestone{}, usecase.ErrMilestoneNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/milestones/m-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockITransitionUseCase(ctrl))
		r := newRouter(h)

		uc.EXPECT().GetMilestone(gomock.Any(), "m-1").
			Return(entities.PaymentMilestone{ID: "m-1", InvoiceID: "inv-1", AmountCents: 50_000, Status: entities.MilestoneStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/milestones/m-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "m-1" || resp["amount_cents"] != 50000.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_InvoiceHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	transitions := mocks.NewMockITransitionUseCase(ctrl)
	h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl), transitions)

	r := gin.New()
	r.GET("/v1/invoices/:id/history", h.InvoiceHistory)

	transitions.EXPECT().InvoiceHistory(gomock.Any(), "inv-1").Return([]entities.StatusTransitionRecord{
		{EntityKind: entities.EntityKindInvoice, EntityID: "inv-1", PreviousStatus: "sent", NewStatus: "viewed", Actor: entities.ActorRoleCustomer},
		{EntityKind: entities.EntityKindInvoice, EntityID: "inv-1", PreviousStatus: "pending_review", NewStatus: "sent", Actor: entities.ActorRoleAdmin},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp) != 2 || resp[0]["new_status"] != "viewed" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
