package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_terceiros/internal/adapter/http/handlers/mocks"
	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestContractingRequestHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing project code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"coordinator_id":"u-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid budget amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"project_code":"PRJ-1","coordinator_id":"u-1","budgeted":true,"budgeted_amount":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ContractingRequest{}, usecase.ErrUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"project_code":"PRJ-1","coordinator_id":"u-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Submit)

		now := time.Now().UTC()
		uc.EXPECT().Submit(gomock.Any(), usecase.SubmitRequestCommand{
			ProjectCode:    "PRJ-1",
			CoordinatorID:  "u-1",
			Budgeted:       true,
			BudgetedAmount: 1234.56,
		}).Return(entities.ContractingRequest{
			ID:            "req-1",
			ProjectCode:   "PRJ-1",
			CoordinatorID: "u-1",
			Status:        entities.RequestStatusSubmitted,
			CreatedAt:     now,
			UpdatedAt:     now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"project_code":"PRJ-1","coordinator_id":"u-1","budgeted":true,"budgeted_amount":"1.234,56"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "req-1" || body["status"] != string(entities.RequestStatusSubmitted) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestContractingRequestHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "req-404").Return(entities.ContractingRequest{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ContractingRequest{ID: "req-1", Status: entities.RequestStatusSupplyApproved}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "req-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestContractingRequestHandler_ReviewBySupply(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reviewer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/supply-review", h.ReviewBySupply)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/supply-review", bytes.NewBufferString(`{"approve":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejection without justification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/supply-review", h.ReviewBySupply)

		uc.EXPECT().ReviewBySupply(gomock.Any(), "req-1", "sup-1", false, "").Return(entities.ContractingRequest{}, usecase.ErrMissingJustification)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/supply-review", bytes.NewBufferString(`{"reviewer_id":"sup-1","approve":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/supply-review", h.ReviewBySupply)

		uc.EXPECT().ReviewBySupply(gomock.Any(), "req-1", "sup-1", true, "").Return(entities.ContractingRequest{ID: "req-1", Status: entities.RequestStatusSupplyApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/supply-review", bytes.NewBufferString(`{"reviewer_id":"sup-1","approve":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestContractingRequestHandler_DecideSupplier(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid decision value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/supplier-decision", h.DecideSupplier)

		uc.EXPECT().DecideSupplier(gomock.Any(), "req-1", "mgr-1", entities.Decision("talvez"), "").Return(entities.ContractingRequest{}, entities.ErrInvalidDecision)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/supplier-decision", bytes.NewBufferString(`{"actor_id":"mgr-1","decision":"talvez"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stale version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/supplier-decision", h.DecideSupplier)

		uc.EXPECT().DecideSupplier(gomock.Any(), "req-1", "mgr-1", entities.DecisionApproved, "").Return(entities.ContractingRequest{}, usecase.ErrConcurrentUpdate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/supplier-decision", bytes.NewBufferString(`{"actor_id":"mgr-1","decision":"aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/supplier-decision", h.DecideSupplier)

		uc.EXPECT().DecideSupplier(gomock.Any(), "req-1", "mgr-1", entities.DecisionApproved, "").Return(entities.ContractingRequest{ID: "req-1", Status: entities.RequestStatusSupplierApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/supplier-decision", bytes.NewBufferString(`{"actor_id":"mgr-1","decision":"aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestContractingRequestHandler_RenegotiateSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/schedule", h.RenegotiateSchedule)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/schedule", bytes.NewBufferString(`{"actor_id":"mgr-1","start_date":"31/12/2026","end_date":"2027-06-30"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewContractingRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:request_id/schedule", h.RenegotiateSchedule)

		uc.EXPECT().RenegotiateSchedule(gomock.Any(), "req-1", "mgr-1", gomock.Any(), gomock.Any()).
			Return(entities.ContractingRequest{}, &entities.InvalidTransitionError{From: entities.RequestStatusSubmitted, Attempted: entities.RequestStatusContractPlanning})

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/schedule", bytes.NewBufferString(`{"actor_id":"mgr-1","start_date":"2026-09-01","end_date":"2027-06-30"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapLifecycleError(t *testing.T) {
	if got := mapLifecycleError(usecase.ErrInvalidProjectCode); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapLifecycleError(usecase.ErrMissingJustification); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapLifecycleError(usecase.ErrUnauthorized); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapLifecycleError(usecase.ErrRequestNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapLifecycleError(usecase.ErrConcurrentUpdate); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapLifecycleError(entities.ErrAlreadyFinalized); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapLifecycleError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
