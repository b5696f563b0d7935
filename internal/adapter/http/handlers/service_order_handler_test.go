package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_terceiros/internal/adapter/http/handlers/mocks"
	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceOrderHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("contract without umbrella flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ServiceOrderRequest{}, usecase.ErrNotUmbrellaContract)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"contract_id":"ctr-1","requester_id":"coord-1","title":"Manutencao","value":"250,00"}`))
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
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), usecase.SubmitOrderCommand{
			ContractID:  "ctr-1",
			RequesterID: "coord-1",
			Title:       "Manutencao",
			Value:       250.0,
		}).Return(entities.ServiceOrderRequest{ID: "os-1", ContractID: "ctr-1", Status: entities.ServiceOrderStatusPendingLineLead}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"contract_id":"ctr-1","requester_id":"coord-1","title":"Manutencao","value":"250,00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "os-1" || body["status"] != string(entities.ServiceOrderStatusPendingLineLead) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Steps(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("line lead vote out of order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:order_id/line-lead", h.DecideLineLead)

		uc.EXPECT().DecideLineLead(gomock.Any(), "os-1", "lead-1", entities.DecisionApproved, "").
			Return(entities.ServiceOrderRequest{}, usecase.ErrWrongOrderStep)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/os-1/line-lead", bytes.NewBufferString(`{"actor_id":"lead-1","decision":"aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("attach document missing ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/document", h.AttachDocument)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/os-1/document", bytes.NewBufferString(`{"actor_id":"sup-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("manager approval success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:order_id/manager", h.DecideManager)

		uc.EXPECT().DecideManager(gomock.Any(), "os-1", "mgr-1", entities.DecisionApproved, "").
			Return(entities.ServiceOrderRequest{ID: "os-1", Status: entities.ServiceOrderStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/os-1/manager", bytes.NewBufferString(`{"actor_id":"mgr-1","decision":"aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("materialized order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/order", h.GetOrder)

		uc.EXPECT().GetOrder(gomock.Any(), "os-404").Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/os-404/order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	if got := mapOrderError(usecase.ErrInvalidOrderValue); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrderError(usecase.ErrContractNotActive); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapOrderError(usecase.ErrWrongOrderStep); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
