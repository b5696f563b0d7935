package handlers

import (
	"bytes"
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

func TestScreeningHandler_Screen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScreeningUseCase(ctrl)
		h := NewScreeningHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/screening", h.Screen)

		uc.EXPECT().Screen(gomock.Any(), "req-1", "sup-1", gomock.Any()).
			Return(entities.ContractingRequest{}, usecase.ErrUnknownSupplier)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/screening", bytes.NewBufferString(`{"actor_id":"sup-1","candidates":[{"supplier_id":"forn-x","amount":"100"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("invalid candidate amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScreeningUseCase(ctrl)
		h := NewScreeningHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/screening", h.Screen)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/screening", bytes.NewBufferString(`{"actor_id":"sup-1","candidates":[{"supplier_id":"forn-1","amount":"abc"}]}`))
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
		uc := mocks.NewMockIScreeningUseCase(ctrl)
		h := NewScreeningHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/screening", h.Screen)

		uc.EXPECT().Screen(gomock.Any(), "req-1", "sup-1", []usecase.CandidateInput{{SupplierID: "forn-1", Amount: 100}}).
			Return(entities.ContractingRequest{ID: "req-1", Status: entities.RequestStatusScreeningComplete}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/screening", bytes.NewBufferString(`{"actor_id":"sup-1","candidates":[{"supplier_id":"forn-1","amount":"100"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestScreeningHandler_SelectSupplier(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing justification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScreeningUseCase(ctrl)
		h := NewScreeningHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/selection", h.SelectSupplier)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/selection", bytes.NewBufferString(`{"actor_id":"coord-1","supplier_id":"forn-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("supplier not screened in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScreeningUseCase(ctrl)
		h := NewScreeningHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/selection", h.SelectSupplier)

		uc.EXPECT().SelectSupplier(gomock.Any(), "req-1", "coord-1", "forn-9", "preco").
			Return(entities.ContractingRequest{}, usecase.ErrNotAmongCandidates)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/selection", bytes.NewBufferString(`{"actor_id":"coord-1","supplier_id":"forn-9","justification":"preco"}`))
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
		uc := mocks.NewMockIScreeningUseCase(ctrl)
		h := NewScreeningHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/selection", h.SelectSupplier)

		uc.EXPECT().SelectSupplier(gomock.Any(), "req-1", "coord-1", "forn-1", "melhor proposta").
			Return(entities.ContractingRequest{ID: "req-1", Status: entities.RequestStatusSupplierSelected}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/selection", bytes.NewBufferString(`{"actor_id":"coord-1","supplier_id":"forn-1","justification":"melhor proposta"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapScreeningError(t *testing.T) {
	if got := mapScreeningError(usecase.ErrEmptyCandidateSet); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapScreeningError(usecase.ErrUnknownSupplier); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapScreeningError(usecase.ErrProposalNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapScreeningError(usecase.ErrConcurrentUpdate); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapScreeningError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
