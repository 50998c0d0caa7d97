package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"salon_api/internal/adapter/http/handlers/mocks"
	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newLifecycleRouter(t *testing.T) (*gin.Engine, *mocks.MockILifecycleUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILifecycleUseCase(ctrl)
	h := NewLifecycleHandler(uc, nil)

	r := gin.New()
	r.PATCH("/v1/service-details/:id/status", h.Transition)
	r.POST("/v1/service-details/:id/sale", h.ConvertToSale)
	return r, uc
}

func TestLifecycleHandler_Transition(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		r, _ := newLifecycleRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/service-details/x/status", `{"status":"Confirmada"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		r, _ := newLifecycleRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/service-details/5/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INVALID_REQUEST" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown status never reaches the usecase", func(t *testing.T) {
		r, _ := newLifecycleRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/service-details/5/status", `{"status":"Paid"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INVALID_TARGET_STATUS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().Transition(gomock.Any(), int64(5), entities.ServiceDetailStatusConfirmada).
			Return(sampleDetail(5, entities.ServiceDetailStatusConfirmada), nil)

		w := doJSON(r, http.MethodPatch, "/v1/service-details/5/status", `{"status":"Confirmada"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["status"] != "Confirmada" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("locked", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().Transition(gomock.Any(), int64(5), entities.ServiceDetailStatusFinalizada).
			Return(entities.ServiceDetail{}, fmt.Errorf("%w: status %q is terminal", usecase.ErrRecordLocked, "Pagada"))

		w := doJSON(r, http.MethodPatch, "/v1/service-details/5/status", `{"status":"Finalizada"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("illegal", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().Transition(gomock.Any(), int64(5), entities.ServiceDetailStatusPagada).
			Return(entities.ServiceDetail{}, usecase.ErrIllegalTransition)

		w := doJSON(r, http.MethodPatch, "/v1/service-details/5/status", `{"status":"Pagada"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "ILLEGAL_TRANSITION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestLifecycleHandler_ConvertToSale(t *testing.T) {
	t.Run("wrong source status", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().ConvertToSale(gomock.Any(), int64(5)).
			Return(entities.ServiceDetail{}, entities.Sale{}, usecase.ErrWrongSourceStatus)

		w := doJSON(r, http.MethodPost, "/v1/service-details/5/sale", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "WRONG_SOURCE_STATUS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("already paid", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		uc.EXPECT().ConvertToSale(gomock.Any(), int64(5)).
			Return(entities.ServiceDetail{}, entities.Sale{}, usecase.ErrAlreadyPaid)

		w := doJSON(r, http.MethodPost, "/v1/service-details/5/sale", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "ALREADY_PAID" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success embeds sale", func(t *testing.T) {
		r, uc := newLifecycleRouter(t)
		paid := sampleDetail(5, entities.ServiceDetailStatusPagada)
		sale := entities.Sale{
			ID:              "sale-1",
			ServiceDetailID: 5,
			Quantity:        2,
			UnitPrice:       decimal.RequireFromString("25"),
			Total:           decimal.RequireFromString("50"),
			Status:          entities.SaleStatusPendiente,
			CreatedAt:       time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		}
		uc.EXPECT().ConvertToSale(gomock.Any(), int64(5)).Return(paid, sale, nil)

		w := doJSON(r, http.MethodPost, "/v1/service-details/5/sale", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		detail, _ := body["service_detail"].(map[string]any)
		s, _ := body["sale"].(map[string]any)
		if detail["status"] != "Pagada" || detail["locked"] != true {
			t.Fatalf("unexpected service detail: %s", w.Body.String())
		}
		if s["id"] != "sale-1" || s["total"] != "50.00" {
			t.Fatalf("unexpected sale: %s", w.Body.String())
		}
	})
}

func TestMapLifecycleError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrServiceDetailNotFound, http.StatusNotFound},
		{usecase.ErrRecordLocked, http.StatusForbidden},
		{usecase.ErrAlreadyPaid, http.StatusForbidden},
		{usecase.ErrWrongSourceStatus, http.StatusForbidden},
		{usecase.ErrIllegalTransition, http.StatusBadRequest},
		{usecase.ErrInvalidTargetStatus, http.StatusBadRequest},
		{usecase.ErrConcurrentModification, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapLifecycleError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
