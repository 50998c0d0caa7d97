package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"salon_api/internal/adapter/http/dto/request"
	"salon_api/internal/adapter/http/handlers"
	"salon_api/internal/adapter/persistence/memory"
	"salon_api/internal/domain/entities"
	"salon_api/internal/infrastructure/payments"
	"salon_api/internal/usecase"
	"salon_api/pkg/logger"
	"salon_api/pkg/metrics"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeRole = 2

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, request.RegisterValidators())

	log := logger.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("salon", reg)

	store := memory.NewStore()
	dir := memory.NewDirectory()
	dir.PutEmployee(entities.Employee{ID: 7, RoleID: testEmployeeRole})
	dir.PutEmployee(entities.Employee{ID: 8, RoleID: 1})
	dir.PutService(entities.Service{ID: 3})
	dir.PutAppointment(entities.Appointment{ID: 11, ClientID: 42, Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)})
	dir.PutAppointment(entities.Appointment{ID: 12, ClientID: 43, Date: time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)})

	gateway, err := payments.NewMercadoPagoGateway("", true, log)
	require.NoError(t, err)

	detailUC := usecase.NewServiceDetailUseCase(store.ServiceDetails(), dir, usecase.NewStaticRoleResolver([]int64{testEmployeeRole}), log)
	queryUC := usecase.NewServiceDetailQueryUseCase(store.ServiceDetails())
	lifecycleUC := usecase.NewLifecycleUseCase(store.ServiceDetails(), log, m)
	paymentUC := usecase.NewSalePaymentUseCase(store.SalePayments(), store.Sales(), gateway, usecase.SalePaymentOptions{MockMode: true}, log, m)

	return NewRouter(Handlers{
		ServiceDetail: handlers.NewServiceDetailHandler(detailUC, queryUC, log),
		Lifecycle:     handlers.NewLifecycleHandler(lifecycleUC, log),
		SalePayment:   handlers.NewSalePaymentHandler(paymentUC, true, log),
	}, log, m, reg)
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func createDetail(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := call(t, r, http.MethodPost, "/v1/service-details", map[string]any{
		"employee_id":    7,
		"service_id":     3,
		"appointment_id": 11,
		"unit_price":     "25.50",
		"quantity":       2,
		"start_time":     "2026-03-10T14:00:00Z",
		"end_time":       "2026-03-10T15:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Agendada", body["status"])
	assert.Equal(t, "51.00", body["line_total"])
	assert.EqualValues(t, 60, body["duration_minutes"])
	return strconv.FormatInt(int64(body["id"].(float64)), 10)
}

func setStatus(t *testing.T, r *gin.Engine, id, status string) *httptest.ResponseRecorder {
	t.Helper()
	return call(t, r, http.MethodPatch, "/v1/service-details/"+id+"/status", map[string]string{"status": status})
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, http.MethodGet, "/v1/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode(t, w)["message"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpointExposesLifecycleCounters(t *testing.T) {
	r := newTestRouter(t)
	id := createDetail(t, r)
	require.Equal(t, http.StatusOK, setStatus(t, r, id, "Confirmada").Code)

	w := call(t, r, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `salon_service_detail_transitions_total{from="Agendada",to="Confirmada"} 1`)
	assert.Contains(t, w.Body.String(), "salon_http_request_duration_seconds")
}

func TestServiceDetailFullLifecycleToSettledSale(t *testing.T) {
	r := newTestRouter(t)
	id := createDetail(t, r)

	for _, status := range []string{"Confirmada", "En proceso"} {
		w := setStatus(t, r, id, status)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, status, decode(t, w)["status"])
	}

	w := call(t, r, http.MethodPost, "/v1/service-details/"+id+"/sale", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	conv := decode(t, w)
	detail := conv["service_detail"].(map[string]any)
	sale := conv["sale"].(map[string]any)
	assert.Equal(t, "Pagada", detail["status"])
	assert.Equal(t, true, detail["locked"])
	assert.Equal(t, "51.00", sale["total"])
	assert.Equal(t, "pendiente", sale["status"])
	saleID := sale["id"].(string)

	w = call(t, r, http.MethodGet, "/v1/service-details/"+id+"/sale", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, saleID, decode(t, w)["id"])

	w = call(t, r, http.MethodPost, "/v1/sales/"+saleID+"/payments", map[string]any{
		"provider_payload": map[string]any{"payment_method_id": "pix"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "aprobado", decode(t, w)["status"])

	w = call(t, r, http.MethodGet, "/v1/sales/"+saleID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "aprobado", decode(t, w)["status"])

	w = call(t, r, http.MethodGet, "/v1/sales/"+saleID+"/payments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, saleID, decode(t, w)["sale_id"])

	w = call(t, r, http.MethodPost, "/v1/sales/"+saleID+"/payments", map[string]any{})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPaidServiceDetailIsLocked(t *testing.T) {
	r := newTestRouter(t)
	id := createDetail(t, r)
	for _, status := range []string{"Confirmada", "En proceso"} {
		require.Equal(t, http.StatusOK, setStatus(t, r, id, status).Code)
	}
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/v1/service-details/"+id+"/sale", nil).Code)

	w := setStatus(t, r, id, "Cancelada por el cliente")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "RECORD_LOCKED", decode(t, w)["code"])

	w = call(t, r, http.MethodPost, "/v1/service-details/"+id+"/sale", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ALREADY_PAID", decode(t, w)["code"])

	w = call(t, r, http.MethodPatch, "/v1/service-details/"+id, map[string]any{"quantity": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = call(t, r, http.MethodDelete, "/v1/service-details/"+id, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = call(t, r, http.MethodGet, "/v1/service-details/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Pagada", body["status"])
	assert.EqualValues(t, 2, body["quantity"])
}

func TestConcurrentConversionsHaveOneWinner(t *testing.T) {
	r := newTestRouter(t)
	id := createDetail(t, r)
	for _, status := range []string{"Confirmada", "En proceso"} {
		require.Equal(t, http.StatusOK, setStatus(t, r, id, status).Code)
	}

	const racers = 4
	var wg sync.WaitGroup
	codes := make([]int, racers)
	bodies := make([]string, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/v1/service-details/"+id+"/sale", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			codes[i] = w.Code
			bodies[i] = w.Body.String()
		}(i)
	}
	wg.Wait()

	created := 0
	for i, code := range codes {
		if code == http.StatusCreated {
			created++
			continue
		}
		assert.Equal(t, http.StatusForbidden, code, bodies[i])
		assert.Contains(t, bodies[i], "ALREADY_PAID")
	}
	assert.Equal(t, 1, created)
}

func TestConcurrentSalePaymentsChargeOnce(t *testing.T) {
	r := newTestRouter(t)
	id := createDetail(t, r)
	for _, status := range []string{"Confirmada", "En proceso"} {
		require.Equal(t, http.StatusOK, setStatus(t, r, id, status).Code)
	}
	w := call(t, r, http.MethodPost, "/v1/service-details/"+id+"/sale", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	saleID := decode(t, w)["sale"].(map[string]any)["id"].(string)

	const racers = 6
	var wg sync.WaitGroup
	codes := make([]int, racers)
	bodies := make([]string, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/v1/sales/"+saleID+"/payments", strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			codes[i] = w.Code
			bodies[i] = w.Body.String()
		}(i)
	}
	wg.Wait()

	approved := 0
	for i, code := range codes {
		if code == http.StatusOK {
			approved++
			continue
		}
		assert.Equal(t, http.StatusConflict, code, bodies[i])
	}
	assert.Equal(t, 1, approved)

	w = call(t, r, http.MethodGet, "/v1/sales/"+saleID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "aprobado", decode(t, w)["status"])
}

func TestTransitionRejections(t *testing.T) {
	r := newTestRouter(t)
	id := createDetail(t, r)

	w := setStatus(t, r, id, "Finalizada")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ILLEGAL_TRANSITION", decode(t, w)["code"])

	w = setStatus(t, r, id, "Archivada")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TARGET_STATUS", decode(t, w)["code"])

	w = call(t, r, http.MethodPost, "/v1/service-details/"+id+"/sale", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "WRONG_SOURCE_STATUS", decode(t, w)["code"])

	w = setStatus(t, r, "9999", "Confirmada")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(t, r, http.MethodGet, "/v1/service-details/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Agendada", decode(t, w)["status"])
}

func TestCreateRejectsEmployeeWithoutEmployeeRole(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, http.MethodPost, "/v1/service-details", map[string]any{
		"employee_id":    8,
		"service_id":     3,
		"appointment_id": 11,
		"unit_price":     "10",
		"quantity":       1,
		"start_time":     "2026-03-10T14:00:00Z",
		"end_time":       "2026-03-10T14:30:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryByStatusAndEmployee(t *testing.T) {
	r := newTestRouter(t)
	first := createDetail(t, r)
	createDetail(t, r)
	require.Equal(t, http.StatusOK, setStatus(t, r, first, "Confirmada").Code)

	w := call(t, r, http.MethodGet, "/v1/service-details?status=Confirmada", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var confirmed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmed))
	require.Len(t, confirmed, 1)
	assert.Equal(t, first, strconv.FormatInt(int64(confirmed[0]["id"].(float64)), 10))

	w = call(t, r, http.MethodGet, "/v1/service-details?employee_id=7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var byEmployee []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &byEmployee))
	assert.Len(t, byEmployee, 2)

	w = call(t, r, http.MethodGet, "/v1/service-details?status=Desconocido", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, http.MethodGet, "/v1/service-details?from=2026-03-11&to=2026-03-12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(w.Body.String()), "[]"))
}

func TestQueryDateRangeIncludesWholeLastDay(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, http.MethodPost, "/v1/service-details", map[string]any{
		"employee_id":    7,
		"service_id":     3,
		"appointment_id": 12,
		"unit_price":     "30",
		"quantity":       1,
		"start_time":     "2026-03-12T14:00:00Z",
		"end_time":       "2026-03-12T14:45:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "2026-03-12", decode(t, w)["appointment_date"])

	w = call(t, r, http.MethodGet, "/v1/service-details?from=2026-03-11&to=2026-03-12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inRange []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inRange))
	assert.Len(t, inRange, 1)
}

func TestCreateRejectsSubCentUnitPrice(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, http.MethodPost, "/v1/service-details", map[string]any{
		"employee_id":    7,
		"service_id":     3,
		"appointment_id": 11,
		"unit_price":     "10.005",
		"quantity":       1,
		"start_time":     "2026-03-10T14:00:00Z",
		"end_time":       "2026-03-10T14:30:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
