package sqlstore

import (
	"encoding/json"
	"testing"
	"time"

	"salon_api/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestServiceDetailModel_RoundTrip(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	d := entities.ServiceDetail{
		ID:              9,
		EmployeeID:      7,
		ServiceID:       3,
		AppointmentID:   11,
		ClientID:        42,
		AppointmentDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		UnitPrice:       decimal.RequireFromString("19.90"),
		Quantity:        1,
		StartTime:       start,
		EndTime:         start.Add(30 * time.Minute),
		DurationMinutes: 30,
		Status:          entities.ServiceDetailStatusFinalizada,
		Version:         4,
		CreatedAt:       start,
		UpdatedAt:       start,
	}

	m := toServiceDetailModel(d)
	assert.Equal(t, "Finalizada", m.Status)
	assert.Equal(t, "service_details", m.TableName())
	assert.Equal(t, d, m.toEntity())
}

func TestSaleModel_RoundTrip(t *testing.T) {
	s := entities.Sale{
		ID:              "sale-1",
		ServiceDetailID: 9,
		ClientID:        42,
		EmployeeID:      7,
		Quantity:        2,
		UnitPrice:       decimal.RequireFromString("10"),
		Total:           decimal.RequireFromString("20"),
		Status:          entities.SaleStatusPendiente,
		CreatedAt:       time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, s, toSaleModel(s).toEntity())
}

func TestSalePaymentModel_Payload(t *testing.T) {
	t.Run("object payload is parsed", func(t *testing.T) {
		p := entities.SalePayment{
			ID:                 "p1",
			SaleID:             "sale-1",
			Date:               time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
			Status:             entities.PaymentStatusAprobado,
			ProviderPayloadRaw: json.RawMessage(`{"id":"mp-1","status":"approved"}`),
		}
		got := toSalePaymentModel(p).toEntity()
		assert.JSONEq(t, `{"id":"mp-1","status":"approved"}`, string(got.ProviderPayloadRaw))
		assert.Equal(t, "approved", got.ProviderPayload["status"])
	})

	t.Run("non object payload stays raw", func(t *testing.T) {
		got := salePaymentModel{ID: "p2", ProviderPayload: []byte(`"plain"`)}.toEntity()
		assert.Equal(t, `"plain"`, string(got.ProviderPayloadRaw))
		assert.Nil(t, got.ProviderPayload)
	})

	t.Run("empty payload", func(t *testing.T) {
		got := salePaymentModel{ID: "p3"}.toEntity()
		assert.Nil(t, got.ProviderPayloadRaw)
		assert.Nil(t, got.ProviderPayload)
	})
}
