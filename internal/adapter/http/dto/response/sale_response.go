package response

import (
	"salon_api/internal/domain/entities"
	"time"
)

type SaleResponse struct {
	ID              string    `json:"id"`
	ServiceDetailID int64     `json:"service_detail_id"`
	ClientID        int64     `json:"client_id"`
	EmployeeID      int64     `json:"employee_id"`
	Quantity        int       `json:"quantity"`
	UnitPrice       string    `json:"unit_price"`
	Total           string    `json:"total"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:              s.ID,
		ServiceDetailID: s.ServiceDetailID,
		ClientID:        s.ClientID,
		EmployeeID:      s.EmployeeID,
		Quantity:        s.Quantity,
		UnitPrice:       s.UnitPrice.StringFixed(2),
		Total:           s.Total.StringFixed(2),
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

type SalePaymentResponse struct {
	ID     string    `json:"id"`
	SaleID string    `json:"sale_id"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromSalePayment(p entities.SalePayment) SalePaymentResponse {
	return SalePaymentResponse{
		ID:                 p.ID,
		SaleID:             p.SaleID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
