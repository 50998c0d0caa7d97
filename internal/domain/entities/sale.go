package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus represents the settlement state of a sale (venta).
//
// A sale is born "pendiente" when a service detail is converted. A charge
// attempt first claims it as "procesando"; an approved payment settles it as
// "aprobado", any other outcome hands it back as "pendiente".

type SaleStatus string

const (
	SaleStatusPendiente  SaleStatus = "pendiente"
	SaleStatusProcesando SaleStatus = "procesando"
	SaleStatusAprobado   SaleStatus = "aprobado"
)

// Sale is the billing record produced by converting a service detail.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI service_detail_id-index: service_detail_id
//
// Exactly one sale exists per service detail; it is written in the same
// transaction that moves the service detail to Pagada.
type Sale struct {
	ID              string          `json:"id"`
	ServiceDetailID int64           `json:"service_detail_id"`
	ClientID        int64           `json:"client_id"`
	EmployeeID      int64           `json:"employee_id"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Total           decimal.Decimal `json:"total"`
	Status          SaleStatus      `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
