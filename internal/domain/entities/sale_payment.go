package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusAprobado PaymentStatus = "aprobado"
	PaymentStatusRechazado   PaymentStatus = "rechazado"
)

// SalePayment is a provider payment recorded against a sale.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI sale_id-index: sale_id
//
// ProviderPayloadRaw keeps the original provider body for audit; ProviderPayload
// is the parsed form, kept for querying and debugging.
type SalePayment struct {
	ID     string        `json:"id"`
	SaleID string        `json:"sale_id"`
	Date   time.Time     `json:"date"`
	Status PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
