package interfaces

import (
	"context"
	"encoding/json"
)

// ChargeResult is the provider's answer to one charge attempt. Response is the
// provider body as received and is stored on the sale payment.
type ChargeResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	Response          json.RawMessage
}

// IPaymentGateway charges a sale with an external provider (Mercado Pago).
type IPaymentGateway interface {
	Charge(ctx context.Context, request json.RawMessage) (ChargeResult, error)
}
