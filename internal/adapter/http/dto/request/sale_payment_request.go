package request

// SalePaymentCreateRequest documents the body of the payment route. The
// provider payload is stored as-is, so the handler reads the raw body instead
// of binding this type.
type SalePaymentCreateRequest struct {
	ProviderPayload map[string]interface{} `json:"provider_payload"`
}
