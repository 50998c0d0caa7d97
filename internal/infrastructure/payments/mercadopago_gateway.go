package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"salon_api/internal/usecase/interfaces"
	"salon_api/pkg/logger"
	"strconv"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const mockStatus = "approved"

// MercadoPagoGateway charges sales through the Mercado Pago payments API.
// In mock mode it never leaves the process and approves every request.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      logger.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool, log logger.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = logger.NewNop()
	}
	now := func() time.Time { return time.Now().UTC() }

	if mockMode {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log, now: now}, nil
	}

	if accessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", "err", err)
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log, now: now}, nil
}

// Charge sends request as a Mercado Pago payment.Request. The provider id is
// rendered as a decimal string.
func (g *MercadoPagoGateway) Charge(ctx context.Context, request json.RawMessage) (interfaces.ChargeResult, error) {
	if g != nil && g.mockMode {
		return g.mockCharge(request)
	}
	if g == nil || g.client == nil {
		return interfaces.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Info("[payment][gateway] charge start", "payload_len", len(request))

	var req payment.Request
	if err := json.Unmarshal(request, &req); err != nil {
		g.log.Error("[payment][gateway] payload unmarshal failed", "err", err)
		return interfaces.ChargeResult{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("[payment][gateway] sdk create failed", "err", err)
		return interfaces.ChargeResult{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("[payment][gateway] response marshal failed", "err", err)
		return interfaces.ChargeResult{}, err
	}
	g.log.Info("[payment][gateway] charge done", "provider_payment_id", resp.ID, "provider_status", resp.Status)

	return interfaces.ChargeResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		ProviderStatus:    resp.Status,
		Response:          raw,
	}, nil
}

// mockCharge echoes the request back as an approved, accredited payment.
func (g *MercadoPagoGateway) mockCharge(request json.RawMessage) (interfaces.ChargeResult, error) {
	body := map[string]any{}
	if len(request) > 0 && json.Valid(request) {
		if err := json.Unmarshal(request, &body); err != nil {
			body = map[string]any{"request_payload_raw": string(request)}
		}
	}
	if body == nil {
		body = map[string]any{}
	}

	now := g.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	body["id"] = id
	body["status"] = mockStatus
	body["status_detail"] = "accredited"
	for _, key := range []string{"date_created", "date_approved"} {
		if _, ok := body[key]; !ok {
			body[key] = stamp
		}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		g.log.Error("[payment][gateway] mock response marshal failed", "err", err)
		return interfaces.ChargeResult{}, err
	}
	g.log.Info("[payment][gateway] mock charge approved", "provider_payment_id", id)
	return interfaces.ChargeResult{ProviderPaymentID: id, ProviderStatus: mockStatus, Response: raw}, nil
}
