package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"
	"salon_api/pkg/logger"
	"salon_api/pkg/metrics"
	"strings"
	"time"
)

var (
	ErrSaleNotFound                   = errors.New("sale not found")
	ErrSalePaymentNotFound            = errors.New("sale payment not found")
	ErrSaleAlreadySettled             = errors.New("sale already settled")
	ErrSalePaymentInProgress          = errors.New("sale payment already in progress")
	ErrInvalidSaleID                  = errors.New("invalid sale_id")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// SalePaymentOptions tunes payload handling for the payment provider.
//
// When MockMode is on the gateway never reaches the provider, so the provider
// specific payload requirements (payment method and payer) are not enforced.
type SalePaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// ISalePaymentUseCase charges a converted sale and keeps the provider trail.

type ISalePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, saleID string, providerPayload json.RawMessage) (entities.SalePayment, error)
	GetSale(ctx context.Context, saleID string) (entities.Sale, error)
	GetSaleByServiceDetailID(ctx context.Context, serviceDetailID int64) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.SalePayment, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.SalePayment, error)
}

type SalePaymentUseCase struct {
	repo     interfaces.ISalePaymentRepository
	saleRepo interfaces.ISaleRepository
	gateway  interfaces.IPaymentGateway
	opts     SalePaymentOptions
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

var _ ISalePaymentUseCase = (*SalePaymentUseCase)(nil)

func NewSalePaymentUseCase(
	repo interfaces.ISalePaymentRepository,
	saleRepo interfaces.ISaleRepository,
	gateway interfaces.IPaymentGateway,
	opts SalePaymentOptions,
	log logger.Logger,
	m *metrics.Metrics,
) *SalePaymentUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &SalePaymentUseCase{
		repo:     repo,
		saleRepo: saleRepo,
		gateway:  gateway,
		opts:     opts,
		log:      log,
		metrics:  m,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *SalePaymentUseCase) CreateAndApprove(ctx context.Context, saleID string, providerPayload json.RawMessage) (entities.SalePayment, error) {
	u.log.Info("[payment][usecase] create-and-approve start", "raw_sale_id", saleID, "payload_len", len(providerPayload))
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return entities.SalePayment{}, ErrInvalidSaleID
	}
	log := u.log.With("sale_id", saleID)

	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !u.opts.MockMode {
			log.Info("[payment][usecase] invalid payload")
			return entities.SalePayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Error("[payment][usecase] gateway not configured")
		return entities.SalePayment{}, errors.New("payment gateway not configured")
	}
	if u.saleRepo == nil {
		log.Error("[payment][usecase] sale repository not configured")
		return entities.SalePayment{}, errors.New("sale repository not configured")
	}

	sale, err := u.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		log.Error("[payment][usecase] failed loading sale", "err", err)
		return entities.SalePayment{}, err
	}
	if sale.ID == "" {
		log.Info("[payment][usecase] sale not found")
		return entities.SalePayment{}, ErrSaleNotFound
	}
	if sale.Status == entities.SaleStatusAprobado {
		log.Info("[payment][usecase] sale already settled")
		return entities.SalePayment{}, ErrSaleAlreadySettled
	}
	existing, err := u.repo.ListBySaleID(ctx, sale.ID)
	if err != nil {
		log.Error("[payment][usecase] failed listing sale payments", "err", err)
		return entities.SalePayment{}, err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusAprobado {
			log.Warn("[payment][usecase] approved payment already recorded; repairing sale status", "payment_id", p.ID)
			if _, err := u.saleRepo.UpdateStatus(ctx, sale.ID, sale.Status, entities.SaleStatusAprobado); err != nil {
				log.Error("[payment][usecase] failed settling sale", "err", err)
			}
			return entities.SalePayment{}, ErrSaleAlreadySettled
		}
	}
	if sale.Status == entities.SaleStatusProcesando {
		log.Info("[payment][usecase] another charge holds the sale")
		return entities.SalePayment{}, ErrSalePaymentInProgress
	}
	log.Info("[payment][usecase] sale loaded", "status", string(sale.Status), "total", sale.Total.String())

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		log.Info("[payment][usecase] payload is not a json object", "err", err)
		return entities.SalePayment{}, ErrInvalidProviderPayload
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("[payment][usecase] missing payment_method_id")
			return entities.SalePayment{}, ErrInvalidProviderPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("[payment][usecase] missing/invalid payer")
			return entities.SalePayment{}, ErrInvalidProviderPayload
		}
	}

	// The provider uses external_reference to reconcile events with our sale.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = sale.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Sale %s", sale.ID)
	}
	// The source of truth for amount is the stored sale.
	reqMap["transaction_amount"] = sale.Total.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.SalePayment{}, err
	}

	if err := u.claim(ctx, sale.ID); err != nil {
		log.Info("[payment][usecase] claim rejected", "err", err)
		return entities.SalePayment{}, err
	}

	log.Info("[payment][usecase] calling payment gateway")
	charge, err := u.gateway.Charge(ctx, enriched)
	if err != nil {
		log.Error("[payment][usecase] payment gateway failed", "err", err)
		u.release(ctx, log, sale.ID)
		return entities.SalePayment{}, classifyGatewayError(err)
	}
	log.Info("[payment][usecase] payment gateway success", "provider_payment_id", charge.ProviderPaymentID, "provider_status", charge.ProviderStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(charge.Response, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", "err", err)
	}

	p := entities.SalePayment{
		ID:                 charge.ProviderPaymentID,
		SaleID:             sale.ID,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(charge.ProviderStatus),
		ProviderPayloadRaw: charge.Response,
		ProviderPayload:    parsed,
	}
	approved := p.Status == entities.PaymentStatusAprobado

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", "payment_id", p.ID, "err", err)
		// Money already moved on an approved charge: settle so it is never charged again.
		if approved {
			u.settle(ctx, log, sale.ID)
		} else {
			u.release(ctx, log, sale.ID)
		}
		return entities.SalePayment{}, err
	}

	if approved {
		u.settle(ctx, log, sale.ID)
		if u.metrics != nil {
			u.metrics.PaymentsApproved.Inc()
		}
	} else {
		u.release(ctx, log, sale.ID)
	}
	log.Info("[payment][usecase] create-and-approve success", "payment_id", created.ID, "status", string(created.Status))
	return created, nil
}

// claim moves the sale from pendiente to procesando. Only one caller can win
// it; the others see the state the winner left behind.
func (u *SalePaymentUseCase) claim(ctx context.Context, saleID string) error {
	_, err := u.saleRepo.UpdateStatus(ctx, saleID, entities.SaleStatusPendiente, entities.SaleStatusProcesando)
	if err == nil {
		return nil
	}
	if !errors.Is(err, interfaces.ErrVersionConflict) {
		return err
	}
	current, err := u.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return err
	}
	switch current.Status {
	case "":
		return ErrSaleNotFound
	case entities.SaleStatusAprobado:
		return ErrSaleAlreadySettled
	default:
		return ErrSalePaymentInProgress
	}
}

func (u *SalePaymentUseCase) settle(ctx context.Context, log logger.Logger, saleID string) {
	if _, err := u.saleRepo.UpdateStatus(ctx, saleID, entities.SaleStatusProcesando, entities.SaleStatusAprobado); err != nil {
		// The approved payment row lets the next attempt repair the sale.
		log.Error("[payment][usecase] failed settling sale", "err", err)
	}
}

func (u *SalePaymentUseCase) release(ctx context.Context, log logger.Logger, saleID string) {
	if _, err := u.saleRepo.UpdateStatus(ctx, saleID, entities.SaleStatusProcesando, entities.SaleStatusPendiente); err != nil {
		log.Error("[payment][usecase] failed releasing sale claim", "err", err)
	}
}

func (u *SalePaymentUseCase) GetSale(ctx context.Context, saleID string) (entities.Sale, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	s, err := u.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

func (u *SalePaymentUseCase) GetSaleByServiceDetailID(ctx context.Context, serviceDetailID int64) (entities.Sale, error) {
	if serviceDetailID <= 0 {
		return entities.Sale{}, ErrInvalidServiceDetailID
	}
	s, err := u.saleRepo.GetByServiceDetailID(ctx, serviceDetailID)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

func (u *SalePaymentUseCase) GetByID(ctx context.Context, id string) (entities.SalePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SalePayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SalePayment{}, err
	}
	if p.ID == "" {
		return entities.SalePayment{}, ErrSalePaymentNotFound
	}
	return p, nil
}

func (u *SalePaymentUseCase) ListBySaleID(ctx context.Context, saleID string) ([]entities.SalePayment, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return nil, ErrInvalidSaleID
	}
	return u.repo.ListBySaleID(ctx, saleID)
}

func (u *SalePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *SalePaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(u.opts.TestPayerUserID)
	configuredEmail := strings.TrimSpace(u.opts.TestPayerEmail)
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	u.log.Info("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprobado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRechazado
	default:
		return entities.PaymentStatusPendiente
	}
}

// classifyGatewayError maps provider error bodies onto sentinel errors.
// Unknown errors are returned unchanged.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
