package handlers

import (
	"encoding/json"
	"errors"
	request "salon_api/internal/adapter/http/dto/request"
	response "salon_api/internal/adapter/http/dto/response"
	"salon_api/internal/usecase"
	"salon_api/pkg"
	"salon_api/pkg/logger"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SalePaymentHandler serves sales and the payments charged against them.

type SalePaymentHandler struct {
	usecase  usecase.ISalePaymentUseCase
	mockMode bool
	log      logger.Logger
}

func NewSalePaymentHandler(uc usecase.ISalePaymentUseCase, mockMode bool, log logger.Logger) *SalePaymentHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &SalePaymentHandler{usecase: uc, mockMode: mockMode, log: log}
}

// GetSale godoc
// @Summary      Get sale
// @Tags         sales
// @Produce      json
// @Param        sale_id  path      string  true  "Sale id"
// @Success      200      {object}  response.SaleResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /sales/{sale_id} [get]
func (h *SalePaymentHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.GetSale(c.Request.Context(), c.Param("sale_id"))
	if err != nil {
		appErr := mapSalePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// GetSaleByServiceDetail godoc
// @Summary      Get the sale of a service detail
// @Tags         sales
// @Produce      json
// @Param        id   path      int  true  "Service detail id"
// @Success      200  {object}  response.SaleResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-details/{id}/sale [get]
func (h *SalePaymentHandler) GetSaleByServiceDetail(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		c.JSON(errInvalidServiceDetailID.HTTPStatus, errInvalidServiceDetailID.ToHTTPError())
		return
	}

	sale, err := h.usecase.GetSaleByServiceDetailID(c.Request.Context(), id)
	if err != nil {
		appErr := mapSalePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// CreatePayment godoc
// @Summary      Charge a sale
// @Description  Sends the provider payload to Mercado Pago with the stored sale total and records the outcome.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        sale_id  path      string                            true   "Sale id"
// @Param        body     body      request.SalePaymentCreateRequest  false  "Provider payload"
// @Success      200      {object}  response.SalePaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /sales/{sale_id}/payments [post]
func (h *SalePaymentHandler) CreatePayment(c *gin.Context) {
	saleID := c.Param("sale_id")
	h.log.Info("[payment][handler] create start", "sale_id", saleID)

	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			h.log.Info("[payment][handler] invalid payload", "sale_id", saleID, "err", err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		h.log.Warn("[payment][handler] payload invalid in mock mode; using empty payload", "sale_id", saleID, "err", err)
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), saleID, payload)
	if err != nil {
		h.log.Warn("[payment][handler] create failed", "sale_id", saleID, "err", err)
		appErr := mapSalePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info("[payment][handler] create success", "sale_id", saleID, "payment_id", created.ID, "status", string(created.Status))

	c.JSON(http.StatusOK, response.FromSalePayment(created))
}

// GetLatestPayment godoc
// @Summary      Latest payment of a sale
// @Tags         sales
// @Produce      json
// @Param        sale_id  path      string  true  "Sale id"
// @Success      200      {object}  response.SalePaymentResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /sales/{sale_id}/payments [get]
func (h *SalePaymentHandler) GetLatestPayment(c *gin.Context) {
	saleID := c.Param("sale_id")

	payments, err := h.usecase.ListBySaleID(c.Request.Context(), saleID)
	if err != nil {
		appErr := mapSalePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(payments) == 0 {
		appErr := mapSalePaymentError(usecase.ErrSalePaymentNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromSalePayment(latest))
}

// readProviderPayload accepts either a bare provider body or one wrapped in
// {"provider_payload": ...} (or the older {"mp_payload": ...}). An empty body
// becomes {}.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, key := range []string{"provider_payload", "mp_payload"} {
			wrapped, ok := envelope[key]
			if !ok {
				continue
			}
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New(key + " cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapSalePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaleAlreadySettled):
		return pkg.NewDomainErrorSimple("SALE_ALREADY_SETTLED", "Sale already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrSalePaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "Another payment for this sale is being processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrSalePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
