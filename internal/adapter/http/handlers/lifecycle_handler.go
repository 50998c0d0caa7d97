package handlers

import (
	"errors"
	request "salon_api/internal/adapter/http/dto/request"
	response "salon_api/internal/adapter/http/dto/response"
	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase"
	"salon_api/pkg"
	"salon_api/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidTransitionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid status payload", http.StatusBadRequest)

// LifecycleHandler exposes the only two routes that change a service detail
// status.
type LifecycleHandler struct {
	usecase usecase.ILifecycleUseCase
	log     logger.Logger
}

func NewLifecycleHandler(uc usecase.ILifecycleUseCase, log logger.Logger) *LifecycleHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &LifecycleHandler{usecase: uc, log: log}
}

// Transition godoc
// @Summary      Change service detail status
// @Description  Applies one edge of the status graph. Pagada records are locked.
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Param        id    path      int                                     true  "Service detail id"
// @Param        body  body      request.ServiceDetailTransitionRequest  true  "Target status"
// @Success      200   {object}  response.ServiceDetailResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /service-details/{id}/status [patch]
func (h *LifecycleHandler) Transition(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		c.JSON(errInvalidServiceDetailID.HTTPStatus, errInvalidServiceDetailID.ToHTTPError())
		return
	}

	var payload request.ServiceDetailTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		if request.HasTagFailure(err, request.TagServiceDetailStatus) {
			appErr := mapLifecycleError(usecase.ErrInvalidTargetStatus)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	target, _ := entities.ParseServiceDetailStatus(payload.Status)
	updated, err := h.usecase.Transition(c.Request.Context(), id, target)
	if err != nil {
		h.log.Info("[lifecycle][handler] transition rejected", "service_detail_id", id, "to", payload.Status, "err", err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceDetail(updated))
}

// ConvertToSale godoc
// @Summary      Convert service detail to sale
// @Description  Moves an En proceso record to Pagada and creates its sale atomically.
// @Tags         lifecycle
// @Produce      json
// @Param        id   path      int  true  "Service detail id"
// @Success      201  {object}  response.ConversionResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-details/{id}/sale [post]
func (h *LifecycleHandler) ConvertToSale(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		c.JSON(errInvalidServiceDetailID.HTTPStatus, errInvalidServiceDetailID.ToHTTPError())
		return
	}

	paid, sale, err := h.usecase.ConvertToSale(c.Request.Context(), id)
	if err != nil {
		h.log.Info("[lifecycle][handler] conversion rejected", "service_detail_id", id, "err", err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromConversion(paid, sale))
}

func mapLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceDetailNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_DETAIL_NOT_FOUND", "Service detail not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecordLocked):
		return pkg.NewDomainErrorSimple("RECORD_LOCKED", "Service detail is locked for data integrity", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Service detail already converted to a sale", http.StatusForbidden)
	case errors.Is(err, usecase.ErrWrongSourceStatus):
		return pkg.NewDomainErrorSimple("WRONG_SOURCE_STATUS", "Service detail must be 'En proceso' to convert", http.StatusForbidden)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTargetStatus):
		return pkg.NewDomainErrorSimple("INVALID_TARGET_STATUS", "Unknown service detail status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Service detail was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
