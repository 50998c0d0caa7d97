package handlers

import (
	"errors"
	request "salon_api/internal/adapter/http/dto/request"
	response "salon_api/internal/adapter/http/dto/response"
	"salon_api/internal/usecase"
	"salon_api/pkg"
	"salon_api/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServiceDetailPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_DETAIL_INPUT", "Invalid service detail payload", http.StatusBadRequest)
	errInvalidServiceDetailID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid service detail id", http.StatusBadRequest)
)

// ServiceDetailHandler serves the service detail resource: CRUD used by the
// appointment flow plus the reporting query.
//
// Status is never written here; see LifecycleHandler.

type ServiceDetailHandler struct {
	usecase usecase.IServiceDetailUseCase
	query   usecase.IServiceDetailQueryUseCase
	log     logger.Logger
}

func NewServiceDetailHandler(uc usecase.IServiceDetailUseCase, query usecase.IServiceDetailQueryUseCase, log logger.Logger) *ServiceDetailHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &ServiceDetailHandler{usecase: uc, query: query, log: log}
}

// Create godoc
// @Summary      Create service detail
// @Description  Adds a service line to an appointment. Status starts at Agendada.
// @Tags         service-details
// @Accept       json
// @Produce      json
// @Param        body  body      request.ServiceDetailCreateRequest  true  "Service detail"
// @Success      201   {object}  response.ServiceDetailResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /service-details [post]
func (h *ServiceDetailHandler) Create(c *gin.Context) {
	var payload request.ServiceDetailCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[service-detail][handler] invalid create payload", "err", err)
		c.JSON(errInvalidServiceDetailPayload.HTTPStatus, errInvalidServiceDetailPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapServiceDetailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceDetail(created))
}

// Get godoc
// @Summary      Get service detail
// @Tags         service-details
// @Produce      json
// @Param        id   path      int  true  "Service detail id"
// @Success      200  {object}  response.ServiceDetailResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-details/{id} [get]
func (h *ServiceDetailHandler) Get(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		c.JSON(errInvalidServiceDetailID.HTTPStatus, errInvalidServiceDetailID.ToHTTPError())
		return
	}

	d, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceDetailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceDetail(d))
}

// Update godoc
// @Summary      Update service detail
// @Description  Edits price, quantity, time window, duration, employee or service. Paid records are locked.
// @Tags         service-details
// @Accept       json
// @Produce      json
// @Param        id    path      int                                 true  "Service detail id"
// @Param        body  body      request.ServiceDetailUpdateRequest  true  "Fields to change"
// @Success      200   {object}  response.ServiceDetailResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /service-details/{id} [patch]
func (h *ServiceDetailHandler) Update(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		c.JSON(errInvalidServiceDetailID.HTTPStatus, errInvalidServiceDetailID.ToHTTPError())
		return
	}

	var payload request.ServiceDetailUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceDetailPayload.HTTPStatus, errInvalidServiceDetailPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateDetails(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		appErr := mapServiceDetailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceDetail(updated))
}

// Delete godoc
// @Summary      Delete service detail
// @Tags         service-details
// @Param        id   path  int  true  "Service detail id"
// @Success      204
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-details/{id} [delete]
func (h *ServiceDetailHandler) Delete(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		c.JSON(errInvalidServiceDetailID.HTTPStatus, errInvalidServiceDetailID.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapServiceDetailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary      Query service details
// @Description  At most one of status, employee_id or client_id, optionally with an inclusive appointment date range (YYYY-MM-DD).
// @Tags         service-details
// @Produce      json
// @Param        status       query     string  false  "Status"
// @Param        employee_id  query     int     false  "Employee id"
// @Param        client_id    query     int     false  "Client id"
// @Param        from         query     string  false  "First appointment date"
// @Param        to           query     string  false  "Last appointment date"
// @Success      200          {array}   response.ServiceDetailResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /service-details [get]
func (h *ServiceDetailHandler) List(c *gin.Context) {
	var q request.ServiceDetailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid service detail filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filter, err := q.ToFilter()
	if err != nil {
		appErr := mapServiceDetailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.query.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapServiceDetailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceDetails(items))
}

func mapServiceDetailError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTargetStatus):
		return pkg.NewDomainErrorSimple("INVALID_TARGET_STATUS", "Unknown service detail status", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidDateParam), errors.Is(err, usecase.ErrInvalidFilter):
		return pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid service detail filter", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceDetailNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_DETAIL_NOT_FOUND", "Service detail not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecordLocked):
		return pkg.NewDomainErrorSimple("RECORD_LOCKED", "Service detail is locked for data integrity", http.StatusForbidden)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Service detail was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
