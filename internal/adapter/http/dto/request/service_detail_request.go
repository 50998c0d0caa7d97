package request

import (
	"errors"
	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidDateParam = errors.New("invalid date parameter")

const dateLayout = "2006-01-02"

// ServiceDetailCreateRequest is the payload sent by the appointment flow when
// a service is added to a booking.
type ServiceDetailCreateRequest struct {
	EmployeeID      int64            `json:"employee_id" binding:"required,gt=0"`
	ServiceID       int64            `json:"service_id" binding:"required,gt=0"`
	AppointmentID   int64            `json:"appointment_id" binding:"required,gt=0"`
	UnitPrice       *decimal.Decimal `json:"unit_price" binding:"required" swaggertype:"number"`
	Quantity        int              `json:"quantity" binding:"required"`
	StartTime       time.Time        `json:"start_time" binding:"required"`
	EndTime         time.Time        `json:"end_time" binding:"required"`
	DurationMinutes int              `json:"duration_minutes"`
}

func (r ServiceDetailCreateRequest) ToInput() usecase.CreateServiceDetailInput {
	in := usecase.CreateServiceDetailInput{
		EmployeeID:      r.EmployeeID,
		ServiceID:       r.ServiceID,
		AppointmentID:   r.AppointmentID,
		Quantity:        r.Quantity,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
	}
	if r.UnitPrice != nil {
		in.UnitPrice = *r.UnitPrice
	}
	return in
}

// ServiceDetailUpdateRequest edits the non-status attributes. Omitted fields
// are left untouched. A "status" key is not part of this payload.
type ServiceDetailUpdateRequest struct {
	EmployeeID      *int64           `json:"employee_id" binding:"omitempty,gt=0"`
	ServiceID       *int64           `json:"service_id" binding:"omitempty,gt=0"`
	UnitPrice       *decimal.Decimal `json:"unit_price" swaggertype:"number"`
	Quantity        *int             `json:"quantity"`
	StartTime       *time.Time       `json:"start_time"`
	EndTime         *time.Time       `json:"end_time"`
	DurationMinutes *int             `json:"duration_minutes"`
}

func (r ServiceDetailUpdateRequest) ToPatch() entities.ServiceDetailPatch {
	return entities.ServiceDetailPatch{
		EmployeeID:      r.EmployeeID,
		ServiceID:       r.ServiceID,
		UnitPrice:       r.UnitPrice,
		Quantity:        r.Quantity,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
	}
}

// ServiceDetailTransitionRequest asks the lifecycle to move a record to Status.
type ServiceDetailTransitionRequest struct {
	Status string `json:"status" binding:"required,servicedetailstatus" example:"Confirmada"`
}

// ServiceDetailQuery is bound from the query string of the list endpoint.
type ServiceDetailQuery struct {
	Status     string `form:"status"`
	EmployeeID int64  `form:"employee_id" binding:"omitempty,gt=0"`
	ClientID   int64  `form:"client_id" binding:"omitempty,gt=0"`
	From       string `form:"from"`
	To         string `form:"to"`
}

// ToFilter converts the query into a filter. Dates use YYYY-MM-DD and are
// compared against the appointment date. An unknown status is reported as
// usecase.ErrInvalidTargetStatus.
func (q ServiceDetailQuery) ToFilter() (entities.ServiceDetailFilter, error) {
	var f entities.ServiceDetailFilter
	if strings.TrimSpace(q.Status) != "" {
		status, ok := entities.ParseServiceDetailStatus(q.Status)
		if !ok {
			return f, usecase.ErrInvalidTargetStatus
		}
		f.Status = status
	}
	f.EmployeeID = q.EmployeeID
	f.ClientID = q.ClientID

	from, err := parseDate(q.From)
	if err != nil {
		return f, err
	}
	to, err := parseDate(q.To)
	if err != nil {
		return f, err
	}
	f.From, f.To = from, to
	return f, nil
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, ErrInvalidDateParam
	}
	return &t, nil
}

// ParseID reads a positive integer path parameter.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
