package response

import (
	"salon_api/internal/domain/entities"
	"time"
)

type ServiceDetailResponse struct {
	ID              int64     `json:"id"`
	EmployeeID      int64     `json:"employee_id"`
	ServiceID       int64     `json:"service_id"`
	AppointmentID   int64     `json:"appointment_id"`
	ClientID        int64     `json:"client_id"`
	AppointmentDate string    `json:"appointment_date"`
	UnitPrice       string    `json:"unit_price"`
	Quantity        int       `json:"quantity"`
	LineTotal       string    `json:"line_total"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Locked          bool      `json:"locked"`
	NextStatuses    []string  `json:"next_statuses"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromServiceDetail(d entities.ServiceDetail) ServiceDetailResponse {
	next := make([]string, 0)
	for _, s := range d.Status.NextStatuses() {
		next = append(next, string(s))
	}
	return ServiceDetailResponse{
		ID:              d.ID,
		EmployeeID:      d.EmployeeID,
		ServiceID:       d.ServiceID,
		AppointmentID:   d.AppointmentID,
		ClientID:        d.ClientID,
		AppointmentDate: d.AppointmentDate.Format("2006-01-02"),
		UnitPrice:       d.UnitPrice.StringFixed(2),
		Quantity:        d.Quantity,
		LineTotal:       d.LineTotal().StringFixed(2),
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		DurationMinutes: d.DurationMinutes,
		Status:          string(d.Status),
		Locked:          d.IsLocked(),
		NextStatuses:    next,
		Version:         d.Version,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func FromServiceDetails(items []entities.ServiceDetail) []ServiceDetailResponse {
	out := make([]ServiceDetailResponse, 0, len(items))
	for _, d := range items {
		out = append(out, FromServiceDetail(d))
	}
	return out
}

// ConversionResponse is returned by the convert-to-sale route.
type ConversionResponse struct {
	ServiceDetail ServiceDetailResponse `json:"service_detail"`
	Sale          SaleResponse          `json:"sale"`
}

func FromConversion(d entities.ServiceDetail, s entities.Sale) ConversionResponse {
	return ConversionResponse{
		ServiceDetail: FromServiceDetail(d),
		Sale:          FromSale(s),
	}
}
