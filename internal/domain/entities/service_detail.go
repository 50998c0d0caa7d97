package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceDetail is one rendered line item (service or product) inside a client
// appointment ("servicio cliente").
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - GSI status-index: status / start_time
//   - GSI employee_id-index: employee_id / start_time
//   - GSI client_id-index: client_id / start_time
//
// Version increases on every write and guards all conditional updates.
// Status is only written by the lifecycle use case.
type ServiceDetail struct {
	ID              int64               `json:"id"`
	EmployeeID      int64               `json:"employee_id"`
	ServiceID       int64               `json:"service_id"`
	AppointmentID   int64               `json:"appointment_id"`
	ClientID        int64               `json:"client_id"`
	AppointmentDate time.Time           `json:"appointment_date"`
	UnitPrice       decimal.Decimal     `json:"unit_price"`
	Quantity        int                 `json:"quantity"`
	StartTime       time.Time           `json:"start_time"`
	EndTime         time.Time           `json:"end_time"`
	DurationMinutes int                 `json:"duration_minutes"`
	Status          ServiceDetailStatus `json:"status"`
	Version         int64               `json:"version"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// Exists reports whether the value was loaded from storage.
func (d ServiceDetail) Exists() bool {
	return d.ID != 0
}

// IsLocked reports whether the record can no longer change.
func (d ServiceDetail) IsLocked() bool {
	return d.Status == ServiceDetailStatusPagada
}

// LineTotal is unit price times quantity.
func (d ServiceDetail) LineTotal() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// ValidTimeWindow reports whether end is strictly after start.
func (d ServiceDetail) ValidTimeWindow() bool {
	return d.EndTime.After(d.StartTime)
}

// ServiceDetailPatch carries the editable, non-status attributes of a service
// detail. Nil fields are left untouched.
type ServiceDetailPatch struct {
	EmployeeID      *int64
	ServiceID       *int64
	UnitPrice       *decimal.Decimal
	Quantity        *int
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes *int
}

// IsEmpty reports whether the patch changes nothing.
func (p ServiceDetailPatch) IsEmpty() bool {
	return p.EmployeeID == nil && p.ServiceID == nil && p.UnitPrice == nil && p.Quantity == nil &&
		p.StartTime == nil && p.EndTime == nil && p.DurationMinutes == nil
}

// TouchesTimeWindow reports whether the patch changes start or end time.
func (p ServiceDetailPatch) TouchesTimeWindow() bool {
	return p.StartTime != nil || p.EndTime != nil
}

// Apply returns a copy of d with the patch merged in. Status, identity and
// version are never affected.
func (p ServiceDetailPatch) Apply(d ServiceDetail) ServiceDetail {
	if p.EmployeeID != nil {
		d.EmployeeID = *p.EmployeeID
	}
	if p.ServiceID != nil {
		d.ServiceID = *p.ServiceID
	}
	if p.UnitPrice != nil {
		d.UnitPrice = *p.UnitPrice
	}
	if p.Quantity != nil {
		d.Quantity = *p.Quantity
	}
	if p.StartTime != nil {
		d.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		d.EndTime = *p.EndTime
	}
	if p.DurationMinutes != nil {
		d.DurationMinutes = *p.DurationMinutes
	}
	return d
}

// ServiceDetailFilter selects service details for the query surface.
// At most one of Status, EmployeeID or ClientID is set; From/To bound the
// parent appointment date (inclusive) and may be combined with any selector.
type ServiceDetailFilter struct {
	Status     ServiceDetailStatus
	EmployeeID int64
	ClientID   int64
	From       *time.Time
	To         *time.Time
}

// Matches reports whether d satisfies every criterion of the filter.
func (f ServiceDetailFilter) Matches(d ServiceDetail) bool {
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	if f.EmployeeID != 0 && d.EmployeeID != f.EmployeeID {
		return false
	}
	if f.ClientID != 0 && d.ClientID != f.ClientID {
		return false
	}
	day := CalendarDay(d.AppointmentDate)
	if f.From != nil && day.Before(CalendarDay(*f.From)) {
		return false
	}
	if f.To != nil && day.After(CalendarDay(*f.To)) {
		return false
	}
	return true
}

// CalendarDay truncates t to midnight UTC of its UTC date.
func CalendarDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
