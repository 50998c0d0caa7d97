package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestServiceDetail_Helpers(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	d := ServiceDetail{
		ID:        1,
		UnitPrice: decimal.RequireFromString("12.50"),
		Quantity:  3,
		StartTime: start,
		EndTime:   start.Add(45 * time.Minute),
		Status:    ServiceDetailStatusAgendada,
	}

	assert.True(t, d.Exists())
	assert.False(t, ServiceDetail{}.Exists())
	assert.True(t, d.ValidTimeWindow())
	assert.True(t, d.LineTotal().Equal(decimal.RequireFromString("37.5")))
	assert.False(t, d.IsLocked())

	d.EndTime = start
	assert.False(t, d.ValidTimeWindow())

	d.Status = ServiceDetailStatusPagada
	assert.True(t, d.IsLocked())
}

func TestServiceDetailPatch_Apply(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	d := ServiceDetail{
		ID:         9,
		EmployeeID: 1,
		ServiceID:  2,
		UnitPrice:  decimal.NewFromInt(10),
		Quantity:   1,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     ServiceDetailStatusConfirmada,
		Version:    4,
	}

	assert.True(t, ServiceDetailPatch{}.IsEmpty())

	qty := 2
	end := start.Add(90 * time.Minute)
	p := ServiceDetailPatch{Quantity: &qty, EndTime: &end}
	assert.False(t, p.IsEmpty())
	assert.True(t, p.TouchesTimeWindow())

	got := p.Apply(d)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, end, got.EndTime)
	assert.Equal(t, ServiceDetailStatusConfirmada, got.Status)
	assert.Equal(t, int64(4), got.Version)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, 1, d.Quantity, "original must not change")

	price := decimal.NewFromInt(5)
	assert.False(t, ServiceDetailPatch{UnitPrice: &price}.TouchesTimeWindow())
}

func TestServiceDetailFilter_Matches(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	d := ServiceDetail{EmployeeID: 3, ClientID: 8, AppointmentDate: day, Status: ServiceDetailStatusAgendada}

	from := day
	to := day
	before := day.AddDate(0, 0, -1)

	assert.True(t, ServiceDetailFilter{}.Matches(d))
	assert.True(t, ServiceDetailFilter{Status: ServiceDetailStatusAgendada}.Matches(d))
	assert.False(t, ServiceDetailFilter{Status: ServiceDetailStatusPagada}.Matches(d))
	assert.True(t, ServiceDetailFilter{EmployeeID: 3}.Matches(d))
	assert.False(t, ServiceDetailFilter{EmployeeID: 4}.Matches(d))
	assert.True(t, ServiceDetailFilter{ClientID: 8}.Matches(d))
	assert.False(t, ServiceDetailFilter{ClientID: 1}.Matches(d))
	assert.True(t, ServiceDetailFilter{From: &from, To: &to}.Matches(d), "range is inclusive")
	assert.False(t, ServiceDetailFilter{To: &before}.Matches(d))

	afternoon := d
	afternoon.AppointmentDate = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	assert.True(t, ServiceDetailFilter{From: &from, To: &to}.Matches(afternoon), "last day of the range is whole")
	assert.False(t, ServiceDetailFilter{To: &before}.Matches(afternoon))
}

func TestCalendarDay(t *testing.T) {
	got := CalendarDay(time.Date(2026, 3, 10, 14, 30, 0, 0, time.FixedZone("UTC-3", -3*3600)))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)

	late := CalendarDay(time.Date(2026, 3, 10, 23, 0, 0, 0, time.FixedZone("UTC-3", -3*3600)))
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), late, "day is taken in UTC")

	assert.True(t, CalendarDay(time.Time{}).IsZero())
}
