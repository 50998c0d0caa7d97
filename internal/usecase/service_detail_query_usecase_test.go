package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon_api/internal/domain/entities"
	mock_interfaces "salon_api/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServiceDetailQueryUseCase_FilterValidation(t *testing.T) {
	uc := NewServiceDetailQueryUseCase(nil)
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.Add(-24 * time.Hour)

	cases := []struct {
		name   string
		filter entities.ServiceDetailFilter
	}{
		{"unknown status", entities.ServiceDetailFilter{Status: "Borrada"}},
		{"two selectors", entities.ServiceDetailFilter{Status: entities.ServiceDetailStatusAgendada, EmployeeID: 7}},
		{"negative id", entities.ServiceDetailFilter{ClientID: -1}},
		{"inverted range", entities.ServiceDetailFilter{From: &from, To: &to}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.List(context.Background(), tc.filter)
			if !errors.Is(err, ErrInvalidFilter) {
				t.Fatalf("expected ErrInvalidFilter, got %v", err)
			}
		})
	}

	t.Run("by employee requires a positive id", func(t *testing.T) {
		_, err := uc.ListByEmployee(context.Background(), 0)
		if !errors.Is(err, ErrInvalidFilter) {
			t.Fatalf("expected ErrInvalidFilter, got %v", err)
		}
	})
}

func TestServiceDetailQueryUseCase_OrdersAndRefilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceDetailRepository(ctrl)
	uc := NewServiceDetailQueryUseCase(repo)

	nine := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	filter := entities.ServiceDetailFilter{EmployeeID: 7}

	repo.EXPECT().List(gomock.Any(), filter).Return([]entities.ServiceDetail{
		{ID: 3, EmployeeID: 7, StartTime: nine.Add(time.Hour), AppointmentDate: day},
		{ID: 2, EmployeeID: 7, StartTime: nine, AppointmentDate: day},
		{ID: 9, EmployeeID: 8, StartTime: nine, AppointmentDate: day},
		{ID: 1, EmployeeID: 7, StartTime: nine, AppointmentDate: day},
	}, nil)

	out, err := uc.ListByEmployee(context.Background(), 7)
	require.NoError(t, err)
	ids := make([]int64, 0, len(out))
	for _, d := range out {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestServiceDetailQueryUseCase_DateRangeIsInclusive(t *testing.T) {
	f := newLifecycleFixture(t)
	d := f.create(t)

	day := d.AppointmentDate
	out, err := f.queries.ListByDateRange(context.Background(), day, day)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, d.ID, out[0].ID)

	out, err = f.queries.ListByDateRange(context.Background(), day.Add(time.Second), day.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = f.queries.ListByClient(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestStaticRoleResolver(t *testing.T) {
	r := NewStaticRoleResolver([]int64{2, 5})

	ok, err := r.IsEmployeeRole(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.IsEmployeeRole(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}
