package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo *ServiceDetailRepository, status entities.ServiceDetailStatus, start time.Time) entities.ServiceDetail {
	t.Helper()
	d, err := repo.Create(context.Background(), entities.ServiceDetail{
		EmployeeID:      7,
		ServiceID:       3,
		AppointmentID:   11,
		ClientID:        42,
		AppointmentDate: start.Truncate(24 * time.Hour),
		UnitPrice:       decimal.NewFromInt(10),
		Quantity:        1,
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		DurationMinutes: 60,
		Status:          status,
	})
	require.NoError(t, err)
	return d
}

func TestServiceDetailRepository_CreateAssignsIDsAndVersion(t *testing.T) {
	repo := NewStore().ServiceDetails()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	a := seed(t, repo, entities.ServiceDetailStatusAgendada, start)
	b := seed(t, repo, entities.ServiceDetailStatusAgendada, start)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, int64(1), a.Version)

	missing, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, missing.Exists())
}

func TestServiceDetailRepository_ConditionalWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.ServiceDetails()
	d := seed(t, repo, entities.ServiceDetailStatusEnProceso, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := repo.UpdateStatus(ctx, d.ID, entities.ServiceDetailStatusEnProceso, entities.ServiceDetailStatusFinalizada, d.Version+1)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

	_, err = repo.UpdateStatus(ctx, d.ID, entities.ServiceDetailStatusAgendada, entities.ServiceDetailStatusConfirmada, d.Version)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

	sale := entities.Sale{ID: "sale-1", ServiceDetailID: d.ID, Status: entities.SaleStatusPendiente}
	paid, err := repo.MarkPaid(ctx, d.ID, d.Version, sale)
	require.NoError(t, err)
	assert.Equal(t, entities.ServiceDetailStatusPagada, paid.Status)
	assert.Equal(t, d.Version+1, paid.Version)

	_, err = repo.MarkPaid(ctx, d.ID, d.Version, entities.Sale{ID: "sale-2"})
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

	got, err := store.Sales().GetByServiceDetailID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "sale-1", got.ID)

	err = repo.Delete(ctx, d.ID, d.Version)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
}

func TestServiceDetailRepository_ConcurrentMarkPaidHasOneWinner(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.ServiceDetails()
	d := seed(t, repo, entities.ServiceDetailStatusEnProceso, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.MarkPaid(ctx, d.ID, d.Version, entities.Sale{ID: fmt.Sprintf("sale-%d", i), ServiceDetailID: d.ID})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
	}
	assert.Equal(t, 1, wins)

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ServiceDetailStatusPagada, got.Status)
	assert.Equal(t, d.Version+1, got.Version)
}

func TestServiceDetailRepository_UpdateDetailsKeepsStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().ServiceDetails()
	d := seed(t, repo, entities.ServiceDetailStatusConfirmada, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	changed := d
	changed.Quantity = 4
	changed.Status = entities.ServiceDetailStatusPagada
	updated, err := repo.UpdateDetails(ctx, changed, d.Version)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, entities.ServiceDetailStatusConfirmada, updated.Status)
	assert.Equal(t, d.Version+1, updated.Version)
}

func TestServiceDetailRepository_ListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().ServiceDetails()
	nine := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	late := seed(t, repo, entities.ServiceDetailStatusAgendada, nine.Add(2*time.Hour))
	early := seed(t, repo, entities.ServiceDetailStatusAgendada, nine)
	seed(t, repo, entities.ServiceDetailStatusConfirmada, nine)

	out, err := repo.List(ctx, entities.ServiceDetailFilter{Status: entities.ServiceDetailStatusAgendada})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, early.ID, out[0].ID)
	assert.Equal(t, late.ID, out[1].ID)

	out, err = repo.List(ctx, entities.ServiceDetailFilter{Status: entities.ServiceDetailStatusNoAsistio})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSaleAndPaymentRepositories(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.ServiceDetails()
	d := seed(t, repo, entities.ServiceDetailStatusEnProceso, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	_, err := repo.MarkPaid(ctx, d.ID, d.Version, entities.Sale{ID: "sale-1", ServiceDetailID: d.ID, Status: entities.SaleStatusPendiente})
	require.NoError(t, err)

	claimed, err := store.Sales().UpdateStatus(ctx, "sale-1", entities.SaleStatusPendiente, entities.SaleStatusProcesando)
	require.NoError(t, err)
	assert.Equal(t, entities.SaleStatusProcesando, claimed.Status)

	_, err = store.Sales().UpdateStatus(ctx, "sale-1", entities.SaleStatusPendiente, entities.SaleStatusProcesando)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

	approved, err := store.Sales().UpdateStatus(ctx, "sale-1", entities.SaleStatusProcesando, entities.SaleStatusAprobado)
	require.NoError(t, err)
	assert.Equal(t, entities.SaleStatusAprobado, approved.Status)

	_, err = store.Sales().UpdateStatus(ctx, "nope", entities.SaleStatusPendiente, entities.SaleStatusProcesando)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

	payments := store.SalePayments()
	older := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err = payments.Create(ctx, entities.SalePayment{ID: "p1", SaleID: "sale-1", Date: older})
	require.NoError(t, err)
	_, err = payments.Create(ctx, entities.SalePayment{ID: "p2", SaleID: "sale-1", Date: older.Add(time.Minute)})
	require.NoError(t, err)

	list, err := payments.ListBySaleID(ctx, "sale-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p2", list[0].ID)
}

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	dir := NewDirectory()
	dir.PutEmployee(entities.Employee{ID: 7, RoleID: 2})

	e, err := dir.GetEmployee(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.RoleID)

	s, err := dir.GetService(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, s.ID)
}
