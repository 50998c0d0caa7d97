package sqlstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	updateDetailSQL  = `UPDATE "service_details" SET .* WHERE .*id = \$\d+ AND version = \$\d+`
	updateStatusSQL  = `UPDATE "service_details" SET .* WHERE .*id = \$\d+ AND version = \$\d+ AND status = \$\d+`
	selectDetailSQL  = `SELECT \* FROM "service_details" WHERE id = \$1`
	insertSaleSQL    = `INSERT INTO "sales"`
	deleteDetailSQL  = `DELETE FROM "service_details" WHERE .*id = \$\d+ AND version = \$\d+`
	updateSaleSQL    = `UPDATE "sales" SET .* WHERE .*id = \$\d+ AND status = \$\d+`
	selectSaleSQL    = `SELECT \* FROM "sales" WHERE id = \$1`
	selectPaymentSQL = `SELECT \* FROM "sale_payments" WHERE sale_id = \$1 ORDER BY date DESC`
)

var detailColumns = []string{
	"id", "employee_id", "service_id", "appointment_id", "client_id", "appointment_date",
	"unit_price", "quantity", "start_time", "end_time", "duration_minutes", "status",
	"version", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func detailRow(status entities.ServiceDetailStatus, version int64) *sqlmock.Rows {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(detailColumns).AddRow(
		int64(5), int64(7), int64(3), int64(11), int64(42), time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		"25.50", 2, start, start.Add(time.Hour), 60, string(status),
		version, start, start,
	)
}

func sampleDetail() entities.ServiceDetail {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	return entities.ServiceDetail{
		ID:              5,
		EmployeeID:      7,
		ServiceID:       3,
		AppointmentID:   11,
		ClientID:        42,
		UnitPrice:       decimal.RequireFromString("25.50"),
		Quantity:        2,
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		DurationMinutes: 60,
		Status:          entities.ServiceDetailStatusEnProceso,
		Version:         3,
		UpdatedAt:       start,
	}
}

func sampleSale() entities.Sale {
	return entities.Sale{
		ID:              "sale-1",
		ServiceDetailID: 5,
		ClientID:        42,
		EmployeeID:      7,
		Quantity:        2,
		UnitPrice:       decimal.RequireFromString("25.50"),
		Total:           decimal.RequireFromString("51.00"),
		Status:          entities.SaleStatusPendiente,
	}
}

func TestServiceDetailRepository_GetByID(t *testing.T) {
	t.Run("missing row is the zero value", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(selectDetailSQL).WillReturnRows(sqlmock.NewRows(detailColumns))

		got, err := NewServiceDetailRepository(db).GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.False(t, got.Exists())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(selectDetailSQL).WillReturnRows(detailRow(entities.ServiceDetailStatusConfirmada, 2))

		got, err := NewServiceDetailRepository(db).GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, entities.ServiceDetailStatusConfirmada, got.Status)
		assert.Equal(t, int64(2), got.Version)
		assert.True(t, decimal.RequireFromString("25.50").Equal(got.UnitPrice))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceDetailRepository_UpdateDetails(t *testing.T) {
	t.Run("matching version bumps and reloads", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(updateDetailSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectDetailSQL).WillReturnRows(detailRow(entities.ServiceDetailStatusEnProceso, 4))

		got, err := NewServiceDetailRepository(db).UpdateDetails(context.Background(), sampleDetail(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(4), got.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(updateDetailSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := NewServiceDetailRepository(db).UpdateDetails(context.Background(), sampleDetail(), 2)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error is returned as is", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(updateDetailSQL).WillReturnError(errors.New("connection reset"))

		_, err := NewServiceDetailRepository(db).UpdateDetails(context.Background(), sampleDetail(), 3)
		require.Error(t, err)
		assert.NotErrorIs(t, err, interfaces.ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceDetailRepository_UpdateStatus(t *testing.T) {
	t.Run("guarded by version and status", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(updateStatusSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectDetailSQL).WillReturnRows(detailRow(entities.ServiceDetailStatusConfirmada, 2))

		got, err := NewServiceDetailRepository(db).UpdateStatus(context.Background(), 5,
			entities.ServiceDetailStatusAgendada, entities.ServiceDetailStatusConfirmada, 1)
		require.NoError(t, err)
		assert.Equal(t, entities.ServiceDetailStatusConfirmada, got.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row matched", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(updateStatusSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := NewServiceDetailRepository(db).UpdateStatus(context.Background(), 5,
			entities.ServiceDetailStatusAgendada, entities.ServiceDetailStatusConfirmada, 1)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceDetailRepository_MarkPaid(t *testing.T) {
	t.Run("commits status and sale together", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateStatusSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertSaleSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectDetailSQL).WillReturnRows(detailRow(entities.ServiceDetailStatusPagada, 4))
		mock.ExpectCommit()

		got, err := NewServiceDetailRepository(db).MarkPaid(context.Background(), 5, 3, sampleSale())
		require.NoError(t, err)
		assert.Equal(t, entities.ServiceDetailStatusPagada, got.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed sale insert rolls the status back", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateStatusSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertSaleSQL).WillReturnError(errors.New("duplicate key value violates unique constraint"))
		mock.ExpectRollback()

		_, err := NewServiceDetailRepository(db).MarkPaid(context.Background(), 5, 3, sampleSale())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate key")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version inserts nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateStatusSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := NewServiceDetailRepository(db).MarkPaid(context.Background(), 5, 2, sampleSale())
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceDetailRepository_Delete(t *testing.T) {
	t.Run("matching version", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(deleteDetailSQL).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewServiceDetailRepository(db).Delete(context.Background(), 5, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(deleteDetailSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewServiceDetailRepository(db).Delete(context.Background(), 5, 2)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaleRepository_UpdateStatus(t *testing.T) {
	saleColumns := []string{"id", "service_detail_id", "client_id", "employee_id", "quantity", "unit_price", "total", "status", "created_at", "updated_at"}

	t.Run("claim succeeds", func(t *testing.T) {
		db, mock := newMockDB(t)
		now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
		mock.ExpectExec(updateSaleSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectSaleSQL).WillReturnRows(sqlmock.NewRows(saleColumns).
			AddRow("sale-1", int64(5), int64(42), int64(7), 2, "25.50", "51.00", string(entities.SaleStatusProcesando), now, now))

		got, err := NewSaleRepository(db).UpdateStatus(context.Background(), "sale-1", entities.SaleStatusPendiente, entities.SaleStatusProcesando)
		require.NoError(t, err)
		assert.Equal(t, entities.SaleStatusProcesando, got.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status moved on", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(updateSaleSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := NewSaleRepository(db).UpdateStatus(context.Background(), "sale-1", entities.SaleStatusPendiente, entities.SaleStatusProcesando)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSalePaymentRepository_ListBySaleID(t *testing.T) {
	db, mock := newMockDB(t)
	newer := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	mock.ExpectQuery(selectPaymentSQL).WillReturnRows(
		sqlmock.NewRows([]string{"id", "sale_id", "date", "status", "provider_payload"}).
			AddRow("pay-2", "sale-1", newer, string(entities.PaymentStatusAprobado), []byte(`{"status":"approved"}`)).
			AddRow("pay-1", "sale-1", newer.Add(-time.Hour), string(entities.PaymentStatusRechazado), []byte(`{}`)))

	got, err := NewSalePaymentRepository(db).ListBySaleID(context.Background(), "sale-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "pay-2", got[0].ID)
	assert.Equal(t, entities.PaymentStatusAprobado, got[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
