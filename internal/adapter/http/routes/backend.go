package routes

import (
	"context"
	"fmt"
	"salon_api/internal/adapter/persistence/memory"
	"salon_api/internal/adapter/persistence/repository"
	"salon_api/internal/adapter/persistence/sqlstore"
	"salon_api/internal/infrastructure/config"
	"salon_api/internal/infrastructure/database"
	"salon_api/internal/usecase/interfaces"
	"salon_api/pkg/logger"
)

// backend is the set of repositories behind one STORAGE_DRIVER.
type backend struct {
	details   interfaces.IServiceDetailRepository
	sales     interfaces.ISaleRepository
	payments  interfaces.ISalePaymentRepository
	directory interfaces.IReferenceDirectory
	close     func()
}

func openBackend(ctx context.Context, cfg *config.Config, log logger.Logger) (backend, error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return backend{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		t := cfg.DynamoDB
		log.Info("[routes] using dynamodb storage", "endpoint", t.Endpoint, "service_details_table", t.ServiceDetailTable)
		return backend{
			details:   repository.NewServiceDetailDynamoRepository(ddb, t.ServiceDetailTable, t.SalesTable, t.CountersTable),
			sales:     repository.NewSaleDynamoRepository(ddb, t.SalesTable),
			payments:  repository.NewSalePaymentDynamoRepository(ddb, t.SalePaymentsTable),
			directory: repository.NewReferenceDirectoryDynamoRepository(ddb, t.EmployeesTable, t.ServicesTable, t.AppointmentsTable),
			close:     func() {},
		}, nil

	case config.StoragePostgres:
		db, err := database.ConnectPostgres(cfg)
		if err != nil {
			return backend{}, err
		}
		if cfg.Database.AutoMigrate {
			if err := sqlstore.Migrate(db); err != nil {
				return backend{}, fmt.Errorf("migrate: %w", err)
			}
			log.Info("[routes] postgres schema migrated")
		}
		log.Info("[routes] using postgres storage")
		return backend{
			details:   sqlstore.NewServiceDetailRepository(db),
			sales:     sqlstore.NewSaleRepository(db),
			payments:  sqlstore.NewSalePaymentRepository(db),
			directory: sqlstore.NewReferenceDirectory(db),
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil

	case config.StorageMemory:
		log.Warn("[routes] using in-memory storage; data is lost on restart and the reference directory starts empty")
		store := memory.NewStore()
		return backend{
			details:   store.ServiceDetails(),
			sales:     store.Sales(),
			payments:  store.SalePayments(),
			directory: memory.NewDirectory(),
			close:     func() {},
		}, nil

	default:
		return backend{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
