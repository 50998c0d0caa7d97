package interfaces

import (
	"context"
	"salon_api/internal/domain/entities"
)

// ISaleRepository abstracts persistence for Sale.
//
// Sales are created by IServiceDetailRepository.MarkPaid; this repository only
// reads them and moves their status. Getters return the zero value when missing.
//
// UpdateStatus is a conditional write: it returns ErrVersionConflict when the
// sale is missing or its status is no longer from.

type ISaleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	GetByServiceDetailID(ctx context.Context, serviceDetailID int64) (entities.Sale, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.SaleStatus) (entities.Sale, error)
}

// ISalePaymentRepository abstracts persistence for SalePayment.

type ISalePaymentRepository interface {
	Create(ctx context.Context, p entities.SalePayment) (entities.SalePayment, error)
	GetByID(ctx context.Context, id string) (entities.SalePayment, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.SalePayment, error)
}
