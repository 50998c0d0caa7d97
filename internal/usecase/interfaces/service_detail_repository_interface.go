package interfaces

import (
	"context"
	"errors"
	"salon_api/internal/domain/entities"
)

// ErrVersionConflict is returned by conditional writes when the stored record
// no longer matches the version (or status) the caller read.
var ErrVersionConflict = errors.New("version conflict")

// IServiceDetailRepository abstracts persistence for ServiceDetail.
//
// Every mutating method is conditional on the version the caller loaded, so
// a read-check-write sequence in the use case cannot race with another writer.
// GetByID returns the zero value (ID == 0) when the record does not exist.
//
// Status is written only by UpdateStatus and MarkPaid.

type IServiceDetailRepository interface {
	Create(ctx context.Context, d entities.ServiceDetail) (entities.ServiceDetail, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceDetail, error)
	List(ctx context.Context, filter entities.ServiceDetailFilter) ([]entities.ServiceDetail, error)
	UpdateDetails(ctx context.Context, d entities.ServiceDetail, expectedVersion int64) (entities.ServiceDetail, error)
	UpdateStatus(ctx context.Context, id int64, from, to entities.ServiceDetailStatus, expectedVersion int64) (entities.ServiceDetail, error)
	MarkPaid(ctx context.Context, id int64, expectedVersion int64, sale entities.Sale) (entities.ServiceDetail, error)
	Delete(ctx context.Context, id int64, expectedVersion int64) error
}
