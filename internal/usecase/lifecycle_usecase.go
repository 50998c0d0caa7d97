package usecase

import (
	"context"
	"errors"
	"fmt"
	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"
	"salon_api/pkg/logger"
	"salon_api/pkg/metrics"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRecordLocked           = errors.New("service detail is locked")
	ErrIllegalTransition      = errors.New("illegal status transition")
	ErrInvalidTargetStatus    = errors.New("invalid target status")
	ErrAlreadyPaid            = errors.New("service detail already paid")
	ErrWrongSourceStatus      = errors.New("service detail must be in 'En proceso' status to convert")
	ErrConcurrentModification = errors.New("service detail modified concurrently")
	errLifecycleNotConfigured = errors.New("service detail repository not configured")
)

const (
	// A conflicting write means another request changed the record between
	// our read and write; re-reading lets the loser observe the new status.
	maxLifecycleWriteAttempts  = 3
	lifecycleRejectionNotFound = "not_found"
)

// ILifecycleUseCase is the only entry point that writes a service detail status.
//
//   - Transition applies one edge of the status graph.
//   - ConvertToSale is the dedicated En proceso -> Pagada gate that also
//     creates the sale; after it succeeds the record never changes again.

type ILifecycleUseCase interface {
	Transition(ctx context.Context, id int64, requested entities.ServiceDetailStatus) (entities.ServiceDetail, error)
	ConvertToSale(ctx context.Context, id int64) (entities.ServiceDetail, entities.Sale, error)
}

type LifecycleUseCase struct {
	repo    interfaces.IServiceDetailRepository
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() string
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(repo interfaces.IServiceDetailRepository, log logger.Logger, m *metrics.Metrics) *LifecycleUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &LifecycleUseCase{
		repo:    repo,
		log:     log,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (u *LifecycleUseCase) Transition(ctx context.Context, id int64, requested entities.ServiceDetailStatus) (entities.ServiceDetail, error) {
	log := u.log.With("service_detail_id", id, "to", string(requested))
	log.Info("[lifecycle][usecase] transition start")

	if !requested.IsValid() {
		u.reject("invalid_target")
		log.Warn("[lifecycle][usecase] invalid target status")
		return entities.ServiceDetail{}, fmt.Errorf("%w: %q", ErrInvalidTargetStatus, string(requested))
	}
	if id <= 0 {
		u.reject(lifecycleRejectionNotFound)
		return entities.ServiceDetail{}, ErrServiceDetailNotFound
	}
	if u.repo == nil {
		return entities.ServiceDetail{}, errLifecycleNotConfigured
	}

	for attempt := 1; attempt <= maxLifecycleWriteAttempts; attempt++ {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			log.Error("[lifecycle][usecase] failed loading service detail", "err", err)
			return entities.ServiceDetail{}, err
		}
		if !current.Exists() {
			u.reject(lifecycleRejectionNotFound)
			log.Info("[lifecycle][usecase] service detail not found")
			return entities.ServiceDetail{}, ErrServiceDetailNotFound
		}
		if current.Status.IsTerminal() {
			u.reject("record_locked")
			log.Info("[lifecycle][usecase] record locked", "from", string(current.Status))
			return entities.ServiceDetail{}, fmt.Errorf("%w: status %q is terminal", ErrRecordLocked, string(current.Status))
		}
		if !entities.IsLegalTransition(current.Status, requested) {
			u.reject("illegal_transition")
			log.Info("[lifecycle][usecase] illegal transition", "from", string(current.Status))
			return entities.ServiceDetail{}, fmt.Errorf("%w: %q -> %q", ErrIllegalTransition, string(current.Status), string(requested))
		}

		updated, err := u.repo.UpdateStatus(ctx, id, current.Status, requested, current.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Warn("[lifecycle][usecase] version conflict; reloading", "attempt", attempt, "version", current.Version)
			continue
		}
		if err != nil {
			log.Error("[lifecycle][usecase] failed writing status", "err", err)
			return entities.ServiceDetail{}, err
		}

		if u.metrics != nil {
			u.metrics.Transitions.WithLabelValues(string(current.Status), string(requested)).Inc()
		}
		log.Info("[lifecycle][usecase] transition success", "from", string(current.Status), "version", updated.Version)
		return updated, nil
	}

	u.reject("concurrent_modification")
	log.Error("[lifecycle][usecase] transition gave up after repeated conflicts")
	return entities.ServiceDetail{}, ErrConcurrentModification
}

func (u *LifecycleUseCase) ConvertToSale(ctx context.Context, id int64) (entities.ServiceDetail, entities.Sale, error) {
	log := u.log.With("service_detail_id", id)
	log.Info("[lifecycle][usecase] convert-to-sale start")

	if id <= 0 {
		u.reject(lifecycleRejectionNotFound)
		return entities.ServiceDetail{}, entities.Sale{}, ErrServiceDetailNotFound
	}
	if u.repo == nil {
		return entities.ServiceDetail{}, entities.Sale{}, errLifecycleNotConfigured
	}

	for attempt := 1; attempt <= maxLifecycleWriteAttempts; attempt++ {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			log.Error("[lifecycle][usecase] failed loading service detail", "err", err)
			return entities.ServiceDetail{}, entities.Sale{}, err
		}
		if !current.Exists() {
			u.reject(lifecycleRejectionNotFound)
			log.Info("[lifecycle][usecase] service detail not found")
			return entities.ServiceDetail{}, entities.Sale{}, ErrServiceDetailNotFound
		}
		if current.Status == entities.ServiceDetailStatusPagada {
			u.reject("already_paid")
			log.Warn("[lifecycle][usecase] conversion rejected; already paid")
			return entities.ServiceDetail{}, entities.Sale{}, ErrAlreadyPaid
		}
		if current.Status != entities.ServiceDetailStatusEnProceso {
			u.reject("wrong_source_status")
			log.Info("[lifecycle][usecase] conversion rejected; wrong source status", "from", string(current.Status))
			return entities.ServiceDetail{}, entities.Sale{}, fmt.Errorf("%w: current status %q", ErrWrongSourceStatus, string(current.Status))
		}

		sale := u.saleFor(current)
		updated, err := u.repo.MarkPaid(ctx, id, current.Version, sale)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Warn("[lifecycle][usecase] version conflict; reloading", "attempt", attempt, "version", current.Version)
			continue
		}
		if err != nil {
			log.Error("[lifecycle][usecase] failed converting to sale", "err", err)
			return entities.ServiceDetail{}, entities.Sale{}, err
		}

		if u.metrics != nil {
			u.metrics.Transitions.WithLabelValues(string(current.Status), string(updated.Status)).Inc()
			u.metrics.SalesConverted.Inc()
		}
		log.Info("[lifecycle][usecase] convert-to-sale success", "sale_id", sale.ID, "total", sale.Total.String())
		return updated, sale, nil
	}

	u.reject("concurrent_modification")
	log.Error("[lifecycle][usecase] conversion gave up after repeated conflicts")
	return entities.ServiceDetail{}, entities.Sale{}, ErrConcurrentModification
}

func (u *LifecycleUseCase) saleFor(d entities.ServiceDetail) entities.Sale {
	now := u.now()
	return entities.Sale{
		ID:              u.newID(),
		ServiceDetailID: d.ID,
		ClientID:        d.ClientID,
		EmployeeID:      d.EmployeeID,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
		Total:           d.LineTotal(),
		Status:          entities.SaleStatusPendiente,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (u *LifecycleUseCase) reject(reason string) {
	if u.metrics != nil {
		u.metrics.LifecycleRejections.WithLabelValues(reason).Inc()
	}
}
