package usecase

import (
	"context"
	"errors"
	"fmt"
	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"
	"salon_api/pkg/logger"
	"time"

	"github.com/shopspring/decimal"
)

// ErrValidation is the parent of every input validation failure below.
var ErrValidation = errors.New("validation error")

// unitPriceScale matches the numeric(12,2) price columns.
const unitPriceScale = 2

var (
	ErrServiceDetailNotFound = errors.New("service detail not found")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrServiceNotFound       = errors.New("service not found")
	ErrAppointmentNotFound   = errors.New("appointment not found")

	ErrInvalidTimeWindow      = fmt.Errorf("%w: end time must be after start time", ErrValidation)
	ErrInvalidQuantity        = fmt.Errorf("%w: quantity must be positive", ErrValidation)
	ErrInvalidUnitPrice       = fmt.Errorf("%w: unit price must not be negative", ErrValidation)
	ErrUnitPricePrecision     = fmt.Errorf("%w: unit price allows at most two decimal places", ErrValidation)
	ErrInvalidDuration        = fmt.Errorf("%w: duration must be a positive number of minutes", ErrValidation)
	ErrInvalidReference       = fmt.Errorf("%w: employee, service and appointment ids are required", ErrValidation)
	ErrNotAnEmployee          = fmt.Errorf("%w: user does not hold an employee role", ErrValidation)
	ErrEmptyPatch             = fmt.Errorf("%w: nothing to update", ErrValidation)
	ErrInvalidServiceDetailID = fmt.Errorf("%w: invalid service detail id", ErrValidation)
)

// CreateServiceDetailInput is the command issued by the appointment flow.
// DurationMinutes may be zero, in which case it is derived from the window.
type CreateServiceDetailInput struct {
	EmployeeID      int64
	ServiceID       int64
	AppointmentID   int64
	UnitPrice       decimal.Decimal
	Quantity        int
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
}

// IServiceDetailUseCase covers the non-status operations on service details.
// Status changes go through ILifecycleUseCase.

type IServiceDetailUseCase interface {
	Create(ctx context.Context, in CreateServiceDetailInput) (entities.ServiceDetail, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceDetail, error)
	UpdateDetails(ctx context.Context, id int64, patch entities.ServiceDetailPatch) (entities.ServiceDetail, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceDetailUseCase struct {
	repo      interfaces.IServiceDetailRepository
	directory interfaces.IReferenceDirectory
	roles     interfaces.IRoleResolver
	log       logger.Logger
	now       func() time.Time
}

var _ IServiceDetailUseCase = (*ServiceDetailUseCase)(nil)

func NewServiceDetailUseCase(
	repo interfaces.IServiceDetailRepository,
	directory interfaces.IReferenceDirectory,
	roles interfaces.IRoleResolver,
	log logger.Logger,
) *ServiceDetailUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &ServiceDetailUseCase{
		repo:      repo,
		directory: directory,
		roles:     roles,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *ServiceDetailUseCase) Create(ctx context.Context, in CreateServiceDetailInput) (entities.ServiceDetail, error) {
	log := u.log.With("appointment_id", in.AppointmentID, "employee_id", in.EmployeeID, "service_id", in.ServiceID)
	log.Info("[service-detail][usecase] create start")

	if in.EmployeeID <= 0 || in.ServiceID <= 0 || in.AppointmentID <= 0 {
		return entities.ServiceDetail{}, ErrInvalidReference
	}
	if in.Quantity <= 0 {
		return entities.ServiceDetail{}, ErrInvalidQuantity
	}
	if err := checkUnitPrice(in.UnitPrice); err != nil {
		return entities.ServiceDetail{}, err
	}
	if !in.EndTime.After(in.StartTime) {
		log.Info("[service-detail][usecase] invalid time window", "start", in.StartTime, "end", in.EndTime)
		return entities.ServiceDetail{}, ErrInvalidTimeWindow
	}
	duration := in.DurationMinutes
	if duration == 0 {
		duration = int(in.EndTime.Sub(in.StartTime) / time.Minute)
	}
	if duration <= 0 {
		return entities.ServiceDetail{}, ErrInvalidDuration
	}

	if err := u.checkEmployee(ctx, in.EmployeeID); err != nil {
		log.Info("[service-detail][usecase] employee check failed", "err", err)
		return entities.ServiceDetail{}, err
	}
	if err := u.checkService(ctx, in.ServiceID); err != nil {
		log.Info("[service-detail][usecase] service check failed", "err", err)
		return entities.ServiceDetail{}, err
	}
	appointment, err := u.directory.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		log.Error("[service-detail][usecase] failed loading appointment", "err", err)
		return entities.ServiceDetail{}, err
	}
	if appointment.ID == 0 {
		return entities.ServiceDetail{}, ErrAppointmentNotFound
	}

	now := u.now()
	d := entities.ServiceDetail{
		EmployeeID:      in.EmployeeID,
		ServiceID:       in.ServiceID,
		AppointmentID:   appointment.ID,
		ClientID:        appointment.ClientID,
		AppointmentDate: entities.CalendarDay(appointment.Date),
		UnitPrice:       in.UnitPrice,
		Quantity:        in.Quantity,
		StartTime:       in.StartTime.UTC(),
		EndTime:         in.EndTime.UTC(),
		DurationMinutes: duration,
		Status:          entities.ServiceDetailStatusAgendada,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Error("[service-detail][usecase] repository create failed", "err", err)
		return entities.ServiceDetail{}, err
	}
	log.Info("[service-detail][usecase] create success", "service_detail_id", created.ID)
	return created, nil
}

func (u *ServiceDetailUseCase) GetByID(ctx context.Context, id int64) (entities.ServiceDetail, error) {
	if id <= 0 {
		return entities.ServiceDetail{}, ErrInvalidServiceDetailID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceDetail{}, err
	}
	if !d.Exists() {
		return entities.ServiceDetail{}, ErrServiceDetailNotFound
	}
	return d, nil
}

func (u *ServiceDetailUseCase) UpdateDetails(ctx context.Context, id int64, patch entities.ServiceDetailPatch) (entities.ServiceDetail, error) {
	log := u.log.With("service_detail_id", id)
	log.Info("[service-detail][usecase] update start")

	if id <= 0 {
		return entities.ServiceDetail{}, ErrInvalidServiceDetailID
	}
	if patch.IsEmpty() {
		return entities.ServiceDetail{}, ErrEmptyPatch
	}
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return entities.ServiceDetail{}, ErrInvalidQuantity
	}
	if patch.UnitPrice != nil {
		if err := checkUnitPrice(*patch.UnitPrice); err != nil {
			return entities.ServiceDetail{}, err
		}
	}
	if patch.DurationMinutes != nil && *patch.DurationMinutes <= 0 {
		return entities.ServiceDetail{}, ErrInvalidDuration
	}
	if (patch.EmployeeID != nil && *patch.EmployeeID <= 0) || (patch.ServiceID != nil && *patch.ServiceID <= 0) {
		return entities.ServiceDetail{}, ErrInvalidReference
	}
	if patch.EmployeeID != nil {
		if err := u.checkEmployee(ctx, *patch.EmployeeID); err != nil {
			return entities.ServiceDetail{}, err
		}
	}
	if patch.ServiceID != nil {
		if err := u.checkService(ctx, *patch.ServiceID); err != nil {
			return entities.ServiceDetail{}, err
		}
	}

	for attempt := 1; attempt <= maxLifecycleWriteAttempts; attempt++ {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			log.Error("[service-detail][usecase] failed loading service detail", "err", err)
			return entities.ServiceDetail{}, err
		}
		if !current.Exists() {
			return entities.ServiceDetail{}, ErrServiceDetailNotFound
		}
		if current.IsLocked() {
			log.Info("[service-detail][usecase] update rejected; record locked")
			return entities.ServiceDetail{}, fmt.Errorf("%w: paid service details cannot be modified", ErrRecordLocked)
		}

		merged := patch.Apply(current)
		if patch.TouchesTimeWindow() && !merged.ValidTimeWindow() {
			log.Info("[service-detail][usecase] invalid time window", "start", merged.StartTime, "end", merged.EndTime)
			return entities.ServiceDetail{}, ErrInvalidTimeWindow
		}
		if patch.TouchesTimeWindow() && patch.DurationMinutes == nil {
			merged.DurationMinutes = int(merged.EndTime.Sub(merged.StartTime) / time.Minute)
			if merged.DurationMinutes <= 0 {
				return entities.ServiceDetail{}, ErrInvalidDuration
			}
		}
		merged.StartTime = merged.StartTime.UTC()
		merged.EndTime = merged.EndTime.UTC()
		merged.UpdatedAt = u.now()

		updated, err := u.repo.UpdateDetails(ctx, merged, current.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Warn("[service-detail][usecase] version conflict; reloading", "attempt", attempt)
			continue
		}
		if err != nil {
			log.Error("[service-detail][usecase] repository update failed", "err", err)
			return entities.ServiceDetail{}, err
		}
		log.Info("[service-detail][usecase] update success", "version", updated.Version)
		return updated, nil
	}
	return entities.ServiceDetail{}, ErrConcurrentModification
}

func (u *ServiceDetailUseCase) Delete(ctx context.Context, id int64) error {
	log := u.log.With("service_detail_id", id)
	log.Info("[service-detail][usecase] delete start")

	if id <= 0 {
		return ErrInvalidServiceDetailID
	}

	for attempt := 1; attempt <= maxLifecycleWriteAttempts; attempt++ {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !current.Exists() {
			return ErrServiceDetailNotFound
		}
		if current.IsLocked() {
			log.Info("[service-detail][usecase] delete rejected; record locked")
			return fmt.Errorf("%w: paid service details cannot be deleted", ErrRecordLocked)
		}

		err = u.repo.Delete(ctx, id, current.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Warn("[service-detail][usecase] version conflict; reloading", "attempt", attempt)
			continue
		}
		if err != nil {
			log.Error("[service-detail][usecase] repository delete failed", "err", err)
			return err
		}
		log.Info("[service-detail][usecase] delete success")
		return nil
	}
	return ErrConcurrentModification
}

func (u *ServiceDetailUseCase) checkEmployee(ctx context.Context, id int64) error {
	employee, err := u.directory.GetEmployee(ctx, id)
	if err != nil {
		return err
	}
	if employee.ID == 0 {
		return ErrEmployeeNotFound
	}
	ok, err := u.roles.IsEmployeeRole(ctx, employee.RoleID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAnEmployee
	}
	return nil
}

func (u *ServiceDetailUseCase) checkService(ctx context.Context, id int64) error {
	service, err := u.directory.GetService(ctx, id)
	if err != nil {
		return err
	}
	if service.ID == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// checkUnitPrice rejects prices that storage would have to round.
func checkUnitPrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return ErrInvalidUnitPrice
	}
	if !p.Equal(p.Round(unitPriceScale)) {
		return ErrUnitPricePrecision
	}
	return nil
}
