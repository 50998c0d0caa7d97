package usecase

import (
	"context"
	"fmt"
	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"
	"sort"
	"time"
)

var ErrInvalidFilter = fmt.Errorf("%w: invalid service detail filter", ErrValidation)

// IServiceDetailQueryUseCase is the read-only reporting surface used by
// billing and scheduling screens. Results are ordered by start time ascending
// (ties by id) and an empty result is an empty slice, never an error.

type IServiceDetailQueryUseCase interface {
	List(ctx context.Context, filter entities.ServiceDetailFilter) ([]entities.ServiceDetail, error)
	ListByStatus(ctx context.Context, status entities.ServiceDetailStatus) ([]entities.ServiceDetail, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]entities.ServiceDetail, error)
	ListByClient(ctx context.Context, clientID int64) ([]entities.ServiceDetail, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.ServiceDetail, error)
}

type ServiceDetailQueryUseCase struct {
	repo interfaces.IServiceDetailRepository
}

var _ IServiceDetailQueryUseCase = (*ServiceDetailQueryUseCase)(nil)

func NewServiceDetailQueryUseCase(repo interfaces.IServiceDetailRepository) *ServiceDetailQueryUseCase {
	return &ServiceDetailQueryUseCase{repo: repo}
}

func (u *ServiceDetailQueryUseCase) List(ctx context.Context, filter entities.ServiceDetailFilter) ([]entities.ServiceDetail, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	items, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ServiceDetail, 0, len(items))
	for _, d := range items {
		// Backends may over-select (e.g. an index query plus a date range);
		// the filter is the source of truth.
		if filter.Matches(d) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (u *ServiceDetailQueryUseCase) ListByStatus(ctx context.Context, status entities.ServiceDetailStatus) ([]entities.ServiceDetail, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, string(status))
	}
	return u.List(ctx, entities.ServiceDetailFilter{Status: status})
}

func (u *ServiceDetailQueryUseCase) ListByEmployee(ctx context.Context, employeeID int64) ([]entities.ServiceDetail, error) {
	if employeeID <= 0 {
		return nil, fmt.Errorf("%w: employee id must be positive", ErrInvalidFilter)
	}
	return u.List(ctx, entities.ServiceDetailFilter{EmployeeID: employeeID})
}

func (u *ServiceDetailQueryUseCase) ListByClient(ctx context.Context, clientID int64) ([]entities.ServiceDetail, error) {
	if clientID <= 0 {
		return nil, fmt.Errorf("%w: client id must be positive", ErrInvalidFilter)
	}
	return u.List(ctx, entities.ServiceDetailFilter{ClientID: clientID})
}

func (u *ServiceDetailQueryUseCase) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.ServiceDetail, error) {
	return u.List(ctx, entities.ServiceDetailFilter{From: &from, To: &to})
}

func validateFilter(f entities.ServiceDetailFilter) error {
	selectors := 0
	if f.Status != "" {
		if !f.Status.IsValid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, string(f.Status))
		}
		selectors++
	}
	if f.EmployeeID != 0 {
		selectors++
	}
	if f.ClientID != 0 {
		selectors++
	}
	if f.EmployeeID < 0 || f.ClientID < 0 {
		return fmt.Errorf("%w: ids must be positive", ErrInvalidFilter)
	}
	if selectors > 1 {
		return fmt.Errorf("%w: use at most one of status, employee_id, client_id", ErrInvalidFilter)
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return fmt.Errorf("%w: from must not be after to", ErrInvalidFilter)
	}
	return nil
}
