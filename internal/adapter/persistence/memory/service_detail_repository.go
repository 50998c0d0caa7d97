package memory

import (
	"context"
	"fmt"
	"sort"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"
)

type ServiceDetailRepository struct {
	store *Store
}

var _ interfaces.IServiceDetailRepository = (*ServiceDetailRepository)(nil)

func (r *ServiceDetailRepository) Create(_ context.Context, d entities.ServiceDetail) (entities.ServiceDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	d.ID = s.nextID
	if d.Version == 0 {
		d.Version = 1
	}
	s.details[d.ID] = d
	return d, nil
}

func (r *ServiceDetailRepository) GetByID(_ context.Context, id int64) (entities.ServiceDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.details[id], nil
}

func (r *ServiceDetailRepository) List(_ context.Context, filter entities.ServiceDetailFilter) ([]entities.ServiceDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.ServiceDetail, 0)
	for _, d := range s.details {
		if filter.Matches(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ServiceDetailRepository) UpdateDetails(_ context.Context, d entities.ServiceDetail, expectedVersion int64) (entities.ServiceDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.details[d.ID]
	if !ok || current.Version != expectedVersion {
		return entities.ServiceDetail{}, interfaces.ErrVersionConflict
	}
	// Identity, status and creation data are owned by the store.
	d.Status = current.Status
	d.AppointmentID = current.AppointmentID
	d.ClientID = current.ClientID
	d.AppointmentDate = current.AppointmentDate
	d.CreatedAt = current.CreatedAt
	d.Version = current.Version + 1
	s.details[d.ID] = d
	return d, nil
}

func (r *ServiceDetailRepository) UpdateStatus(_ context.Context, id int64, from, to entities.ServiceDetailStatus, expectedVersion int64) (entities.ServiceDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.details[id]
	if !ok || current.Version != expectedVersion || current.Status != from {
		return entities.ServiceDetail{}, interfaces.ErrVersionConflict
	}
	current.Status = to
	current.Version++
	s.details[id] = current
	return current, nil
}

func (r *ServiceDetailRepository) MarkPaid(_ context.Context, id int64, expectedVersion int64, sale entities.Sale) (entities.ServiceDetail, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.details[id]
	if !ok || current.Version != expectedVersion || current.Status != entities.ServiceDetailStatusEnProceso {
		return entities.ServiceDetail{}, interfaces.ErrVersionConflict
	}
	if _, exists := s.sales[sale.ID]; exists {
		return entities.ServiceDetail{}, fmt.Errorf("sale %s already exists", sale.ID)
	}
	current.Status = entities.ServiceDetailStatusPagada
	current.Version++
	s.details[id] = current
	s.sales[sale.ID] = sale
	return current, nil
}

func (r *ServiceDetailRepository) Delete(_ context.Context, id int64, expectedVersion int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.details[id]
	if !ok || current.Version != expectedVersion {
		return interfaces.ErrVersionConflict
	}
	delete(s.details, id)
	return nil
}
