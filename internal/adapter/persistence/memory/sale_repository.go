package memory

import (
	"context"
	"sort"
	"time"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"
)

type SaleRepository struct {
	store *Store
}

var _ interfaces.ISaleRepository = (*SaleRepository)(nil)

func (r *SaleRepository) GetByID(_ context.Context, id string) (entities.Sale, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sales[id], nil
}

func (r *SaleRepository) GetByServiceDetailID(_ context.Context, serviceDetailID int64) (entities.Sale, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sale := range s.sales {
		if sale.ServiceDetailID == serviceDetailID {
			return sale, nil
		}
	}
	return entities.Sale{}, nil
}

func (r *SaleRepository) UpdateStatus(_ context.Context, id string, from, to entities.SaleStatus) (entities.Sale, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	sale, ok := s.sales[id]
	if !ok || sale.Status != from {
		return entities.Sale{}, interfaces.ErrVersionConflict
	}
	sale.Status = to
	sale.UpdatedAt = time.Now().UTC()
	s.sales[id] = sale
	return sale, nil
}

type SalePaymentRepository struct {
	store *Store
}

var _ interfaces.ISalePaymentRepository = (*SalePaymentRepository)(nil)

func (r *SalePaymentRepository) Create(_ context.Context, p entities.SalePayment) (entities.SalePayment, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.ID] = p
	return p, nil
}

func (r *SalePaymentRepository) GetByID(_ context.Context, id string) (entities.SalePayment, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payments[id], nil
}

// ListBySaleID returns the payments of a sale, newest first.
func (r *SalePaymentRepository) ListBySaleID(_ context.Context, saleID string) ([]entities.SalePayment, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.SalePayment, 0)
	for _, p := range s.payments {
		if p.SaleID == saleID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
