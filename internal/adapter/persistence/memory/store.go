package memory

import (
	"context"
	"sync"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"
)

// Store keeps every record of the in-memory backend behind one mutex so that
// a conversion can write the service detail and its sale atomically.
//
// It is used by tests and by STORAGE_DRIVER=memory for local runs.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	details  map[int64]entities.ServiceDetail
	sales    map[string]entities.Sale
	payments map[string]entities.SalePayment
}

func NewStore() *Store {
	return &Store{
		details:  make(map[int64]entities.ServiceDetail),
		sales:    make(map[string]entities.Sale),
		payments: make(map[string]entities.SalePayment),
	}
}

func (s *Store) ServiceDetails() *ServiceDetailRepository {
	return &ServiceDetailRepository{store: s}
}

func (s *Store) Sales() *SaleRepository {
	return &SaleRepository{store: s}
}

func (s *Store) SalePayments() *SalePaymentRepository {
	return &SalePaymentRepository{store: s}
}

// Directory is an in-memory reference directory seeded by the caller.
type Directory struct {
	mu           sync.RWMutex
	employees    map[int64]entities.Employee
	services     map[int64]entities.Service
	appointments map[int64]entities.Appointment
}

var _ interfaces.IReferenceDirectory = (*Directory)(nil)

func NewDirectory() *Directory {
	return &Directory{
		employees:    make(map[int64]entities.Employee),
		services:     make(map[int64]entities.Service),
		appointments: make(map[int64]entities.Appointment),
	}
}

func (d *Directory) PutEmployee(e entities.Employee) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.employees[e.ID] = e
}

func (d *Directory) PutService(s entities.Service) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.services[s.ID] = s
}

func (d *Directory) PutAppointment(a entities.Appointment) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.appointments[a.ID] = a
}

func (d *Directory) GetEmployee(_ context.Context, id int64) (entities.Employee, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.employees[id], nil
}

func (d *Directory) GetService(_ context.Context, id int64) (entities.Service, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.services[id], nil
}

func (d *Directory) GetAppointment(_ context.Context, id int64) (entities.Appointment, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.appointments[id], nil
}
