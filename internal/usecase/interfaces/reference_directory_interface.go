package interfaces

import (
	"context"
	"salon_api/internal/domain/entities"
)

// IReferenceDirectory resolves the records a service detail points to.
// Each getter returns the zero value when the record does not exist.

type IReferenceDirectory interface {
	GetEmployee(ctx context.Context, id int64) (entities.Employee, error)
	GetService(ctx context.Context, id int64) (entities.Service, error)
	GetAppointment(ctx context.Context, id int64) (entities.Appointment, error)
}

// IRoleResolver decides which roles count as employees.

type IRoleResolver interface {
	IsEmployeeRole(ctx context.Context, roleID int64) (bool, error)
}
