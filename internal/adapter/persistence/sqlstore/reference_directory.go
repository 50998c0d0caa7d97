package sqlstore

import (
	"context"
	"errors"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ReferenceDirectory reads employees, services and appointments from the
// tables shared with the rest of the salon backend.
type ReferenceDirectory struct {
	db *gorm.DB
}

var _ interfaces.IReferenceDirectory = (*ReferenceDirectory)(nil)

func NewReferenceDirectory(db *gorm.DB) *ReferenceDirectory {
	return &ReferenceDirectory{db: db}
}

func (r *ReferenceDirectory) GetEmployee(ctx context.Context, id int64) (entities.Employee, error) {
	var m employeeModel
	found, err := r.first(ctx, &m, id)
	if err != nil || !found {
		return entities.Employee{}, err
	}
	return entities.Employee{ID: m.ID, RoleID: m.RoleID}, nil
}

func (r *ReferenceDirectory) GetService(ctx context.Context, id int64) (entities.Service, error) {
	var m serviceModel
	found, err := r.first(ctx, &m, id)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return entities.Service{ID: m.ID}, nil
}

func (r *ReferenceDirectory) GetAppointment(ctx context.Context, id int64) (entities.Appointment, error) {
	var m appointmentModel
	found, err := r.first(ctx, &m, id)
	if err != nil || !found {
		return entities.Appointment{}, err
	}
	return entities.Appointment{ID: m.ID, ClientID: m.ClientID, Date: m.Date.UTC()}, nil
}

func (r *ReferenceDirectory) first(ctx context.Context, dest interface{}, id int64) (bool, error) {
	err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
