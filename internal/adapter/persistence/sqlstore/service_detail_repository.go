package sqlstore

import (
	"context"
	"errors"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ServiceDetailRepository persists service details in PostgreSQL.
// Conditional writes are UPDATE/DELETE statements filtered by id and version;
// zero affected rows means the caller's copy is stale.
type ServiceDetailRepository struct {
	db *gorm.DB
}

var _ interfaces.IServiceDetailRepository = (*ServiceDetailRepository)(nil)

func NewServiceDetailRepository(db *gorm.DB) *ServiceDetailRepository {
	return &ServiceDetailRepository{db: db}
}

func (r *ServiceDetailRepository) Create(ctx context.Context, d entities.ServiceDetail) (entities.ServiceDetail, error) {
	m := toServiceDetailModel(d)
	m.ID = 0
	if m.Version == 0 {
		m.Version = 1
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.ServiceDetail{}, err
	}
	return m.toEntity(), nil
}

func (r *ServiceDetailRepository) GetByID(ctx context.Context, id int64) (entities.ServiceDetail, error) {
	return getServiceDetail(r.db.WithContext(ctx), id)
}

func getServiceDetail(db *gorm.DB, id int64) (entities.ServiceDetail, error) {
	var m serviceDetailModel
	err := db.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ServiceDetail{}, nil
	}
	if err != nil {
		return entities.ServiceDetail{}, err
	}
	return m.toEntity(), nil
}

func (r *ServiceDetailRepository) List(ctx context.Context, filter entities.ServiceDetailFilter) ([]entities.ServiceDetail, error) {
	q := r.db.WithContext(ctx).Model(&serviceDetailModel{})
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.EmployeeID != 0 {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.From != nil {
		q = q.Where("appointment_date >= ?", entities.CalendarDay(*filter.From))
	}
	if filter.To != nil {
		q = q.Where("appointment_date <= ?", entities.CalendarDay(*filter.To))
	}

	var rows []serviceDetailModel
	if err := q.Order("start_time ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.ServiceDetail, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *ServiceDetailRepository) UpdateDetails(ctx context.Context, d entities.ServiceDetail, expectedVersion int64) (entities.ServiceDetail, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&serviceDetailModel{}).
		Where("id = ? AND version = ?", d.ID, expectedVersion).
		Updates(map[string]interface{}{
			"employee_id":      d.EmployeeID,
			"service_id":       d.ServiceID,
			"unit_price":       d.UnitPrice,
			"quantity":         d.Quantity,
			"start_time":       d.StartTime,
			"end_time":         d.EndTime,
			"duration_minutes": d.DurationMinutes,
			"updated_at":       d.UpdatedAt,
			"version":          gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return entities.ServiceDetail{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ServiceDetail{}, interfaces.ErrVersionConflict
	}
	return getServiceDetail(db, d.ID)
}

func (r *ServiceDetailRepository) UpdateStatus(ctx context.Context, id int64, from, to entities.ServiceDetailStatus, expectedVersion int64) (entities.ServiceDetail, error) {
	db := r.db.WithContext(ctx)
	if err := setStatus(db, id, from, to, expectedVersion); err != nil {
		return entities.ServiceDetail{}, err
	}
	return getServiceDetail(db, id)
}

func setStatus(db *gorm.DB, id int64, from, to entities.ServiceDetailStatus, expectedVersion int64) error {
	res := db.Model(&serviceDetailModel{}).
		Where("id = ? AND version = ? AND status = ?", id, expectedVersion, string(from)).
		Updates(map[string]interface{}{
			"status":  string(to),
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrVersionConflict
	}
	return nil
}

// MarkPaid flips the record to Pagada and inserts the sale in one transaction.
func (r *ServiceDetailRepository) MarkPaid(ctx context.Context, id int64, expectedVersion int64, sale entities.Sale) (entities.ServiceDetail, error) {
	var paid entities.ServiceDetail
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setStatus(tx, id, entities.ServiceDetailStatusEnProceso, entities.ServiceDetailStatusPagada, expectedVersion); err != nil {
			return err
		}
		m := toSaleModel(sale)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		var err error
		paid, err = getServiceDetail(tx, id)
		return err
	})
	if err != nil {
		return entities.ServiceDetail{}, err
	}
	return paid, nil
}

func (r *ServiceDetailRepository) Delete(ctx context.Context, id int64, expectedVersion int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", id, expectedVersion).
		Delete(&serviceDetailModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrVersionConflict
	}
	return nil
}
