package sqlstore

import (
	"context"
	"errors"
	"time"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type SaleRepository struct {
	db *gorm.DB
}

var _ interfaces.ISaleRepository = (*SaleRepository)(nil)

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *SaleRepository) GetByServiceDetailID(ctx context.Context, serviceDetailID int64) (entities.Sale, error) {
	return r.first(ctx, "service_detail_id = ?", serviceDetailID)
}

func (r *SaleRepository) first(ctx context.Context, query string, arg interface{}) (entities.Sale, error) {
	var m saleModel
	err := r.db.WithContext(ctx).First(&m, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Sale{}, nil
	}
	if err != nil {
		return entities.Sale{}, err
	}
	return m.toEntity(), nil
}

func (r *SaleRepository) UpdateStatus(ctx context.Context, id string, from, to entities.SaleStatus) (entities.Sale, error) {
	res := r.db.WithContext(ctx).Model(&saleModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return entities.Sale{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Sale{}, interfaces.ErrVersionConflict
	}
	return r.GetByID(ctx, id)
}

type SalePaymentRepository struct {
	db *gorm.DB
}

var _ interfaces.ISalePaymentRepository = (*SalePaymentRepository)(nil)

func NewSalePaymentRepository(db *gorm.DB) *SalePaymentRepository {
	return &SalePaymentRepository{db: db}
}

func (r *SalePaymentRepository) Create(ctx context.Context, p entities.SalePayment) (entities.SalePayment, error) {
	m := toSalePaymentModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.SalePayment{}, err
	}
	return p, nil
}

func (r *SalePaymentRepository) GetByID(ctx context.Context, id string) (entities.SalePayment, error) {
	var m salePaymentModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.SalePayment{}, nil
	}
	if err != nil {
		return entities.SalePayment{}, err
	}
	return m.toEntity(), nil
}

// ListBySaleID returns the payments of a sale, newest first.
func (r *SalePaymentRepository) ListBySaleID(ctx context.Context, saleID string) ([]entities.SalePayment, error) {
	var rows []salePaymentModel
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.SalePayment, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
