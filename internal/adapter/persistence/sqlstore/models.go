package sqlstore

import (
	"encoding/json"
	"time"

	"salon_api/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type serviceDetailModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	EmployeeID      int64           `gorm:"not null;index"`
	ServiceID       int64           `gorm:"not null"`
	AppointmentID   int64           `gorm:"not null;index"`
	ClientID        int64           `gorm:"not null;index"`
	AppointmentDate time.Time       `gorm:"type:date;not null;index"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity        int             `gorm:"not null"`
	StartTime       time.Time       `gorm:"not null"`
	EndTime         time.Time       `gorm:"not null"`
	DurationMinutes int             `gorm:"not null"`
	Status          string          `gorm:"size:32;not null;index"`
	Version         int64           `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (serviceDetailModel) TableName() string { return "service_details" }

type saleModel struct {
	ID              string          `gorm:"primaryKey;size:64"`
	ServiceDetailID int64           `gorm:"not null;uniqueIndex"`
	ClientID        int64           `gorm:"not null"`
	EmployeeID      int64           `gorm:"not null"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"size:32;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (saleModel) TableName() string { return "sales" }

type salePaymentModel struct {
	ID              string    `gorm:"primaryKey;size:64"`
	SaleID          string    `gorm:"size:64;not null;index"`
	Date            time.Time `gorm:"not null"`
	Status          string    `gorm:"size:32;not null"`
	ProviderPayload []byte    `gorm:"type:jsonb"`
}

func (salePaymentModel) TableName() string { return "sale_payments" }

type employeeModel struct {
	ID     int64 `gorm:"primaryKey"`
	RoleID int64 `gorm:"not null"`
}

func (employeeModel) TableName() string { return "employees" }

type serviceModel struct {
	ID int64 `gorm:"primaryKey"`
}

func (serviceModel) TableName() string { return "services" }

type appointmentModel struct {
	ID       int64     `gorm:"primaryKey"`
	ClientID int64     `gorm:"not null"`
	Date     time.Time `gorm:"type:date;not null"`
}

func (appointmentModel) TableName() string { return "appointments" }

// Migrate creates or updates every table used by the relational backend.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&serviceDetailModel{},
		&saleModel{},
		&salePaymentModel{},
		&employeeModel{},
		&serviceModel{},
		&appointmentModel{},
	)
}

func toServiceDetailModel(d entities.ServiceDetail) serviceDetailModel {
	return serviceDetailModel{
		ID:              d.ID,
		EmployeeID:      d.EmployeeID,
		ServiceID:       d.ServiceID,
		AppointmentID:   d.AppointmentID,
		ClientID:        d.ClientID,
		AppointmentDate: d.AppointmentDate,
		UnitPrice:       d.UnitPrice,
		Quantity:        d.Quantity,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		DurationMinutes: d.DurationMinutes,
		Status:          string(d.Status),
		Version:         d.Version,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (m serviceDetailModel) toEntity() entities.ServiceDetail {
	return entities.ServiceDetail{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		ServiceID:       m.ServiceID,
		AppointmentID:   m.AppointmentID,
		ClientID:        m.ClientID,
		AppointmentDate: m.AppointmentDate.UTC(),
		UnitPrice:       m.UnitPrice,
		Quantity:        m.Quantity,
		StartTime:       m.StartTime.UTC(),
		EndTime:         m.EndTime.UTC(),
		DurationMinutes: m.DurationMinutes,
		Status:          entities.ServiceDetailStatus(m.Status),
		Version:         m.Version,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

func toSaleModel(s entities.Sale) saleModel {
	return saleModel{
		ID:              s.ID,
		ServiceDetailID: s.ServiceDetailID,
		ClientID:        s.ClientID,
		EmployeeID:      s.EmployeeID,
		Quantity:        s.Quantity,
		UnitPrice:       s.UnitPrice,
		Total:           s.Total,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (m saleModel) toEntity() entities.Sale {
	return entities.Sale{
		ID:              m.ID,
		ServiceDetailID: m.ServiceDetailID,
		ClientID:        m.ClientID,
		EmployeeID:      m.EmployeeID,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		Total:           m.Total,
		Status:          entities.SaleStatus(m.Status),
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

func toSalePaymentModel(p entities.SalePayment) salePaymentModel {
	return salePaymentModel{
		ID:              p.ID,
		SaleID:          p.SaleID,
		Date:            p.Date,
		Status:          string(p.Status),
		ProviderPayload: []byte(p.ProviderPayloadRaw),
	}
}

// toEntity restores the parsed payload from the stored raw body. A body that
// is not a JSON object is kept raw only.
func (m salePaymentModel) toEntity() entities.SalePayment {
	p := entities.SalePayment{
		ID:     m.ID,
		SaleID: m.SaleID,
		Date:   m.Date.UTC(),
		Status: entities.PaymentStatus(m.Status),
	}
	if len(m.ProviderPayload) > 0 {
		p.ProviderPayloadRaw = json.RawMessage(m.ProviderPayload)
		var parsed map[string]interface{}
		if err := json.Unmarshal(m.ProviderPayload, &parsed); err == nil {
			p.ProviderPayload = parsed
		}
	}
	return p
}
