package attendance

import (
	"context"
	"time"

	"centraljuan-hris/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, record *Record) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Record, error)
	FindRange(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]Record, error)
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, record *Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Record, error) {
	var record Record
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) FindRange(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("work_date BETWEEN ? AND ?", from, until).
		Order("work_date ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Record{}, "id = ?", id).Error
}
