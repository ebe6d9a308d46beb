package leave

import (
	"context"
	"time"

	"centraljuan-hris/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, leave *Leave) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error)
	FindByEmployee(ctx context.Context, companyID, employeeID string) ([]Leave, error)
	FindOverlapping(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]Leave, error)
	Update(ctx context.Context, leave *Leave) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, leave *Leave) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error) {
	var leave Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&leave, "id = ?", id).Error
	return &leave, err
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("date_from DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindOverlapping(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("date_from <= ? AND date_until >= ?", until, from).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, leave *Leave) error {
	return r.db.WithContext(ctx).Save(leave).Error
}
