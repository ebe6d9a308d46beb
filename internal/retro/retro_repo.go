package retro

import (
	"context"

	"centraljuan-hris/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, adj *Adjustment) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Adjustment, error)
	FindByEmployee(ctx context.Context, companyID, employeeID string, onlyPending bool) ([]Adjustment, error)
	Update(ctx context.Context, adj *Adjustment) error
	HardDelete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, adj *Adjustment) error {
	return r.db.WithContext(ctx).Create(adj).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Adjustment, error) {
	var adj Adjustment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&adj, "id = ?", id).Error
	return &adj, err
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID string, onlyPending bool) ([]Adjustment, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID)
	if onlyPending {
		q = q.Where("status = ?", StatusPending)
	}

	var adjustments []Adjustment
	err := q.Order("effective_date ASC").Find(&adjustments).Error
	return adjustments, err
}

func (r *repository) Update(ctx context.Context, adj *Adjustment) error {
	return r.db.WithContext(ctx).Save(adj).Error
}

func (r *repository) HardDelete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Scopes(tenant.Scope(companyID)).
		Delete(&Adjustment{}, "id = ?", id).Error
}
