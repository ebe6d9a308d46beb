package holiday

import (
	"context"
	"time"

	"centraljuan-hris/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, holiday *Holiday) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Holiday, error)
	FindCandidates(ctx context.Context, companyID string, from, until time.Time) ([]Holiday, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Holiday, error)
	Update(ctx context.Context, holiday *Holiday) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, holiday *Holiday) error {
	return r.db.WithContext(ctx).Create(holiday).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("holiday_date ASC").
		Find(&holidays).Error
	return holidays, err
}

// FindCandidates pulls rows that could contribute to the window: recurring
// holidays always qualify, the rest must overlap it. DaysInRange does the
// exact per-day math in memory.
func (r *repository) FindCandidates(ctx context.Context, companyID string, from, until time.Time) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where(
			"is_recurring = true OR (holiday_date <= ? AND COALESCE(extended_until, holiday_date) >= ?)",
			until, from,
		).
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Holiday, error) {
	var holiday Holiday
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&holiday, "id = ?", id).Error
	return &holiday, err
}

func (r *repository) Update(ctx context.Context, holiday *Holiday) error {
	return r.db.WithContext(ctx).Save(holiday).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Holiday{}, "id = ?", id).Error
}
