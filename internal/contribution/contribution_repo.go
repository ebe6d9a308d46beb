package contribution

import (
	"context"

	"centraljuan-hris/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	CreateIfAbsent(ctx context.Context, profile *Profile) error
	FindByEmployee(ctx context.Context, companyID, employeeID string) (*Profile, error)
	FindByEmployees(ctx context.Context, companyID string, employeeIDs []string) ([]Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateIfAbsent backs the employee_created consumer, which may redeliver.
func (r *repository) CreateIfAbsent(ctx context.Context, profile *Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoNothing: true,
		}).
		Create(profile).Error
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID string) (*Profile, error) {
	var profile Profile
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&profile, "employee_id = ?", employeeID).Error
	return &profile, err
}

func (r *repository) FindByEmployees(ctx context.Context, companyID string, employeeIDs []string) ([]Profile, error) {
	var profiles []Profile
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id IN ?", employeeIDs).
		Find(&profiles).Error
	return profiles, err
}

func (r *repository) Update(ctx context.Context, profile *Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
