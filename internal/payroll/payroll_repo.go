package payroll

import (
	"context"
	"time"

	"centraljuan-hris/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, row *Row) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Row, error)
	FindByEmployeeAndCutoff(ctx context.Context, companyID, employeeID string, from, until time.Time) (*Row, error)
	FindByCutoff(ctx context.Context, companyID string, from, until time.Time) ([]Row, error)
	SaveWithLoanLines(ctx context.Context, row *Row, lines []LoanLine) error
	Update(ctx context.Context, row *Row) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, row *Row) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Row, error) {
	var row Row
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("LoanLines").
		First(&row, "id = ?", id).Error
	return &row, err
}

func (r *repository) FindByEmployeeAndCutoff(ctx context.Context, companyID, employeeID string, from, until time.Time) (*Row, error) {
	var row Row
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("LoanLines").
		Where("employee_id = ? AND date_from = ? AND date_until = ?", employeeID, from, until).
		First(&row).Error
	return &row, err
}

func (r *repository) FindByCutoff(ctx context.Context, companyID string, from, until time.Time) ([]Row, error) {
	var rows []Row
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("LoanLines").
		Where("date_from = ? AND date_until = ?", from, until).
		Order("employee_name ASC").
		Find(&rows).Error
	return rows, err
}

// SaveWithLoanLines replaces the row's loan lines atomically with the
// derived-column update.
func (r *repository) SaveWithLoanLines(ctx context.Context, row *Row, lines []LoanLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(row).Error; err != nil {
			return err
		}
		if err := tx.
			Where("payroll_row_id = ?", row.ID).
			Delete(&LoanLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

func (r *repository) Update(ctx context.Context, row *Row) error {
	return r.db.WithContext(ctx).Save(row).Error
}
