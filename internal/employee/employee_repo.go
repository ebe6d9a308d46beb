package employee

import (
	"context"
	"database/sql"
	"strings"

	"centraljuan-hris/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindPage(ctx context.Context, companyID string, q ListEmployeesQuery) ([]Employee, int64, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	FindActiveByCompany(ctx context.Context, companyID string) ([]Employee, error)
	ReferencesBelongToCompany(ctx context.Context, companyID, departmentID, positionID string) (bool, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	if r.tx != nil {
		// Raw insert so the row lands in the same transaction as the
		// outbox event.
		query := `
            INSERT INTO employees (
                id, company_id, employee_number, first_name, last_name,
                department_id, position_id, employee_type, salary_type,
                daily_rate, monthly_rate, commission_based, status, hired_at,
                created_at, updated_at
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())
        `
		_, err := r.tx.ExecContext(
			ctx, query,
			emp.ID, emp.CompanyID, emp.EmployeeNumber, emp.FirstName, emp.LastName,
			emp.DepartmentID, emp.PositionID, emp.EmployeeType, emp.SalaryType,
			emp.DailyRate, emp.MonthlyRate, emp.CommissionBased, emp.Status, emp.HiredAt,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindPage(ctx context.Context, companyID string, q ListEmployeesQuery) ([]Employee, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID))

	if q.DepartmentID != "" {
		base = base.Where("department_id = ?", q.DepartmentID)
	}
	if q.Status != "" {
		base = base.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		term := "%" + strings.ToLower(q.Search) + "%"
		base = base.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(employee_number) LIKE ?",
			term, term, term,
		)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []Employee
	err := base.
		Order("last_name ASC, first_name ASC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&employees).Error
	return employees, total, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", StatusActive).
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) ReferencesBelongToCompany(ctx context.Context, companyID, departmentID, positionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("positions").
		Where("positions.id = ? AND positions.department_id = ?", positionID, departmentID).
		Where("positions.company_id = ?", companyID).
		Where("positions.deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Employee{}, "id = ?", id).Error
}
