package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TypeRegular      = "REGULAR"
	TypePartTime     = "PART_TIME"
	TypeOJT          = "OJT"
	TypeContractual  = "CONTRACTUAL"
	TypeProjectBased = "PROJECT_BASED"

	SalaryMonthly = "MONTHLY"
	SalaryDaily   = "DAILY"

	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Employee struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID       uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index:idx_employees_company"`
	EmployeeNumber  string          `gorm:"column:employee_number;type:varchar(20);not null;uniqueIndex:idx_employees_number_company"`
	FirstName       string          `gorm:"column:first_name;type:varchar(80);not null"`
	LastName        string          `gorm:"column:last_name;type:varchar(80);not null"`
	DepartmentID    uuid.UUID       `gorm:"column:department_id;type:uuid;not null"`
	PositionID      uuid.UUID       `gorm:"column:position_id;type:uuid;not null"`
	EmployeeType    string          `gorm:"column:employee_type;type:varchar(20);not null"`
	SalaryType      string          `gorm:"column:salary_type;type:varchar(20);not null"`
	DailyRate       decimal.Decimal `gorm:"column:daily_rate;type:numeric(14,2);not null;default:0"`
	MonthlyRate     decimal.Decimal `gorm:"column:monthly_rate;type:numeric(14,2);not null;default:0"`
	CommissionBased bool            `gorm:"column:commission_based;not null;default:false"`
	Status          string          `gorm:"column:status;type:varchar(20);not null;default:'ACTIVE'"`
	HiredAt         time.Time       `gorm:"column:hired_at;type:date;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func ValidEmployeeType(t string) bool {
	switch t {
	case TypeRegular, TypePartTime, TypeOJT, TypeContractual, TypeProjectBased:
		return true
	}
	return false
}

func ValidSalaryType(t string) bool {
	return t == SalaryMonthly || t == SalaryDaily
}
