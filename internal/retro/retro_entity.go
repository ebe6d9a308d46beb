package retro

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending = "PENDING"
	StatusApplied = "APPLIED"
)

// Adjustment is a backdated pay correction. Amount may be negative. Once
// applied to a payroll row it leaves the pending pool for good. Deletion is
// a hard delete; there is no undo.
type Adjustment struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID    uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	Description   string          `gorm:"column:description;type:text;not null"`
	EffectiveDate time.Time       `gorm:"column:effective_date;type:date;not null"`
	Status        string          `gorm:"column:status;type:varchar(20);not null;default:'PENDING'"`
	PayrollRowID  *uuid.UUID      `gorm:"column:payroll_row_id;type:uuid"`
	AppliedAt     *time.Time      `gorm:"column:applied_at"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (Adjustment) TableName() string {
	return "retro_adjustments"
}
