package contribution

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DeductionMonthly     = "MONTHLY"
	DeductionSemiMonthly = "SEMI_MONTHLY"

	FieldSSS        = "sss"
	FieldPhilHealth = "philhealth"
	FieldPagIBIG    = "pagibig"
)

// Profile holds the raw monthly employee shares for the three statutory
// contributions plus per-field overrides. An enabled override replaces the
// schedule-derived per-cutoff amount outright.
type Profile struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID    uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex"`
	DeductionType string    `gorm:"column:deduction_type;type:varchar(20);not null;default:'SEMI_MONTHLY'"`

	SSSAmount         decimal.Decimal `gorm:"column:sss_amount;type:numeric(14,2);not null;default:0"`
	SSSOverride       bool            `gorm:"column:sss_override;not null;default:false"`
	SSSOverrideAmount decimal.Decimal `gorm:"column:sss_override_amount;type:numeric(14,2);not null;default:0"`

	PhilHealthAmount         decimal.Decimal `gorm:"column:philhealth_amount;type:numeric(14,2);not null;default:0"`
	PhilHealthOverride       bool            `gorm:"column:philhealth_override;not null;default:false"`
	PhilHealthOverrideAmount decimal.Decimal `gorm:"column:philhealth_override_amount;type:numeric(14,2);not null;default:0"`

	PagIBIGAmount         decimal.Decimal `gorm:"column:pagibig_amount;type:numeric(14,2);not null;default:0"`
	PagIBIGOverride       bool            `gorm:"column:pagibig_override;not null;default:false"`
	PagIBIGOverrideAmount decimal.Decimal `gorm:"column:pagibig_override_amount;type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Profile) TableName() string {
	return "contribution_profiles"
}

func ValidDeductionType(t string) bool {
	return t == DeductionMonthly || t == DeductionSemiMonthly
}

func ValidField(f string) bool {
	switch f {
	case FieldSSS, FieldPhilHealth, FieldPagIBIG:
		return true
	}
	return false
}
