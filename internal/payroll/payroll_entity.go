package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusDraft = "DRAFT"
	StatusFinal = "FINAL"
)

// Row is one employee's payroll for one cutoff. Input columns are snapshots
// taken at recompute time; derived columns come from the engine and are
// never edited by hand.
type Row struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`

	EmployeeID     uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:idx_payroll_employee_cutoff"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(20);not null"`
	EmployeeName   string    `gorm:"column:employee_name;type:varchar(160);not null"`
	EmployeeType   string    `gorm:"column:employee_type;type:varchar(20);not null"`
	SalaryType     string    `gorm:"column:salary_type;type:varchar(20);not null"`

	DateFrom    time.Time `gorm:"column:date_from;type:date;not null;uniqueIndex:idx_payroll_employee_cutoff"`
	DateUntil   time.Time `gorm:"column:date_until;type:date;not null;uniqueIndex:idx_payroll_employee_cutoff"`
	SemiMonthly bool      `gorm:"column:semi_monthly;not null;default:true"`

	DailyRate   decimal.Decimal `gorm:"column:daily_rate;type:numeric(14,2);not null;default:0"`
	MonthlyRate decimal.Decimal `gorm:"column:monthly_rate;type:numeric(14,2);not null;default:0"`

	TotalDays          decimal.Decimal `gorm:"column:total_days;type:numeric(6,2);not null;default:0"`
	OvertimeValue      decimal.Decimal `gorm:"column:overtime_value;type:numeric(6,2);not null;default:0"`
	OvertimeUnit       string          `gorm:"column:overtime_unit;type:varchar(10);not null;default:'HOURS'"`
	TotalRenderedHours decimal.Decimal `gorm:"column:total_rendered_hours;type:numeric(6,2);not null;default:0"`
	LateHours          decimal.Decimal `gorm:"column:late_hours;type:numeric(6,2);not null;default:0"`
	HolidayCount       int             `gorm:"column:holiday_count;not null;default:0"`
	PaidLeaveDays      decimal.Decimal `gorm:"column:paid_leave_days;type:numeric(6,2);not null;default:0"`

	ContributionDeductionType string          `gorm:"column:contribution_deduction_type;type:varchar(20);not null;default:'SEMI_MONTHLY'"`
	SSSRaw                    decimal.Decimal `gorm:"column:sss_raw;type:numeric(14,2);not null;default:0"`
	SSSOverride               bool            `gorm:"column:sss_override;not null;default:false"`
	SSSOverrideAmount         decimal.Decimal `gorm:"column:sss_override_amount;type:numeric(14,2);not null;default:0"`
	PhilHealthRaw             decimal.Decimal `gorm:"column:philhealth_raw;type:numeric(14,2);not null;default:0"`
	PhilHealthOverride        bool            `gorm:"column:philhealth_override;not null;default:false"`
	PhilHealthOverrideAmount  decimal.Decimal `gorm:"column:philhealth_override_amount;type:numeric(14,2);not null;default:0"`
	PagIBIGRaw                decimal.Decimal `gorm:"column:pagibig_raw;type:numeric(14,2);not null;default:0"`
	PagIBIGOverride           bool            `gorm:"column:pagibig_override;not null;default:false"`
	PagIBIGOverrideAmount     decimal.Decimal `gorm:"column:pagibig_override_amount;type:numeric(14,2);not null;default:0"`

	IncentiveAmount   decimal.Decimal `gorm:"column:incentive_amount;type:numeric(14,2);not null;default:0"`
	IncentiveRemarks  string          `gorm:"column:incentive_remarks;type:text"`
	TotalRewards      decimal.Decimal `gorm:"column:total_rewards;type:numeric(14,2);not null;default:0"`
	TotalRetroApplied decimal.Decimal `gorm:"column:total_retro_applied;type:numeric(14,2);not null;default:0"`
	DeductionOneOff   decimal.Decimal `gorm:"column:deduction_oneoff;type:numeric(14,2);not null;default:0"`
	Allowances        decimal.Decimal `gorm:"column:allowances;type:numeric(14,2);not null;default:0"`
	TotalCommission   decimal.Decimal `gorm:"column:total_commission;type:numeric(14,2);not null;default:0"`
	CommissionBased   bool            `gorm:"column:commission_based;not null;default:false"`

	TotalCredit     decimal.NullDecimal `gorm:"column:total_credit;type:numeric(8,2)"`
	BasePay         decimal.Decimal     `gorm:"column:base_pay;type:numeric(14,2);not null;default:0"`
	EffectiveBase   decimal.Decimal     `gorm:"column:effective_base;type:numeric(14,2);not null;default:0"`
	SSSShare        decimal.Decimal     `gorm:"column:sss_share;type:numeric(14,2);not null;default:0"`
	PhilHealthShare decimal.Decimal     `gorm:"column:philhealth_share;type:numeric(14,2);not null;default:0"`
	PagIBIGShare    decimal.Decimal     `gorm:"column:pagibig_share;type:numeric(14,2);not null;default:0"`
	LoanTotal       decimal.Decimal     `gorm:"column:loan_total;type:numeric(14,2);not null;default:0"`
	LateDeduction   decimal.Decimal     `gorm:"column:late_deduction;type:numeric(14,2);not null;default:0"`
	SalaryAfterLate decimal.Decimal     `gorm:"column:salary_after_late;type:numeric(14,2);not null;default:0"`
	OthersNet       decimal.Decimal     `gorm:"column:others_net;type:numeric(14,2);not null;default:0"`
	Gross           decimal.Decimal     `gorm:"column:gross;type:numeric(14,2);not null;default:0"`
	TotalDeduction  decimal.Decimal     `gorm:"column:total_deduction;type:numeric(14,2);not null;default:0"`
	Net             decimal.Decimal     `gorm:"column:net;type:numeric(14,2);not null;default:0"`

	Status    string         `gorm:"column:status;type:varchar(10);not null;default:'DRAFT'"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	LoanLines []LoanLine `gorm:"foreignKey:PayrollRowID"`
}

func (Row) TableName() string {
	return "payroll_rows"
}

// LoanLine is the per-loan slice of a row's loan deduction.
type LoanLine struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollRowID uuid.UUID       `gorm:"column:payroll_row_id;type:uuid;not null;index"`
	LoanID       uuid.UUID       `gorm:"column:loan_id;type:uuid;not null"`
	Amount       decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	Skipped      bool            `gorm:"column:skipped;not null;default:false"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
}

func (LoanLine) TableName() string {
	return "payroll_loan_lines"
}
