// Package engine turns one employee's raw cutoff facts into the full
// gross/deduction/net breakdown. It is pure: no I/O, no clocks, decimals in
// and decimals out, every intermediate rounded to 2 decimal places before it
// feeds the next formula.
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

type OvertimeUnit string

const (
	OvertimeHours OvertimeUnit = "HOURS"
	OvertimeDays  OvertimeUnit = "DAYS"
)

// Overtime carries its unit explicitly. Callers must tag what they pass;
// the engine never guesses from the magnitude.
type Overtime struct {
	Unit  OvertimeUnit
	Value decimal.Decimal
}

const (
	SalaryMonthly = "MONTHLY"
	SalaryDaily   = "DAILY"

	TypeProjectBased = "PROJECT_BASED"

	DeductionMonthly     = "MONTHLY"
	DeductionSemiMonthly = "SEMI_MONTHLY"

	ScheduleMonthly        = "MONTHLY"
	ScheduleSemiMonthly    = "SEMI_MONTHLY"
	ScheduleCurrentPayroll = "CURRENT_PAYROLL"
)

// monthlyThresholdDay splits the month: a cutoff ending on or after this day
// is the second (contribution-bearing) cutoff.
const monthlyThresholdDay = 20

type Cutoff struct {
	DateFrom  time.Time
	DateUntil time.Time
	// SemiMonthly marks a split pay cycle. A false value means the whole
	// month is paid in one run.
	SemiMonthly bool
}

// SecondHalf reports whether the cutoff ends in the contribution-bearing
// half of the month.
func (c Cutoff) SecondHalf() bool {
	return c.DateUntil.Day() >= monthlyThresholdDay
}

type ContributionField struct {
	RawShare       decimal.Decimal
	Override       bool
	OverrideAmount decimal.Decimal
}

type ContributionInput struct {
	DeductionType string
	SSS           ContributionField
	PhilHealth    ContributionField
	PagIBIG       ContributionField
}

type LoanInput struct {
	ID             string
	Balance        decimal.Decimal
	Schedule       string
	PayablePerTerm decimal.Decimal
	// JournalCreditInRange only counts when HasJournalCredit is set; a
	// credited total of zero is still a journal figure, not an absence.
	JournalCreditInRange decimal.Decimal
	HasJournalCredit     bool
	Skipped              bool
}

type Input struct {
	EmployeeType    string
	SalaryType      string
	CommissionBased bool
	DailyRate       decimal.Decimal
	MonthlyRate     decimal.Decimal

	Cutoff Cutoff

	TotalDays     decimal.Decimal
	Overtime      Overtime
	HolidayCount  int
	PaidLeaveDays decimal.Decimal
	LateHours     decimal.Decimal

	Contribution ContributionInput
	Loans        []LoanInput

	Incentive       decimal.Decimal
	Rewards         decimal.Decimal // net of reward penalties
	RetroApplied    decimal.Decimal
	OneOffDeduction decimal.Decimal
	Allowances      decimal.Decimal
	Commission      decimal.Decimal
}

type LoanDeduction struct {
	LoanID  string
	Amount  decimal.Decimal
	Skipped bool
}

// Breakdown exposes every figure the register, the payslip, and the API
// surface need. Presentation layers must not re-derive any of these.
type Breakdown struct {
	// TotalCredit is nil for monthly-salary rows: monthly employees are
	// paid by half-month salary, not credited days.
	TotalCredit *decimal.Decimal

	BasePay       decimal.Decimal
	EffectiveBase decimal.Decimal

	SSS               decimal.Decimal
	PhilHealth        decimal.Decimal
	PagIBIG           decimal.Decimal
	ContributionTotal decimal.Decimal

	LoanDeductions []LoanDeduction
	LoanTotal      decimal.Decimal

	LateDeduction   decimal.Decimal
	SalaryAfterLate decimal.Decimal

	OthersNet      decimal.Decimal
	Gross          decimal.Decimal
	TotalDeduction decimal.Decimal
	Net            decimal.Decimal
}
