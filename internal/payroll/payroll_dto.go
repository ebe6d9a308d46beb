package payroll

import "github.com/shopspring/decimal"

type GenerateRequest struct {
	DateFrom    string `json:"date_from" binding:"required,datetime=2006-01-02"`
	DateUntil   string `json:"date_until" binding:"required,datetime=2006-01-02"`
	SemiMonthly *bool  `json:"semi_monthly"`
}

type GenerateResponse struct {
	Created    int `json:"created"`
	Recomputed int `json:"recomputed"`
	// Skipped counts finalized rows left untouched by a re-generate.
	Skipped int           `json:"skipped"`
	Rows    []RowResponse `json:"rows"`
}

type SetIncentiveRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Remarks string          `json:"remarks"`
}

type SetCommissionRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type SetAllowancesRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type SetOneOffDeductionRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type ApplyRetroRequest struct {
	RetroID string `json:"retro_id" binding:"required,uuid"`
}

type LoanLineResponse struct {
	LoanID  string          `json:"loan_id"`
	Amount  decimal.Decimal `json:"amount"`
	Skipped bool            `json:"skipped"`
}

type RowResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number"`
	EmployeeName   string `json:"employee_name"`
	EmployeeType   string `json:"employee_type"`
	SalaryType     string `json:"salary_type"`
	DateFrom       string `json:"date_from"`
	DateUntil      string `json:"date_until"`
	Status         string `json:"status"`

	TotalDays          decimal.Decimal `json:"total_days"`
	OvertimeValue      decimal.Decimal `json:"overtime_value"`
	OvertimeUnit       string          `json:"overtime_unit"`
	TotalRenderedHours decimal.Decimal `json:"total_rendered_hours"`
	LateHours          decimal.Decimal `json:"late_hours"`
	HolidayCount       int             `json:"holiday_count"`
	PaidLeaveDays      decimal.Decimal `json:"paid_leave_days"`

	// TotalCredit is null for monthly-salary rows.
	TotalCredit *decimal.Decimal `json:"total_credit"`

	Rate            decimal.Decimal    `json:"rate"`
	BasePay         decimal.Decimal    `json:"base_pay"`
	EffectiveBase   decimal.Decimal    `json:"effective_base"`
	IncentiveAmount decimal.Decimal    `json:"incentive_amount"`
	IncentiveRemark string             `json:"incentive_remarks,omitempty"`
	TotalCommission decimal.Decimal    `json:"total_commission"`
	Allowances      decimal.Decimal    `json:"allowances"`
	TotalRewards    decimal.Decimal    `json:"total_rewards"`
	TotalRetro      decimal.Decimal    `json:"total_retro_applied"`
	DeductionOneOff decimal.Decimal    `json:"deduction_oneoff"`
	OthersNet       decimal.Decimal    `json:"others_net"`
	SSS             decimal.Decimal    `json:"sss_employee_share"`
	PhilHealth      decimal.Decimal    `json:"philhealth_employee_share"`
	PagIBIG         decimal.Decimal    `json:"pagibig_employee_share"`
	LoanTotal       decimal.Decimal    `json:"loan_total"`
	LoanLines       []LoanLineResponse `json:"loan_lines"`
	LateDeduction   decimal.Decimal    `json:"late_deduction"`
	SalaryAfterLate decimal.Decimal    `json:"salary_after_late"`
	Gross           decimal.Decimal    `json:"gross"`
	TotalDeduction  decimal.Decimal    `json:"total_deduction"`
	Net             decimal.Decimal    `json:"net"`
}

type ListQuery struct {
	DateFrom  string `form:"date_from" binding:"required,datetime=2006-01-02"`
	DateUntil string `form:"date_until" binding:"required,datetime=2006-01-02"`
}
