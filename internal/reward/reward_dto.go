package reward

import "github.com/shopspring/decimal"

type CreateRuleRequest struct {
	Name            string          `json:"name" binding:"required,min=2"`
	PayoutType      string          `json:"payout_type" binding:"required,oneof=fixed per_hour percentage"`
	PayoutValue     decimal.Decimal `json:"payout_value"`
	MinTotalHours   decimal.Decimal `json:"min_total_hours"`
	MinDailyHours   decimal.Decimal `json:"min_daily_hours"`
	MinDaysCredited decimal.Decimal `json:"min_days_credited"`
	IsDeduction     bool            `json:"is_deduction"`
	AppliesScope    string          `json:"applies_scope" binding:"required,oneof=all department position"`
	DepartmentID    string          `json:"department_id" binding:"omitempty,uuid"`
	PositionID      string          `json:"position_id" binding:"omitempty,uuid"`
	Priority        int             `json:"priority"`
}

type RuleResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PayoutType      string          `json:"payout_type"`
	PayoutValue     decimal.Decimal `json:"payout_value"`
	MinTotalHours   decimal.Decimal `json:"min_total_hours"`
	MinDailyHours   decimal.Decimal `json:"min_daily_hours"`
	MinDaysCredited decimal.Decimal `json:"min_days_credited"`
	IsDeduction     bool            `json:"is_deduction"`
	AppliesScope    string          `json:"applies_scope"`
	DepartmentID    string          `json:"department_id,omitempty"`
	PositionID      string          `json:"position_id,omitempty"`
	Priority        int             `json:"priority"`
}

// CreateEntryRequest is a manual grant, gated by the eligibility guard.
type CreateEntryRequest struct {
	EmployeeID  string          `json:"employee_id" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount"`
	IsDeduction bool            `json:"is_deduction"`
	Description string          `json:"description" binding:"required"`
	CutoffFrom  string          `json:"cutoff_from" binding:"required,datetime=2006-01-02"`
	CutoffUntil string          `json:"cutoff_until" binding:"required,datetime=2006-01-02"`
}

type ApplyRulesRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	CutoffFrom  string `json:"cutoff_from" binding:"required,datetime=2006-01-02"`
	CutoffUntil string `json:"cutoff_until" binding:"required,datetime=2006-01-02"`
	SemiMonthly *bool  `json:"semi_monthly"`
}

type ApplyRulesResponse struct {
	Applied int `json:"applied"`
	// Skipped counts matching rules already journaled for the cutoff.
	Skipped int             `json:"skipped"`
	Entries []EntryResponse `json:"entries"`
}

type EntryResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	RuleID      string          `json:"rule_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	IsDeduction bool            `json:"is_deduction"`
	Description string          `json:"description"`
	CutoffFrom  string          `json:"cutoff_from"`
	CutoffUntil string          `json:"cutoff_until"`
}
