package attendance

import "github.com/shopspring/decimal"

type CreateRecordRequest struct {
	EmployeeID            string          `json:"employee_id" binding:"required,uuid"`
	WorkDate              string          `json:"work_date" binding:"required,datetime=2006-01-02"`
	MorningIn             string          `json:"morning_in" binding:"omitempty,datetime=15:04:05"`
	MorningOut            string          `json:"morning_out" binding:"omitempty,datetime=15:04:05"`
	AfternoonIn           string          `json:"afternoon_in" binding:"omitempty,datetime=15:04:05"`
	AfternoonOut          string          `json:"afternoon_out" binding:"omitempty,datetime=15:04:05"`
	DaysCredited          decimal.Decimal `json:"days_credited"`
	OvertimeHours         decimal.Decimal `json:"overtime_hours"`
	TotalRenderedHours    decimal.Decimal `json:"total_rendered_hours"`
	NetWorkMinutes        int             `json:"net_work_minutes" binding:"gte=0"`
	ActualRenderedMinutes int             `json:"actual_rendered_minutes" binding:"gte=0"`
	LateMinutes           int             `json:"late_minutes" binding:"gte=0"`
	Schedule              *ScheduleInput  `json:"schedule"`
}

// ScheduleInput carries either the explicit rest-day flag or, for legacy
// imports, sentinel start/end strings that the shim translates.
type ScheduleInput struct {
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TotalMinutes int    `json:"total_minutes" binding:"gte=0"`
	IsRestDay    *bool  `json:"is_rest_day"`
}

type RecordResponse struct {
	ID                    string          `json:"id"`
	EmployeeID            string          `json:"employee_id"`
	WorkDate              string          `json:"work_date"`
	MorningIn             string          `json:"morning_in,omitempty"`
	MorningOut            string          `json:"morning_out,omitempty"`
	AfternoonIn           string          `json:"afternoon_in,omitempty"`
	AfternoonOut          string          `json:"afternoon_out,omitempty"`
	DaysCredited          decimal.Decimal `json:"days_credited"`
	OvertimeHours         decimal.Decimal `json:"overtime_hours"`
	TotalRenderedHours    decimal.Decimal `json:"total_rendered_hours"`
	NetWorkMinutes        int             `json:"net_work_minutes"`
	ActualRenderedMinutes int             `json:"actual_rendered_minutes"`
	LateMinutes           int             `json:"late_minutes"`
	IsRestDay             bool            `json:"is_rest_day"`
	IsAbsence             bool            `json:"is_absence"`
}

type RangeQuery struct {
	EmployeeID string `form:"employee_id" binding:"required,uuid"`
	DateFrom   string `form:"date_from" binding:"required,datetime=2006-01-02"`
	DateUntil  string `form:"date_until" binding:"required,datetime=2006-01-02"`
}

// Summary is the cutoff aggregate the payroll engine consumes.
type Summary struct {
	TotalDays          decimal.Decimal `json:"total_days"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	TotalRenderedHours decimal.Decimal `json:"total_rendered_hours"`
	// MaxDailyHours is the single best day in the range; reward rules
	// threshold on it.
	MaxDailyHours decimal.Decimal `json:"max_daily_hours"`
	LateHours     decimal.Decimal `json:"late_hours"`
	Absences      int             `json:"absences"`
}
