package reward

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PayoutFixed      = "fixed"
	PayoutPerHour    = "per_hour"
	PayoutPercentage = "percentage"

	ScopeAll        = "all"
	ScopeDepartment = "department"
	ScopePosition   = "position"
)

// Rule is evaluated in ascending priority. A rule with is_deduction acts as
// a penalty and subtracts from the others total.
type Rule struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID       uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	Name            string          `gorm:"column:name;type:varchar(120);not null"`
	PayoutType      string          `gorm:"column:payout_type;type:varchar(20);not null"`
	PayoutValue     decimal.Decimal `gorm:"column:payout_value;type:numeric(14,2);not null"`
	MinTotalHours   decimal.Decimal `gorm:"column:min_total_hours;type:numeric(6,2);not null;default:0"`
	MinDailyHours   decimal.Decimal `gorm:"column:min_daily_hours;type:numeric(6,2);not null;default:0"`
	MinDaysCredited decimal.Decimal `gorm:"column:min_days_credited;type:numeric(6,2);not null;default:0"`
	IsDeduction     bool            `gorm:"column:is_deduction;not null;default:false"`
	AppliesScope    string          `gorm:"column:applies_scope;type:varchar(20);not null;default:'all'"`
	DepartmentID    *uuid.UUID      `gorm:"column:department_id;type:uuid"`
	PositionID      *uuid.UUID      `gorm:"column:position_id;type:uuid"`
	Priority        int             `gorm:"column:priority;not null;default:100"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Rule) TableName() string {
	return "reward_rules"
}

// JournalEntry is the realized application of a rule, or a manual grant, to
// one employee for one cutoff.
type JournalEntry struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID  uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;index"`
	RuleID      *uuid.UUID      `gorm:"column:rule_id;type:uuid"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	IsDeduction bool            `gorm:"column:is_deduction;not null;default:false"`
	Description string          `gorm:"column:description;type:text;not null"`
	CutoffFrom  time.Time       `gorm:"column:cutoff_from;type:date;not null"`
	CutoffUntil time.Time       `gorm:"column:cutoff_until;type:date;not null"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
}

func (JournalEntry) TableName() string {
	return "reward_journal_entries"
}

func ValidPayoutType(t string) bool {
	switch t {
	case PayoutFixed, PayoutPerHour, PayoutPercentage:
		return true
	}
	return false
}

func ValidScope(s string) bool {
	switch s {
	case ScopeAll, ScopeDepartment, ScopePosition:
		return true
	}
	return false
}
