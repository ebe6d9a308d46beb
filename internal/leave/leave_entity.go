package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Leave struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	LeaveType  string         `gorm:"column:leave_type;type:varchar(40);not null"`
	IsPaid     bool           `gorm:"column:is_paid;not null;default:false"`
	DateFrom   time.Time      `gorm:"column:date_from;type:date;not null"`
	DateUntil  time.Time      `gorm:"column:date_until;type:date;not null"`
	Reason     string         `gorm:"column:reason;type:text"`
	Status     string         `gorm:"column:status;type:varchar(20);not null;default:'PENDING'"`
	DecidedBy  *uuid.UUID     `gorm:"column:decided_by;type:uuid"`
	DecidedAt  *time.Time     `gorm:"column:decided_at"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Leave) TableName() string {
	return "leaves"
}

// DaysInCutoff counts the calendar days of the leave span that fall inside
// the cutoff window. Both ranges are inclusive.
func (l Leave) DaysInCutoff(cutoffFrom, cutoffUntil time.Time) decimal.Decimal {
	from := l.DateFrom
	if cutoffFrom.After(from) {
		from = cutoffFrom
	}
	until := l.DateUntil
	if cutoffUntil.Before(until) {
		until = cutoffUntil
	}
	if from.After(until) {
		return decimal.Zero
	}
	days := int64(until.Sub(from).Hours()/24) + 1
	return decimal.NewFromInt(days)
}

// CountsAsPaid gates payroll credit: only approved paid leaves contribute.
func (l Leave) CountsAsPaid() bool {
	return l.Status == StatusApproved && l.IsPaid
}
