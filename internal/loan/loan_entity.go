package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ScheduleMonthly        = "MONTHLY"
	ScheduleSemiMonthly    = "SEMI_MONTHLY"
	ScheduleCurrentPayroll = "CURRENT_PAYROLL"

	StatusActive = "ACTIVE"
	StatusPaid   = "PAID"

	EntryCredit = "credit"
	EntryDebit  = "debit"

	SkipPending  = "PENDING"
	SkipApproved = "APPROVED"
	SkipRejected = "REJECTED"
)

// Loan balance never goes negative; every repayment is clamped before it is
// journaled.
type Loan struct {
	ID                uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID         uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID        uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;index"`
	LoanAmount        decimal.Decimal `gorm:"column:loan_amount;type:numeric(14,2);not null"`
	Balance           decimal.Decimal `gorm:"column:balance;type:numeric(14,2);not null"`
	DeductionSchedule string          `gorm:"column:deduction_schedule;type:varchar(20);not null"`
	PayablePerTerm    decimal.Decimal `gorm:"column:payable_per_term;type:numeric(14,2);not null"`
	Status            string          `gorm:"column:status;type:varchar(20);not null;default:'ACTIVE'"`
	Remarks           string          `gorm:"column:remarks;type:text"`
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Loan) TableName() string {
	return "loans"
}

// JournalEntry is immutable once written.
type JournalEntry struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	LoanID    uuid.UUID       `gorm:"column:loan_id;type:uuid;not null;index"`
	EntryType string          `gorm:"column:entry_type;type:varchar(10);not null"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	EntryDate time.Time       `gorm:"column:entry_date;type:date;not null"`
	Note      string          `gorm:"column:note;type:text"`
	CreatedAt time.Time       `gorm:"column:created_at"`
}

func (JournalEntry) TableName() string {
	return "loan_journal_entries"
}

type SkipRequest struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	LoanID      uuid.UUID  `gorm:"column:loan_id;type:uuid;not null;index"`
	CutoffFrom  time.Time  `gorm:"column:cutoff_from;type:date;not null"`
	CutoffUntil time.Time  `gorm:"column:cutoff_until;type:date;not null"`
	Reason      string     `gorm:"column:reason;type:text"`
	Status      string     `gorm:"column:status;type:varchar(20);not null;default:'PENDING'"`
	DecidedAt   *time.Time `gorm:"column:decided_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (SkipRequest) TableName() string {
	return "loan_skip_requests"
}

func ValidSchedule(s string) bool {
	switch s {
	case ScheduleMonthly, ScheduleSemiMonthly, ScheduleCurrentPayroll:
		return true
	}
	return false
}
