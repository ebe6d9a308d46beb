package loan

import (
	"context"
	"time"

	"centraljuan-hris/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, loan *Loan) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Loan, error)
	FindActiveByEmployee(ctx context.Context, companyID, employeeID string) ([]Loan, error)
	FindJournal(ctx context.Context, companyID, loanID string) ([]JournalEntry, error)
	CreditSumInRange(ctx context.Context, companyID, loanID string, from, until time.Time) (decimal.Decimal, bool, error)
	ApplyRepayment(ctx context.Context, companyID, loanID string, amount decimal.Decimal, entryDate time.Time, note string) (*Loan, decimal.Decimal, error)
	CreateSkipRequest(ctx context.Context, req *SkipRequest) error
	FindSkipByIDAndCompany(ctx context.Context, companyID, id string) (*SkipRequest, error)
	UpdateSkipRequest(ctx context.Context, req *SkipRequest) error
	HasApprovedSkip(ctx context.Context, companyID, loanID string, from, until time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, loan *Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Loan, error) {
	var loan Loan
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&loan, "id = ?", id).Error
	return &loan, err
}

func (r *repository) FindActiveByEmployee(ctx context.Context, companyID, employeeID string) ([]Loan, error) {
	var loans []Loan
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND status = ? AND balance > 0", employeeID, StatusActive).
		Order("created_at ASC").
		Find(&loans).Error
	return loans, err
}

func (r *repository) FindJournal(ctx context.Context, companyID, loanID string) ([]JournalEntry, error) {
	var entries []JournalEntry
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("loan_id = ?", loanID).
		Order("entry_date ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

// CreditSumInRange reports the credited total inside the range together with
// whether any credit entries exist at all. A zero sum with entries present is
// a real figure, not an absence.
func (r *repository) CreditSumInRange(ctx context.Context, companyID, loanID string, from, until time.Time) (decimal.Decimal, bool, error) {
	var agg struct {
		Total   decimal.Decimal
		Entries int64
	}
	err := r.db.WithContext(ctx).
		Model(&JournalEntry{}).
		Scopes(tenant.Scope(companyID)).
		Where("loan_id = ? AND entry_type = ?", loanID, EntryCredit).
		Where("entry_date BETWEEN ? AND ?", from, until).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS entries").
		Scan(&agg).Error
	return agg.Total, agg.Entries > 0, err
}

// ApplyRepayment journals one credit entry and decrements the balance in a
// single transaction. The applied amount is clamped to the remaining balance
// under a row lock, so concurrent batches cannot overdraw a loan.
func (r *repository) ApplyRepayment(ctx context.Context, companyID, loanID string, amount decimal.Decimal, entryDate time.Time, note string) (*Loan, decimal.Decimal, error) {
	var (
		loan    Loan
		applied decimal.Decimal
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(tenant.Scope(companyID)).
			First(&loan, "id = ?", loanID).Error; err != nil {
			return err
		}

		applied = amount
		if applied.GreaterThan(loan.Balance) {
			applied = loan.Balance
		}
		applied = applied.Round(2)

		entry := JournalEntry{
			ID:        uuid.New(),
			CompanyID: loan.CompanyID,
			LoanID:    loan.ID,
			EntryType: EntryCredit,
			Amount:    applied,
			EntryDate: entryDate,
			Note:      note,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		loan.Balance = loan.Balance.Sub(applied).Round(2)
		if loan.Balance.LessThanOrEqual(decimal.Zero) {
			loan.Balance = decimal.Zero
			loan.Status = StatusPaid
		}
		return tx.Save(&loan).Error
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return &loan, applied, nil
}

func (r *repository) CreateSkipRequest(ctx context.Context, req *SkipRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindSkipByIDAndCompany(ctx context.Context, companyID, id string) (*SkipRequest, error) {
	var req SkipRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) UpdateSkipRequest(ctx context.Context, req *SkipRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *repository) HasApprovedSkip(ctx context.Context, companyID, loanID string, from, until time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SkipRequest{}).
		Scopes(tenant.Scope(companyID)).
		Where("loan_id = ? AND status = ?", loanID, SkipApproved).
		Where("cutoff_from <= ? AND cutoff_until >= ?", until, from).
		Count(&count).Error
	return count > 0, err
}
