package loan_test

import (
	"context"
	"testing"
	"time"

	"centraljuan-hris/internal/loan"
	loanerrors "centraljuan-hris/internal/loan/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

type fakeLoanRepository struct {
	createFn             func(ctx context.Context, l *loan.Loan) error
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*loan.Loan, error)
	findActiveFn         func(ctx context.Context, companyID, employeeID string) ([]loan.Loan, error)
	findJournalFn        func(ctx context.Context, companyID, loanID string) ([]loan.JournalEntry, error)
	creditSumFn          func(ctx context.Context, companyID, loanID string, from, until time.Time) (decimal.Decimal, bool, error)
	applyRepaymentFn     func(ctx context.Context, companyID, loanID string, amount decimal.Decimal, entryDate time.Time, note string) (*loan.Loan, decimal.Decimal, error)
	createSkipFn         func(ctx context.Context, req *loan.SkipRequest) error
	findSkipFn           func(ctx context.Context, companyID, id string) (*loan.SkipRequest, error)
	updateSkipFn         func(ctx context.Context, req *loan.SkipRequest) error
	hasApprovedSkipFn    func(ctx context.Context, companyID, loanID string, from, until time.Time) (bool, error)
}

func (f *fakeLoanRepository) Create(ctx context.Context, l *loan.Loan) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLoanRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*loan.Loan, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLoanRepository) FindActiveByEmployee(ctx context.Context, companyID, employeeID string) ([]loan.Loan, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeLoanRepository) FindJournal(ctx context.Context, companyID, loanID string) ([]loan.JournalEntry, error) {
	if f.findJournalFn != nil {
		return f.findJournalFn(ctx, companyID, loanID)
	}
	return nil, nil
}

func (f *fakeLoanRepository) CreditSumInRange(ctx context.Context, companyID, loanID string, from, until time.Time) (decimal.Decimal, bool, error) {
	if f.creditSumFn != nil {
		return f.creditSumFn(ctx, companyID, loanID, from, until)
	}
	return decimal.Zero, false, nil
}

func (f *fakeLoanRepository) ApplyRepayment(ctx context.Context, companyID, loanID string, amount decimal.Decimal, entryDate time.Time, note string) (*loan.Loan, decimal.Decimal, error) {
	if f.applyRepaymentFn != nil {
		return f.applyRepaymentFn(ctx, companyID, loanID, amount, entryDate, note)
	}
	return nil, decimal.Zero, nil
}

func (f *fakeLoanRepository) CreateSkipRequest(ctx context.Context, req *loan.SkipRequest) error {
	if f.createSkipFn != nil {
		return f.createSkipFn(ctx, req)
	}
	return nil
}

func (f *fakeLoanRepository) FindSkipByIDAndCompany(ctx context.Context, companyID, id string) (*loan.SkipRequest, error) {
	if f.findSkipFn != nil {
		return f.findSkipFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLoanRepository) UpdateSkipRequest(ctx context.Context, req *loan.SkipRequest) error {
	if f.updateSkipFn != nil {
		return f.updateSkipFn(ctx, req)
	}
	return nil
}

func (f *fakeLoanRepository) HasApprovedSkip(ctx context.Context, companyID, loanID string, from, until time.Time) (bool, error) {
	if f.hasApprovedSkipFn != nil {
		return f.hasApprovedSkipFn(ctx, companyID, loanID, from, until)
	}
	return false, nil
}

func TestLoanService_Create_RejectsNonPositiveAmounts(t *testing.T) {
	svc := loan.NewService(&fakeLoanRepository{})

	_, err := svc.Create(context.Background(), uuid.New().String(), loan.CreateLoanRequest{
		EmployeeID:        uuid.New().String(),
		LoanAmount:        decimal.Zero,
		DeductionSchedule: loan.ScheduleMonthly,
		PayablePerTerm:    dec("500"),
	})

	assert.ErrorIs(t, err, loanerrors.ErrAmountNotPositive)
}

func TestLoanService_BatchApply_PartialFailure(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	goodID := uuid.New().String()
	missingID := uuid.New().String()
	settledID := uuid.New().String()

	repo := &fakeLoanRepository{
		findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*loan.Loan, error) {
			switch id {
			case goodID:
				return &loan.Loan{
					ID:             uuid.MustParse(goodID),
					Balance:        dec("1000"),
					PayablePerTerm: dec("500"),
					Status:         loan.StatusActive,
				}, nil
			case settledID:
				return &loan.Loan{
					ID:      uuid.MustParse(settledID),
					Balance: decimal.Zero,
					Status:  loan.StatusPaid,
				}, nil
			default:
				return nil, gorm.ErrRecordNotFound
			}
		},
		applyRepaymentFn: func(ctx context.Context, cid, id string, amount decimal.Decimal, entryDate time.Time, note string) (*loan.Loan, decimal.Decimal, error) {
			return &loan.Loan{
				ID:      uuid.MustParse(id),
				Balance: dec("1000").Sub(amount),
				Status:  loan.StatusActive,
			}, amount, nil
		},
	}
	svc := loan.NewService(repo)

	summary, err := svc.BatchApply(ctx, companyID, loan.BatchApplyRequest{
		EntryDate: "2026-03-15",
		Items: []loan.BatchApplyItem{
			{LoanID: goodID},
			{LoanID: missingID},
			{LoanID: settledID},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.Len(t, summary.Results, 3)

	assert.Empty(t, summary.Results[0].Error)
	assert.True(t, summary.Results[0].Applied.Equal(dec("500")))
	assert.True(t, summary.Results[0].Balance.Equal(dec("500")))

	assert.Equal(t, loanerrors.ErrLoanNotFound.Message, summary.Results[1].Error)
	assert.Equal(t, loanerrors.ErrLoanPaid.Message, summary.Results[2].Error)
}

func TestLoanService_BatchApply_AmountOverride(t *testing.T) {
	ctx := context.Background()
	loanID := uuid.New().String()
	override := dec("250")

	var applied decimal.Decimal
	repo := &fakeLoanRepository{
		findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*loan.Loan, error) {
			return &loan.Loan{
				ID:             uuid.MustParse(loanID),
				Balance:        dec("1000"),
				PayablePerTerm: dec("500"),
				Status:         loan.StatusActive,
			}, nil
		},
		applyRepaymentFn: func(ctx context.Context, cid, id string, amount decimal.Decimal, entryDate time.Time, note string) (*loan.Loan, decimal.Decimal, error) {
			applied = amount
			return &loan.Loan{ID: uuid.MustParse(id), Balance: dec("750")}, amount, nil
		},
	}
	svc := loan.NewService(repo)

	summary, err := svc.BatchApply(ctx, uuid.New().String(), loan.BatchApplyRequest{
		EntryDate: "2026-03-15",
		Items:     []loan.BatchApplyItem{{LoanID: loanID, Amount: &override}},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.True(t, applied.Equal(override))
}

func TestLoanService_DecideSkip(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	skipID := uuid.New()

	t.Run("approve pending", func(t *testing.T) {
		repo := &fakeLoanRepository{
			findSkipFn: func(ctx context.Context, cid, id string) (*loan.SkipRequest, error) {
				return &loan.SkipRequest{ID: skipID, LoanID: uuid.New(), Status: loan.SkipPending}, nil
			},
		}
		svc := loan.NewService(repo)

		resp, err := svc.DecideSkip(ctx, companyID, skipID.String(), loan.DecideSkipRequest{Approve: true})

		assert.NoError(t, err)
		assert.Equal(t, loan.SkipApproved, resp.Status)
	})

	t.Run("already decided", func(t *testing.T) {
		repo := &fakeLoanRepository{
			findSkipFn: func(ctx context.Context, cid, id string) (*loan.SkipRequest, error) {
				return &loan.SkipRequest{ID: skipID, LoanID: uuid.New(), Status: loan.SkipApproved}, nil
			},
		}
		svc := loan.NewService(repo)

		_, err := svc.DecideSkip(ctx, companyID, skipID.String(), loan.DecideSkipRequest{Approve: false})

		assert.ErrorIs(t, err, loanerrors.ErrSkipNotPending)
	})
}
