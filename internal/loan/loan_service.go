package loan

import (
	"context"
	stderrors "errors"
	"time"

	"centraljuan-hris/internal/loan/errors"
	"centraljuan-hris/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateLoanRequest) (LoanResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) ([]LoanResponse, error)
	GetJournal(ctx context.Context, companyID, loanID string) ([]JournalEntryResponse, error)
	BatchApply(ctx context.Context, companyID string, req BatchApplyRequest) (BatchApplySummary, error)
	RequestSkip(ctx context.Context, companyID, loanID string, req CreateSkipRequest) (SkipRequestResponse, error)
	DecideSkip(ctx context.Context, companyID, skipID string, req DecideSkipRequest) (SkipRequestResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("loan.service"),
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateLoanRequest) (LoanResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LoanResponse{}, apperror.InvalidField("company id")
	}
	if !req.LoanAmount.IsPositive() || !req.PayablePerTerm.IsPositive() {
		return LoanResponse{}, errors.ErrAmountNotPositive
	}
	if !ValidSchedule(req.DeductionSchedule) {
		return LoanResponse{}, apperror.InvalidField("deduction_schedule")
	}

	loan := &Loan{
		ID:                uuid.New(),
		CompanyID:         companyUUID,
		EmployeeID:        uuid.MustParse(req.EmployeeID),
		LoanAmount:        req.LoanAmount.Round(2),
		Balance:           req.LoanAmount.Round(2),
		DeductionSchedule: req.DeductionSchedule,
		PayablePerTerm:    req.PayablePerTerm.Round(2),
		Status:            StatusActive,
		Remarks:           req.Remarks,
	}

	if err := s.repo.Create(ctx, loan); err != nil {
		return LoanResponse{}, err
	}
	return mapToResponse(*loan), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) ([]LoanResponse, error) {
	loans, err := s.repo.FindActiveByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]LoanResponse, len(loans))
	for i, l := range loans {
		resp[i] = mapToResponse(l)
	}
	return resp, nil
}

func (s *service) GetJournal(ctx context.Context, companyID, loanID string) ([]JournalEntryResponse, error) {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, loanID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrLoanNotFound
		}
		return nil, err
	}

	entries, err := s.repo.FindJournal(ctx, companyID, loanID)
	if err != nil {
		return nil, err
	}

	resp := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = JournalEntryResponse{
			ID:        e.ID.String(),
			LoanID:    e.LoanID.String(),
			EntryType: e.EntryType,
			Amount:    e.Amount,
			EntryDate: e.EntryDate.Format("2006-01-02"),
			Note:      e.Note,
		}
	}
	return resp, nil
}

// BatchApply attempts each loan independently. A failure records the reason
// in the summary and moves on; nothing already committed is rolled back.
func (s *service) BatchApply(ctx context.Context, companyID string, req BatchApplyRequest) (BatchApplySummary, error) {
	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return BatchApplySummary{}, apperror.InvalidField("entry_date")
	}

	summary := BatchApplySummary{Results: make([]BatchApplyResult, 0, len(req.Items))}
	for _, item := range req.Items {
		result := s.applyOne(ctx, companyID, item, entryDate)
		if result.Error == "" {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}

	s.logger.Info("loan batch applied",
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (s *service) applyOne(ctx context.Context, companyID string, item BatchApplyItem, entryDate time.Time) BatchApplyResult {
	result := BatchApplyResult{LoanID: item.LoanID}

	loan, err := s.repo.FindByIDAndCompany(ctx, companyID, item.LoanID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			result.Error = errors.ErrLoanNotFound.Message
		} else {
			result.Error = err.Error()
		}
		return result
	}
	if loan.Status != StatusActive || !loan.Balance.IsPositive() {
		result.Error = errors.ErrLoanPaid.Message
		return result
	}

	amount := loan.PayablePerTerm
	if item.Amount != nil {
		amount = *item.Amount
	}
	if !amount.IsPositive() {
		result.Error = errors.ErrAmountNotPositive.Message
		return result
	}

	updated, applied, err := s.repo.ApplyRepayment(ctx, companyID, item.LoanID, amount, entryDate, item.Note)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Applied = applied
	result.Balance = updated.Balance
	return result
}

func (s *service) RequestSkip(ctx context.Context, companyID, loanID string, req CreateSkipRequest) (SkipRequestResponse, error) {
	loan, err := s.repo.FindByIDAndCompany(ctx, companyID, loanID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return SkipRequestResponse{}, errors.ErrLoanNotFound
		}
		return SkipRequestResponse{}, err
	}

	from, err := time.Parse("2006-01-02", req.CutoffFrom)
	if err != nil {
		return SkipRequestResponse{}, apperror.InvalidField("cutoff_from")
	}
	until, err := time.Parse("2006-01-02", req.CutoffUntil)
	if err != nil {
		return SkipRequestResponse{}, apperror.InvalidField("cutoff_until")
	}
	if from.After(until) {
		return SkipRequestResponse{}, apperror.InvalidField("cutoff range")
	}

	skip := &SkipRequest{
		ID:          uuid.New(),
		CompanyID:   loan.CompanyID,
		LoanID:      loan.ID,
		CutoffFrom:  from,
		CutoffUntil: until,
		Reason:      req.Reason,
		Status:      SkipPending,
	}

	if err := s.repo.CreateSkipRequest(ctx, skip); err != nil {
		return SkipRequestResponse{}, err
	}
	return mapSkipToResponse(*skip), nil
}

func (s *service) DecideSkip(ctx context.Context, companyID, skipID string, req DecideSkipRequest) (SkipRequestResponse, error) {
	skip, err := s.repo.FindSkipByIDAndCompany(ctx, companyID, skipID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return SkipRequestResponse{}, errors.ErrSkipNotFound
		}
		return SkipRequestResponse{}, err
	}
	if skip.Status != SkipPending {
		return SkipRequestResponse{}, errors.ErrSkipNotPending
	}

	if req.Approve {
		skip.Status = SkipApproved
	} else {
		skip.Status = SkipRejected
	}
	now := time.Now().UTC()
	skip.DecidedAt = &now

	if err := s.repo.UpdateSkipRequest(ctx, skip); err != nil {
		return SkipRequestResponse{}, err
	}
	return mapSkipToResponse(*skip), nil
}

func mapToResponse(l Loan) LoanResponse {
	return LoanResponse{
		ID:                l.ID.String(),
		EmployeeID:        l.EmployeeID.String(),
		LoanAmount:        l.LoanAmount,
		Balance:           l.Balance,
		DeductionSchedule: l.DeductionSchedule,
		PayablePerTerm:    l.PayablePerTerm,
		Status:            l.Status,
		Remarks:           l.Remarks,
	}
}

func mapSkipToResponse(r SkipRequest) SkipRequestResponse {
	return SkipRequestResponse{
		ID:          r.ID.String(),
		LoanID:      r.LoanID.String(),
		CutoffFrom:  r.CutoffFrom.Format("2006-01-02"),
		CutoffUntil: r.CutoffUntil.Format("2006-01-02"),
		Reason:      r.Reason,
		Status:      r.Status,
	}
}
