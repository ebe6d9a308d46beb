package payroll

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"centraljuan-hris/internal/attendance"
	"centraljuan-hris/internal/contribution"
	"centraljuan-hris/internal/employee"
	"centraljuan-hris/internal/events"
	"centraljuan-hris/internal/holiday"
	"centraljuan-hris/internal/leave"
	"centraljuan-hris/internal/loan"
	"centraljuan-hris/internal/messaging/kafka"
	"centraljuan-hris/internal/payroll/engine"
	"centraljuan-hris/internal/payroll/errors"
	"centraljuan-hris/internal/retro"
	"centraljuan-hris/internal/reward"
	"centraljuan-hris/internal/shared/apperror"
	"centraljuan-hris/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GenerateForCutoff(ctx context.Context, companyID string, req GenerateRequest) (GenerateResponse, error)
	ListByCutoff(ctx context.Context, companyID string, q ListQuery) ([]RowResponse, error)
	GetBreakdown(ctx context.Context, companyID, rowID string) (RowResponse, error)
	Recompute(ctx context.Context, companyID, rowID string) (RowResponse, error)
	SetIncentive(ctx context.Context, companyID, rowID string, req SetIncentiveRequest) (RowResponse, error)
	SetCommission(ctx context.Context, companyID, rowID string, req SetCommissionRequest) (RowResponse, error)
	SetAllowances(ctx context.Context, companyID, rowID string, req SetAllowancesRequest) (RowResponse, error)
	SetOneOffDeduction(ctx context.Context, companyID, rowID string, req SetOneOffDeductionRequest) (RowResponse, error)
	ApplyRetro(ctx context.Context, companyID, rowID string, req ApplyRetroRequest) (RowResponse, error)
	Finalize(ctx context.Context, companyID, rowID string) (RowResponse, error)
	RequestPayslip(ctx context.Context, companyID, rowID string) error
	ExportRegister(ctx context.Context, companyID string, q ListQuery) ([]byte, error)
	BuildPayslip(ctx context.Context, companyID, rowID string) ([]byte, error)
}

type service struct {
	repo             Repository
	employeeRepo     employee.Repository
	attendanceSvc    attendance.Service
	leaveSvc         leave.Service
	holidaySvc       holiday.Service
	loanRepo         loan.Repository
	rewardSvc        reward.Service
	retroSvc         retro.Service
	contributionRepo contribution.Repository
	outboxRepo       kafka.OutboxRepository
	logger           *zap.Logger
}

func NewService(
	repo Repository,
	employeeRepo employee.Repository,
	attendanceSvc attendance.Service,
	leaveSvc leave.Service,
	holidaySvc holiday.Service,
	loanRepo loan.Repository,
	rewardSvc reward.Service,
	retroSvc retro.Service,
	contributionRepo contribution.Repository,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		repo:             repo,
		employeeRepo:     employeeRepo,
		attendanceSvc:    attendanceSvc,
		leaveSvc:         leaveSvc,
		holidaySvc:       holidaySvc,
		loanRepo:         loanRepo,
		rewardSvc:        rewardSvc,
		retroSvc:         retroSvc,
		contributionRepo: contributionRepo,
		outboxRepo:       outboxRepo,
		logger:           zap.L().Named("payroll.service"),
	}
}

// GenerateForCutoff creates or refreshes one row per active employee.
// Generation is idempotent per employee/cutoff: an existing draft row is
// recomputed in place, never duplicated, and a finalized row is returned
// untouched.
func (s *service) GenerateForCutoff(ctx context.Context, companyID string, req GenerateRequest) (GenerateResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return GenerateResponse{}, apperror.InvalidField("company id")
	}

	from, until, err := parseCutoff(req.DateFrom, req.DateUntil)
	if err != nil {
		return GenerateResponse{}, err
	}
	semiMonthly := true
	if req.SemiMonthly != nil {
		semiMonthly = *req.SemiMonthly
	}

	employees, err := s.employeeRepo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return GenerateResponse{}, err
	}
	if len(employees) == 0 {
		return GenerateResponse{}, errors.ErrEmptyCutoff
	}

	resp := GenerateResponse{Rows: make([]RowResponse, 0, len(employees))}
	for _, emp := range employees {
		row, err := s.repo.FindByEmployeeAndCutoff(ctx, companyID, emp.ID.String(), from, until)
		switch {
		case err == nil:
			if row.Status == StatusFinal {
				resp.Skipped++
				resp.Rows = append(resp.Rows, mapRowToResponse(*row))
				continue
			}
			resp.Recomputed++
		case stderrors.Is(err, gorm.ErrRecordNotFound):
			row = &Row{
				ID:          uuid.New(),
				CompanyID:   companyUUID,
				EmployeeID:  emp.ID,
				DateFrom:    from,
				DateUntil:   until,
				SemiMonthly: semiMonthly,
				Status:      StatusDraft,
			}
			if err := s.repo.Create(ctx, row); err != nil {
				return GenerateResponse{}, err
			}
			resp.Created++
		default:
			return GenerateResponse{}, err
		}

		recomputed, err := s.recomputeRow(ctx, companyID, row)
		if err != nil {
			return GenerateResponse{}, err
		}
		resp.Rows = append(resp.Rows, mapRowToResponse(*recomputed))
	}

	s.logger.Info("payroll generated",
		zap.String("company_id", companyID),
		zap.Int("created", resp.Created),
		zap.Int("recomputed", resp.Recomputed),
		zap.Int("skipped", resp.Skipped),
	)
	return resp, nil
}

func (s *service) ListByCutoff(ctx context.Context, companyID string, q ListQuery) ([]RowResponse, error) {
	from, until, err := parseCutoff(q.DateFrom, q.DateUntil)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByCutoff(ctx, companyID, from, until)
	if err != nil {
		return nil, err
	}

	resp := make([]RowResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapRowToResponse(row)
	}
	return resp, nil
}

func (s *service) GetBreakdown(ctx context.Context, companyID, rowID string) (RowResponse, error) {
	row, err := s.findRow(ctx, companyID, rowID)
	if err != nil {
		return RowResponse{}, err
	}
	return mapRowToResponse(*row), nil
}

// Recompute reassembles the engine input from the live providers, persists
// the derived figures, and returns the updated row. Mutating callers use
// this as their command/response contract; there is no refresh broadcast.
func (s *service) Recompute(ctx context.Context, companyID, rowID string) (RowResponse, error) {
	row, err := s.findRow(ctx, companyID, rowID)
	if err != nil {
		return RowResponse{}, err
	}
	if row.Status == StatusFinal {
		return RowResponse{}, errors.ErrRowFinal
	}

	recomputed, err := s.recomputeRow(ctx, companyID, row)
	if err != nil {
		return RowResponse{}, err
	}

	s.publishRecomputed(ctx, companyID, recomputed)
	return mapRowToResponse(*recomputed), nil
}

// publishRecomputed queues the cross-process sync event. The HTTP caller
// already holds the fresh row from the response, so a failure here is logged
// and swallowed rather than failing the command.
func (s *service) publishRecomputed(ctx context.Context, companyID string, row *Row) {
	event := events.PayrollRecomputedEvent{
		EventType:  "payroll_recomputed",
		RequestID:  contextutil.GetRequestID(ctx),
		PayrollID:  row.ID.String(),
		EmployeeID: row.EmployeeID.String(),
		CompanyID:  companyID,
		DateFrom:   row.DateFrom.Format("2006-01-02"),
		DateUntil:  row.DateUntil.Format("2006-01-02"),
		NetPay:     row.Net.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("recomputed event marshal failed", zap.Error(err))
		return
	}

	err = s.outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "payroll_row",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollRecomputedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Warn("recomputed event enqueue failed", zap.Error(err))
	}
}

func (s *service) SetIncentive(ctx context.Context, companyID, rowID string, req SetIncentiveRequest) (RowResponse, error) {
	if req.Amount.IsNegative() {
		return RowResponse{}, apperror.InvalidField("amount")
	}
	return s.mutateAndRecompute(ctx, companyID, rowID, func(row *Row) {
		row.IncentiveAmount = req.Amount.Round(2)
		row.IncentiveRemarks = req.Remarks
	})
}

// SetCommission records the cutoff's commission total. For a
// commission-based employee the engine swaps it in as the effective base
// whenever it beats the computed base pay.
func (s *service) SetCommission(ctx context.Context, companyID, rowID string, req SetCommissionRequest) (RowResponse, error) {
	if req.Amount.IsNegative() {
		return RowResponse{}, apperror.InvalidField("amount")
	}
	return s.mutateAndRecompute(ctx, companyID, rowID, func(row *Row) {
		row.TotalCommission = req.Amount.Round(2)
	})
}

func (s *service) SetAllowances(ctx context.Context, companyID, rowID string, req SetAllowancesRequest) (RowResponse, error) {
	if req.Amount.IsNegative() {
		return RowResponse{}, apperror.InvalidField("amount")
	}
	return s.mutateAndRecompute(ctx, companyID, rowID, func(row *Row) {
		row.Allowances = req.Amount.Round(2)
	})
}

func (s *service) SetOneOffDeduction(ctx context.Context, companyID, rowID string, req SetOneOffDeductionRequest) (RowResponse, error) {
	if req.Amount.IsNegative() {
		return RowResponse{}, apperror.InvalidField("amount")
	}
	return s.mutateAndRecompute(ctx, companyID, rowID, func(row *Row) {
		row.DeductionOneOff = req.Amount.Round(2)
	})
}

// ApplyRetro moves a pending adjustment onto this row and folds its amount
// into the retro total.
func (s *service) ApplyRetro(ctx context.Context, companyID, rowID string, req ApplyRetroRequest) (RowResponse, error) {
	row, err := s.findRow(ctx, companyID, rowID)
	if err != nil {
		return RowResponse{}, err
	}
	if row.Status == StatusFinal {
		return RowResponse{}, errors.ErrRowFinal
	}

	applied, err := s.retroSvc.MarkApplied(ctx, companyID, req.RetroID, rowID)
	if err != nil {
		return RowResponse{}, err
	}

	row.TotalRetroApplied = row.TotalRetroApplied.Add(applied.Amount).Round(2)
	recomputed, err := s.recomputeRow(ctx, companyID, row)
	if err != nil {
		return RowResponse{}, err
	}
	return mapRowToResponse(*recomputed), nil
}

func (s *service) Finalize(ctx context.Context, companyID, rowID string) (RowResponse, error) {
	row, err := s.findRow(ctx, companyID, rowID)
	if err != nil {
		return RowResponse{}, err
	}
	if row.Status == StatusFinal {
		return mapRowToResponse(*row), nil
	}

	row.Status = StatusFinal
	if err := s.repo.Update(ctx, row); err != nil {
		return RowResponse{}, err
	}

	s.logger.Info("payroll row finalized",
		zap.String("row_id", rowID),
		zap.String("employee_id", row.EmployeeID.String()),
	)
	return mapRowToResponse(*row), nil
}

// RequestPayslip queues an outbox event; the consumer renders the PDF.
func (s *service) RequestPayslip(ctx context.Context, companyID, rowID string) error {
	row, err := s.findRow(ctx, companyID, rowID)
	if err != nil {
		return err
	}

	event := events.PayrollPayslipRequestedEvent{
		EventType:   "payroll_payslip_requested",
		RequestID:   contextutil.GetRequestID(ctx),
		PayrollID:   row.ID.String(),
		CompanyID:   companyID,
		RequestedBy: contextutil.GetUserID(ctx),
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "payroll_row",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollPayslipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) mutateAndRecompute(ctx context.Context, companyID, rowID string, mutate func(*Row)) (RowResponse, error) {
	row, err := s.findRow(ctx, companyID, rowID)
	if err != nil {
		return RowResponse{}, err
	}
	if row.Status == StatusFinal {
		return RowResponse{}, errors.ErrRowFinal
	}

	mutate(row)
	recomputed, err := s.recomputeRow(ctx, companyID, row)
	if err != nil {
		return RowResponse{}, err
	}
	return mapRowToResponse(*recomputed), nil
}

func (s *service) findRow(ctx context.Context, companyID, rowID string) (*Row, error) {
	row, err := s.repo.FindByIDAndCompany(ctx, companyID, rowID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRowNotFound
		}
		return nil, err
	}
	return row, nil
}

// recomputeRow snapshots the provider data onto the row, runs the engine,
// and persists everything including the per-loan lines.
func (s *service) recomputeRow(ctx context.Context, companyID string, row *Row) (*Row, error) {
	emp, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, row.EmployeeID.String())
	if err != nil {
		return nil, err
	}

	fromStr := row.DateFrom.Format("2006-01-02")
	untilStr := row.DateUntil.Format("2006-01-02")

	summary, err := s.attendanceSvc.SummarizeRange(ctx, companyID, attendance.RangeQuery{
		EmployeeID: row.EmployeeID.String(),
		DateFrom:   fromStr,
		DateUntil:  untilStr,
	})
	if err != nil {
		return nil, err
	}

	paidLeaveDays, err := s.leaveSvc.PaidDaysInCutoff(ctx, companyID, row.EmployeeID.String(), row.DateFrom, row.DateUntil)
	if err != nil {
		return nil, err
	}

	holidayCount, err := s.holidaySvc.CountInRange(ctx, companyID, row.DateFrom, row.DateUntil)
	if err != nil {
		return nil, err
	}

	loans, err := s.loanInputs(ctx, companyID, row)
	if err != nil {
		return nil, err
	}

	rewards, rewardPenalties, err := s.rewardSvc.SumForCutoff(ctx, companyID, row.EmployeeID.String(), row.DateFrom, row.DateUntil)
	if err != nil {
		return nil, err
	}

	contributionInput, err := s.contributionInput(ctx, companyID, row)
	if err != nil {
		return nil, err
	}

	// Snapshot inputs onto the row so a finalized row stays explainable
	// even after the source data moves on.
	row.EmployeeNumber = emp.EmployeeNumber
	row.EmployeeName = emp.FullName()
	row.EmployeeType = emp.EmployeeType
	row.SalaryType = emp.SalaryType
	row.DailyRate = emp.DailyRate
	row.MonthlyRate = emp.MonthlyRate
	row.CommissionBased = emp.CommissionBased
	row.TotalDays = summary.TotalDays
	row.OvertimeValue = summary.OvertimeHours
	row.OvertimeUnit = string(engine.OvertimeHours)
	row.TotalRenderedHours = summary.TotalRenderedHours
	row.LateHours = summary.LateHours
	row.HolidayCount = holidayCount
	row.PaidLeaveDays = paidLeaveDays
	row.TotalRewards = rewards.Sub(rewardPenalties).Round(2)

	input := engine.Input{
		EmployeeType:    emp.EmployeeType,
		SalaryType:      emp.SalaryType,
		CommissionBased: emp.CommissionBased,
		DailyRate:       emp.DailyRate,
		MonthlyRate:     emp.MonthlyRate,
		Cutoff: engine.Cutoff{
			DateFrom:    row.DateFrom,
			DateUntil:   row.DateUntil,
			SemiMonthly: row.SemiMonthly,
		},
		TotalDays:       summary.TotalDays,
		Overtime:        engine.Overtime{Unit: engine.OvertimeHours, Value: summary.OvertimeHours},
		HolidayCount:    holidayCount,
		PaidLeaveDays:   paidLeaveDays,
		LateHours:       summary.LateHours,
		Contribution:    contributionInput,
		Loans:           loans,
		Incentive:       row.IncentiveAmount,
		Rewards:         row.TotalRewards,
		RetroApplied:    row.TotalRetroApplied,
		OneOffDeduction: row.DeductionOneOff,
		Allowances:      row.Allowances,
		Commission:      row.TotalCommission,
	}

	breakdown := engine.Compute(input)
	applyBreakdown(row, breakdown)

	lines := make([]LoanLine, len(breakdown.LoanDeductions))
	for i, d := range breakdown.LoanDeductions {
		lines[i] = LoanLine{
			ID:           uuid.New(),
			PayrollRowID: row.ID,
			LoanID:       uuid.MustParse(d.LoanID),
			Amount:       d.Amount,
			Skipped:      d.Skipped,
		}
	}

	if err := s.repo.SaveWithLoanLines(ctx, row, lines); err != nil {
		return nil, err
	}
	row.LoanLines = lines
	return row, nil
}

func (s *service) loanInputs(ctx context.Context, companyID string, row *Row) ([]engine.LoanInput, error) {
	loans, err := s.loanRepo.FindActiveByEmployee(ctx, companyID, row.EmployeeID.String())
	if err != nil {
		return nil, err
	}

	inputs := make([]engine.LoanInput, len(loans))
	for i, l := range loans {
		creditSum, hasCredits, err := s.loanRepo.CreditSumInRange(ctx, companyID, l.ID.String(), row.DateFrom, row.DateUntil)
		if err != nil {
			return nil, err
		}
		skipped, err := s.loanRepo.HasApprovedSkip(ctx, companyID, l.ID.String(), row.DateFrom, row.DateUntil)
		if err != nil {
			return nil, err
		}

		inputs[i] = engine.LoanInput{
			ID:                   l.ID.String(),
			Balance:              l.Balance,
			Schedule:             l.DeductionSchedule,
			PayablePerTerm:       l.PayablePerTerm,
			JournalCreditInRange: creditSum,
			HasJournalCredit:     hasCredits,
			Skipped:              skipped,
		}
	}
	return inputs, nil
}

// contributionInput snapshots the employee's profile onto the row. A fresh
// hire without a profile deducts nothing; any other lookup failure aborts the
// recompute so a store outage never persists zeroed deductions.
func (s *service) contributionInput(ctx context.Context, companyID string, row *Row) (engine.ContributionInput, error) {
	profile, err := s.contributionRepo.FindByEmployee(ctx, companyID, row.EmployeeID.String())
	if err != nil {
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return engine.ContributionInput{}, err
		}
		row.ContributionDeductionType = contribution.DeductionSemiMonthly
		row.SSSRaw, row.PhilHealthRaw, row.PagIBIGRaw = decimal.Zero, decimal.Zero, decimal.Zero
		row.SSSOverride, row.PhilHealthOverride, row.PagIBIGOverride = false, false, false
		return engine.ContributionInput{DeductionType: engine.DeductionSemiMonthly}, nil
	}

	row.ContributionDeductionType = profile.DeductionType
	row.SSSRaw = profile.SSSAmount
	row.SSSOverride = profile.SSSOverride
	row.SSSOverrideAmount = profile.SSSOverrideAmount
	row.PhilHealthRaw = profile.PhilHealthAmount
	row.PhilHealthOverride = profile.PhilHealthOverride
	row.PhilHealthOverrideAmount = profile.PhilHealthOverrideAmount
	row.PagIBIGRaw = profile.PagIBIGAmount
	row.PagIBIGOverride = profile.PagIBIGOverride
	row.PagIBIGOverrideAmount = profile.PagIBIGOverrideAmount

	return engine.ContributionInput{
		DeductionType: profile.DeductionType,
		SSS: engine.ContributionField{
			RawShare:       profile.SSSAmount,
			Override:       profile.SSSOverride,
			OverrideAmount: profile.SSSOverrideAmount,
		},
		PhilHealth: engine.ContributionField{
			RawShare:       profile.PhilHealthAmount,
			Override:       profile.PhilHealthOverride,
			OverrideAmount: profile.PhilHealthOverrideAmount,
		},
		PagIBIG: engine.ContributionField{
			RawShare:       profile.PagIBIGAmount,
			Override:       profile.PagIBIGOverride,
			OverrideAmount: profile.PagIBIGOverrideAmount,
		},
	}, nil
}

func applyBreakdown(row *Row, b engine.Breakdown) {
	if b.TotalCredit != nil {
		row.TotalCredit = decimal.NewNullDecimal(*b.TotalCredit)
	} else {
		row.TotalCredit = decimal.NullDecimal{}
	}
	row.BasePay = b.BasePay
	row.EffectiveBase = b.EffectiveBase
	row.SSSShare = b.SSS
	row.PhilHealthShare = b.PhilHealth
	row.PagIBIGShare = b.PagIBIG
	row.LoanTotal = b.LoanTotal
	row.LateDeduction = b.LateDeduction
	row.SalaryAfterLate = b.SalaryAfterLate
	row.OthersNet = b.OthersNet
	row.Gross = b.Gross
	row.TotalDeduction = b.TotalDeduction
	row.Net = b.Net
}

func parseCutoff(fromStr, untilStr string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.InvalidField("date_from")
	}
	until, err := time.Parse("2006-01-02", untilStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.InvalidField("date_until")
	}
	if from.After(until) {
		return time.Time{}, time.Time{}, errors.ErrInvalidCutoff
	}
	return from, until, nil
}

func mapRowToResponse(row Row) RowResponse {
	resp := RowResponse{
		ID:             row.ID.String(),
		EmployeeID:     row.EmployeeID.String(),
		EmployeeNumber: row.EmployeeNumber,
		EmployeeName:   row.EmployeeName,
		EmployeeType:   row.EmployeeType,
		SalaryType:     row.SalaryType,
		DateFrom:       row.DateFrom.Format("2006-01-02"),
		DateUntil:      row.DateUntil.Format("2006-01-02"),
		Status:         row.Status,

		TotalDays:          row.TotalDays,
		OvertimeValue:      row.OvertimeValue,
		OvertimeUnit:       row.OvertimeUnit,
		TotalRenderedHours: row.TotalRenderedHours,
		LateHours:          row.LateHours,
		HolidayCount:       row.HolidayCount,
		PaidLeaveDays:      row.PaidLeaveDays,

		Rate:            row.DailyRate,
		BasePay:         row.BasePay,
		EffectiveBase:   row.EffectiveBase,
		IncentiveAmount: row.IncentiveAmount,
		IncentiveRemark: row.IncentiveRemarks,
		TotalCommission: row.TotalCommission,
		Allowances:      row.Allowances,
		TotalRewards:    row.TotalRewards,
		TotalRetro:      row.TotalRetroApplied,
		DeductionOneOff: row.DeductionOneOff,
		OthersNet:       row.OthersNet,
		SSS:             row.SSSShare,
		PhilHealth:      row.PhilHealthShare,
		PagIBIG:         row.PagIBIGShare,
		LoanTotal:       row.LoanTotal,
		LateDeduction:   row.LateDeduction,
		SalaryAfterLate: row.SalaryAfterLate,
		Gross:           row.Gross,
		TotalDeduction:  row.TotalDeduction,
		Net:             row.Net,
	}

	if row.SalaryType == engine.SalaryMonthly {
		resp.Rate = row.MonthlyRate
	}
	if row.TotalCredit.Valid {
		credit := row.TotalCredit.Decimal
		resp.TotalCredit = &credit
	}

	resp.LoanLines = make([]LoanLineResponse, len(row.LoanLines))
	for i, line := range row.LoanLines {
		resp.LoanLines[i] = LoanLineResponse{
			LoanID:  line.LoanID.String(),
			Amount:  line.Amount,
			Skipped: line.Skipped,
		}
	}
	return resp
}
