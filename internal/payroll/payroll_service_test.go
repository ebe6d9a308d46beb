package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"centraljuan-hris/internal/attendance"
	"centraljuan-hris/internal/contribution"
	"centraljuan-hris/internal/employee"
	"centraljuan-hris/internal/events"
	"centraljuan-hris/internal/holiday"
	"centraljuan-hris/internal/leave"
	"centraljuan-hris/internal/loan"
	"centraljuan-hris/internal/messaging/kafka"
	"centraljuan-hris/internal/payroll"
	payrollerrors "centraljuan-hris/internal/payroll/errors"
	"centraljuan-hris/internal/retro"
	"centraljuan-hris/internal/reward"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// --- fakes ---

type fakeRowRepository struct {
	rows map[string]*payroll.Row

	createFn            func(ctx context.Context, row *payroll.Row) error
	saveWithLoanLinesFn func(ctx context.Context, row *payroll.Row, lines []payroll.LoanLine) error
}

func newFakeRowRepository() *fakeRowRepository {
	return &fakeRowRepository{rows: make(map[string]*payroll.Row)}
}

func (f *fakeRowRepository) Create(ctx context.Context, row *payroll.Row) error {
	if f.createFn != nil {
		if err := f.createFn(ctx, row); err != nil {
			return err
		}
	}
	clone := *row
	f.rows[row.ID.String()] = &clone
	return nil
}

func (f *fakeRowRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*payroll.Row, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *row
	return &clone, nil
}

func (f *fakeRowRepository) FindByEmployeeAndCutoff(ctx context.Context, companyID, employeeID string, from, until time.Time) (*payroll.Row, error) {
	for _, row := range f.rows {
		if row.EmployeeID.String() == employeeID && row.DateFrom.Equal(from) && row.DateUntil.Equal(until) {
			clone := *row
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRowRepository) FindByCutoff(ctx context.Context, companyID string, from, until time.Time) ([]payroll.Row, error) {
	var out []payroll.Row
	for _, row := range f.rows {
		if row.DateFrom.Equal(from) && row.DateUntil.Equal(until) {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeRowRepository) SaveWithLoanLines(ctx context.Context, row *payroll.Row, lines []payroll.LoanLine) error {
	if f.saveWithLoanLinesFn != nil {
		if err := f.saveWithLoanLinesFn(ctx, row, lines); err != nil {
			return err
		}
	}
	clone := *row
	f.rows[row.ID.String()] = &clone
	return nil
}

func (f *fakeRowRepository) Update(ctx context.Context, row *payroll.Row) error {
	clone := *row
	f.rows[row.ID.String()] = &clone
	return nil
}

type fakeEmployeeRepository struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepository) FindPage(ctx context.Context, companyID string, q employee.ListEmployeesQuery) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID.String() == id {
			return &f.employees[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepository) ReferencesBelongToCompany(ctx context.Context, companyID, departmentID, positionID string) (bool, error) {
	return true, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, companyID, id string) error {
	return nil
}

type fakeAttendanceService struct {
	summary attendance.Summary
}

func (f *fakeAttendanceService) Create(ctx context.Context, companyID string, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (f *fakeAttendanceService) GetRange(ctx context.Context, companyID string, q attendance.RangeQuery) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) SummarizeRange(ctx context.Context, companyID string, q attendance.RangeQuery) (attendance.Summary, error) {
	return f.summary, nil
}

func (f *fakeAttendanceService) Delete(ctx context.Context, companyID, id string) error {
	return nil
}

type fakeLeaveService struct {
	paidDays decimal.Decimal
}

func (f *fakeLeaveService) Create(ctx context.Context, companyID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}

func (f *fakeLeaveService) GetByEmployee(ctx context.Context, companyID, employeeID string) ([]leave.LeaveResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) Decide(ctx context.Context, companyID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}

func (f *fakeLeaveService) PaidDaysInCutoff(ctx context.Context, companyID, employeeID string, from, until time.Time) (decimal.Decimal, error) {
	return f.paidDays, nil
}

type fakeHolidayService struct {
	count int
}

func (f *fakeHolidayService) Create(ctx context.Context, companyID string, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	return holiday.HolidayResponse{}, nil
}

func (f *fakeHolidayService) GetAll(ctx context.Context, companyID string) ([]holiday.HolidayResponse, error) {
	return nil, nil
}

func (f *fakeHolidayService) CountInRange(ctx context.Context, companyID string, from, until time.Time) (int, error) {
	return f.count, nil
}

func (f *fakeHolidayService) Delete(ctx context.Context, companyID, id string) error {
	return nil
}

type fakeLoanRepository struct {
	loans []loan.Loan
	// creditSums maps loan ID to the journaled credit total; presence in
	// the map means credit entries exist for the range.
	creditSums map[string]decimal.Decimal
	skipped    map[string]bool
}

func (f *fakeLoanRepository) Create(ctx context.Context, l *loan.Loan) error { return nil }

func (f *fakeLoanRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*loan.Loan, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLoanRepository) FindActiveByEmployee(ctx context.Context, companyID, employeeID string) ([]loan.Loan, error) {
	return f.loans, nil
}

func (f *fakeLoanRepository) FindJournal(ctx context.Context, companyID, loanID string) ([]loan.JournalEntry, error) {
	return nil, nil
}

func (f *fakeLoanRepository) CreditSumInRange(ctx context.Context, companyID, loanID string, from, until time.Time) (decimal.Decimal, bool, error) {
	sum, ok := f.creditSums[loanID]
	return sum, ok, nil
}

func (f *fakeLoanRepository) ApplyRepayment(ctx context.Context, companyID, loanID string, amount decimal.Decimal, entryDate time.Time, note string) (*loan.Loan, decimal.Decimal, error) {
	return nil, decimal.Zero, nil
}

func (f *fakeLoanRepository) CreateSkipRequest(ctx context.Context, req *loan.SkipRequest) error {
	return nil
}

func (f *fakeLoanRepository) FindSkipByIDAndCompany(ctx context.Context, companyID, id string) (*loan.SkipRequest, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLoanRepository) UpdateSkipRequest(ctx context.Context, req *loan.SkipRequest) error {
	return nil
}

func (f *fakeLoanRepository) HasApprovedSkip(ctx context.Context, companyID, loanID string, from, until time.Time) (bool, error) {
	return f.skipped[loanID], nil
}

type fakeRewardService struct {
	rewards   decimal.Decimal
	penalties decimal.Decimal
}

func (f *fakeRewardService) CreateRule(ctx context.Context, companyID string, req reward.CreateRuleRequest) (reward.RuleResponse, error) {
	return reward.RuleResponse{}, nil
}

func (f *fakeRewardService) GetRules(ctx context.Context, companyID string) ([]reward.RuleResponse, error) {
	return nil, nil
}

func (f *fakeRewardService) DeleteRule(ctx context.Context, companyID, id string) error {
	return nil
}

func (f *fakeRewardService) CreateEntry(ctx context.Context, companyID string, req reward.CreateEntryRequest) (reward.EntryResponse, error) {
	return reward.EntryResponse{}, nil
}

func (f *fakeRewardService) ApplyRules(ctx context.Context, companyID string, req reward.ApplyRulesRequest) (reward.ApplyRulesResponse, error) {
	return reward.ApplyRulesResponse{}, nil
}

func (f *fakeRewardService) GetEntries(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]reward.EntryResponse, error) {
	return nil, nil
}

func (f *fakeRewardService) SumForCutoff(ctx context.Context, companyID, employeeID string, from, until time.Time) (decimal.Decimal, decimal.Decimal, error) {
	return f.rewards, f.penalties, nil
}

type fakeRetroService struct {
	markAppliedFn func(ctx context.Context, companyID, id, payrollRowID string) (retro.AdjustmentResponse, error)
}

func (f *fakeRetroService) Create(ctx context.Context, companyID string, req retro.CreateAdjustmentRequest) (retro.AdjustmentResponse, error) {
	return retro.AdjustmentResponse{}, nil
}

func (f *fakeRetroService) GetByEmployee(ctx context.Context, companyID, employeeID string, onlyPending bool) ([]retro.AdjustmentResponse, error) {
	return nil, nil
}

func (f *fakeRetroService) MarkApplied(ctx context.Context, companyID, id, payrollRowID string) (retro.AdjustmentResponse, error) {
	if f.markAppliedFn != nil {
		return f.markAppliedFn(ctx, companyID, id, payrollRowID)
	}
	return retro.AdjustmentResponse{}, nil
}

func (f *fakeRetroService) Delete(ctx context.Context, companyID, id string) error {
	return nil
}

type fakeContributionRepository struct {
	profile *contribution.Profile
	findErr error
}

func (f *fakeContributionRepository) CreateIfAbsent(ctx context.Context, profile *contribution.Profile) error {
	return nil
}

func (f *fakeContributionRepository) FindByEmployee(ctx context.Context, companyID, employeeID string) (*contribution.Profile, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.profile == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.profile, nil
}

func (f *fakeContributionRepository) FindByEmployees(ctx context.Context, companyID string, employeeIDs []string) ([]contribution.Profile, error) {
	return nil, nil
}

func (f *fakeContributionRepository) Update(ctx context.Context, profile *contribution.Profile) error {
	return nil
}

type fakeOutboxRepository struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

// --- setup ---

type payrollDeps struct {
	service          payroll.Service
	repo             *fakeRowRepository
	employeeRepo     *fakeEmployeeRepository
	attendanceSvc    *fakeAttendanceService
	contributionRepo *fakeContributionRepository
	retroSvc         *fakeRetroService
	outbox           *fakeOutboxRepository
	companyID        string
}

func setupPayrollService(t *testing.T) *payrollDeps {
	t.Helper()

	companyID := uuid.New()
	emp := employee.Employee{
		ID:             uuid.New(),
		CompanyID:      companyID,
		EmployeeNumber: "EMP-000001",
		FirstName:      "Juan",
		LastName:       "Dela Cruz",
		EmployeeType:   employee.TypeRegular,
		SalaryType:     employee.SalaryDaily,
		DailyRate:      dec("645.16"),
		Status:         employee.StatusActive,
	}

	repo := newFakeRowRepository()
	employeeRepo := &fakeEmployeeRepository{employees: []employee.Employee{emp}}
	attendanceSvc := &fakeAttendanceService{summary: attendance.Summary{
		TotalDays:          dec("10"),
		OvertimeHours:      dec("1.5"),
		TotalRenderedHours: dec("92"),
	}}
	contributionRepo := &fakeContributionRepository{}
	retroSvc := &fakeRetroService{}
	outbox := &fakeOutboxRepository{}

	svc := payroll.NewService(
		repo,
		employeeRepo,
		attendanceSvc,
		&fakeLeaveService{paidDays: decimal.Zero},
		&fakeHolidayService{count: 1},
		&fakeLoanRepository{},
		&fakeRewardService{rewards: dec("250"), penalties: dec("100")},
		retroSvc,
		contributionRepo,
		outbox,
	)

	return &payrollDeps{
		service:          svc,
		repo:             repo,
		employeeRepo:     employeeRepo,
		attendanceSvc:    attendanceSvc,
		contributionRepo: contributionRepo,
		retroSvc:         retroSvc,
		outbox:           outbox,
		companyID:        companyID.String(),
	}
}

func generate(t *testing.T, deps *payrollDeps) payroll.RowResponse {
	t.Helper()
	resp, err := deps.service.GenerateForCutoff(context.Background(), deps.companyID, payroll.GenerateRequest{
		DateFrom:  "2026-03-01",
		DateUntil: "2026-03-15",
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Rows, 1)
	return resp.Rows[0]
}

// --- tests ---

func TestPayrollService_GenerateForCutoff(t *testing.T) {
	deps := setupPayrollService(t)

	resp, err := deps.service.GenerateForCutoff(context.Background(), deps.companyID, payroll.GenerateRequest{
		DateFrom:  "2026-03-01",
		DateUntil: "2026-03-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, 0, resp.Recomputed)

	row := resp.Rows[0]
	assert.Equal(t, "EMP-000001", row.EmployeeNumber)
	assert.Equal(t, "Juan Dela Cruz", row.EmployeeName)
	if assert.NotNil(t, row.TotalCredit) {
		// 10 days + 1.5 OT + 1 holiday
		assert.True(t, row.TotalCredit.Equal(dec("12.5")))
	}
	assert.True(t, row.BasePay.Equal(dec("8064.50")), row.BasePay.String())
	// manual rewards net of penalties
	assert.True(t, row.OthersNet.Equal(dec("150")))
	assert.True(t, row.Net.Equal(row.Gross.Sub(row.TotalDeduction)))
}

func TestPayrollService_GenerateForCutoff_Idempotent(t *testing.T) {
	deps := setupPayrollService(t)

	first, err := deps.service.GenerateForCutoff(context.Background(), deps.companyID, payroll.GenerateRequest{
		DateFrom:  "2026-03-01",
		DateUntil: "2026-03-15",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	second, err := deps.service.GenerateForCutoff(context.Background(), deps.companyID, payroll.GenerateRequest{
		DateFrom:  "2026-03-01",
		DateUntil: "2026-03-15",
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Recomputed)
	assert.Equal(t, first.Rows[0].ID, second.Rows[0].ID)
}

func TestPayrollService_GenerateForCutoff_LeavesFinalRowsUntouched(t *testing.T) {
	deps := setupPayrollService(t)
	row := generate(t, deps)

	finalized, err := deps.service.Finalize(context.Background(), deps.companyID, row.ID)
	assert.NoError(t, err)

	// The source data moving on must not disturb a finalized row.
	deps.attendanceSvc.summary.TotalDays = dec("5")

	resp, err := deps.service.GenerateForCutoff(context.Background(), deps.companyID, payroll.GenerateRequest{
		DateFrom:  "2026-03-01",
		DateUntil: "2026-03-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Created)
	assert.Equal(t, 0, resp.Recomputed)
	assert.Equal(t, 1, resp.Skipped)
	if assert.Len(t, resp.Rows, 1) {
		assert.Equal(t, payroll.StatusFinal, resp.Rows[0].Status)
		assert.True(t, resp.Rows[0].Net.Equal(finalized.Net))
		assert.True(t, resp.Rows[0].TotalDays.Equal(finalized.TotalDays))
	}
}

func TestPayrollService_GenerateForCutoff_ContributionLookupFailureAborts(t *testing.T) {
	deps := setupPayrollService(t)
	storeErr := stderrors.New("connection refused")
	deps.contributionRepo.findErr = storeErr

	_, err := deps.service.GenerateForCutoff(context.Background(), deps.companyID, payroll.GenerateRequest{
		DateFrom:  "2026-03-01",
		DateUntil: "2026-03-15",
	})

	assert.ErrorIs(t, err, storeErr)
}

func TestPayrollService_GenerateForCutoff_NoActiveEmployees(t *testing.T) {
	deps := setupPayrollService(t)
	deps.employeeRepo.employees = nil

	_, err := deps.service.GenerateForCutoff(context.Background(), deps.companyID, payroll.GenerateRequest{
		DateFrom:  "2026-03-01",
		DateUntil: "2026-03-15",
	})

	assert.ErrorIs(t, err, payrollerrors.ErrEmptyCutoff)
}

func TestPayrollService_GenerateForCutoff_InvalidRange(t *testing.T) {
	deps := setupPayrollService(t)

	_, err := deps.service.GenerateForCutoff(context.Background(), deps.companyID, payroll.GenerateRequest{
		DateFrom:  "2026-03-16",
		DateUntil: "2026-03-01",
	})

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidCutoff)
}

func TestPayrollService_Recompute_PublishesEvent(t *testing.T) {
	deps := setupPayrollService(t)
	row := generate(t, deps)
	deps.outbox.events = nil

	_, err := deps.service.Recompute(context.Background(), deps.companyID, row.ID)

	assert.NoError(t, err)
	if assert.Len(t, deps.outbox.events, 1) {
		evt := deps.outbox.events[0]
		assert.Equal(t, events.PayrollRecomputedTopic, evt.Topic)

		var payload events.PayrollRecomputedEvent
		assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
		assert.Equal(t, row.ID, payload.PayrollID)
		assert.Equal(t, deps.companyID, payload.CompanyID)
	}
}

func TestPayrollService_FinalRowRejectsMutation(t *testing.T) {
	deps := setupPayrollService(t)
	row := generate(t, deps)

	finalized, err := deps.service.Finalize(context.Background(), deps.companyID, row.ID)
	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusFinal, finalized.Status)

	_, err = deps.service.Recompute(context.Background(), deps.companyID, row.ID)
	assert.ErrorIs(t, err, payrollerrors.ErrRowFinal)

	_, err = deps.service.SetIncentive(context.Background(), deps.companyID, row.ID, payroll.SetIncentiveRequest{Amount: dec("100")})
	assert.ErrorIs(t, err, payrollerrors.ErrRowFinal)

	_, err = deps.service.SetOneOffDeduction(context.Background(), deps.companyID, row.ID, payroll.SetOneOffDeductionRequest{Amount: dec("100")})
	assert.ErrorIs(t, err, payrollerrors.ErrRowFinal)

	_, err = deps.service.SetCommission(context.Background(), deps.companyID, row.ID, payroll.SetCommissionRequest{Amount: dec("100")})
	assert.ErrorIs(t, err, payrollerrors.ErrRowFinal)

	_, err = deps.service.SetAllowances(context.Background(), deps.companyID, row.ID, payroll.SetAllowancesRequest{Amount: dec("100")})
	assert.ErrorIs(t, err, payrollerrors.ErrRowFinal)
}

func TestPayrollService_Finalize_Idempotent(t *testing.T) {
	deps := setupPayrollService(t)
	row := generate(t, deps)

	first, err := deps.service.Finalize(context.Background(), deps.companyID, row.ID)
	assert.NoError(t, err)

	second, err := deps.service.Finalize(context.Background(), deps.companyID, row.ID)
	assert.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
}

func TestPayrollService_SetOneOffDeduction_StaysOutOfTotalDeduction(t *testing.T) {
	deps := setupPayrollService(t)
	row := generate(t, deps)
	baseline := row.TotalDeduction

	updated, err := deps.service.SetOneOffDeduction(context.Background(), deps.companyID, row.ID, payroll.SetOneOffDeductionRequest{
		Amount: dec("75"),
	})

	assert.NoError(t, err)
	assert.True(t, updated.TotalDeduction.Equal(baseline))
	// rewards 250 - penalties 100 - one-off 75
	assert.True(t, updated.OthersNet.Equal(dec("75")))
	assert.True(t, updated.Gross.Equal(row.Gross.Sub(dec("75"))))
}

func TestPayrollService_SetCommission_CommissionBased(t *testing.T) {
	companyID := uuid.New()
	emp := employee.Employee{
		ID:              uuid.New(),
		CompanyID:       companyID,
		FirstName:       "Rosa",
		LastName:        "Reyes",
		EmployeeType:    employee.TypeRegular,
		SalaryType:      employee.SalaryDaily,
		DailyRate:       dec("600"),
		CommissionBased: true,
		Status:          employee.StatusActive,
	}

	repo := newFakeRowRepository()
	svc := payroll.NewService(
		repo,
		&fakeEmployeeRepository{employees: []employee.Employee{emp}},
		&fakeAttendanceService{summary: attendance.Summary{TotalDays: dec("10")}},
		&fakeLeaveService{},
		&fakeHolidayService{},
		&fakeLoanRepository{},
		&fakeRewardService{},
		&fakeRetroService{},
		&fakeContributionRepository{},
		&fakeOutboxRepository{},
	)

	resp, err := svc.GenerateForCutoff(context.Background(), companyID.String(), payroll.GenerateRequest{
		DateFrom:  "2026-03-01",
		DateUntil: "2026-03-15",
	})
	assert.NoError(t, err)
	row := resp.Rows[0]
	// 10 credited days at 600
	assert.True(t, row.BasePay.Equal(dec("6000")))
	assert.True(t, row.EffectiveBase.Equal(dec("6000")))

	// a commission beating the base replaces it entirely
	updated, err := svc.SetCommission(context.Background(), companyID.String(), row.ID, payroll.SetCommissionRequest{
		Amount: dec("9000"),
	})
	assert.NoError(t, err)
	assert.True(t, updated.TotalCommission.Equal(dec("9000")))
	assert.True(t, updated.EffectiveBase.Equal(dec("9000")))
	assert.True(t, updated.Gross.Equal(dec("9000")))
	assert.True(t, updated.Net.Equal(dec("9000")))

	// a smaller commission leaves the computed base in place
	updated, err = svc.SetCommission(context.Background(), companyID.String(), row.ID, payroll.SetCommissionRequest{
		Amount: dec("1000"),
	})
	assert.NoError(t, err)
	assert.True(t, updated.EffectiveBase.Equal(dec("6000")))
}

func TestPayrollService_SetAllowances_AddsToGross(t *testing.T) {
	deps := setupPayrollService(t)
	row := generate(t, deps)

	updated, err := deps.service.SetAllowances(context.Background(), deps.companyID, row.ID, payroll.SetAllowancesRequest{
		Amount: dec("500"),
	})

	assert.NoError(t, err)
	assert.True(t, updated.Allowances.Equal(dec("500")))
	assert.True(t, updated.Gross.Equal(row.Gross.Add(dec("500"))))
	// allowances never touch the statutory side
	assert.True(t, updated.TotalDeduction.Equal(row.TotalDeduction))
}

func TestPayrollService_SetCommission_RejectsNegative(t *testing.T) {
	deps := setupPayrollService(t)
	row := generate(t, deps)

	_, err := deps.service.SetCommission(context.Background(), deps.companyID, row.ID, payroll.SetCommissionRequest{Amount: dec("-1")})
	assert.Error(t, err)

	_, err = deps.service.SetAllowances(context.Background(), deps.companyID, row.ID, payroll.SetAllowancesRequest{Amount: dec("-1")})
	assert.Error(t, err)
}

func TestPayrollService_ApplyRetro(t *testing.T) {
	deps := setupPayrollService(t)
	row := generate(t, deps)
	retroID := uuid.New().String()

	deps.retroSvc.markAppliedFn = func(ctx context.Context, companyID, id, payrollRowID string) (retro.AdjustmentResponse, error) {
		assert.Equal(t, retroID, id)
		assert.Equal(t, row.ID, payrollRowID)
		return retro.AdjustmentResponse{
			ID:     id,
			Amount: dec("320"),
			Status: retro.StatusApplied,
		}, nil
	}

	updated, err := deps.service.ApplyRetro(context.Background(), deps.companyID, row.ID, payroll.ApplyRetroRequest{
		RetroID: retroID,
	})

	assert.NoError(t, err)
	assert.True(t, updated.TotalRetro.Equal(dec("320")))
	assert.True(t, updated.Gross.Equal(row.Gross.Add(dec("320"))))
}

func TestPayrollService_RequestPayslip_QueuesEvent(t *testing.T) {
	deps := setupPayrollService(t)
	row := generate(t, deps)
	deps.outbox.events = nil

	err := deps.service.RequestPayslip(context.Background(), deps.companyID, row.ID)

	assert.NoError(t, err)
	if assert.Len(t, deps.outbox.events, 1) {
		evt := deps.outbox.events[0]
		assert.Equal(t, events.PayrollPayslipRequestedTopic, evt.Topic)

		var payload events.PayrollPayslipRequestedEvent
		assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
		assert.Equal(t, row.ID, payload.PayrollID)
	}
}

func TestPayrollService_GetBreakdown_NotFound(t *testing.T) {
	deps := setupPayrollService(t)

	_, err := deps.service.GetBreakdown(context.Background(), deps.companyID, uuid.New().String())

	assert.ErrorIs(t, err, payrollerrors.ErrRowNotFound)
}

func TestPayrollService_LoanLinesSnapshot(t *testing.T) {
	companyID := uuid.New()
	emp := employee.Employee{
		ID:           uuid.New(),
		CompanyID:    companyID,
		FirstName:    "Maria",
		LastName:     "Santos",
		EmployeeType: employee.TypeRegular,
		SalaryType:   employee.SalaryDaily,
		DailyRate:    dec("600"),
		Status:       employee.StatusActive,
	}
	activeLoan := loan.Loan{
		ID:                uuid.New(),
		CompanyID:         companyID,
		EmployeeID:        emp.ID,
		Balance:           dec("300"),
		DeductionSchedule: loan.ScheduleCurrentPayroll,
		PayablePerTerm:    dec("500"),
		Status:            loan.StatusActive,
	}

	repo := newFakeRowRepository()
	svc := payroll.NewService(
		repo,
		&fakeEmployeeRepository{employees: []employee.Employee{emp}},
		&fakeAttendanceService{summary: attendance.Summary{TotalDays: dec("10")}},
		&fakeLeaveService{},
		&fakeHolidayService{},
		&fakeLoanRepository{loans: []loan.Loan{activeLoan}},
		&fakeRewardService{},
		&fakeRetroService{},
		&fakeContributionRepository{},
		&fakeOutboxRepository{},
	)

	resp, err := svc.GenerateForCutoff(context.Background(), companyID.String(), payroll.GenerateRequest{
		DateFrom:  "2026-03-01",
		DateUntil: "2026-03-15",
	})

	assert.NoError(t, err)
	row := resp.Rows[0]
	if assert.Len(t, row.LoanLines, 1) {
		assert.Equal(t, activeLoan.ID.String(), row.LoanLines[0].LoanID)
		// clamped to the remaining balance
		assert.True(t, row.LoanLines[0].Amount.Equal(dec("300")))
	}
	assert.True(t, row.LoanTotal.Equal(dec("300")))
}

func TestPayrollService_LoanZeroSumJournalSuppressesSchedule(t *testing.T) {
	companyID := uuid.New()
	emp := employee.Employee{
		ID:           uuid.New(),
		CompanyID:    companyID,
		FirstName:    "Pedro",
		LastName:     "Ramos",
		EmployeeType: employee.TypeRegular,
		SalaryType:   employee.SalaryDaily,
		DailyRate:    dec("600"),
		Status:       employee.StatusActive,
	}
	activeLoan := loan.Loan{
		ID:                uuid.New(),
		CompanyID:         companyID,
		EmployeeID:        emp.ID,
		Balance:           dec("10000"),
		DeductionSchedule: loan.ScheduleCurrentPayroll,
		PayablePerTerm:    dec("500"),
		Status:            loan.StatusActive,
	}

	repo := newFakeRowRepository()
	svc := payroll.NewService(
		repo,
		&fakeEmployeeRepository{employees: []employee.Employee{emp}},
		&fakeAttendanceService{summary: attendance.Summary{TotalDays: dec("10")}},
		&fakeLeaveService{},
		&fakeHolidayService{},
		&fakeLoanRepository{
			loans: []loan.Loan{activeLoan},
			// credit entries exist for the range but net out to zero
			creditSums: map[string]decimal.Decimal{activeLoan.ID.String(): decimal.Zero},
		},
		&fakeRewardService{},
		&fakeRetroService{},
		&fakeContributionRepository{},
		&fakeOutboxRepository{},
	)

	resp, err := svc.GenerateForCutoff(context.Background(), companyID.String(), payroll.GenerateRequest{
		DateFrom:  "2026-03-01",
		DateUntil: "2026-03-15",
	})

	assert.NoError(t, err)
	row := resp.Rows[0]
	if assert.Len(t, row.LoanLines, 1) {
		assert.True(t, row.LoanLines[0].Amount.IsZero())
	}
	assert.True(t, row.LoanTotal.IsZero())
}
