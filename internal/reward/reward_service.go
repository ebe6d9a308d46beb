package reward

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"centraljuan-hris/internal/attendance"
	"centraljuan-hris/internal/employee"
	"centraljuan-hris/internal/reward/errors"
	"centraljuan-hris/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var minManualHours = decimal.NewFromInt(8)

type Service interface {
	CreateRule(ctx context.Context, companyID string, req CreateRuleRequest) (RuleResponse, error)
	GetRules(ctx context.Context, companyID string) ([]RuleResponse, error)
	DeleteRule(ctx context.Context, companyID, id string) error
	CreateEntry(ctx context.Context, companyID string, req CreateEntryRequest) (EntryResponse, error)
	ApplyRules(ctx context.Context, companyID string, req ApplyRulesRequest) (ApplyRulesResponse, error)
	GetEntries(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]EntryResponse, error)
	SumForCutoff(ctx context.Context, companyID, employeeID string, from, until time.Time) (rewards, deductions decimal.Decimal, err error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	attendance   attendance.Service
}

func NewService(repo Repository, employeeRepo employee.Repository, attendanceService attendance.Service) Service {
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		attendance:   attendanceService,
	}
}

func (s *service) CreateRule(ctx context.Context, companyID string, req CreateRuleRequest) (RuleResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RuleResponse{}, apperror.InvalidField("company id")
	}
	if !req.PayoutValue.IsPositive() {
		return RuleResponse{}, apperror.InvalidField("payout_value")
	}

	rule := &Rule{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		Name:            req.Name,
		PayoutType:      req.PayoutType,
		PayoutValue:     req.PayoutValue,
		MinTotalHours:   req.MinTotalHours,
		MinDailyHours:   req.MinDailyHours,
		MinDaysCredited: req.MinDaysCredited,
		IsDeduction:     req.IsDeduction,
		AppliesScope:    req.AppliesScope,
		Priority:        req.Priority,
	}
	if rule.Priority == 0 {
		rule.Priority = 100
	}

	switch req.AppliesScope {
	case ScopeDepartment:
		if req.DepartmentID == "" {
			return RuleResponse{}, apperror.RequiredField("department_id")
		}
		id := uuid.MustParse(req.DepartmentID)
		rule.DepartmentID = &id
	case ScopePosition:
		if req.PositionID == "" {
			return RuleResponse{}, apperror.RequiredField("position_id")
		}
		id := uuid.MustParse(req.PositionID)
		rule.PositionID = &id
	}

	if err := s.repo.CreateRule(ctx, rule); err != nil {
		return RuleResponse{}, err
	}
	return mapRuleToResponse(*rule), nil
}

func (s *service) GetRules(ctx context.Context, companyID string) ([]RuleResponse, error) {
	rules, err := s.repo.FindRules(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]RuleResponse, len(rules))
	for i, r := range rules {
		resp[i] = mapRuleToResponse(r)
	}
	return resp, nil
}

func (s *service) DeleteRule(ctx context.Context, companyID, id string) error {
	return s.repo.DeleteRule(ctx, companyID, id)
}

// CreateEntry records a manual grant. The guard is strict: only REGULAR
// employees with at least 8 rendered hours in the cutoff qualify, and the
// description must carry at least 3 characters.
func (s *service) CreateEntry(ctx context.Context, companyID string, req CreateEntryRequest) (EntryResponse, error) {
	if len(strings.TrimSpace(req.Description)) < 3 {
		return EntryResponse{}, errors.ErrDescriptionTooShort
	}
	if !req.Amount.IsPositive() {
		return EntryResponse{}, apperror.InvalidField("amount")
	}

	from, err := time.Parse("2006-01-02", req.CutoffFrom)
	if err != nil {
		return EntryResponse{}, apperror.InvalidField("cutoff_from")
	}
	until, err := time.Parse("2006-01-02", req.CutoffUntil)
	if err != nil {
		return EntryResponse{}, apperror.InvalidField("cutoff_until")
	}

	emp, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return EntryResponse{}, apperror.ErrNotFound
		}
		return EntryResponse{}, err
	}
	if emp.EmployeeType != employee.TypeRegular {
		return EntryResponse{}, errors.ErrNotEligible
	}

	summary, err := s.attendance.SummarizeRange(ctx, companyID, attendance.RangeQuery{
		EmployeeID: req.EmployeeID,
		DateFrom:   req.CutoffFrom,
		DateUntil:  req.CutoffUntil,
	})
	if err != nil {
		return EntryResponse{}, err
	}
	if summary.TotalRenderedHours.LessThan(minManualHours) {
		return EntryResponse{}, errors.ErrNotEligible
	}

	entry := &JournalEntry{
		ID:          uuid.New(),
		CompanyID:   emp.CompanyID,
		EmployeeID:  emp.ID,
		Amount:      req.Amount.Round(2),
		IsDeduction: req.IsDeduction,
		Description: strings.TrimSpace(req.Description),
		CutoffFrom:  from,
		CutoffUntil: until,
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return EntryResponse{}, err
	}
	return mapEntryToResponse(*entry), nil
}

// ApplyRules evaluates every configured rule against one employee's cutoff
// and journals an entry per matching rule, stamped with the rule's ID.
// Re-running the same cutoff is idempotent: a rule that already journaled an
// entry for the range is skipped, so manual grants and reruns coexist.
func (s *service) ApplyRules(ctx context.Context, companyID string, req ApplyRulesRequest) (ApplyRulesResponse, error) {
	from, err := time.Parse("2006-01-02", req.CutoffFrom)
	if err != nil {
		return ApplyRulesResponse{}, apperror.InvalidField("cutoff_from")
	}
	until, err := time.Parse("2006-01-02", req.CutoffUntil)
	if err != nil {
		return ApplyRulesResponse{}, apperror.InvalidField("cutoff_until")
	}

	emp, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return ApplyRulesResponse{}, apperror.ErrNotFound
		}
		return ApplyRulesResponse{}, err
	}

	rules, err := s.repo.FindRules(ctx, companyID)
	if err != nil {
		return ApplyRulesResponse{}, err
	}
	resp := ApplyRulesResponse{Entries: []EntryResponse{}}
	if len(rules) == 0 {
		return resp, nil
	}

	summary, err := s.attendance.SummarizeRange(ctx, companyID, attendance.RangeQuery{
		EmployeeID: req.EmployeeID,
		DateFrom:   req.CutoffFrom,
		DateUntil:  req.CutoffUntil,
	})
	if err != nil {
		return ApplyRulesResponse{}, err
	}

	existing, err := s.repo.FindEntries(ctx, companyID, req.EmployeeID, from, until)
	if err != nil {
		return ApplyRulesResponse{}, err
	}
	journaled := make(map[uuid.UUID]bool)
	for _, e := range existing {
		if e.RuleID != nil {
			journaled[*e.RuleID] = true
		}
	}

	semiMonthly := true
	if req.SemiMonthly != nil {
		semiMonthly = *req.SemiMonthly
	}
	mctx := MatchContext{
		DepartmentID:  emp.DepartmentID.String(),
		PositionID:    emp.PositionID.String(),
		TotalHours:    summary.TotalRenderedHours,
		MaxDailyHours: summary.MaxDailyHours,
		DaysCredited:  summary.TotalDays,
		BasePay:       cutoffBasePay(emp, summary.TotalDays, semiMonthly),
	}

	for _, outcome := range EvaluateRules(rules, mctx) {
		if journaled[outcome.Rule.ID] {
			resp.Skipped++
			continue
		}
		ruleID := outcome.Rule.ID
		entry := &JournalEntry{
			ID:          uuid.New(),
			CompanyID:   emp.CompanyID,
			EmployeeID:  emp.ID,
			RuleID:      &ruleID,
			Amount:      outcome.Amount,
			IsDeduction: outcome.Rule.IsDeduction,
			Description: outcome.Rule.Name,
			CutoffFrom:  from,
			CutoffUntil: until,
		}
		if err := s.repo.CreateEntry(ctx, entry); err != nil {
			return ApplyRulesResponse{}, err
		}
		resp.Applied++
		resp.Entries = append(resp.Entries, mapEntryToResponse(*entry))
	}
	return resp, nil
}

// cutoffBasePay mirrors the payroll base: credited days times the daily rate,
// or the half/full monthly rate depending on the cycle.
func cutoffBasePay(emp *employee.Employee, daysCredited decimal.Decimal, semiMonthly bool) decimal.Decimal {
	if emp.SalaryType == employee.SalaryMonthly {
		if semiMonthly {
			return emp.MonthlyRate.Div(decimal.NewFromInt(2)).Round(2)
		}
		return emp.MonthlyRate.Round(2)
	}
	return daysCredited.Mul(emp.DailyRate).Round(2)
}

func (s *service) GetEntries(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]EntryResponse, error) {
	entries, err := s.repo.FindEntries(ctx, companyID, employeeID, from, until)
	if err != nil {
		return nil, err
	}

	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = mapEntryToResponse(e)
	}
	return resp, nil
}

// SumForCutoff totals realized reward and penalty entries for a payroll row.
func (s *service) SumForCutoff(ctx context.Context, companyID, employeeID string, from, until time.Time) (decimal.Decimal, decimal.Decimal, error) {
	entries, err := s.repo.FindEntries(ctx, companyID, employeeID, from, until)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	rewards, deductions := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.IsDeduction {
			deductions = deductions.Add(e.Amount)
		} else {
			rewards = rewards.Add(e.Amount)
		}
	}
	return rewards.Round(2), deductions.Round(2), nil
}

func mapRuleToResponse(r Rule) RuleResponse {
	resp := RuleResponse{
		ID:              r.ID.String(),
		Name:            r.Name,
		PayoutType:      r.PayoutType,
		PayoutValue:     r.PayoutValue,
		MinTotalHours:   r.MinTotalHours,
		MinDailyHours:   r.MinDailyHours,
		MinDaysCredited: r.MinDaysCredited,
		IsDeduction:     r.IsDeduction,
		AppliesScope:    r.AppliesScope,
		Priority:        r.Priority,
	}
	if r.DepartmentID != nil {
		resp.DepartmentID = r.DepartmentID.String()
	}
	if r.PositionID != nil {
		resp.PositionID = r.PositionID.String()
	}
	return resp
}

func mapEntryToResponse(e JournalEntry) EntryResponse {
	resp := EntryResponse{
		ID:          e.ID.String(),
		EmployeeID:  e.EmployeeID.String(),
		Amount:      e.Amount,
		IsDeduction: e.IsDeduction,
		Description: e.Description,
		CutoffFrom:  e.CutoffFrom.Format("2006-01-02"),
		CutoffUntil: e.CutoffUntil.Format("2006-01-02"),
	}
	if e.RuleID != nil {
		resp.RuleID = e.RuleID.String()
	}
	return resp
}
