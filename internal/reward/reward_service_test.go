package reward_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"centraljuan-hris/internal/attendance"
	"centraljuan-hris/internal/employee"
	"centraljuan-hris/internal/reward"
	rewarderrors "centraljuan-hris/internal/reward/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

type fakeRewardRepository struct {
	createRuleFn  func(ctx context.Context, rule *reward.Rule) error
	findRulesFn   func(ctx context.Context, companyID string) ([]reward.Rule, error)
	deleteRuleFn  func(ctx context.Context, companyID, id string) error
	createEntryFn func(ctx context.Context, entry *reward.JournalEntry) error
	findEntriesFn func(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]reward.JournalEntry, error)
}

func (f *fakeRewardRepository) CreateRule(ctx context.Context, rule *reward.Rule) error {
	if f.createRuleFn != nil {
		return f.createRuleFn(ctx, rule)
	}
	return nil
}

func (f *fakeRewardRepository) FindRules(ctx context.Context, companyID string) ([]reward.Rule, error) {
	if f.findRulesFn != nil {
		return f.findRulesFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeRewardRepository) DeleteRule(ctx context.Context, companyID, id string) error {
	if f.deleteRuleFn != nil {
		return f.deleteRuleFn(ctx, companyID, id)
	}
	return nil
}

func (f *fakeRewardRepository) CreateEntry(ctx context.Context, entry *reward.JournalEntry) error {
	if f.createEntryFn != nil {
		return f.createEntryFn(ctx, entry)
	}
	return nil
}

func (f *fakeRewardRepository) FindEntries(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]reward.JournalEntry, error) {
	if f.findEntriesFn != nil {
		return f.findEntriesFn(ctx, companyID, employeeID, from, until)
	}
	return nil, nil
}

type fakeEmployeeRepository struct {
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepository) FindPage(ctx context.Context, companyID string, q employee.ListEmployeesQuery) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
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
	summarizeFn func(ctx context.Context, companyID string, q attendance.RangeQuery) (attendance.Summary, error)
}

func (f *fakeAttendanceService) Create(ctx context.Context, companyID string, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (f *fakeAttendanceService) GetRange(ctx context.Context, companyID string, q attendance.RangeQuery) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) SummarizeRange(ctx context.Context, companyID string, q attendance.RangeQuery) (attendance.Summary, error) {
	if f.summarizeFn != nil {
		return f.summarizeFn(ctx, companyID, q)
	}
	return attendance.Summary{}, nil
}

func (f *fakeAttendanceService) Delete(ctx context.Context, companyID, id string) error {
	return nil
}

func regularEmployee() *employee.Employee {
	return &employee.Employee{
		ID:           uuid.New(),
		CompanyID:    uuid.New(),
		EmployeeType: employee.TypeRegular,
	}
}

func entryRequest() reward.CreateEntryRequest {
	return reward.CreateEntryRequest{
		EmployeeID:  uuid.New().String(),
		Amount:      dec("500"),
		Description: "Perfect attendance",
		CutoffFrom:  "2026-03-01",
		CutoffUntil: "2026-03-15",
	}
}

func TestRewardService_CreateEntry(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("description too short", func(t *testing.T) {
		svc := reward.NewService(&fakeRewardRepository{}, &fakeEmployeeRepository{}, &fakeAttendanceService{})

		req := entryRequest()
		req.Description = "  a "
		_, err := svc.CreateEntry(ctx, companyID, req)

		assert.ErrorIs(t, err, rewarderrors.ErrDescriptionTooShort)
	})

	t.Run("non-regular employee rejected", func(t *testing.T) {
		empRepo := &fakeEmployeeRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*employee.Employee, error) {
				emp := regularEmployee()
				emp.EmployeeType = employee.TypeOJT
				return emp, nil
			},
		}
		svc := reward.NewService(&fakeRewardRepository{}, empRepo, &fakeAttendanceService{})

		_, err := svc.CreateEntry(ctx, companyID, entryRequest())

		assert.ErrorIs(t, err, rewarderrors.ErrNotEligible)
	})

	t.Run("under eight rendered hours rejected", func(t *testing.T) {
		empRepo := &fakeEmployeeRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*employee.Employee, error) {
				return regularEmployee(), nil
			},
		}
		att := &fakeAttendanceService{
			summarizeFn: func(ctx context.Context, cid string, q attendance.RangeQuery) (attendance.Summary, error) {
				return attendance.Summary{TotalRenderedHours: dec("7.99")}, nil
			},
		}
		svc := reward.NewService(&fakeRewardRepository{}, empRepo, att)

		_, err := svc.CreateEntry(ctx, companyID, entryRequest())

		assert.ErrorIs(t, err, rewarderrors.ErrNotEligible)
	})

	t.Run("eligible entry persists trimmed", func(t *testing.T) {
		var created *reward.JournalEntry
		repo := &fakeRewardRepository{
			createEntryFn: func(ctx context.Context, entry *reward.JournalEntry) error {
				created = entry
				return nil
			},
		}
		empRepo := &fakeEmployeeRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*employee.Employee, error) {
				return regularEmployee(), nil
			},
		}
		att := &fakeAttendanceService{
			summarizeFn: func(ctx context.Context, cid string, q attendance.RangeQuery) (attendance.Summary, error) {
				return attendance.Summary{TotalRenderedHours: dec("8")}, nil
			},
		}
		svc := reward.NewService(repo, empRepo, att)

		req := entryRequest()
		req.Description = "  Perfect attendance  "
		resp, err := svc.CreateEntry(ctx, companyID, req)

		assert.NoError(t, err)
		if assert.NotNil(t, created) {
			assert.Equal(t, "Perfect attendance", created.Description)
		}
		assert.Equal(t, "Perfect attendance", resp.Description)
	})
}

func TestRewardService_SumForCutoff(t *testing.T) {
	repo := &fakeRewardRepository{
		findEntriesFn: func(ctx context.Context, cid, eid string, from, until time.Time) ([]reward.JournalEntry, error) {
			return []reward.JournalEntry{
				{Amount: dec("300")},
				{Amount: dec("200")},
				{Amount: dec("150"), IsDeduction: true},
			}, nil
		},
	}
	svc := reward.NewService(repo, &fakeEmployeeRepository{}, &fakeAttendanceService{})

	rewards, deductions, err := svc.SumForCutoff(context.Background(),
		uuid.New().String(), uuid.New().String(), time.Now(), time.Now())

	assert.NoError(t, err)
	assert.True(t, rewards.Equal(dec("500")))
	assert.True(t, deductions.Equal(dec("150")))
}

func TestRewardService_ApplyRules(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	emp := &employee.Employee{
		ID:           uuid.New(),
		CompanyID:    companyID,
		DepartmentID: uuid.New(),
		PositionID:   uuid.New(),
		EmployeeType: employee.TypeRegular,
		SalaryType:   employee.SalaryDaily,
		DailyRate:    dec("600"),
	}
	attendanceRule := reward.Rule{
		ID:              uuid.New(),
		CompanyID:       companyID,
		Name:            "Perfect attendance",
		PayoutType:      reward.PayoutPercentage,
		PayoutValue:     dec("10"),
		MinDaysCredited: dec("10"),
		Priority:        10,
	}
	longDayRule := reward.Rule{
		ID:            uuid.New(),
		CompanyID:     companyID,
		Name:          "Long day bonus",
		PayoutType:    reward.PayoutFixed,
		PayoutValue:   dec("250"),
		MinDailyHours: dec("9.5"),
		Priority:      20,
	}

	empRepo := &fakeEmployeeRepository{
		findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*employee.Employee, error) {
			return emp, nil
		},
	}
	att := &fakeAttendanceService{
		summarizeFn: func(ctx context.Context, cid string, q attendance.RangeQuery) (attendance.Summary, error) {
			return attendance.Summary{
				TotalDays:          dec("10"),
				TotalRenderedHours: dec("80"),
				MaxDailyHours:      dec("9"),
			}, nil
		},
	}
	req := reward.ApplyRulesRequest{
		EmployeeID:  emp.ID.String(),
		CutoffFrom:  "2026-03-01",
		CutoffUntil: "2026-03-15",
	}

	t.Run("matching rule journals an entry carrying its rule id", func(t *testing.T) {
		var created []*reward.JournalEntry
		repo := &fakeRewardRepository{
			findRulesFn: func(ctx context.Context, cid string) ([]reward.Rule, error) {
				return []reward.Rule{attendanceRule, longDayRule}, nil
			},
			createEntryFn: func(ctx context.Context, entry *reward.JournalEntry) error {
				created = append(created, entry)
				return nil
			},
		}
		svc := reward.NewService(repo, empRepo, att)

		resp, err := svc.ApplyRules(ctx, companyID.String(), req)

		assert.NoError(t, err)
		// the 9.5h daily threshold stays out of reach at a 9h best day
		assert.Equal(t, 1, resp.Applied)
		if assert.Len(t, created, 1) {
			entry := created[0]
			if assert.NotNil(t, entry.RuleID) {
				assert.Equal(t, attendanceRule.ID, *entry.RuleID)
			}
			// 10% of 10 days at 600
			assert.True(t, entry.Amount.Equal(dec("600")))
			assert.Equal(t, "Perfect attendance", entry.Description)
			assert.Equal(t, emp.ID, entry.EmployeeID)
		}
		if assert.Len(t, resp.Entries, 1) {
			assert.Equal(t, attendanceRule.ID.String(), resp.Entries[0].RuleID)
		}
	})

	t.Run("rerun skips rules already journaled for the cutoff", func(t *testing.T) {
		ruleID := attendanceRule.ID
		repo := &fakeRewardRepository{
			findRulesFn: func(ctx context.Context, cid string) ([]reward.Rule, error) {
				return []reward.Rule{attendanceRule}, nil
			},
			findEntriesFn: func(ctx context.Context, cid, eid string, from, until time.Time) ([]reward.JournalEntry, error) {
				return []reward.JournalEntry{{RuleID: &ruleID, Amount: dec("600")}}, nil
			},
			createEntryFn: func(ctx context.Context, entry *reward.JournalEntry) error {
				t.Fatal("entry must not be journaled twice")
				return nil
			},
		}
		svc := reward.NewService(repo, empRepo, att)

		resp, err := svc.ApplyRules(ctx, companyID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Applied)
		assert.Equal(t, 1, resp.Skipped)
	})

	t.Run("no configured rules is a no-op", func(t *testing.T) {
		svc := reward.NewService(&fakeRewardRepository{}, empRepo, att)

		resp, err := svc.ApplyRules(ctx, companyID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Applied)
		assert.Empty(t, resp.Entries)
	})
}

func TestEvaluateRules(t *testing.T) {
	deptID := uuid.New()
	ctx := reward.MatchContext{
		DepartmentID:  deptID.String(),
		TotalHours:    dec("80"),
		MaxDailyHours: dec("9"),
		DaysCredited:  dec("10"),
		BasePay:       dec("8000"),
	}

	rules := []reward.Rule{
		{Name: "late rule", PayoutType: reward.PayoutFixed, PayoutValue: dec("100"), Priority: 200},
		{Name: "percentage", PayoutType: reward.PayoutPercentage, PayoutValue: dec("10"), Priority: 50},
		{Name: "per hour", PayoutType: reward.PayoutPerHour, PayoutValue: dec("5"), Priority: 100},
		{Name: "out of scope", PayoutType: reward.PayoutFixed, PayoutValue: dec("999"), AppliesScope: reward.ScopeDepartment, DepartmentID: ptrUUID(uuid.New())},
		{Name: "dept scoped", PayoutType: reward.PayoutFixed, PayoutValue: dec("50"), AppliesScope: reward.ScopeDepartment, DepartmentID: &deptID, Priority: 10},
		{Name: "threshold miss", PayoutType: reward.PayoutFixed, PayoutValue: dec("777"), MinTotalHours: dec("100")},
	}

	outcomes := reward.EvaluateRules(rules, ctx)

	if assert.Len(t, outcomes, 4) {
		// sorted by ascending priority
		assert.Equal(t, "dept scoped", outcomes[0].Rule.Name)
		assert.True(t, outcomes[0].Amount.Equal(dec("50")))
		assert.Equal(t, "percentage", outcomes[1].Rule.Name)
		assert.True(t, outcomes[1].Amount.Equal(dec("800")))
		assert.Equal(t, "per hour", outcomes[2].Rule.Name)
		assert.True(t, outcomes[2].Amount.Equal(dec("400")))
		assert.Equal(t, "late rule", outcomes[3].Rule.Name)
	}
}

func ptrUUID(u uuid.UUID) *uuid.UUID { return &u }
