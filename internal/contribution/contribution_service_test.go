package contribution_test

import (
	"context"
	"testing"

	"centraljuan-hris/internal/contribution"
	contributionerrors "centraljuan-hris/internal/contribution/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

type fakeContributionRepository struct {
	createIfAbsentFn  func(ctx context.Context, profile *contribution.Profile) error
	findByEmployeeFn  func(ctx context.Context, companyID, employeeID string) (*contribution.Profile, error)
	findByEmployeesFn func(ctx context.Context, companyID string, employeeIDs []string) ([]contribution.Profile, error)
	updateFn          func(ctx context.Context, profile *contribution.Profile) error
}

func (f *fakeContributionRepository) CreateIfAbsent(ctx context.Context, profile *contribution.Profile) error {
	if f.createIfAbsentFn != nil {
		return f.createIfAbsentFn(ctx, profile)
	}
	return nil
}

func (f *fakeContributionRepository) FindByEmployee(ctx context.Context, companyID, employeeID string) (*contribution.Profile, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, companyID, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContributionRepository) FindByEmployees(ctx context.Context, companyID string, employeeIDs []string) ([]contribution.Profile, error) {
	if f.findByEmployeesFn != nil {
		return f.findByEmployeesFn(ctx, companyID, employeeIDs)
	}
	return nil, nil
}

func (f *fakeContributionRepository) Update(ctx context.Context, profile *contribution.Profile) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, profile)
	}
	return nil
}

func TestContributionService_BootstrapProfile(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	var created *contribution.Profile
	repo := &fakeContributionRepository{
		createIfAbsentFn: func(ctx context.Context, profile *contribution.Profile) error {
			created = profile
			return nil
		},
	}
	svc := contribution.NewService(repo)

	assert.NoError(t, svc.BootstrapProfile(ctx, companyID, employeeID))

	if assert.NotNil(t, created) {
		assert.Equal(t, employeeID, created.EmployeeID.String())
		assert.Equal(t, contribution.DeductionSemiMonthly, created.DeductionType)
		assert.True(t, created.SSSAmount.IsZero())
		assert.True(t, created.PhilHealthAmount.IsZero())
		assert.True(t, created.PagIBIGAmount.IsZero())
	}
}

func TestContributionService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	existing := func() *contribution.Profile {
		return &contribution.Profile{
			ID:            uuid.New(),
			CompanyID:     uuid.MustParse(companyID),
			EmployeeID:    uuid.MustParse(employeeID),
			DeductionType: contribution.DeductionSemiMonthly,
		}
	}

	t.Run("negative amount rejected", func(t *testing.T) {
		svc := contribution.NewService(&fakeContributionRepository{})

		_, err := svc.Update(ctx, companyID, employeeID, contribution.UpdateProfileRequest{
			DeductionType: contribution.DeductionMonthly,
			SSSAmount:     dec("-1"),
		})

		assert.Error(t, err)
	})

	t.Run("missing profile", func(t *testing.T) {
		svc := contribution.NewService(&fakeContributionRepository{})

		_, err := svc.Update(ctx, companyID, employeeID, contribution.UpdateProfileRequest{
			DeductionType: contribution.DeductionMonthly,
		})

		assert.ErrorIs(t, err, contributionerrors.ErrProfileNotFound)
	})

	t.Run("amounts and schedule persisted", func(t *testing.T) {
		var updated *contribution.Profile
		repo := &fakeContributionRepository{
			findByEmployeeFn: func(ctx context.Context, cid, eid string) (*contribution.Profile, error) {
				return existing(), nil
			},
			updateFn: func(ctx context.Context, profile *contribution.Profile) error {
				updated = profile
				return nil
			},
		}
		svc := contribution.NewService(repo)

		resp, err := svc.Update(ctx, companyID, employeeID, contribution.UpdateProfileRequest{
			DeductionType:    contribution.DeductionMonthly,
			SSSAmount:        dec("1350"),
			PhilHealthAmount: dec("450"),
			PagIBIGAmount:    dec("200"),
		})

		assert.NoError(t, err)
		assert.Equal(t, contribution.DeductionMonthly, resp.DeductionType)
		assert.True(t, resp.SSS.Amount.Equal(dec("1350")))
		if assert.NotNil(t, updated) {
			assert.True(t, updated.PhilHealthAmount.Equal(dec("450")))
			assert.True(t, updated.PagIBIGAmount.Equal(dec("200")))
		}
	})
}

func TestContributionService_SetOverride(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("unknown field", func(t *testing.T) {
		svc := contribution.NewService(&fakeContributionRepository{})

		_, err := svc.SetOverride(ctx, companyID, employeeID, contribution.SetOverrideRequest{
			Field:   "sss13",
			Enabled: true,
			Amount:  dec("100"),
		})

		assert.ErrorIs(t, err, contributionerrors.ErrUnknownField)
	})

	t.Run("override toggled on a single field", func(t *testing.T) {
		repo := &fakeContributionRepository{
			findByEmployeeFn: func(ctx context.Context, cid, eid string) (*contribution.Profile, error) {
				return &contribution.Profile{
					ID:            uuid.New(),
					CompanyID:     uuid.MustParse(companyID),
					EmployeeID:    uuid.MustParse(employeeID),
					DeductionType: contribution.DeductionSemiMonthly,
					SSSAmount:     dec("1000"),
				}, nil
			},
		}
		svc := contribution.NewService(repo)

		resp, err := svc.SetOverride(ctx, companyID, employeeID, contribution.SetOverrideRequest{
			Field:   contribution.FieldSSS,
			Enabled: true,
			Amount:  dec("350"),
		})

		assert.NoError(t, err)
		assert.True(t, resp.SSS.Override)
		assert.True(t, resp.SSS.OverrideAmount.Equal(dec("350")))
		assert.False(t, resp.PhilHealth.Override)
		assert.False(t, resp.PagIBIG.Override)
	})
}
