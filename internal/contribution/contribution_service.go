package contribution

import (
	"context"
	stderrors "errors"

	"centraljuan-hris/internal/contribution/errors"
	"centraljuan-hris/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	BootstrapProfile(ctx context.Context, companyID, employeeID string) error
	GetByEmployee(ctx context.Context, companyID, employeeID string) (ProfileResponse, error)
	Update(ctx context.Context, companyID, employeeID string, req UpdateProfileRequest) (ProfileResponse, error)
	SetOverride(ctx context.Context, companyID, employeeID string, req SetOverrideRequest) (ProfileResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("contribution.service"),
	}
}

// BootstrapProfile creates a zeroed profile for a new employee. Amounts stay
// at zero until HR fills them in, so payroll for a fresh hire deducts nothing.
func (s *service) BootstrapProfile(ctx context.Context, companyID, employeeID string) error {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return apperror.InvalidField("company id")
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return apperror.InvalidField("employee id")
	}

	profile := &Profile{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		EmployeeID:    employeeUUID,
		DeductionType: DeductionSemiMonthly,
	}

	if err := s.repo.CreateIfAbsent(ctx, profile); err != nil {
		return err
	}

	s.logger.Info("contribution profile bootstrapped",
		zap.String("employee_id", employeeID),
	)
	return nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) (ProfileResponse, error) {
	profile, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, errors.ErrProfileNotFound
		}
		return ProfileResponse{}, err
	}
	return mapToResponse(*profile), nil
}

func (s *service) Update(ctx context.Context, companyID, employeeID string, req UpdateProfileRequest) (ProfileResponse, error) {
	if req.SSSAmount.IsNegative() || req.PhilHealthAmount.IsNegative() || req.PagIBIGAmount.IsNegative() {
		return ProfileResponse{}, apperror.InvalidField("amount")
	}

	profile, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, errors.ErrProfileNotFound
		}
		return ProfileResponse{}, err
	}

	profile.DeductionType = req.DeductionType
	profile.SSSAmount = req.SSSAmount
	profile.PhilHealthAmount = req.PhilHealthAmount
	profile.PagIBIGAmount = req.PagIBIGAmount

	if err := s.repo.Update(ctx, profile); err != nil {
		return ProfileResponse{}, err
	}
	return mapToResponse(*profile), nil
}

func (s *service) SetOverride(ctx context.Context, companyID, employeeID string, req SetOverrideRequest) (ProfileResponse, error) {
	if !ValidField(req.Field) {
		return ProfileResponse{}, errors.ErrUnknownField
	}
	if req.Amount.IsNegative() {
		return ProfileResponse{}, apperror.InvalidField("amount")
	}

	profile, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, errors.ErrProfileNotFound
		}
		return ProfileResponse{}, err
	}

	switch req.Field {
	case FieldSSS:
		profile.SSSOverride = req.Enabled
		profile.SSSOverrideAmount = req.Amount
	case FieldPhilHealth:
		profile.PhilHealthOverride = req.Enabled
		profile.PhilHealthOverrideAmount = req.Amount
	case FieldPagIBIG:
		profile.PagIBIGOverride = req.Enabled
		profile.PagIBIGOverrideAmount = req.Amount
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return ProfileResponse{}, err
	}
	return mapToResponse(*profile), nil
}

func mapToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:            p.ID.String(),
		EmployeeID:    p.EmployeeID.String(),
		DeductionType: p.DeductionType,
		SSS: FieldResponse{
			Amount:         p.SSSAmount,
			Override:       p.SSSOverride,
			OverrideAmount: p.SSSOverrideAmount,
		},
		PhilHealth: FieldResponse{
			Amount:         p.PhilHealthAmount,
			Override:       p.PhilHealthOverride,
			OverrideAmount: p.PhilHealthOverrideAmount,
		},
		PagIBIG: FieldResponse{
			Amount:         p.PagIBIGAmount,
			Override:       p.PagIBIGOverride,
			OverrideAmount: p.PagIBIGOverrideAmount,
		},
	}
}
