package retro

import (
	"context"
	stderrors "errors"
	"time"

	"centraljuan-hris/internal/retro/errors"
	"centraljuan-hris/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string, onlyPending bool) ([]AdjustmentResponse, error)
	MarkApplied(ctx context.Context, companyID, id, payrollRowID string) (AdjustmentResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateAdjustmentRequest) (AdjustmentResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AdjustmentResponse{}, apperror.InvalidField("company id")
	}
	if req.Amount.IsZero() {
		return AdjustmentResponse{}, errors.ErrZeroAmount
	}

	effective, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return AdjustmentResponse{}, apperror.InvalidField("effective_date")
	}

	adj := &Adjustment{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		EmployeeID:    uuid.MustParse(req.EmployeeID),
		Amount:        req.Amount.Round(2),
		Description:   req.Description,
		EffectiveDate: effective,
		Status:        StatusPending,
	}

	if err := s.repo.Create(ctx, adj); err != nil {
		return AdjustmentResponse{}, err
	}
	return mapToResponse(*adj), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string, onlyPending bool) ([]AdjustmentResponse, error) {
	adjustments, err := s.repo.FindByEmployee(ctx, companyID, employeeID, onlyPending)
	if err != nil {
		return nil, err
	}

	resp := make([]AdjustmentResponse, len(adjustments))
	for i, a := range adjustments {
		resp[i] = mapToResponse(a)
	}
	return resp, nil
}

// MarkApplied binds a pending adjustment to exactly one payroll row.
func (s *service) MarkApplied(ctx context.Context, companyID, id, payrollRowID string) (AdjustmentResponse, error) {
	adj, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return AdjustmentResponse{}, errors.ErrRetroNotFound
		}
		return AdjustmentResponse{}, err
	}
	if adj.Status == StatusApplied {
		return AdjustmentResponse{}, errors.ErrAlreadyApplied
	}

	rowID, err := uuid.Parse(payrollRowID)
	if err != nil {
		return AdjustmentResponse{}, apperror.InvalidField("payroll row id")
	}

	now := time.Now().UTC()
	adj.Status = StatusApplied
	adj.PayrollRowID = &rowID
	adj.AppliedAt = &now

	if err := s.repo.Update(ctx, adj); err != nil {
		return AdjustmentResponse{}, err
	}
	return mapToResponse(*adj), nil
}

// Delete is permanent and allowed in any status.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrRetroNotFound
		}
		return err
	}
	return s.repo.HardDelete(ctx, companyID, id)
}

func mapToResponse(a Adjustment) AdjustmentResponse {
	resp := AdjustmentResponse{
		ID:            a.ID.String(),
		EmployeeID:    a.EmployeeID.String(),
		Amount:        a.Amount,
		Description:   a.Description,
		EffectiveDate: a.EffectiveDate.Format("2006-01-02"),
		Status:        a.Status,
	}
	if a.PayrollRowID != nil {
		resp.PayrollRowID = a.PayrollRowID.String()
	}
	return resp
}
