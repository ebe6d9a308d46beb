package position

import (
	"context"
	"errors"
	"net/http"

	"centraljuan-hris/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context, companyID string) ([]PositionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PositionResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreatePositionRequest) (PositionResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PositionResponse{}, apperror.InvalidField("company id")
	}

	if req.DefaultDailyRate.IsNegative() {
		return PositionResponse{}, apperror.InvalidField("default daily rate")
	}

	belongs, err := s.repo.DepartmentBelongsToCompany(ctx, companyID, req.DepartmentID)
	if err != nil {
		return PositionResponse{}, err
	}
	if !belongs {
		return PositionResponse{}, apperror.New(apperror.CodeInvalidInput, "department not found for this company", http.StatusBadRequest)
	}

	pos := &Position{
		ID:               uuid.New(),
		CompanyID:        companyUUID,
		DepartmentID:     uuid.MustParse(req.DepartmentID),
		Name:             req.Name,
		DefaultDailyRate: req.DefaultDailyRate,
	}

	if err := s.repo.Create(ctx, pos); err != nil {
		return PositionResponse{}, err
	}

	return mapToResponse(*pos), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]PositionResponse, error) {
	positions, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]PositionResponse, len(positions))
	for i, p := range positions {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PositionResponse, error) {
	pos, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, apperror.ErrNotFound
		}
		return PositionResponse{}, err
	}
	return mapToResponse(*pos), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdatePositionRequest) (PositionResponse, error) {
	pos, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, apperror.ErrNotFound
		}
		return PositionResponse{}, err
	}

	if req.DefaultDailyRate.IsNegative() {
		return PositionResponse{}, apperror.InvalidField("default daily rate")
	}

	belongs, err := s.repo.DepartmentBelongsToCompany(ctx, companyID, req.DepartmentID)
	if err != nil {
		return PositionResponse{}, err
	}
	if !belongs {
		return PositionResponse{}, apperror.New(apperror.CodeInvalidInput, "department not found for this company", http.StatusBadRequest)
	}

	pos.DepartmentID = uuid.MustParse(req.DepartmentID)
	pos.Name = req.Name
	pos.DefaultDailyRate = req.DefaultDailyRate

	if err := s.repo.Update(ctx, pos); err != nil {
		return PositionResponse{}, err
	}
	return mapToResponse(*pos), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	return s.repo.Delete(ctx, companyID, id)
}

func mapToResponse(p Position) PositionResponse {
	return PositionResponse{
		ID:               p.ID.String(),
		CompanyID:        p.CompanyID.String(),
		DepartmentID:     p.DepartmentID.String(),
		Name:             p.Name,
		DefaultDailyRate: p.DefaultDailyRate,
	}
}
