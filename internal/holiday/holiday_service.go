package holiday

import (
	"context"
	stderrors "errors"
	"time"

	"centraljuan-hris/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateHolidayRequest) (HolidayResponse, error)
	GetAll(ctx context.Context, companyID string) ([]HolidayResponse, error)
	CountInRange(ctx context.Context, companyID string, from, until time.Time) (int, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateHolidayRequest) (HolidayResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return HolidayResponse{}, apperror.InvalidField("company id")
	}

	date, err := time.Parse("2006-01-02", req.HolidayDate)
	if err != nil {
		return HolidayResponse{}, apperror.InvalidField("holiday_date")
	}

	holiday := &Holiday{
		ID:                uuid.New(),
		CompanyID:         companyUUID,
		Name:              req.Name,
		HolidayDate:       date,
		DefaultMultiplier: req.DefaultMultiplier,
		OTMultiplier:      req.OTMultiplier,
		IsRecurring:       req.IsRecurring,
	}
	if holiday.DefaultMultiplier.IsZero() {
		holiday.DefaultMultiplier = decimal.NewFromInt(1)
	}
	if holiday.OTMultiplier.IsZero() {
		holiday.OTMultiplier = decimal.NewFromInt(1)
	}

	if req.ExtendedUntil != "" {
		extended, err := time.Parse("2006-01-02", req.ExtendedUntil)
		if err != nil {
			return HolidayResponse{}, apperror.InvalidField("extended_until")
		}
		if extended.Before(date) {
			return HolidayResponse{}, apperror.InvalidField("extended_until")
		}
		holiday.ExtendedUntil = &extended
	}

	if err := s.repo.Create(ctx, holiday); err != nil {
		return HolidayResponse{}, err
	}
	return mapToResponse(*holiday), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = mapToResponse(h)
	}
	return resp, nil
}

func (s *service) CountInRange(ctx context.Context, companyID string, from, until time.Time) (int, error) {
	holidays, err := s.repo.FindCandidates(ctx, companyID, from, until)
	if err != nil {
		return 0, err
	}
	return CountInRange(holidays, from, until), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, companyID, id)
}

func mapToResponse(h Holiday) HolidayResponse {
	resp := HolidayResponse{
		ID:                h.ID.String(),
		Name:              h.Name,
		HolidayDate:       h.HolidayDate.Format("2006-01-02"),
		DefaultMultiplier: h.DefaultMultiplier,
		OTMultiplier:      h.OTMultiplier,
		IsRecurring:       h.IsRecurring,
	}
	if h.ExtendedUntil != nil {
		resp.ExtendedUntil = h.ExtendedUntil.Format("2006-01-02")
	}
	return resp
}
