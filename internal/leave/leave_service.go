package leave

import (
	"context"
	stderrors "errors"
	"time"

	"centraljuan-hris/internal/leave/errors"
	"centraljuan-hris/internal/shared/apperror"
	"centraljuan-hris/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) ([]LeaveResponse, error)
	Decide(ctx context.Context, companyID, id string, req DecideLeaveRequest) (LeaveResponse, error)
	PaidDaysInCutoff(ctx context.Context, companyID, employeeID string, from, until time.Time) (decimal.Decimal, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateLeaveRequest) (LeaveResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LeaveResponse{}, apperror.InvalidField("company id")
	}

	from, err := time.Parse("2006-01-02", req.DateFrom)
	if err != nil {
		return LeaveResponse{}, apperror.InvalidField("date_from")
	}
	until, err := time.Parse("2006-01-02", req.DateUntil)
	if err != nil {
		return LeaveResponse{}, apperror.InvalidField("date_until")
	}
	if from.After(until) {
		return LeaveResponse{}, errors.ErrInvalidSpan
	}

	leave := &Leave{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: uuid.MustParse(req.EmployeeID),
		LeaveType:  req.LeaveType,
		IsPaid:     bool(req.IsPaid),
		DateFrom:   from,
		DateUntil:  until,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := s.repo.Create(ctx, leave); err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*leave), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp, nil
}

func (s *service) Decide(ctx context.Context, companyID, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	leave, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, errors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if leave.Status != StatusPending {
		return LeaveResponse{}, errors.ErrNotPending
	}

	if req.Approve {
		leave.Status = StatusApproved
	} else {
		leave.Status = StatusRejected
	}

	now := time.Now().UTC()
	leave.DecidedAt = &now
	if uid := contextutil.GetUserID(ctx); uid != "" {
		if parsed, err := uuid.Parse(uid); err == nil {
			leave.DecidedBy = &parsed
		}
	}

	if err := s.repo.Update(ctx, leave); err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*leave), nil
}

// PaidDaysInCutoff sums the prorated days of approved paid leaves inside the
// window. Missing leaves are a zero contribution, not an error.
func (s *service) PaidDaysInCutoff(ctx context.Context, companyID, employeeID string, from, until time.Time) (decimal.Decimal, error) {
	leaves, err := s.repo.FindOverlapping(ctx, companyID, employeeID, from, until)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, l := range leaves {
		if !l.CountsAsPaid() {
			continue
		}
		total = total.Add(l.DaysInCutoff(from, until))
	}
	return total.Round(2), nil
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		IsPaid:     l.IsPaid,
		DateFrom:   l.DateFrom.Format("2006-01-02"),
		DateUntil:  l.DateUntil.Format("2006-01-02"),
		Reason:     l.Reason,
		Status:     l.Status,
	}
}
