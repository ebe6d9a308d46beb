package attendance

import (
	"context"
	stderrors "errors"
	"time"

	"centraljuan-hris/internal/attendance/errors"
	"centraljuan-hris/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateRecordRequest) (RecordResponse, error)
	GetRange(ctx context.Context, companyID string, q RangeQuery) ([]RecordResponse, error)
	SummarizeRange(ctx context.Context, companyID string, q RangeQuery) (Summary, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateRecordRequest) (RecordResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RecordResponse{}, apperror.InvalidField("company id")
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return RecordResponse{}, apperror.InvalidField("work_date")
	}

	if req.DaysCredited.IsNegative() || req.OvertimeHours.IsNegative() || req.TotalRenderedHours.IsNegative() {
		return RecordResponse{}, apperror.InvalidField("hours")
	}

	record := &Record{
		ID:                    uuid.New(),
		CompanyID:             companyUUID,
		EmployeeID:            uuid.MustParse(req.EmployeeID),
		WorkDate:              workDate,
		MorningIn:             req.MorningIn,
		MorningOut:            req.MorningOut,
		AfternoonIn:           req.AfternoonIn,
		AfternoonOut:          req.AfternoonOut,
		DaysCredited:          req.DaysCredited,
		OvertimeHours:         req.OvertimeHours,
		TotalRenderedHours:    req.TotalRenderedHours,
		NetWorkMinutes:        req.NetWorkMinutes,
		ActualRenderedMinutes: req.ActualRenderedMinutes,
		LateMinutes:           req.LateMinutes,
	}

	if sched := req.Schedule; sched != nil {
		record.ScheduleStart = sched.StartTime
		record.ScheduleEnd = sched.EndTime
		record.ScheduleTotalMinutes = sched.TotalMinutes
		if sched.IsRestDay != nil {
			record.IsRestDay = *sched.IsRestDay
		} else {
			record.IsRestDay = RestDayFromLegacySchedule(sched.StartTime, sched.EndTime)
		}
	}

	if record.IsRestDay && (record.ActualRenderedMinutes > 0 || record.DaysCredited.IsPositive()) {
		return RecordResponse{}, errors.ErrRestDayEntry
	}

	if err := s.repo.Create(ctx, record); err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == "23505" {
			return RecordResponse{}, errors.ErrDuplicateDay
		}
		return RecordResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) GetRange(ctx context.Context, companyID string, q RangeQuery) ([]RecordResponse, error) {
	records, err := s.findRange(ctx, companyID, q)
	if err != nil {
		return nil, err
	}

	resp := make([]RecordResponse, len(records))
	for i, r := range records {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) SummarizeRange(ctx context.Context, companyID string, q RangeQuery) (Summary, error) {
	records, err := s.findRange(ctx, companyID, q)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrRecordNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, companyID, id)
}

func (s *service) findRange(ctx context.Context, companyID string, q RangeQuery) ([]Record, error) {
	from, err := time.Parse("2006-01-02", q.DateFrom)
	if err != nil {
		return nil, apperror.InvalidField("date_from")
	}
	until, err := time.Parse("2006-01-02", q.DateUntil)
	if err != nil {
		return nil, apperror.InvalidField("date_until")
	}
	if from.After(until) {
		return nil, errors.ErrInvalidRange
	}
	return s.repo.FindRange(ctx, companyID, q.EmployeeID, from, until)
}

func mapToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:                    r.ID.String(),
		EmployeeID:            r.EmployeeID.String(),
		WorkDate:              r.WorkDate.Format("2006-01-02"),
		MorningIn:             r.MorningIn,
		MorningOut:            r.MorningOut,
		AfternoonIn:           r.AfternoonIn,
		AfternoonOut:          r.AfternoonOut,
		DaysCredited:          r.DaysCredited,
		OvertimeHours:         r.OvertimeHours,
		TotalRenderedHours:    r.TotalRenderedHours,
		NetWorkMinutes:        r.NetWorkMinutes,
		ActualRenderedMinutes: r.ActualRenderedMinutes,
		LateMinutes:           r.LateMinutes,
		IsRestDay:             r.IsRestDay,
		IsAbsence:             r.IsAbsence(),
	}
}
