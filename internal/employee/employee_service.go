package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"centraljuan-hris/internal/employee/errors"
	"centraljuan-hris/internal/events"
	"centraljuan-hris/internal/messaging/kafka"
	"centraljuan-hris/internal/shared/apperror"
	"centraljuan-hris/internal/shared/contextutil"
	"centraljuan-hris/internal/shared/counter"
	"centraljuan-hris/internal/shared/response"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	employeeNumberCounter = "employee_number"
	optionsCacheTTL       = 10 * time.Minute
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, companyID string, q ListEmployeesQuery) ([]EmployeeResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Options(ctx context.Context, companyID string) ([]EmployeeOption, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	counterRepo counter.Repository
	outboxRepo  kafka.OutboxRepository
	cache       *redis.Client
	group       singleflight.Group
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	cache *redis.Client,
) Service {
	return &service{
		db:          db,
		repo:        repo,
		counterRepo: counterRepo,
		outboxRepo:  outboxRepo,
		cache:       cache,
		logger:      zap.L().Named("employee.service"),
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeResponse{}, apperror.InvalidField("company id")
	}
	if err := validateTypeAndRates(req.EmployeeType, req.SalaryType, req); err != nil {
		return EmployeeResponse{}, err
	}

	hiredAt, err := time.Parse("2006-01-02", req.HiredAt)
	if err != nil {
		return EmployeeResponse{}, apperror.InvalidField("hired_at")
	}

	ok, err := s.repo.ReferencesBelongToCompany(ctx, companyID, req.DepartmentID, req.PositionID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if !ok {
		return EmployeeResponse{}, apperror.InvalidField("department or position")
	}

	next, err := s.counterRepo.GetNextValue(ctx, companyID, employeeNumberCounter)
	if err != nil {
		return EmployeeResponse{}, err
	}

	emp := &Employee{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		EmployeeNumber:  fmt.Sprintf("EMP-%06d", next),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DepartmentID:    uuid.MustParse(req.DepartmentID),
		PositionID:      uuid.MustParse(req.PositionID),
		EmployeeType:    req.EmployeeType,
		SalaryType:      req.SalaryType,
		DailyRate:       req.DailyRate,
		MonthlyRate:     req.MonthlyRate,
		CommissionBased: req.CommissionBased,
		Status:          StatusActive,
		HiredAt:         hiredAt,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, emp); err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == "23505" {
			return EmployeeResponse{}, errors.ErrEmployeeNumberTaken
		}
		return EmployeeResponse{}, err
	}

	event := events.EmployeeCreatedEvent{
		EventType:    "employee_created",
		RequestID:    contextutil.GetRequestID(ctx),
		EmployeeID:   emp.ID.String(),
		CompanyID:    companyID,
		EmployeeType: emp.EmployeeType,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return EmployeeResponse{}, err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "employee",
		AggregateID:   emp.ID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	contextutil.Logger(ctx, s.logger).Info("employee created",
		zap.String("employee_id", emp.ID.String()),
		zap.String("employee_number", emp.EmployeeNumber),
	)

	return mapToResponse(*emp), nil
}

func (s *service) List(ctx context.Context, companyID string, q ListEmployeesQuery) ([]EmployeeResponse, response.PaginationMeta, error) {
	employees, total, err := s.repo.FindPage(ctx, companyID, q)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}

	return resp, response.NewPaginationMeta(total, q.Page, q.PageSize), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	emp, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, errors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*emp), nil
}

// Options serves the employee picker. Reads go through redis first and fall
// back to the database behind singleflight so a cold cache does not stampede.
func (s *service) Options(ctx context.Context, companyID string) ([]EmployeeOption, error) {
	cacheKey := optionsCacheKey(companyID)

	if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
		var options []EmployeeOption
		if err := json.Unmarshal(cached, &options); err == nil {
			return options, nil
		}
	}

	result, err, _ := s.group.Do(cacheKey, func() (any, error) {
		employees, err := s.repo.FindActiveByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}

		options := make([]EmployeeOption, len(employees))
		for i, e := range employees {
			options[i] = EmployeeOption{
				ID:             e.ID.String(),
				EmployeeNumber: e.EmployeeNumber,
				FullName:       e.FullName(),
				DepartmentID:   e.DepartmentID.String(),
				PositionID:     e.PositionID.String(),
			}
		}

		if payload, err := json.Marshal(options); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, optionsCacheTTL).Err(); err != nil {
				s.logger.Warn("options cache write failed", zap.Error(err))
			}
		}
		return options, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]EmployeeOption), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	emp, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, errors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	if err := validateTypeAndRates(req.EmployeeType, req.SalaryType, CreateEmployeeRequest{
		EmployeeType: req.EmployeeType,
		SalaryType:   req.SalaryType,
		DailyRate:    req.DailyRate,
		MonthlyRate:  req.MonthlyRate,
	}); err != nil {
		return EmployeeResponse{}, err
	}

	ok, err := s.repo.ReferencesBelongToCompany(ctx, companyID, req.DepartmentID, req.PositionID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if !ok {
		return EmployeeResponse{}, apperror.InvalidField("department or position")
	}

	emp.FirstName = req.FirstName
	emp.LastName = req.LastName
	emp.DepartmentID = uuid.MustParse(req.DepartmentID)
	emp.PositionID = uuid.MustParse(req.PositionID)
	emp.EmployeeType = req.EmployeeType
	emp.SalaryType = req.SalaryType
	emp.DailyRate = req.DailyRate
	emp.MonthlyRate = req.MonthlyRate
	emp.CommissionBased = req.CommissionBased
	emp.Status = req.Status

	if err := s.repo.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		return err
	}
	s.invalidateOptions(ctx, companyID)
	return nil
}

func (s *service) invalidateOptions(ctx context.Context, companyID string) {
	if err := s.cache.Del(ctx, optionsCacheKey(companyID)).Err(); err != nil {
		s.logger.Warn("options cache invalidation failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
	}
}

func optionsCacheKey(companyID string) string {
	return "employee:options:" + companyID
}

func validateTypeAndRates(employeeType, salaryType string, req CreateEmployeeRequest) error {
	if !ValidEmployeeType(employeeType) {
		return apperror.InvalidField("employee_type")
	}
	if !ValidSalaryType(salaryType) {
		return apperror.InvalidField("salary_type")
	}
	if req.DailyRate.IsNegative() || req.MonthlyRate.IsNegative() {
		return apperror.InvalidField("rate")
	}
	switch salaryType {
	case SalaryMonthly:
		if !req.MonthlyRate.IsPositive() {
			return errors.ErrRateRequired
		}
	case SalaryDaily:
		if !req.DailyRate.IsPositive() {
			return errors.ErrRateRequired
		}
	}
	return nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID.String(),
		CompanyID:       e.CompanyID.String(),
		EmployeeNumber:  e.EmployeeNumber,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		DepartmentID:    e.DepartmentID.String(),
		PositionID:      e.PositionID.String(),
		EmployeeType:    e.EmployeeType,
		SalaryType:      e.SalaryType,
		DailyRate:       e.DailyRate,
		MonthlyRate:     e.MonthlyRate,
		CommissionBased: e.CommissionBased,
		Status:          e.Status,
		HiredAt:         e.HiredAt.Format("2006-01-02"),
	}
}
