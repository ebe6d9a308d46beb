package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"centraljuan-hris/internal/employee"
	employeeerrors "centraljuan-hris/internal/employee/errors"
	"centraljuan-hris/internal/events"
	"centraljuan-hris/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

type fakeEmployeeRepository struct {
	createFn              func(ctx context.Context, emp *employee.Employee) error
	findActiveByCompanyFn func(ctx context.Context, companyID string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindPage(ctx context.Context, companyID string, q employee.ListEmployeesQuery) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findActiveByCompanyFn != nil {
		return f.findActiveByCompanyFn(ctx, companyID)
	}
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

type fakeCounterRepository struct {
	getNextValueFn func(ctx context.Context, companyID, counterType string) (int64, error)
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, companyID, counterType string) (int64, error) {
	if f.getNextValueFn != nil {
		return f.getNextValueFn(ctx, companyID, counterType)
	}
	return 1, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:    "Juan",
		LastName:     "Dela Cruz",
		DepartmentID: uuid.New().String(),
		PositionID:   uuid.New().String(),
		EmployeeType: employee.TypeRegular,
		SalaryType:   employee.SalaryDaily,
		DailyRate:    dec("645.16"),
		HiredAt:      "2025-06-01",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	var created *employee.Employee
	repo := &fakeEmployeeRepository{
		createFn: func(ctx context.Context, emp *employee.Employee) error {
			created = emp
			return nil
		},
	}
	counterRepo := &fakeCounterRepository{
		getNextValueFn: func(ctx context.Context, cid, counterType string) (int64, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, "employee_number", counterType)
			return 7, nil
		},
	}
	var outboxed *kafka.OutboxEvent
	outboxRepo := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxed = &event
			return nil
		},
	}

	cache, cacheMock := redismock.NewClientMock()
	cacheMock.ExpectDel("employee:options:" + companyID).SetVal(1)

	svc := employee.NewService(db, repo, counterRepo, outboxRepo, cache)

	resp, err := svc.Create(ctx, companyID, createRequest())

	assert.NoError(t, err)
	assert.Equal(t, "EMP-000007", resp.EmployeeNumber)
	assert.Equal(t, employee.StatusActive, resp.Status)
	assert.Equal(t, "2025-06-01", resp.HiredAt)

	if assert.NotNil(t, created) {
		assert.Equal(t, "EMP-000007", created.EmployeeNumber)
		assert.True(t, created.DailyRate.Equal(dec("645.16")))
	}

	// the lifecycle event rides the same transaction as the insert
	if assert.NotNil(t, outboxed) {
		assert.Equal(t, events.EmployeeCreatedTopic, outboxed.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, outboxed.Status)
		assert.Equal(t, created.ID.String(), outboxed.AggregateID)

		var event events.EmployeeCreatedEvent
		assert.NoError(t, json.Unmarshal(outboxed.Payload, &event))
		assert.Equal(t, "employee_created", event.EventType)
		assert.Equal(t, companyID, event.CompanyID)
		assert.Equal(t, employee.TypeRegular, event.EmployeeType)
	}

	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_DuplicateNumberRollsBack(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	repo := &fakeEmployeeRepository{
		createFn: func(ctx context.Context, emp *employee.Employee) error {
			return &pgconn.PgError{Code: "23505"}
		},
	}
	outboxCalled := false
	outboxRepo := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxCalled = true
			return nil
		},
	}
	cache, _ := redismock.NewClientMock()

	svc := employee.NewService(db, repo, &fakeCounterRepository{}, outboxRepo, cache)

	_, err = svc.Create(ctx, companyID, createRequest())

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberTaken)
	assert.False(t, outboxCalled)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_RateMustMatchSalaryType(t *testing.T) {
	ctx := context.Background()

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	cache, _ := redismock.NewClientMock()
	svc := employee.NewService(db, &fakeEmployeeRepository{}, &fakeCounterRepository{}, &fakeOutboxRepository{}, cache)

	req := createRequest()
	req.DailyRate = decimal.Zero

	_, err = svc.Create(ctx, uuid.New().String(), req)

	assert.ErrorIs(t, err, employeeerrors.ErrRateRequired)
}

func TestEmployeeService_Options(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := "employee:options:" + companyID

	emp := employee.Employee{
		ID:             uuid.New(),
		CompanyID:      uuid.MustParse(companyID),
		EmployeeNumber: "EMP-000001",
		FirstName:      "Juan",
		LastName:       "Dela Cruz",
		DepartmentID:   uuid.New(),
		PositionID:     uuid.New(),
	}
	expected := []employee.EmployeeOption{{
		ID:             emp.ID.String(),
		EmployeeNumber: emp.EmployeeNumber,
		FullName:       "Juan Dela Cruz",
		DepartmentID:   emp.DepartmentID.String(),
		PositionID:     emp.PositionID.String(),
	}}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	t.Run("cold cache loads from repository and writes back", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbCalls := 0
		repo := &fakeEmployeeRepository{
			findActiveByCompanyFn: func(ctx context.Context, cid string) ([]employee.Employee, error) {
				dbCalls++
				return []employee.Employee{emp}, nil
			},
		}

		cache, cacheMock := redismock.NewClientMock()
		cacheMock.ExpectGet(cacheKey).RedisNil()
		cacheMock.ExpectSet(cacheKey, payload, 10*time.Minute).SetVal("OK")

		svc := employee.NewService(db, repo, &fakeCounterRepository{}, &fakeOutboxRepository{}, cache)

		options, err := svc.Options(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expected, options)
		assert.Equal(t, 1, dbCalls)
		assert.NoError(t, cacheMock.ExpectationsWereMet())
	})

	t.Run("warm cache skips the repository", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeEmployeeRepository{
			findActiveByCompanyFn: func(ctx context.Context, cid string) ([]employee.Employee, error) {
				t.Fatal("repository should not be hit on a cache hit")
				return nil, nil
			},
		}

		cache, cacheMock := redismock.NewClientMock()
		cacheMock.ExpectGet(cacheKey).SetVal(string(payload))

		svc := employee.NewService(db, repo, &fakeCounterRepository{}, &fakeOutboxRepository{}, cache)

		options, err := svc.Options(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expected, options)
		assert.NoError(t, cacheMock.ExpectationsWereMet())
	})
}
