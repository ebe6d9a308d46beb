package app

import (
	"database/sql"
	"path/filepath"

	"centraljuan-hris/internal/attendance"
	"centraljuan-hris/internal/auth"
	"centraljuan-hris/internal/contribution"
	"centraljuan-hris/internal/department"
	"centraljuan-hris/internal/employee"
	"centraljuan-hris/internal/holiday"
	"centraljuan-hris/internal/leave"
	"centraljuan-hris/internal/loan"
	"centraljuan-hris/internal/messaging/kafka"
	"centraljuan-hris/internal/middleware"
	"centraljuan-hris/internal/payroll"
	"centraljuan-hris/internal/position"
	"centraljuan-hris/internal/rbac"
	"centraljuan-hris/internal/rbac/infra"
	"centraljuan-hris/internal/retro"
	"centraljuan-hris/internal/reward"
	"centraljuan-hris/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	contributionRepo := contribution.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	loanRepo := loan.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	retroRepo := retro.NewRepository(gormDB)
	rewardRepo := reward.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo)
	attendanceService := attendance.NewService(attendanceRepo)
	contributionService := contribution.NewService(contributionRepo)
	departmentService := department.NewService(departmentRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, rdb)
	holidayService := holiday.NewService(holidayRepo)
	leaveService := leave.NewService(leaveRepo)
	loanService := loan.NewService(loanRepo)
	positionService := position.NewService(positionRepo)
	retroService := retro.NewService(retroRepo)
	rewardService := reward.NewService(rewardRepo, employeeRepo, attendanceService)
	payrollService := payroll.NewService(
		payrollRepo,
		employeeRepo,
		attendanceService,
		leaveService,
		holidayService,
		loanRepo,
		rewardService,
		retroService,
		contributionRepo,
		outboxRepo,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	contributionHandler := contribution.NewHandler(contributionService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	holidayHandler := holiday.NewHandler(holidayService)
	leaveHandler := leave.NewHandler(leaveService)
	loanHandler := loan.NewHandler(loanService)
	payrollHandler := payroll.NewHandler(payrollService)
	positionHandler := position.NewHandler(positionService)
	retroHandler := retro.NewHandler(retroService)
	rewardHandler := reward.NewHandler(rewardService)

	idem := middleware.Idempotency(rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		contribution.RegisterRoutes(api, contributionHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		loan.RegisterRoutes(api, loanHandler, rbacService, idem)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, idem)
		position.RegisterRoutes(api, positionHandler, rbacService)
		retro.RegisterRoutes(api, retroHandler, rbacService)
		reward.RegisterRoutes(api, rewardHandler, rbacService)
	}

	return nil
}

// buildPayrollService wires the payroll computation service from scratch.
// The consumer process uses it without the HTTP surface.
func buildPayrollService(db *sql.DB, gormDB *gorm.DB) payroll.Service {
	employeeRepo := employee.NewRepository(gormDB)
	attendanceService := attendance.NewService(attendance.NewRepository(gormDB))
	leaveService := leave.NewService(leave.NewRepository(gormDB))
	holidayService := holiday.NewService(holiday.NewRepository(gormDB))
	loanRepo := loan.NewRepository(gormDB)
	rewardService := reward.NewService(reward.NewRepository(gormDB), employeeRepo, attendanceService)
	retroService := retro.NewService(retro.NewRepository(gormDB))
	contributionRepo := contribution.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	return payroll.NewService(
		payroll.NewRepository(gormDB),
		employeeRepo,
		attendanceService,
		leaveService,
		holidayService,
		loanRepo,
		rewardService,
		retroService,
		contributionRepo,
		outboxRepo,
	)
}
