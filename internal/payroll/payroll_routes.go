package payroll

import (
	"centraljuan-hris/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, idem gin.HandlerFunc) {
	payrolls := r.Group("/payrolls")
	// generate, export and payslip rendering are the heavy endpoints, so
	// this group carries a per-user limit on top of the global IP limit
	payrolls.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(rate.Limit(5), 10))
	{
		payrolls.POST("/generate", middleware.RBACAuthorize(rbacService, "payroll", "create"), idem, handler.Generate)
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.List)
		payrolls.GET("/export", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.ExportRegister)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetBreakdown)
		payrolls.POST("/:id/recompute", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.Recompute)
		payrolls.PUT("/:id/incentive", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.SetIncentive)
		payrolls.PUT("/:id/commission", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.SetCommission)
		payrolls.PUT("/:id/allowances", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.SetAllowances)
		payrolls.PUT("/:id/oneoff-deduction", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.SetOneOffDeduction)
		payrolls.POST("/:id/retro", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.ApplyRetro)
		payrolls.POST("/:id/finalize", middleware.RBACAuthorize(rbacService, "payroll", "approve"), idem, handler.Finalize)
		payrolls.POST("/:id/payslip", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.RequestPayslip)
		payrolls.GET("/:id/payslip", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.DownloadPayslip)
	}
}
