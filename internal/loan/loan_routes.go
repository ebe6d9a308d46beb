package loan

import (
	"centraljuan-hris/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, idem gin.HandlerFunc) {
	loans := r.Group("/loans")
	loans.Use(middleware.AuthMiddleware())
	{
		loans.POST("", middleware.RBACAuthorize(rbacService, "loan", "create"), handler.Create)
		loans.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "loan", "read"), handler.GetByEmployee)
		loans.GET("/:id/journal", middleware.RBACAuthorize(rbacService, "loan", "read"), handler.GetJournal)
		loans.POST("/batch-apply", middleware.RBACAuthorize(rbacService, "loan", "update"), idem, handler.BatchApply)
		loans.POST("/:id/skip-requests", middleware.RBACAuthorize(rbacService, "loan", "update"), handler.RequestSkip)
		loans.PATCH("/skip-requests/:skipId/decision", middleware.RBACAuthorize(rbacService, "loan", "approve"), handler.DecideSkip)
	}
}
