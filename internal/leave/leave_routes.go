package leave

import (
	"centraljuan-hris/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("", middleware.RBACAuthorize(rbacService, "leave", "create"), handler.Create)
		leaves.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetByEmployee)
		leaves.GET("/employee/:employeeId/paid-days", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.PaidDays)
		leaves.PATCH("/:id/decision", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Decide)
	}
}
