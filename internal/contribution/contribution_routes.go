package contribution

import (
	"centraljuan-hris/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	contributions := r.Group("/employees/:employeeId/contributions")
	contributions.Use(middleware.AuthMiddleware())
	{
		contributions.GET("", middleware.RBACAuthorize(rbacService, "contribution", "read"), handler.GetByEmployee)
		contributions.PUT("", middleware.RBACAuthorize(rbacService, "contribution", "update"), handler.Update)
		contributions.PUT("/override", middleware.RBACAuthorize(rbacService, "contribution", "update"), handler.SetOverride)
	}
}
