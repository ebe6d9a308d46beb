package reward

import (
	"centraljuan-hris/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	rewards := r.Group("/rewards")
	rewards.Use(middleware.AuthMiddleware())
	{
		rewards.GET("/rules", middleware.RBACAuthorize(rbacService, "reward", "read"), handler.GetRules)
		rewards.POST("/rules", middleware.RBACAuthorize(rbacService, "reward", "create"), handler.CreateRule)
		rewards.DELETE("/rules/:id", middleware.RBACAuthorize(rbacService, "reward", "delete"), handler.DeleteRule)
		rewards.POST("/entries", middleware.RBACAuthorize(rbacService, "reward", "create"), handler.CreateEntry)
		rewards.POST("/apply-rules", middleware.RBACAuthorize(rbacService, "reward", "create"), handler.ApplyRules)
		rewards.GET("/entries/employee/:employeeId", middleware.RBACAuthorize(rbacService, "reward", "read"), handler.GetEntries)
	}
}
