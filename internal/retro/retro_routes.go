package retro

import (
	"centraljuan-hris/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	retros := r.Group("/retro-adjustments")
	retros.Use(middleware.AuthMiddleware())
	{
		retros.POST("", middleware.RBACAuthorize(rbacService, "retro", "create"), handler.Create)
		retros.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "retro", "read"), handler.GetByEmployee)
		retros.DELETE("/:id", middleware.RBACAuthorize(rbacService, "retro", "delete"), handler.Delete)
	}
}
