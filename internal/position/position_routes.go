package position

import (
	"centraljuan-hris/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	positions := r.Group("/positions")
	positions.Use(middleware.AuthMiddleware())
	{
		positions.GET("", middleware.RBACAuthorize(rbacService, "position", "read"), handler.GetAll)
		positions.GET("/:id", middleware.RBACAuthorize(rbacService, "position", "read"), handler.GetById)
		positions.POST("", middleware.RBACAuthorize(rbacService, "position", "create"), handler.Create)
		positions.PUT("/:id", middleware.RBACAuthorize(rbacService, "position", "update"), handler.Update)
		positions.DELETE("/:id", middleware.RBACAuthorize(rbacService, "position", "delete"), handler.Delete)
	}
}
