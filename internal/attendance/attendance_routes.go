package attendance

import (
	"centraljuan-hris/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetRange)
		attendance.GET("/summary", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.Summarize)
		attendance.POST("", middleware.RBACAuthorize(rbacService, "attendance", "create"), handler.Create)
		attendance.DELETE("/:id", middleware.RBACAuthorize(rbacService, "attendance", "delete"), handler.Delete)
	}
}
