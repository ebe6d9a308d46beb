package middleware

import (
	"net/http"

	"centraljuan-hris/internal/rbac"
	"centraljuan-hris/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface so any implementation with an Enforce
// method fits without importing the concrete service.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

// RBACAuthorize gates a route on a resource/action pair. It runs after
// AuthMiddleware and reads the identity it stored.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString("employee_id")
		companyID := c.GetString("company_id")
		if employeeID == "" || companyID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(rbac.EnforceRequest{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Resource:   resource,
			Action:     action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed", nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Missing permission "+resource+":"+action, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
