package rmiddleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/hooptrack/internal/middleware"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/pkg/responses"
)

// RoleMiddleware admits callers holding one of the required roles. It runs
// after AuthMiddleware; finer checks happen in the policy engine.
func RoleMiddleware(requiredRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := middleware.GetUserIDFromContext(c); err != nil {
			responses.Unauthorized(c, "Unauthorized: "+err.Error())
			return
		}

		p := middleware.PrincipalFrom(c)
		for _, role := range requiredRoles {
			if p.Role == role {
				c.Next()
				return
			}
		}
		responses.SendError(c, http.StatusForbidden, "You don't have permission to access this resource")
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(models.RoleAdmin)
}

// StaffMiddleware admits coaches, statisticians and admins.
func StaffMiddleware() gin.HandlerFunc {
	return RoleMiddleware(models.RoleCoach, models.RoleStatistician, models.RoleAdmin)
}
