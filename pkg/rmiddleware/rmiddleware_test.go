package rmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/hooptrack/internal/middleware"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/internal/policy"
)

func serve(role *models.Role, gate gin.HandlerFunc) int {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != nil {
			c.Set(middleware.AuthUserIDKey, uint(7))
			c.Set(middleware.AuthPrincipalKey, policy.Principal{UserID: 7, Role: *role})
		}
	})
	r.GET("/", gate, func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w.Code
}

func TestRoleGates(t *testing.T) {
	player, coach, stat, admin := models.RolePlayer, models.RoleCoach, models.RoleStatistician, models.RoleAdmin

	tests := []struct {
		name string
		role *models.Role
		gate gin.HandlerFunc
		want int
	}{
		{"admin gate admits admin", &admin, AdminMiddleware(), http.StatusOK},
		{"admin gate rejects coach", &coach, AdminMiddleware(), http.StatusForbidden},
		{"staff gate admits statistician", &stat, StaffMiddleware(), http.StatusOK},
		{"staff gate admits admin", &admin, StaffMiddleware(), http.StatusOK},
		{"staff gate rejects player", &player, StaffMiddleware(), http.StatusForbidden},
		{"unauthenticated", nil, StaffMiddleware(), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := serve(tt.role, tt.gate); got != tt.want {
				t.Fatalf("status = %d, want %d", got, tt.want)
			}
		})
	}
}
