package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/config"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

func performWithScope(t *testing.T, mw gin.HandlerFunc, scope *models.Scope) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	if scope != nil {
		router.Use(func(c *gin.Context) {
			c.Set(scopeKey, *scope)
		})
	}
	router.GET("/probe", mw, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRoles(t *testing.T) {
	mw := RequireRoles(models.RoleAgency, models.RoleAdmin)

	tests := []struct {
		name  string
		scope *models.Scope
		want  int
	}{
		{"no scope", nil, http.StatusUnauthorized},
		{"agency allowed", &models.Scope{UserID: uuid.New(), Role: models.RoleAgency}, http.StatusOK},
		{"admin allowed", &models.Scope{UserID: uuid.New(), Role: models.RoleAdmin}, http.StatusOK},
		{"advertiser rejected", &models.Scope{UserID: uuid.New(), Role: models.RoleAdvertiser}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := performWithScope(t, mw, tt.scope).Code; got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequireAdminNeedsRoleAndListedEmail(t *testing.T) {
	cfg := &config.Config{AdminEmails: []string{"root@audiencestreet.com"}}
	mw := RequireAdmin(cfg)

	tests := []struct {
		name  string
		scope *models.Scope
		want  int
	}{
		{"no scope", nil, http.StatusUnauthorized},
		{
			"admin role with listed email",
			&models.Scope{UserID: uuid.New(), Email: "Root@AudienceStreet.com", Role: models.RoleAdmin},
			http.StatusOK,
		},
		{
			"admin role with unlisted email",
			&models.Scope{UserID: uuid.New(), Email: "intruder@evil.com", Role: models.RoleAdmin},
			http.StatusForbidden,
		},
		{
			"listed email without admin role",
			&models.Scope{UserID: uuid.New(), Email: "root@audiencestreet.com", Role: models.RoleAgency},
			http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := performWithScope(t, mw, tt.scope).Code; got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}
