package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/config"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// RequireRoles returns a middleware that rejects principals whose role is
// not in the allowed set. Must run after AuthMiddleware.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		scope, ok := GetScope(c)
		if !ok {
			utils.Error(c, 401, "INVALID_TOKEN", "Authentication required")
			c.Abort()
			return
		}
		if !allowed[scope.Role] {
			utils.Error(c, 403, "FORBIDDEN", "Insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates the admin console. Holding the admin role is not
// sufficient on its own: the principal's email must also be on the
// configured admin list. Either check failing yields the same 403.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := GetScope(c)
		if !ok {
			utils.Error(c, 401, "INVALID_TOKEN", "Authentication required")
			c.Abort()
			return
		}
		if scope.Role != models.RoleAdmin || !cfg.IsAdminEmail(scope.Email) {
			log.Warn().
				Str("user_id", scope.UserID.String()).
				Str("role", string(scope.Role)).
				Msg("Admin console access denied")
			utils.Error(c, 403, "FORBIDDEN", "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
