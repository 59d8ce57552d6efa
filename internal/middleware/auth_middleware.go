package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/cache"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

const scopeKey = "scope"

// AuthMiddleware resolves the calling principal: it validates the bearer
// token, loads the profile (Redis first, PostgreSQL on miss), and installs a
// models.Scope in the request context. The role always comes from the stored
// profile, never from the token, so a role change takes effect without
// re-login.
type AuthMiddleware struct {
	profileRepo  *repository.ProfileRepository
	profileCache *cache.ProfileCache
	rateLimiter  *InvalidAuthRateLimiter
}

// NewAuthMiddleware constructs a new AuthMiddleware.
func NewAuthMiddleware(profileRepo *repository.ProfileRepository, profileCache *cache.ProfileCache) *AuthMiddleware {
	return &AuthMiddleware{
		profileRepo:  profileRepo,
		profileCache: profileCache,
		rateLimiter:  NewInvalidAuthRateLimiter(),
	}
}

// Handle returns a Gin middleware function that enforces authentication.
func (m *AuthMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			m.handleAuthError(c, "INVALID_TOKEN", "Missing or invalid authorization header")
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			m.handleAuthError(c, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		profile, err := m.profileCache.Get(c.Request.Context(), claims.UserID)
		if err != nil {
			profile, err = m.profileRepo.GetByUserID(claims.UserID)
			if err != nil {
				m.handleAuthError(c, "INVALID_TOKEN", "Unknown principal")
				return
			}
			if err := m.profileCache.Store(c.Request.Context(), profile); err != nil {
				log.Warn().Err(err).Str("user_id", claims.UserID.String()).Msg("Failed to cache profile")
			}
		}

		c.Set(scopeKey, models.Scope{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   profile.Role,
		})
		c.Next()
	}
}

func (m *AuthMiddleware) handleAuthError(c *gin.Context, code, message string) {
	ip := c.ClientIP()
	if !m.rateLimiter.Allow(ip) {
		utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many invalid authentication attempts")
		c.Abort()
		return
	}
	utils.Error(c, 401, code, message)
	c.Abort()
}

// GetScope extracts the resolved principal scope from the request context.
// The boolean is false on routes that skipped authentication.
func GetScope(c *gin.Context) (models.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return models.Scope{}, false
	}
	scope, ok := v.(models.Scope)
	return scope, ok
}
