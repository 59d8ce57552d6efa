package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/middleware"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// scope returns the principal resolved by the auth middleware. Routes behind
// that middleware always have one; the guard is for misconfigured routing.
func scope(c *gin.Context) (models.Scope, bool) {
	s, ok := middleware.GetScope(c)
	if !ok {
		utils.Error(c, 401, "INVALID_TOKEN", "Authentication required")
	}
	return s, ok
}

// uuidParam parses a UUID path parameter.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// serviceError maps service-layer sentinel errors onto HTTP responses. Any
// unknown error becomes an opaque 500.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows), errors.Is(err, utils.ErrNotFound):
		utils.Error(c, 404, "NOT_FOUND", "Resource not found")
	case errors.Is(err, utils.ErrForbidden):
		utils.Error(c, 403, "FORBIDDEN", "Access denied")
	case errors.Is(err, utils.ErrEmailTaken):
		utils.Error(c, 409, "EMAIL_TAKEN", "Email is already registered")
	case errors.Is(err, utils.ErrRelationshipExists):
		utils.Error(c, 409, "RELATIONSHIP_EXISTS", "Relationship already exists")
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, utils.ErrInvalidBudget):
		utils.Error(c, 400, "INVALID_BUDGET", "Budget values must be non-negative")
	case errors.Is(err, utils.ErrInvalidDateRange):
		utils.Error(c, 400, "INVALID_DATE_RANGE", "End date must not precede start date")
	case errors.Is(err, utils.ErrInvalidTransition):
		utils.Error(c, 400, "INVALID_STATUS_TRANSITION", "Only the active/paused toggle is allowed")
	case errors.Is(err, utils.ErrInvalidRole):
		utils.Error(c, 400, "INVALID_ROLE", "Invalid role")
	case errors.Is(err, utils.ErrInvalidListType):
		utils.Error(c, 400, "INVALID_LIST_TYPE", "Invalid list type")
	case errors.Is(err, utils.ErrInvalidEntryType):
		utils.Error(c, 400, "INVALID_ENTRY_TYPE", "Invalid entry type or value")
	case errors.Is(err, utils.ErrInvalidCapType):
		utils.Error(c, 400, "INVALID_CAP", "Invalid cap type or impression limit")
	case errors.Is(err, utils.ErrInvalidDealType):
		utils.Error(c, 400, "INVALID_DEAL_TYPE", "Invalid deal type")
	case errors.Is(err, utils.ErrInvalidCurrency):
		utils.Error(c, 400, "INVALID_CURRENCY", "Unsupported currency")
	case errors.Is(err, utils.ErrInvalidCommission):
		utils.Error(c, 400, "INVALID_COMMISSION_TYPE", "Invalid commission type")
	case errors.Is(err, utils.ErrInvalidPercentage):
		utils.Error(c, 400, "INVALID_PERCENTAGE", "Percentage must be non-negative")
	case errors.Is(err, utils.ErrInvalidEnumValue):
		utils.Error(c, 400, "INVALID_ENUM_VALUE", "Value is not in the allowed set")
	case errors.Is(err, utils.ErrTooManyEntries):
		utils.Error(c, 400, "TOO_MANY_ENTRIES", "Bulk upload exceeds the entry limit")
	case errors.Is(err, utils.ErrStrategyFailed):
		utils.Error(c, 502, "STRATEGY_GENERATION_FAILED", "Strategy generation failed")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
	}
}
