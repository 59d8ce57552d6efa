package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

func performError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/probe", func(c *gin.Context) {
		serviceError(c, err)
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	return w
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{sql.ErrNoRows, 404, "NOT_FOUND"},
		{utils.ErrNotFound, 404, "NOT_FOUND"},
		{utils.ErrForbidden, 403, "FORBIDDEN"},
		{utils.ErrEmailTaken, 409, "EMAIL_TAKEN"},
		{utils.ErrRelationshipExists, 409, "RELATIONSHIP_EXISTS"},
		{utils.ErrInvalidCredentials, 401, "INVALID_CREDENTIALS"},
		{utils.ErrInvalidBudget, 400, "INVALID_BUDGET"},
		{utils.ErrInvalidTransition, 400, "INVALID_STATUS_TRANSITION"},
		{utils.ErrTooManyEntries, 400, "TOO_MANY_ENTRIES"},
		{utils.ErrStrategyFailed, 502, "STRATEGY_GENERATION_FAILED"},
		{errors.New("pq: connection reset"), 500, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := performError(t, tt.err)
			require.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestUUIDParamRejectsGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/things/:id", func(c *gin.Context) {
		if _, ok := uuidParam(c, "id"); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}

func TestScopeGuardWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/probe", func(c *gin.Context) {
		if _, ok := scope(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
