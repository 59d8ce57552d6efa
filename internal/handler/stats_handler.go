package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// StatsHandler handles impression ingest and budget-status endpoints.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler constructs a StatsHandler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

type trackRequest struct {
	CampaignID     uuid.UUID `json:"campaignId" binding:"required"`
	UserIdentifier string    `json:"userIdentifier" binding:"required"`
	Impressions    int       `json:"impressions"`
	SpendCents     int64     `json:"spendCents"`
}

// TrackImpression handles POST /v1/tracking/impressions
func (h *StatsHandler) TrackImpression(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rec, err := h.statsService.Track(service.TrackInput{
		CampaignID:     req.CampaignID,
		UserIdentifier: req.UserIdentifier,
		Impressions:    req.Impressions,
		SpendCents:     req.SpendCents,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Impression recorded", rec)
}

// GetBudgetStatuses handles GET /v1/stats/budget
func (h *StatsHandler) GetBudgetStatuses(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	statuses, err := h.statsService.BudgetStatuses(c.Request.Context(), s)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Budget statuses retrieved", gin.H{
		"campaigns": statuses,
		"total":     len(statuses),
	})
}
