package handler

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// PlatformHandler handles the Meta and Google campaign mirror endpoints.
type PlatformHandler struct {
	platformService *service.PlatformService
}

// NewPlatformHandler constructs a PlatformHandler.
func NewPlatformHandler(platformService *service.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

type metaCampaignRequest struct {
	CampaignName     string          `json:"campaignName" binding:"required"`
	Objective        string          `json:"objective" binding:"required"`
	BidStrategy      *string         `json:"bidStrategy"`
	Status           string          `json:"status"`
	DailyBudget      *float64        `json:"dailyBudget"`
	LifetimeBudget   *float64        `json:"lifetimeBudget"`
	MarginPercentage *float64        `json:"marginPercentage"`
	TargetingConfig  json.RawMessage `json:"targetingConfig"`
	CreativeConfig   json.RawMessage `json:"creativeConfig"`
	StartDate        *time.Time      `json:"startDate"`
	EndDate          *time.Time      `json:"endDate"`
}

func (req metaCampaignRequest) toInput() service.MetaCampaignInput {
	return service.MetaCampaignInput{
		CampaignName:     req.CampaignName,
		Objective:        req.Objective,
		BidStrategy:      req.BidStrategy,
		Status:           req.Status,
		DailyBudget:      req.DailyBudget,
		LifetimeBudget:   req.LifetimeBudget,
		MarginPercentage: req.MarginPercentage,
		TargetingConfig:  req.TargetingConfig,
		CreativeConfig:   req.CreativeConfig,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	}
}

// CreateMetaCampaign handles POST /v1/meta-campaigns
func (h *PlatformHandler) CreateMetaCampaign(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	var req metaCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	campaign, err := h.platformService.CreateMeta(s, req.toInput())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Meta campaign created", campaign)
}

// ListMetaCampaigns handles GET /v1/meta-campaigns
func (h *PlatformHandler) ListMetaCampaigns(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	campaigns, err := h.platformService.ListMeta(s)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Meta campaigns retrieved", gin.H{
		"campaigns": campaigns,
		"total":     len(campaigns),
	})
}

// UpdateMetaCampaign handles PUT /v1/meta-campaigns/:id
func (h *PlatformHandler) UpdateMetaCampaign(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req metaCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	campaign, err := h.platformService.UpdateMeta(s, id, req.toInput())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Meta campaign updated", campaign)
}

// DeleteMetaCampaign handles DELETE /v1/meta-campaigns/:id
func (h *PlatformHandler) DeleteMetaCampaign(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.platformService.DeleteMeta(s, id); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Meta campaign deleted", gin.H{"id": id})
}

type googleCampaignRequest struct {
	CampaignName     string          `json:"campaignName" binding:"required"`
	CampaignType     string          `json:"campaignType" binding:"required"`
	BidStrategy      *string         `json:"bidStrategy"`
	Status           string          `json:"status"`
	DailyBudget      *float64        `json:"dailyBudget"`
	MarginPercentage *float64        `json:"marginPercentage"`
	TargetingConfig  json.RawMessage `json:"targetingConfig"`
	CreativeConfig   json.RawMessage `json:"creativeConfig"`
	StartDate        *time.Time      `json:"startDate"`
	EndDate          *time.Time      `json:"endDate"`
}

func (req googleCampaignRequest) toInput() service.GoogleCampaignInput {
	return service.GoogleCampaignInput{
		CampaignName:     req.CampaignName,
		CampaignType:     req.CampaignType,
		BidStrategy:      req.BidStrategy,
		Status:           req.Status,
		DailyBudget:      req.DailyBudget,
		MarginPercentage: req.MarginPercentage,
		TargetingConfig:  req.TargetingConfig,
		CreativeConfig:   req.CreativeConfig,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	}
}

// CreateGoogleCampaign handles POST /v1/google-campaigns
func (h *PlatformHandler) CreateGoogleCampaign(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	var req googleCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	campaign, err := h.platformService.CreateGoogle(s, req.toInput())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Google campaign created", campaign)
}

// ListGoogleCampaigns handles GET /v1/google-campaigns
func (h *PlatformHandler) ListGoogleCampaigns(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	campaigns, err := h.platformService.ListGoogle(s)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Google campaigns retrieved", gin.H{
		"campaigns": campaigns,
		"total":     len(campaigns),
	})
}

// UpdateGoogleCampaign handles PUT /v1/google-campaigns/:id
func (h *PlatformHandler) UpdateGoogleCampaign(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req googleCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	campaign, err := h.platformService.UpdateGoogle(s, id, req.toInput())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Google campaign updated", campaign)
}

// DeleteGoogleCampaign handles DELETE /v1/google-campaigns/:id
func (h *PlatformHandler) DeleteGoogleCampaign(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.platformService.DeleteGoogle(s, id); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Google campaign deleted", gin.H{"id": id})
}
