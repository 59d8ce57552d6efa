package handler

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// CampaignHandler handles campaign CRUD HTTP endpoints.
type CampaignHandler struct {
	campaignService *service.CampaignService
}

// NewCampaignHandler constructs a CampaignHandler.
func NewCampaignHandler(campaignService *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

type campaignRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     *string         `json:"description"`
	Status          string          `json:"status"`
	Budget          float64         `json:"budget"`
	DailyBudget     *float64        `json:"dailyBudget"`
	StartDate       time.Time       `json:"startDate" binding:"required"`
	EndDate         *time.Time      `json:"endDate"`
	TargetingConfig json.RawMessage `json:"targetingConfig"`
}

func (req campaignRequest) toInput() service.CampaignInput {
	return service.CampaignInput{
		Name:            req.Name,
		Description:     req.Description,
		Status:          models.CampaignStatus(req.Status),
		Budget:          req.Budget,
		DailyBudget:     req.DailyBudget,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TargetingConfig: req.TargetingConfig,
	}
}

// CreateCampaign handles POST /v1/campaigns
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	campaign, err := h.campaignService.Create(s, req.toInput())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Campaign created", campaign)
}

type strategyCampaignRequest struct {
	campaignRequest
	BrandDescription  string `json:"brandDescription" binding:"required"`
	CampaignObjective string `json:"campaignObjective" binding:"required"`
	LandingPage       string `json:"landingPage"`
}

// CreateCampaignWithStrategy handles POST /v1/campaigns/strategy. The
// external generator runs first; no campaign row exists if it fails.
func (h *CampaignHandler) CreateCampaignWithStrategy(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	var req strategyCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	campaign, err := h.campaignService.CreateWithStrategy(c.Request.Context(), s, req.toInput(), service.StrategyInput{
		BrandDescription:  req.BrandDescription,
		CampaignObjective: req.CampaignObjective,
		LandingPage:       req.LandingPage,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Campaign created with generated strategy", campaign)
}

// ListCampaigns handles GET /v1/campaigns
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	campaigns, err := h.campaignService.List(s)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Campaigns retrieved", gin.H{
		"campaigns": campaigns,
		"total":     len(campaigns),
	})
}

// GetCampaign handles GET /v1/campaigns/:id
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	campaign, err := h.campaignService.Get(s, id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Campaign retrieved", campaign)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateCampaignStatus handles PATCH /v1/campaigns/:id/status
func (h *CampaignHandler) UpdateCampaignStatus(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	campaign, err := h.campaignService.UpdateStatus(s, id, models.CampaignStatus(req.Status))
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Campaign status updated", campaign)
}

type updateBudgetRequest struct {
	Budget      float64    `json:"budget"`
	DailyBudget *float64   `json:"dailyBudget"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
}

// UpdateCampaignBudget handles PATCH /v1/campaigns/:id/budget
func (h *CampaignHandler) UpdateCampaignBudget(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req updateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.campaignService.UpdateBudget(s, id, req.Budget, req.DailyBudget, req.StartDate, req.EndDate); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Campaign budget updated", gin.H{"id": id})
}

// DeleteCampaign handles DELETE /v1/campaigns/:id
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.campaignService.Delete(s, id); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Campaign deleted", gin.H{"id": id})
}
