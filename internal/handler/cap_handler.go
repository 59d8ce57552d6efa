package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// CapHandler handles frequency-cap endpoints.
type CapHandler struct {
	capService *service.CapService
}

// NewCapHandler constructs a CapHandler.
func NewCapHandler(capService *service.CapService) *CapHandler {
	return &CapHandler{capService: capService}
}

type capRequest struct {
	CampaignID      uuid.UUID `json:"campaignId" binding:"required"`
	CapType         string    `json:"capType" binding:"required"`
	MaxImpressions  int       `json:"maxImpressions" binding:"required"`
	TimeWindowHours *int      `json:"timeWindowHours"`
	IsActive        *bool     `json:"isActive"`
}

func (req capRequest) toInput() service.CapInput {
	return service.CapInput{
		CampaignID:      req.CampaignID,
		CapType:         models.CapType(req.CapType),
		MaxImpressions:  req.MaxImpressions,
		TimeWindowHours: req.TimeWindowHours,
	}
}

// CreateCap handles POST /v1/frequency-caps
func (h *CapHandler) CreateCap(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	var req capRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	cap, err := h.capService.Create(s, req.toInput())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Frequency cap created", cap)
}

// ListCaps handles GET /v1/frequency-caps
func (h *CapHandler) ListCaps(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	caps, err := h.capService.List(s)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Frequency caps retrieved", gin.H{
		"caps":  caps,
		"total": len(caps),
	})
}

// capUpdateRequest omits campaignId: a cap never moves to another campaign.
type capUpdateRequest struct {
	CapType         string `json:"capType" binding:"required"`
	MaxImpressions  int    `json:"maxImpressions" binding:"required"`
	TimeWindowHours *int   `json:"timeWindowHours"`
	IsActive        *bool  `json:"isActive"`
}

// UpdateCap handles PUT /v1/frequency-caps/:id
func (h *CapHandler) UpdateCap(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req capUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	cap, err := h.capService.Update(s, id, service.CapInput{
		CapType:         models.CapType(req.CapType),
		MaxImpressions:  req.MaxImpressions,
		TimeWindowHours: req.TimeWindowHours,
	}, active)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Frequency cap updated", cap)
}

// DeleteCap handles DELETE /v1/frequency-caps/:id
func (h *CapHandler) DeleteCap(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.capService.Delete(s, id); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Frequency cap deleted", gin.H{"id": id})
}
