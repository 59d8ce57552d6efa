package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// RelationshipHandler handles agency-advertiser link endpoints. Routes are
// restricted to the agency role.
type RelationshipHandler struct {
	relationshipService *service.RelationshipService
}

// NewRelationshipHandler constructs a RelationshipHandler.
func NewRelationshipHandler(relationshipService *service.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{relationshipService: relationshipService}
}

type linkRequest struct {
	AdvertiserID uuid.UUID `json:"advertiserId" binding:"required"`
}

// CreateLink handles POST /v1/relationships
func (h *RelationshipHandler) CreateLink(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rel, err := h.relationshipService.Link(s, req.AdvertiserID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Relationship created", rel)
}

// SetLinkActive handles PATCH /v1/relationships/:id/active
func (h *RelationshipHandler) SetLinkActive(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rel, err := h.relationshipService.SetActive(s, id, *req.IsActive)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Relationship updated", rel)
}

// ListAdvertiserCampaigns handles GET /v1/agency/advertisers/:id/campaigns.
// Requires an active link to the advertiser.
func (h *RelationshipHandler) ListAdvertiserCampaigns(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	advertiserID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	campaigns, err := h.relationshipService.AdvertiserCampaigns(s, advertiserID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Advertiser campaigns retrieved", gin.H{
		"campaigns": campaigns,
		"total":     len(campaigns),
	})
}
