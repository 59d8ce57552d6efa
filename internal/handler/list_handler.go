package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// ListHandler handles targeting-list endpoints. One parametrized surface
// serves every list/entry type combination.
type ListHandler struct {
	listService *service.ListService
}

// NewListHandler constructs a ListHandler.
func NewListHandler(listService *service.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

type listEntryRequest struct {
	CampaignID  *uuid.UUID `json:"campaignId"`
	ListType    string     `json:"listType" binding:"required"`
	EntryType   string     `json:"entryType" binding:"required"`
	Value       string     `json:"value"`
	Description *string    `json:"description"`
	IsGlobal    bool       `json:"isGlobal"`
	IsActive    *bool      `json:"isActive"`
}

func (req listEntryRequest) toInput() service.ListEntryInput {
	return service.ListEntryInput{
		CampaignID:  req.CampaignID,
		ListType:    models.ListType(req.ListType),
		EntryType:   models.EntryType(req.EntryType),
		Value:       req.Value,
		Description: req.Description,
		IsGlobal:    req.IsGlobal,
	}
}

// CreateEntry handles POST /v1/lists
func (h *ListHandler) CreateEntry(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	var req listEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	entry, err := h.listService.Create(s, req.toInput())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "List entry created", entry)
}

type bulkCreateRequest struct {
	listEntryRequest
	Values []string `json:"values" binding:"required"`
}

// BulkCreateEntries handles POST /v1/lists/bulk. The payload carries values
// already extracted from an uploaded file; parsing lives upstream. The
// response reports how many rows were written.
func (h *ListHandler) BulkCreateEntries(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	var req bulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	count, err := h.listService.BulkCreate(s, req.toInput(), req.Values)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "List entries created", gin.H{"processed": count})
}

// ListEntries handles GET /v1/lists with optional list_type, entry_type, and
// campaign_id query filters.
func (h *ListHandler) ListEntries(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}

	filter := repository.ListEntryFilter{
		ListType:  models.ListType(c.Query("list_type")),
		EntryType: models.EntryType(c.Query("entry_type")),
	}
	if raw := c.Query("campaign_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.Error(c, 400, "INVALID_ID", "Invalid campaign_id")
			return
		}
		filter.CampaignID = &id
	}

	entries, err := h.listService.List(s, filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "List entries retrieved", gin.H{
		"entries": entries,
		"total":   len(entries),
	})
}

// UpdateEntry handles PUT /v1/lists/:id
func (h *ListHandler) UpdateEntry(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req listEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	entry, err := h.listService.Update(s, id, req.toInput(), active)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "List entry updated", entry)
}

// SetEntryActive handles PATCH /v1/lists/:id/active
func (h *ListHandler) SetEntryActive(c *gin.Context) {
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

	if err := h.listService.SetActive(s, id, *req.IsActive); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "List entry updated", gin.H{"id": id, "isActive": *req.IsActive})
}

// DeleteEntry handles DELETE /v1/lists/:id
func (h *ListHandler) DeleteEntry(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.listService.Delete(s, id); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "List entry deleted", gin.H{"id": id})
}
