package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// DealHandler handles PMP deal endpoints.
type DealHandler struct {
	dealService *service.DealService
}

// NewDealHandler constructs a DealHandler.
func NewDealHandler(dealService *service.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

type dealRequest struct {
	DealID           string     `json:"dealId" binding:"required"`
	DealName         string     `json:"dealName" binding:"required"`
	DSPName          string     `json:"dspName" binding:"required"`
	DealType         string     `json:"dealType" binding:"required"`
	FloorPrice       *float64   `json:"floorPrice"`
	Currency         string     `json:"currency" binding:"required"`
	Priority         int        `json:"priority"`
	MarginPercentage float64    `json:"marginPercentage"`
	Status           string     `json:"status"`
	Description      *string    `json:"description"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
}

func (req dealRequest) toInput() service.DealInput {
	return service.DealInput{
		DealID:           req.DealID,
		DealName:         req.DealName,
		DSPName:          req.DSPName,
		DealType:         models.DealType(req.DealType),
		FloorPrice:       req.FloorPrice,
		Currency:         req.Currency,
		Priority:         req.Priority,
		MarginPercentage: req.MarginPercentage,
		Status:           req.Status,
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	}
}

// CreateDeal handles POST /v1/pmp-deals
func (h *DealHandler) CreateDeal(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	var req dealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	deal, err := h.dealService.Create(s, req.toInput())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "PMP deal created", deal)
}

// ListDeals handles GET /v1/pmp-deals
func (h *DealHandler) ListDeals(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	deals, err := h.dealService.List(s)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "PMP deals retrieved", gin.H{
		"deals": deals,
		"total": len(deals),
	})
}

// GetDeal handles GET /v1/pmp-deals/:id
func (h *DealHandler) GetDeal(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	deal, err := h.dealService.Get(s, id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "PMP deal retrieved", deal)
}

// UpdateDeal handles PUT /v1/pmp-deals/:id
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	deal, err := h.dealService.Update(s, id, req.toInput())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "PMP deal updated", deal)
}

// DeleteDeal handles DELETE /v1/pmp-deals/:id
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.dealService.Delete(s, id); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "PMP deal deleted", gin.H{"id": id})
}
