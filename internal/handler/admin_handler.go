package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// AdminHandler handles the admin console endpoints: user listing, role
// management, and commission rules. The RequireAdmin middleware guards every
// route here.
type AdminHandler struct {
	adminService      *service.AdminService
	commissionService *service.CommissionService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(adminService *service.AdminService, commissionService *service.CommissionService) *AdminHandler {
	return &AdminHandler{adminService: adminService, commissionService: commissionService}
}

// ListUsers handles GET /v1/admin/users with page/limit query parameters.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	profiles, total, err := h.adminService.ListProfiles(page, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessWithPagination(c, 200, "Users retrieved", gin.H{"users": profiles}, page, limit, total)
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserRole handles PUT /v1/admin/users/:id/role
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.adminService.UpdateRole(c.Request.Context(), userID, models.Role(req.Role)); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Role updated", gin.H{"userId": userID, "role": req.Role})
}

type createCommissionRequest struct {
	UserID          uuid.UUID  `json:"userId" binding:"required"`
	AppliesToUserID *uuid.UUID `json:"appliesToUserId"`
	CommissionType  string     `json:"commissionType" binding:"required"`
	Percentage      float64    `json:"percentage"`
}

// CreateCommission handles POST /v1/admin/commissions
func (h *AdminHandler) CreateCommission(c *gin.Context) {
	var req createCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rule, err := h.commissionService.Create(service.CommissionInput{
		UserID:          req.UserID,
		AppliesToUserID: req.AppliesToUserID,
		CommissionType:  models.CommissionType(req.CommissionType),
		Percentage:      req.Percentage,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Commission rule created", rule)
}

// ListCommissions handles GET /v1/admin/commissions
func (h *AdminHandler) ListCommissions(c *gin.Context) {
	rules, err := h.commissionService.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Commission rules retrieved", gin.H{
		"commissions": rules,
		"total":       len(rules),
	})
}

// ListUserCommissions handles GET /v1/admin/commissions/user/:id
func (h *AdminHandler) ListUserCommissions(c *gin.Context) {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	rules, err := h.commissionService.ListForUser(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Commission rules retrieved", gin.H{
		"commissions": rules,
		"total":       len(rules),
	})
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// SetCommissionActive handles PATCH /v1/admin/commissions/:id/active
func (h *AdminHandler) SetCommissionActive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.commissionService.SetActive(id, *req.IsActive); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Commission rule updated", gin.H{"id": id, "isActive": *req.IsActive})
}
