package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// ProfileHandler handles profile and advertiser-directory endpoints.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetOwn(s)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Profile retrieved", profile)
}

type updateProfileRequest struct {
	CompanyName  string  `json:"companyName" binding:"required"`
	ContactEmail *string `json:"contactEmail"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
}

// UpdateProfile handles PUT /v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateOwn(c.Request.Context(), s, service.UpdateOwnInput{
		CompanyName:  req.CompanyName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Profile updated", profile)
}

// ListAdvertisers handles GET /v1/advertisers. Any agency sees the full
// platform directory; this backs the marketplace view for picking new
// advertisers to manage.
func (h *ProfileHandler) ListAdvertisers(c *gin.Context) {
	advertisers, err := h.profileService.AdvertiserDirectory()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Advertisers retrieved", gin.H{
		"advertisers": advertisers,
		"total":       len(advertisers),
	})
}

// ListManagedAdvertisers handles GET /v1/agency/advertisers: only the
// advertisers linked to the calling agency.
func (h *ProfileHandler) ListManagedAdvertisers(c *gin.Context) {
	s, ok := scope(c)
	if !ok {
		return
	}
	managed, err := h.profileService.ManagedAdvertisers(s)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Managed advertisers retrieved", gin.H{
		"advertisers": managed,
		"total":       len(managed),
	})
}
