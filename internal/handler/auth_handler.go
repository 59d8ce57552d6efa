package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/service"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// AuthHandler handles registration and login HTTP endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
}

type sessionResponse struct {
	Token   string          `json:"token"`
	User    *models.User    `json:"user"`
	Profile *models.Profile `json:"profile"`
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	user, profile, token, err := h.authService.Register(service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        models.Role(req.Role),
		CompanyName: req.CompanyName,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.Success(c, 201, "Account registered", sessionResponse{Token: token, User: user, Profile: profile})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	user, profile, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.Success(c, 200, "Login successful", sessionResponse{Token: token, User: user, Profile: profile})
}
