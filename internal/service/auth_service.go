package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/repository"
	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/utils"
)

// AuthService handles account registration and login. Every account gets a
// user row plus exactly one profile carrying its role.
type AuthService struct {
	userRepo    *repository.UserRepository
	profileRepo *repository.ProfileRepository
}

func NewAuthService(userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository) *AuthService {
	return &AuthService{userRepo: userRepo, profileRepo: profileRepo}
}

// RegisterInput carries the self-service signup fields.
type RegisterInput struct {
	Email       string
	Password    string
	Role        models.Role
	CompanyName string
}

// Register creates a user and its profile. Self-service signup only offers
// the agency and advertiser roles; admin accounts are provisioned out of
// band.
func (s *AuthService) Register(in RegisterInput) (*models.User, *models.Profile, string, error) {
	if !in.Role.Valid() || in.Role == models.RoleAdmin {
		return nil, nil, "", utils.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, nil, "", utils.ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, "", err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, nil, "", err
	}

	profile := &models.Profile{
		UserID:      user.ID,
		Role:        in.Role,
		CompanyName: in.CompanyName,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to create profile")
		return nil, nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, string(profile.Role))
	if err != nil {
		return nil, nil, "", err
	}

	log.Info().Str("email", email).Str("role", string(in.Role)).Msg("Account registered")
	return user, profile, token, nil
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(email, password string) (*models.User, *models.Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		log.Debug().Str("email", email).Msg("Login failed: unknown email")
		return nil, nil, "", utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		log.Warn().Str("email", email).Msg("Login rejected: account inactive")
		return nil, nil, "", utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("email", email).Msg("Login failed: bad password")
		return nil, nil, "", utils.ErrInvalidCredentials
	}

	profile, err := s.profileRepo.GetByUserID(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("Account has no profile")
		return nil, nil, "", utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, string(profile.Role))
	if err != nil {
		return nil, nil, "", err
	}

	log.Info().Str("email", email).Msg("Login successful")
	return user, profile, token, nil
}
