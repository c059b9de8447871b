package services

import (
	"context"
	"errors"
	"strings"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/repositories"
	"github.com/tgmciner/SunDevil-Connect/internal/config"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/jwt"

	"gorm.io/gorm"
)

// Auth service errors
var (
	ErrEmailRequired = errors.New("email is required")
)

// AuthService handles login and user provisioning
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginResult represents login output
type LoginResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login fetches the user by email, auto-provisioning on first login, and
// issues a bearer token. A new user's role is inferred once from the
// email prefix and never changes automatically afterwards.
func (s *AuthService) Login(ctx context.Context, email string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		user = &models.User{
			Email: email,
			Name:  email,
			Role:  string(inferRole(email)),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Role, s.cfg.JWT.Secret, s.cfg.JWT.TokenHours)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// inferRole applies the demo email-prefix convention. Applied only at
// first login; existing users keep their stored role.
func inferRole(email string) domain.Role {
	lower := strings.ToLower(email)
	switch {
	case strings.HasPrefix(lower, "admin"):
		return domain.RoleAdmin
	case strings.HasPrefix(lower, "leader"):
		return domain.RoleLeader
	default:
		return domain.RoleStudent
	}
}
