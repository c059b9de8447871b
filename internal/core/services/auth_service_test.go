package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/config"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/jwt"
)

func newAuthFixture() (*AuthService, *fakeUserRepo, *config.Config) {
	userRepo := newFakeUserRepo()
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", TokenHours: 1},
	}
	return NewAuthService(userRepo, cfg), userRepo, cfg
}

func TestLoginRequiresEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	for _, email := range []string{"", "   "} {
		if _, err := svc.Login(context.Background(), email); !errors.Is(err, ErrEmailRequired) {
			t.Errorf("Login(%q) err = %v, want ErrEmailRequired", email, err)
		}
	}
}

func TestLoginProvisionsNewUser(t *testing.T) {
	svc, repo, cfg := newAuthFixture()

	result, err := svc.Login(context.Background(), "sparky@asu.edu")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Email != "sparky@asu.edu" {
		t.Errorf("email = %q", result.Email)
	}
	if result.Role != "student" {
		t.Errorf("role = %q, want student", result.Role)
	}
	if len(repo.users) != 1 {
		t.Fatalf("users = %d, want 1", len(repo.users))
	}

	claims, err := jwt.ValidateToken(result.Token, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "sparky@asu.edu" || claims.Role != "student" {
		t.Errorf("claims = %q/%q", claims.Email, claims.Role)
	}
}

func TestLoginInfersRoleFromEmailPrefix(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"admin@asu.edu", "admin"},
		{"Admin.Jones@asu.edu", "admin"},
		{"leader@asu.edu", "leader"},
		{"LEADER.smith@asu.edu", "leader"},
		{"sparky@asu.edu", "student"},
		{"team.leader@asu.edu", "student"},
	}

	for _, tt := range tests {
		svc, _, _ := newAuthFixture()
		result, err := svc.Login(context.Background(), tt.email)
		if err != nil {
			t.Fatalf("Login(%q): %v", tt.email, err)
		}
		if result.Role != tt.want {
			t.Errorf("Login(%q) role = %q, want %q", tt.email, result.Role, tt.want)
		}
	}
}

func TestLoginKeepsStoredRoleForExistingUser(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	// Stored role wins over what the prefix would now infer
	_ = repo.Create(context.Background(), &models.User{
		Email: "sparky@asu.edu",
		Name:  "Sparky",
		Role:  "admin",
	})

	result, err := svc.Login(context.Background(), "sparky@asu.edu")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Role != "admin" {
		t.Errorf("role = %q, want stored admin", result.Role)
	}
	if len(repo.users) != 1 {
		t.Errorf("users = %d, want 1 (no re-provision)", len(repo.users))
	}
}
