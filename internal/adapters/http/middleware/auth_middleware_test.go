package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tgmciner/SunDevil-Connect/internal/config"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const testSecret = "test-secret"

func newProtectedApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret, TokenHours: 1}}

	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware(cfg)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/protected", handlers...)
	return app
}

func request(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp(t)

	resp := request(t, app, "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsNonBearerHeader(t *testing.T) {
	app := newProtectedApp(t)

	resp := request(t, app, "Basic abc123")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	app := newProtectedApp(t)

	resp := request(t, app, "Bearer not-a-token")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.GenerateToken(1, "sparky@asu.edu", "student", testSecret, -1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	resp := request(t, app, "Bearer "+token)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsUnknownRoleClaim(t *testing.T) {
	app := newProtectedApp(t)

	// A token minted with a role outside the closed enumeration is refused
	// at the gate, not passed through for handlers to trip over
	token, err := jwt.GenerateToken(1, "sparky@asu.edu", "superuser", testSecret, 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	resp := request(t, app, "Bearer "+token)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.GenerateToken(1, "sparky@asu.edu", "student", testSecret, 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	resp := request(t, app, "Bearer "+token)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestLeaderOnlyGate(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{"leader", fiber.StatusOK},
		{"student", fiber.StatusForbidden},
		{"admin", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		app := newProtectedApp(t, LeaderOnly())

		token, err := jwt.GenerateToken(1, tt.role+"@asu.edu", tt.role, testSecret, 1)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}

		resp := request(t, app, "Bearer "+token)
		if resp.StatusCode != tt.want {
			t.Errorf("role %q status = %d, want %d", tt.role, resp.StatusCode, tt.want)
		}
	}
}

func TestAdminOnlyGate(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{"admin", fiber.StatusOK},
		{"leader", fiber.StatusForbidden},
		{"student", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		app := newProtectedApp(t, AdminOnly())

		token, err := jwt.GenerateToken(1, tt.role+"@asu.edu", tt.role, testSecret, 1)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}

		resp := request(t, app, "Bearer "+token)
		if resp.StatusCode != tt.want {
			t.Errorf("role %q status = %d, want %d", tt.role, resp.StatusCode, tt.want)
		}
	}
}
