package middleware

import (
	"strings"

	"github.com/tgmciner/SunDevil-Connect/internal/config"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/jwt"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware. Tokens are accepted
// from the Authorization header only: `Bearer <token>`.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Missing or invalid Authorization header")
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.ValidateToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Token expired")
			}
			return response.Unauthorized(c, "Invalid or expired token")
		}

		role, err := domain.ParseRole(claims.Role)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", role)

		return c.Next()
	}
}

// RequireRoles creates role-based authorization middleware over the
// closed role enumeration
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(domain.Role)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if verdict := domain.Authorize(role, allowed...); !verdict.Allowed {
			return response.Forbidden(c, "Forbidden: insufficient role")
		}

		return c.Next()
	}
}

// LeaderOnly middleware allows only the leader role
func LeaderOnly() fiber.Handler {
	return RequireRoles(domain.RoleLeader)
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RequireRoles(domain.RoleAdmin)
}
