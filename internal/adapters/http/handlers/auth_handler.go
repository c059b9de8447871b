package handlers

import (
	"errors"

	"github.com/tgmciner/SunDevil-Connect/internal/core/services"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email string `json:"email"`
}

// Login handles login, auto-provisioning new users by email
// @Summary Login
// @Description Create-or-fetch a user by email and issue a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login data"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} response.ErrorBody
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			return response.BadRequest(c, "Email is required")
		}
		return response.InternalServerError(c, "Login failed")
	}

	return response.OK(c, result)
}
