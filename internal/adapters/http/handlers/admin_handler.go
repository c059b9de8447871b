package handlers

import (
	"errors"

	"github.com/tgmciner/SunDevil-Connect/internal/core/services"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin endpoints
type AdminHandler struct {
	clubService *services.ClubService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(clubService *services.ClubService) *AdminHandler {
	return &AdminHandler{clubService: clubService}
}

// PendingClubs lists clubs awaiting approval
// @Summary Pending clubs
// @Description List clubs awaiting admin approval
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ClubResponse
// @Router /admin/clubs/pending [get]
func (h *AdminHandler) PendingClubs(c *fiber.Ctx) error {
	clubs, err := h.clubService.ListPending(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch pending clubs")
	}
	return response.OK(c, clubs)
}

// ApproveClub approves a pending club
// @Summary Approve club
// @Description Move a club from pending to approved
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /admin/clubs/{id}/approve [put]
func (h *AdminHandler) ApproveClub(c *fiber.Ctx) error {
	clubID, err := c.ParamsInt("id")
	if err != nil || clubID <= 0 {
		return response.BadRequest(c, "Invalid club ID")
	}

	club, err := h.clubService.Approve(c.Context(), uint(clubID))
	if err != nil {
		if errors.Is(err, services.ErrClubNotFound) {
			return response.NotFound(c, "Club not found")
		}
		return response.InternalServerError(c, "Failed to approve club")
	}

	return response.OK(c, fiber.Map{
		"id":     club.ID,
		"status": club.Status,
	})
}
