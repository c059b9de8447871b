package handlers

import (
	"errors"

	"github.com/tgmciner/SunDevil-Connect/internal/core/services"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClubHandler handles club endpoints
type ClubHandler struct {
	clubService *services.ClubService
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubService *services.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// List lists approved clubs
// @Summary List clubs
// @Description List approved clubs visible to everyone
// @Tags Clubs
// @Produce json
// @Success 200 {array} models.ClubResponse
// @Router /clubs [get]
func (h *ClubHandler) List(c *fiber.Ctx) error {
	clubs, err := h.clubService.ListApproved(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch clubs")
	}
	return response.OK(c, clubs)
}

// Get returns club details
// @Summary Get club
// @Description Get a single club by ID, any status
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} models.ClubDetailResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /clubs/{id} [get]
func (h *ClubHandler) Get(c *fiber.Ctx) error {
	clubID, err := c.ParamsInt("id")
	if err != nil || clubID <= 0 {
		return response.BadRequest(c, "Invalid club ID")
	}

	club, err := h.clubService.GetByID(c.Context(), uint(clubID))
	if err != nil {
		if errors.Is(err, services.ErrClubNotFound) {
			return response.NotFound(c, "Club not found")
		}
		return response.InternalServerError(c, "Failed to fetch club")
	}

	return response.OK(c, club.ToDetailResponse())
}

// LeaderClubs lists clubs the authenticated leader owns or leads
// @Summary Leader clubs
// @Description List clubs the current leader owns or holds a leader membership in
// @Tags Leader
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ClubResponse
// @Router /leader/clubs [get]
func (h *ClubHandler) LeaderClubs(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	clubs, err := h.clubService.ListForLeader(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch leader clubs")
	}
	return response.OK(c, clubs)
}
