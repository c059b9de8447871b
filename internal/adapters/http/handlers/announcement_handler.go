package handlers

import (
	"errors"

	"github.com/tgmciner/SunDevil-Connect/internal/core/services"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AnnouncementHandler handles club announcement endpoints
type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// List lists a club's announcements, newest first
// @Summary List announcements
// @Description List a club's announcements
// @Tags Announcements
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {array} models.AnnouncementResponse
// @Failure 400 {object} response.ErrorBody
// @Router /clubs/{id}/announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	clubID, err := c.ParamsInt("id")
	if err != nil || clubID <= 0 {
		return response.BadRequest(c, "Invalid club ID")
	}

	announcements, err := h.announcementService.ListByClub(c.Context(), uint(clubID))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch announcements")
	}
	return response.OK(c, announcements)
}

// CreateAnnouncementRequest represents create announcement request body
type CreateAnnouncementRequest struct {
	Text string `json:"text"`
}

// Create posts an announcement and fans out notifications
// @Summary Post announcement
// @Description Post a club announcement; subscribers are notified after it is persisted
// @Tags Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param body body CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} models.AnnouncementResponse
// @Failure 400 {object} response.ErrorBody
// @Router /clubs/{id}/announcements [post]
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	clubID, err := c.ParamsInt("id")
	if err != nil || clubID <= 0 {
		return response.BadRequest(c, "Invalid club ID")
	}

	var req CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	announcement, err := h.announcementService.Create(c.Context(), uint(clubID), req.Text)
	if err != nil {
		if errors.Is(err, services.ErrTextRequired) {
			return response.BadRequest(c, "Text is required")
		}
		return response.InternalServerError(c, "Failed to post announcement")
	}

	return response.Created(c, announcement.ToResponse())
}
