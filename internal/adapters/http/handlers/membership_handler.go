package handlers

import (
	"errors"

	"github.com/tgmciner/SunDevil-Connect/internal/core/services"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MembershipHandler handles membership request endpoints
type MembershipHandler struct {
	membershipService *services.MembershipService
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// Status returns the caller's membership status for a club
// @Summary Own membership status
// @Description Get the current user's membership status for a club; status is null when no request exists
// @Tags Memberships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /clubs/{id}/membership [get]
func (h *MembershipHandler) Status(c *fiber.Ctx) error {
	clubID, err := c.ParamsInt("id")
	if err != nil || clubID <= 0 {
		return response.BadRequest(c, "Invalid club ID")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	status, err := h.membershipService.Status(c.Context(), userID, uint(clubID))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch membership status")
	}

	return response.OK(c, fiber.Map{"status": status})
}

// Join requests membership in a club
// @Summary Request membership
// @Description Request to join a club; idempotent when a request already exists
// @Tags Memberships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /clubs/{id}/join [post]
func (h *MembershipHandler) Join(c *fiber.Ctx) error {
	clubID, err := c.ParamsInt("id")
	if err != nil || clubID <= 0 {
		return response.BadRequest(c, "Invalid club ID")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	result, err := h.membershipService.Join(c.Context(), userID, uint(clubID))
	if err != nil {
		return response.InternalServerError(c, "Failed to request membership")
	}

	if result.AlreadyRequested {
		return response.OK(c, fiber.Map{
			"message": "Request already exists",
			"status":  result.Status,
		})
	}

	return response.Created(c, fiber.Map{
		"id":     result.ID,
		"status": result.Status,
	})
}

// Pending lists pending requests across the leader's clubs
// @Summary Pending membership requests
// @Description List pending requests in clubs the current leader owns or leads
// @Tags Leader
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PendingMembershipResponse
// @Router /leader/memberships/pending [get]
func (h *MembershipHandler) Pending(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	pending, err := h.membershipService.ListPendingForLeader(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch membership requests")
	}
	return response.OK(c, pending)
}

// Decide applies a leader's approve/deny decision
// @Summary Decide membership request
// @Description Approve or deny a pending membership request in a club the leader is responsible for
// @Tags Leader
// @Produce json
// @Security BearerAuth
// @Param id path int true "Membership ID"
// @Param decision path string true "approve or deny"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /memberships/{id}/{decision} [put]
func (h *MembershipHandler) Decide(c *fiber.Ctx) error {
	membershipID, err := c.ParamsInt("id")
	if err != nil || membershipID <= 0 {
		return response.BadRequest(c, "Invalid membership ID")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	decision := c.Params("decision")

	membership, err := h.membershipService.Decide(c.Context(), uint(membershipID), userID, decision)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDecision):
			return response.BadRequest(c, "Invalid decision")
		case errors.Is(err, services.ErrMembershipNotFound):
			return response.NotFound(c, "Membership not found")
		case errors.Is(err, services.ErrNotClubLeader):
			return response.Forbidden(c, "Not a leader of this club")
		case errors.Is(err, services.ErrMembershipDecided):
			return response.Conflict(c, "Membership already decided")
		default:
			return response.InternalServerError(c, "Failed to update membership")
		}
	}

	return response.OK(c, fiber.Map{
		"id":     membership.ID,
		"status": membership.Status,
	})
}

// MyClubs lists the caller's memberships with their clubs
// @Summary My clubs
// @Description List the current user's club memberships
// @Tags Me
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.MyClubResponse
// @Router /me/clubs [get]
func (h *MembershipHandler) MyClubs(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	clubs, err := h.membershipService.ListClubsByUser(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch your clubs")
	}
	return response.OK(c, clubs)
}
