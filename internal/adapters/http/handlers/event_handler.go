package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/tgmciner/SunDevil-Connect/internal/core/services"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/pagination"
	"github.com/tgmciner/SunDevil-Connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventHandler handles club event endpoints
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List lists events
// @Summary List events
// @Description List events with optional freeOnly filter and date sorting
// @Tags Events
// @Produce json
// @Param freeOnly query bool false "Only free events"
// @Param sortBy query string false "Sort order (date)"
// @Success 200 {array} models.EventResponse
// @Router /events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	input := &services.ListEventsInput{
		FreeOnly:   c.Query("freeOnly") == "true",
		SortByDate: c.Query("sortBy") == "date",
		Offset:     params.Offset,
		Limit:      params.Limit,
	}

	events, err := h.eventService.List(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch events")
	}
	return response.OK(c, events)
}

// Get returns event details
// @Summary Get event
// @Description Get a single event by ID
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.EventResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil || eventID <= 0 {
		return response.BadRequest(c, "Invalid event ID")
	}

	event, err := h.eventService.GetByID(c.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to fetch event")
	}

	return response.OK(c, event.ToResponse())
}

// CreateEventRequest represents create event request body
type CreateEventRequest struct {
	ClubID      uint    `json:"clubId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	Category    *string `json:"category"`
}

// Create creates a club event (leader only)
// @Summary Create event
// @Description Create a new club event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ClubID == 0 || req.Title == "" || req.Date == "" || req.Location == "" {
		return response.BadRequest(c, "clubId, title, date, and location are required")
	}
	if req.Price < 0 {
		return response.BadRequest(c, "Price cannot be negative")
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		return response.BadRequest(c, "Invalid date format")
	}

	input := &services.CreateEventInput{
		ClubID:      req.ClubID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        date,
		Location:    strings.TrimSpace(req.Location),
		Price:       req.Price,
		Category:    req.Category,
	}

	event, err := h.eventService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrClubNotFound) {
			return response.NotFound(c, "Club not found")
		}
		return response.InternalServerError(c, "Failed to create event")
	}

	return response.Created(c, fiber.Map{"id": event.ID})
}

// Register registers the caller for an event
// @Summary Register for event
// @Description Register for an event; no-op when an active registration exists
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /events/{id}/register [post]
func (h *EventHandler) Register(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil || eventID <= 0 {
		return response.BadRequest(c, "Invalid event ID")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	result, err := h.eventService.Register(c.Context(), userID, uint(eventID))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to register for event")
	}

	if result.AlreadyRegistered {
		return response.OK(c, fiber.Map{"message": "Already registered"})
	}

	return response.Created(c, fiber.Map{
		"id":     result.ID,
		"status": result.Status,
	})
}

// Cancel cancels the caller's registration for an event
// @Summary Cancel registration
// @Description Soft-cancel the current user's registration for an event
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /events/{id}/register [delete]
func (h *EventHandler) Cancel(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil || eventID <= 0 {
		return response.BadRequest(c, "Invalid event ID")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.eventService.Cancel(c.Context(), userID, uint(eventID)); err != nil {
		return response.InternalServerError(c, "Failed to cancel registration")
	}

	return response.OK(c, fiber.Map{"status": "cancelled"})
}

// MyEvents lists the caller's registered events
// @Summary My events
// @Description List the current user's event registrations
// @Tags Me
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.MyEventResponse
// @Router /me/events [get]
func (h *EventHandler) MyEvents(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	events, err := h.eventService.ListByUser(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch your events")
	}
	return response.OK(c, events)
}

// parseEventDate accepts RFC3339 or plain YYYY-MM-DD
func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
