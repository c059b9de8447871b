package services

import (
	"context"
	"errors"
	"time"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/repositories"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"

	"gorm.io/gorm"
)

// Event service errors
var (
	ErrEventNotFound = errors.New("event not found")
)

// EventService handles club events and registrations
type EventService struct {
	eventRepo        repositories.EventRepository
	registrationRepo repositories.RegistrationRepository
	clubRepo         repositories.ClubRepository
}

// NewEventService creates a new event service
func NewEventService(
	eventRepo repositories.EventRepository,
	registrationRepo repositories.RegistrationRepository,
	clubRepo repositories.ClubRepository,
) *EventService {
	return &EventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		clubRepo:         clubRepo,
	}
}

// ListEventsInput represents event listing filters
type ListEventsInput struct {
	FreeOnly   bool
	SortByDate bool
	Offset     int
	Limit      int
}

// List lists events with optional filters
func (s *EventService) List(ctx context.Context, input *ListEventsInput) ([]*models.EventResponse, error) {
	events, _, err := s.eventRepo.List(ctx, input.FreeOnly, input.SortByDate, input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.EventResponse, len(events))
	for i, event := range events {
		responses[i] = event.ToResponse()
	}
	return responses, nil
}

// GetByID gets an event by ID
func (s *EventService) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// CreateEventInput represents create event input
type CreateEventInput struct {
	ClubID      uint
	Title       string
	Description string
	Date        time.Time
	Location    string
	Price       float64
	Category    *string
}

// Create creates a new club event. Events are immutable once created.
func (s *EventService) Create(ctx context.Context, input *CreateEventInput) (*models.Event, error) {
	if _, err := s.clubRepo.GetByID(ctx, input.ClubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}

	event := &models.Event{
		ClubID:      input.ClubID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		Price:       input.Price,
		Category:    input.Category,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// RegisterResult represents the outcome of a registration request
type RegisterResult struct {
	ID                uint
	Status            string
	AlreadyRegistered bool
}

// Register registers the user for an event. With an active registration
// the call is a no-op reporting the existing row. After a cancellation a
// new row is created; the cancelled row is history, not a toggle.
func (s *EventService) Register(ctx context.Context, userID, eventID uint) (*RegisterResult, error) {
	if _, err := s.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	existing, err := s.registrationRepo.GetActive(ctx, userID, eventID)
	if err == nil {
		return &RegisterResult{
			ID:                existing.ID,
			Status:            existing.Status,
			AlreadyRegistered: true,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	registration := &models.Registration{
		UserID:  userID,
		EventID: eventID,
		Status:  domain.RegistrationStatusRegistered,
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, err
	}

	return &RegisterResult{ID: registration.ID, Status: registration.Status}, nil
}

// Cancel soft-cancels the user's registrations for an event
func (s *EventService) Cancel(ctx context.Context, userID, eventID uint) error {
	return s.registrationRepo.CancelAll(ctx, userID, eventID)
}

// ListByUser lists the user's registered events
func (s *EventService) ListByUser(ctx context.Context, userID uint) ([]*models.MyEventResponse, error) {
	return s.registrationRepo.ListEventsByUser(ctx, userID)
}
