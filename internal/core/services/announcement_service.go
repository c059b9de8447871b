package services

import (
	"context"
	"errors"
	"strings"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/repositories"
	"github.com/tgmciner/SunDevil-Connect/internal/core/events"
)

// Announcement service errors
var (
	ErrTextRequired = errors.New("text is required")
)

// AnnouncementService handles club announcements and their fan-out
type AnnouncementService struct {
	announcementRepo repositories.AnnouncementRepository
	bus              *events.Bus
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcementRepo repositories.AnnouncementRepository, bus *events.Bus) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		bus:              bus,
	}
}

// ListByClub lists a club's announcements, newest first
func (s *AnnouncementService) ListByClub(ctx context.Context, clubID uint) ([]*models.AnnouncementResponse, error) {
	announcements, err := s.announcementRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.AnnouncementResponse, len(announcements))
	for i, announcement := range announcements {
		responses[i] = announcement.ToResponse()
	}
	return responses, nil
}

// Create persists an announcement and publishes announcement.created
// once the row is committed. Announcements are immutable.
func (s *AnnouncementService) Create(ctx context.Context, clubID uint, text string) (*models.Announcement, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	announcement := &models.Announcement{
		ClubID: clubID,
		Text:   text,
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, &events.AnnouncementCreated{
		AnnouncementID: announcement.ID,
		ClubID:         announcement.ClubID,
		Text:           announcement.Text,
		CreatedAt:      announcement.CreatedAt,
	})

	return announcement, nil
}
