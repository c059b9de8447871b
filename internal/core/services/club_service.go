package services

import (
	"context"
	"errors"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/repositories"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"

	"gorm.io/gorm"
)

// Club service errors
var (
	ErrClubNotFound = errors.New("club not found")
)

// ClubService handles club listing and the admin approval workflow
type ClubService struct {
	clubRepo repositories.ClubRepository
}

// NewClubService creates a new club service
func NewClubService(clubRepo repositories.ClubRepository) *ClubService {
	return &ClubService{clubRepo: clubRepo}
}

// ListApproved lists clubs visible to everyone
func (s *ClubService) ListApproved(ctx context.Context) ([]*models.ClubResponse, error) {
	clubs, err := s.clubRepo.ListByStatus(ctx, domain.ClubStatusApproved)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ClubResponse, len(clubs))
	for i, club := range clubs {
		responses[i] = club.ToResponse()
	}
	return responses, nil
}

// GetByID gets a club by ID
func (s *ClubService) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return club, nil
}

// ListPending lists clubs awaiting admin approval
func (s *ClubService) ListPending(ctx context.Context) ([]*models.ClubResponse, error) {
	clubs, err := s.clubRepo.ListByStatus(ctx, domain.ClubStatusPending)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ClubResponse, len(clubs))
	for i, club := range clubs {
		responses[i] = club.ToResponse()
	}
	return responses, nil
}

// Approve moves a club from pending to approved. The transition is
// terminal and idempotent: approving an approved club reports approved
// again. Clubs have no denied state in current scope.
func (s *ClubService) Approve(ctx context.Context, id uint) (*models.Club, error) {
	club, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if club.Status == domain.ClubStatusApproved {
		return club, nil
	}

	if err := s.clubRepo.UpdateStatus(ctx, id, domain.ClubStatusApproved); err != nil {
		return nil, err
	}

	club.Status = domain.ClubStatusApproved
	return club, nil
}

// ListForLeader lists clubs the user owns or leads
func (s *ClubService) ListForLeader(ctx context.Context, userID uint) ([]*models.ClubResponse, error) {
	clubs, err := s.clubRepo.ListForLeader(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ClubResponse, len(clubs))
	for i, club := range clubs {
		responses[i] = club.ToResponse()
	}
	return responses, nil
}
