package repositories

import (
	"context"
	"time"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ClubRepository defines club repository interface
type ClubRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Club, error)
	ListByStatus(ctx context.Context, status string) ([]*models.Club, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	ListForLeader(ctx context.Context, userID uint) ([]*models.Club, error)
	IsLeader(ctx context.Context, clubID, userID uint) (bool, error)
}

// MembershipRepository defines membership repository interface
type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	GetByID(ctx context.Context, id uint) (*models.Membership, error)
	GetByUserAndClub(ctx context.Context, userID, clubID uint) (*models.Membership, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	ListPendingForLeader(ctx context.Context, leaderID uint) ([]*models.PendingMembershipResponse, error)
	ListClubsByUser(ctx context.Context, userID uint) ([]*models.MyClubResponse, error)
}

// EventRepository defines event repository interface
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context, freeOnly, sortByDate bool, offset, limit int) ([]*models.Event, int64, error)
}

// RegistrationRepository defines registration repository interface
type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	GetActive(ctx context.Context, userID, eventID uint) (*models.Registration, error)
	CancelAll(ctx context.Context, userID, eventID uint) error
	ListEventsByUser(ctx context.Context, userID uint) ([]*models.MyEventResponse, error)
	ListActiveForEventDate(ctx context.Context, from, to time.Time) ([]*models.EventReminder, error)
}

// AnnouncementRepository defines announcement repository interface
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	ListByClub(ctx context.Context, clubID uint) ([]*models.Announcement, error)
}
