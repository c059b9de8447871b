package repositories

import (
	"context"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"

	"gorm.io/gorm"
)

// clubRepository implements ClubRepository interface
type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

// GetByID gets a club by ID
func (r *clubRepository) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	var club models.Club
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// ListByStatus lists clubs with the given status
func (r *clubRepository) ListByStatus(ctx context.Context, status string) ([]*models.Club, error) {
	var clubs []*models.Club
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&clubs).Error
	if err != nil {
		return nil, err
	}
	return clubs, nil
}

// UpdateStatus sets a club's status
func (r *clubRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Club{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ListForLeader lists clubs the user owns or holds a leader membership in
func (r *clubRepository) ListForLeader(ctx context.Context, userID uint) ([]*models.Club, error) {
	var clubs []*models.Club
	err := r.db.WithContext(ctx).
		Distinct("clubs.*").
		Joins("LEFT JOIN memberships m ON m.club_id = clubs.id AND m.role = ?", domain.MembershipRoleLeader).
		Where("clubs.owner_id = ? OR m.user_id = ?", userID, userID).
		Find(&clubs).Error
	if err != nil {
		return nil, err
	}
	return clubs, nil
}

// IsLeader reports whether the user is the club's owner or holds a
// leader-role membership in it. Leader scope is per-club.
func (r *clubRepository) IsLeader(ctx context.Context, clubID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Club{}).
		Joins("LEFT JOIN memberships m ON m.club_id = clubs.id AND m.user_id = ? AND m.role = ?", userID, domain.MembershipRoleLeader).
		Where("clubs.id = ?", clubID).
		Where("clubs.owner_id = ? OR m.id IS NOT NULL", userID).
		Count(&count).Error
	return count > 0, err
}
