package repositories

import (
	"context"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"

	"gorm.io/gorm"
)

// membershipRepository implements MembershipRepository interface
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// Create inserts a membership row. The (user_id, club_id) unique index
// makes a concurrent duplicate surface as gorm.ErrDuplicatedKey.
func (r *membershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

// GetByID gets a membership with its user and club preloaded
func (r *membershipRepository) GetByID(ctx context.Context, id uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Club").
		Where("id = ?", id).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByUserAndClub gets the single membership row for (user, club)
func (r *membershipRepository) GetByUserAndClub(ctx context.Context, userID, clubID uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// UpdateStatus sets a membership's status
func (r *membershipRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ListPendingForLeader lists pending requests in clubs the leader owns or
// holds a leader membership in
func (r *membershipRepository) ListPendingForLeader(ctx context.Context, leaderID uint) ([]*models.PendingMembershipResponse, error) {
	var rows []*models.PendingMembershipResponse
	err := r.db.WithContext(ctx).
		Table("memberships m").
		Select("m.id, u.name AS student_name, c.name AS club_name").
		Joins("JOIN clubs c ON m.club_id = c.id").
		Joins("JOIN users u ON m.user_id = u.id").
		Where("m.status = ?", domain.MembershipStatusPending).
		Where(`c.owner_id = ? OR EXISTS (
			SELECT 1 FROM memberships lm
			WHERE lm.club_id = c.id AND lm.user_id = ? AND lm.role = ?)`,
			leaderID, leaderID, domain.MembershipRoleLeader).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListClubsByUser lists the user's memberships joined with their clubs
func (r *membershipRepository) ListClubsByUser(ctx context.Context, userID uint) ([]*models.MyClubResponse, error) {
	var rows []*models.MyClubResponse
	err := r.db.WithContext(ctx).
		Table("memberships m").
		Select("c.id, c.name, c.description, m.status AS membership_status").
		Joins("JOIN clubs c ON m.club_id = c.id").
		Where("m.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
