package services

import (
	"context"
	"errors"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/repositories"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"
	"github.com/tgmciner/SunDevil-Connect/internal/core/events"

	"gorm.io/gorm"
)

// Membership service errors
var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrInvalidDecision    = errors.New("invalid decision")
	ErrNotClubLeader      = errors.New("not a leader of this club")
	ErrMembershipDecided  = errors.New("membership already decided")
)

// MembershipService governs the membership request lifecycle:
// absent → pending → approved/denied. Approved and denied are terminal.
type MembershipService struct {
	membershipRepo repositories.MembershipRepository
	clubRepo       repositories.ClubRepository
	bus            *events.Bus
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	membershipRepo repositories.MembershipRepository,
	clubRepo repositories.ClubRepository,
	bus *events.Bus,
) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		clubRepo:       clubRepo,
		bus:            bus,
	}
}

// JoinResult represents the outcome of a join request
type JoinResult struct {
	ID               uint
	Status           string
	AlreadyRequested bool
}

// Join requests membership in a club. The insert races against the
// (user_id, club_id) unique index rather than a read-then-write check:
// a duplicate-key conflict means a row already exists, and the call
// reports that row's status instead of erroring. Idempotent from the
// caller's perspective.
func (s *MembershipService) Join(ctx context.Context, userID, clubID uint) (*JoinResult, error) {
	membership := &models.Membership{
		UserID: userID,
		ClubID: clubID,
		Role:   domain.MembershipRoleMember,
		Status: domain.MembershipStatusPending,
	}

	err := s.membershipRepo.Create(ctx, membership)
	if err == nil {
		return &JoinResult{ID: membership.ID, Status: membership.Status}, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	existing, err := s.membershipRepo.GetByUserAndClub(ctx, userID, clubID)
	if err != nil {
		return nil, err
	}

	return &JoinResult{
		ID:               existing.ID,
		Status:           existing.Status,
		AlreadyRequested: true,
	}, nil
}

// Status returns the caller's membership status for a club, or nil when
// no request was ever made
func (s *MembershipService) Status(ctx context.Context, userID, clubID uint) (*string, error) {
	membership, err := s.membershipRepo.GetByUserAndClub(ctx, userID, clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership.Status, nil
}

// ListPendingForLeader lists pending requests across the leader's clubs
func (s *MembershipService) ListPendingForLeader(ctx context.Context, leaderID uint) ([]*models.PendingMembershipResponse, error) {
	return s.membershipRepo.ListPendingForLeader(ctx, leaderID)
}

// ListClubsByUser lists the user's memberships with their clubs
func (s *MembershipService) ListClubsByUser(ctx context.Context, userID uint) ([]*models.MyClubResponse, error) {
	return s.membershipRepo.ListClubsByUser(ctx, userID)
}

// Decide applies a leader's decision to a pending membership request.
// The decider must be a leader of that specific club (owner or
// leader-role member); leader authority is per-club, not global. On
// approval, a membership.approved event is published after the status
// write commits. Denials publish nothing.
func (s *MembershipService) Decide(ctx context.Context, membershipID, deciderID uint, decision string) (*models.Membership, error) {
	var newStatus string
	switch decision {
	case domain.DecisionApprove:
		newStatus = domain.MembershipStatusApproved
	case domain.DecisionDeny:
		newStatus = domain.MembershipStatusDenied
	default:
		return nil, ErrInvalidDecision
	}

	membership, err := s.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}

	isLeader, err := s.clubRepo.IsLeader(ctx, membership.ClubID, deciderID)
	if err != nil {
		return nil, err
	}
	if !isLeader {
		return nil, ErrNotClubLeader
	}

	if membership.Status != domain.MembershipStatusPending {
		return nil, ErrMembershipDecided
	}

	if err := s.membershipRepo.UpdateStatus(ctx, membershipID, newStatus); err != nil {
		return nil, err
	}
	membership.Status = newStatus

	if newStatus == domain.MembershipStatusApproved && membership.User != nil && membership.Club != nil {
		s.bus.Publish(ctx, &events.MembershipApproved{
			MembershipID: membership.ID,
			UserEmail:    membership.User.Email,
			ClubName:     membership.Club.Name,
		})
	}

	return membership, nil
}
