package events

import "time"

// Event type names. Handlers are keyed by these on the bus.
const (
	TypeAnnouncementCreated = "announcement.created"
	TypeMembershipApproved  = "membership.approved"
)

// Event is a domain event: an immutable, named fact broadcast after a
// state change commits. Events are ephemeral and never persisted.
type Event interface {
	Type() string
}

// AnnouncementCreated is published after an announcement row is committed.
type AnnouncementCreated struct {
	AnnouncementID uint      `json:"id"`
	ClubID         uint      `json:"club_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// Type returns the event type name
func (AnnouncementCreated) Type() string { return TypeAnnouncementCreated }

// MembershipApproved is published after a membership status is committed
// as approved. Denials publish nothing.
type MembershipApproved struct {
	MembershipID uint   `json:"membership_id"`
	UserEmail    string `json:"user_email"`
	ClubName     string `json:"club_name"`
}

// Type returns the event type name
func (MembershipApproved) Type() string { return TypeMembershipApproved }
