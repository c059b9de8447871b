package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Users & Clubs
// ============================================================

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Role      string    `gorm:"size:20;not null;default:'student'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Club represents clubs table
type Club struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	OwnerID     uint      `gorm:"index" json:"owner_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Club) TableName() string {
	return "clubs"
}

// ClubResponse DTO for public club listings
type ClubResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Club) ToResponse() *ClubResponse {
	return &ClubResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ClubDetailResponse DTO includes status (club detail page)
type ClubDetailResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (c *Club) ToDetailResponse() *ClubDetailResponse {
	return &ClubDetailResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
	}
}

// ============================================================
// Memberships
// ============================================================

// Membership links one user to one club. The composite unique index is
// the invariant: at most one row per (user, club), enforced by storage,
// not by a check-then-act read.
type Membership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_memberships_user_club" json:"user_id"`
	ClubID    uint      `gorm:"not null;uniqueIndex:idx_memberships_user_club" json:"club_id"`
	Role      string    `gorm:"size:20;not null;default:'member'" json:"role"`
	Status    string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Club *Club `gorm:"foreignKey:ClubID" json:"-"`
}

func (Membership) TableName() string {
	return "memberships"
}

// PendingMembershipResponse DTO for the leader review queue
type PendingMembershipResponse struct {
	ID          uint   `json:"id"`
	StudentName string `json:"studentName"`
	ClubName    string `json:"clubName"`
}

// MyClubResponse DTO for a student's club list
type MyClubResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	MembershipStatus string `json:"membershipStatus"`
}

// ============================================================
// Events & Registrations
// ============================================================

// Event represents events table (club events, immutable once created)
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClubID      uint      `gorm:"not null;index" json:"club_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Location    string    `gorm:"size:200;not null" json:"location"`
	Price       float64   `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Category    *string   `gorm:"size:50" json:"category"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Club *Club `gorm:"foreignKey:ClubID" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

// EventResponse DTO
type EventResponse struct {
	ID          uint      `json:"id"`
	ClubID      uint      `json:"clubId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Category    *string   `json:"category"`
	IsFree      bool      `json:"isFree"`
}

func (e *Event) ToResponse() *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		ClubID:      e.ClubID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Price:       e.Price,
		Category:    e.Category,
		IsFree:      e.Price == 0,
	}
}

// Registration links one user to one event. Cancellation is soft: the row
// is kept with status cancelled and a later re-registration creates a new
// row rather than flipping the old one back.
type Registration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	Status    string    `gorm:"size:20;not null;default:'registered'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Event *Event `gorm:"foreignKey:EventID" json:"-"`
}

func (Registration) TableName() string {
	return "registrations"
}

// EventReminder is the joined row the daily reminder job reads
type EventReminder struct {
	UserEmail string    `json:"user_email"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
}

// MyEventResponse DTO for a student's registered events
type MyEventResponse struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Status   string    `json:"status"`
}

// ============================================================
// Announcements
// ============================================================

// Announcement represents announcements table (immutable)
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClubID    uint      `gorm:"not null;index" json:"club_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Club *Club `gorm:"foreignKey:ClubID" json:"-"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// AnnouncementResponse DTO
type AnnouncementResponse struct {
	ID        uint      `json:"id"`
	ClubID    uint      `json:"clubId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *Announcement) ToResponse() *AnnouncementResponse {
	return &AnnouncementResponse{
		ID:        a.ID,
		ClubID:    a.ClubID,
		Text:      a.Text,
		CreatedAt: a.CreatedAt,
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Club{},
		&Membership{},
		&Event{},
		&Registration{},
		&Announcement{},
	)
}
