package services

import (
	"context"
	"time"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"
	"github.com/tgmciner/SunDevil-Connect/internal/core/events"

	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the storage contract the
// services rely on, including gorm.ErrRecordNotFound on misses and
// gorm.ErrDuplicatedKey on unique index conflicts.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeClubRepo struct {
	clubs map[uint]*models.Club
	// leaders marks leader-role approved members per club, beyond the owner
	leaders map[uint]map[uint]bool
}

func newFakeClubRepo(clubs ...*models.Club) *fakeClubRepo {
	r := &fakeClubRepo{
		clubs:   make(map[uint]*models.Club),
		leaders: make(map[uint]map[uint]bool),
	}
	for _, c := range clubs {
		r.clubs[c.ID] = c
	}
	return r
}

func (r *fakeClubRepo) addLeader(clubID, userID uint) {
	if r.leaders[clubID] == nil {
		r.leaders[clubID] = make(map[uint]bool)
	}
	r.leaders[clubID][userID] = true
}

func (r *fakeClubRepo) GetByID(_ context.Context, id uint) (*models.Club, error) {
	if c, ok := r.clubs[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClubRepo) ListByStatus(_ context.Context, status string) ([]*models.Club, error) {
	var out []*models.Club
	for _, c := range r.clubs {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClubRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	c, ok := r.clubs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Status = status
	return nil
}

func (r *fakeClubRepo) ListForLeader(_ context.Context, userID uint) ([]*models.Club, error) {
	var out []*models.Club
	for _, c := range r.clubs {
		if c.OwnerID == userID || r.leaders[c.ID][userID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClubRepo) IsLeader(_ context.Context, clubID, userID uint) (bool, error) {
	c, ok := r.clubs[clubID]
	if !ok {
		return false, nil
	}
	return c.OwnerID == userID || r.leaders[clubID][userID], nil
}

type fakeMembershipRepo struct {
	rows   []*models.Membership
	nextID uint
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{nextID: 1}
}

func (r *fakeMembershipRepo) Create(_ context.Context, membership *models.Membership) error {
	for _, row := range r.rows {
		if row.UserID == membership.UserID && row.ClubID == membership.ClubID {
			return gorm.ErrDuplicatedKey
		}
	}
	membership.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, membership)
	return nil
}

func (r *fakeMembershipRepo) GetByID(_ context.Context, id uint) (*models.Membership, error) {
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMembershipRepo) GetByUserAndClub(_ context.Context, userID, clubID uint) (*models.Membership, error) {
	for _, row := range r.rows {
		if row.UserID == userID && row.ClubID == clubID {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMembershipRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	for _, row := range r.rows {
		if row.ID == id {
			row.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeMembershipRepo) ListPendingForLeader(_ context.Context, leaderID uint) ([]*models.PendingMembershipResponse, error) {
	var out []*models.PendingMembershipResponse
	for _, row := range r.rows {
		if row.Status != domain.MembershipStatusPending {
			continue
		}
		if row.Club == nil || row.Club.OwnerID != leaderID {
			continue
		}
		name := ""
		if row.User != nil {
			name = row.User.Name
		}
		out = append(out, &models.PendingMembershipResponse{
			ID:          row.ID,
			StudentName: name,
			ClubName:    row.Club.Name,
		})
	}
	return out, nil
}

func (r *fakeMembershipRepo) ListClubsByUser(_ context.Context, userID uint) ([]*models.MyClubResponse, error) {
	var out []*models.MyClubResponse
	for _, row := range r.rows {
		if row.UserID != userID || row.Club == nil {
			continue
		}
		out = append(out, &models.MyClubResponse{
			ID:               row.Club.ID,
			Name:             row.Club.Name,
			Description:      row.Club.Description,
			MembershipStatus: row.Status,
		})
	}
	return out, nil
}

type fakeEventRepo struct {
	events map[uint]*models.Event
	nextID uint
}

func newFakeEventRepo(events ...*models.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[uint]*models.Event), nextID: 100}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeEventRepo) Create(_ context.Context, event *models.Event) error {
	event.ID = r.nextID
	r.nextID++
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id uint) (*models.Event, error) {
	if e, ok := r.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) List(_ context.Context, freeOnly, _ bool, _, _ int) ([]*models.Event, int64, error) {
	var out []*models.Event
	for _, e := range r.events {
		if freeOnly && e.Price != 0 {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

type fakeRegistrationRepo struct {
	rows   []*models.Registration
	nextID uint
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{nextID: 1}
}

func (r *fakeRegistrationRepo) Create(_ context.Context, registration *models.Registration) error {
	registration.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, registration)
	return nil
}

func (r *fakeRegistrationRepo) GetActive(_ context.Context, userID, eventID uint) (*models.Registration, error) {
	for _, row := range r.rows {
		if row.UserID == userID && row.EventID == eventID && row.Status == domain.RegistrationStatusRegistered {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRegistrationRepo) CancelAll(_ context.Context, userID, eventID uint) error {
	for _, row := range r.rows {
		if row.UserID == userID && row.EventID == eventID {
			row.Status = domain.RegistrationStatusCancelled
		}
	}
	return nil
}

func (r *fakeRegistrationRepo) ListEventsByUser(_ context.Context, userID uint) ([]*models.MyEventResponse, error) {
	var out []*models.MyEventResponse
	for _, row := range r.rows {
		if row.UserID != userID || row.Event == nil {
			continue
		}
		out = append(out, &models.MyEventResponse{
			ID:       row.Event.ID,
			Title:    row.Event.Title,
			Date:     row.Event.Date,
			Location: row.Event.Location,
			Status:   row.Status,
		})
	}
	return out, nil
}

func (r *fakeRegistrationRepo) ListActiveForEventDate(_ context.Context, from, to time.Time) ([]*models.EventReminder, error) {
	var out []*models.EventReminder
	for _, row := range r.rows {
		if row.Status != domain.RegistrationStatusRegistered || row.Event == nil || row.User == nil {
			continue
		}
		if row.Event.Date.Before(from) || !row.Event.Date.Before(to) {
			continue
		}
		out = append(out, &models.EventReminder{
			UserEmail: row.User.Email,
			Title:     row.Event.Title,
			Date:      row.Event.Date,
			Location:  row.Event.Location,
		})
	}
	return out, nil
}

type fakeAnnouncementRepo struct {
	rows   []*models.Announcement
	nextID uint
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{nextID: 1}
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, announcement *models.Announcement) error {
	announcement.ID = r.nextID
	announcement.CreatedAt = time.Now()
	r.nextID++
	r.rows = append(r.rows, announcement)
	return nil
}

func (r *fakeAnnouncementRepo) ListByClub(_ context.Context, clubID uint) ([]*models.Announcement, error) {
	var out []*models.Announcement
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].ClubID == clubID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

// fakeNotifier records every notification it receives
type fakeNotifier struct {
	announcements []*events.AnnouncementCreated
	approvals     []*events.MembershipApproved
}

func (n *fakeNotifier) NotifyAnnouncement(a *events.AnnouncementCreated) {
	n.announcements = append(n.announcements, a)
}

func (n *fakeNotifier) NotifyMembershipApproved(m *events.MembershipApproved) {
	n.approvals = append(n.approvals, m)
}
