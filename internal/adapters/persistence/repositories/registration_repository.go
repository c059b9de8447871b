package repositories

import (
	"context"
	"time"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"

	"gorm.io/gorm"
)

// registrationRepository implements RegistrationRepository interface
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// Create creates a new registration row
func (r *registrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

// GetActive gets the user's registered (not cancelled) row for an event
func (r *registrationRepository) GetActive(ctx context.Context, userID, eventID uint) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ? AND status = ?", userID, eventID, domain.RegistrationStatusRegistered).
		First(&registration).Error
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// CancelAll soft-cancels the user's registrations for an event. Rows are
// retained; a later re-registration creates a new row.
func (r *registrationRepository) CancelAll(ctx context.Context, userID, eventID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Registration{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Update("status", domain.RegistrationStatusCancelled).Error
}

// ListEventsByUser lists the user's registrations joined with their events
func (r *registrationRepository) ListEventsByUser(ctx context.Context, userID uint) ([]*models.MyEventResponse, error) {
	var rows []*models.MyEventResponse
	err := r.db.WithContext(ctx).
		Table("registrations r").
		Select("e.id, e.title, e.date, e.location, r.status").
		Joins("JOIN events e ON r.event_id = e.id").
		Where("r.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListActiveForEventDate lists active registrations for events in [from, to),
// joined with the registrant's email. Used by the daily reminder job.
func (r *registrationRepository) ListActiveForEventDate(ctx context.Context, from, to time.Time) ([]*models.EventReminder, error) {
	var rows []*models.EventReminder
	err := r.db.WithContext(ctx).
		Table("registrations r").
		Select("u.email AS user_email, e.title, e.date, e.location").
		Joins("JOIN events e ON r.event_id = e.id").
		Joins("JOIN users u ON r.user_id = u.id").
		Where("r.status = ?", domain.RegistrationStatusRegistered).
		Where("e.date >= ? AND e.date < ?", from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
