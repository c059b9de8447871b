package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/config"
	"github.com/tgmciner/SunDevil-Connect/internal/core/events"
)

// Notifier delivers user-facing notifications. One operation per
// notification kind the subscription wiring knows about, so a real
// email/push transport can replace NotificationService without touching
// callers. Delivery is best-effort: implementations must not fail the
// caller.
type Notifier interface {
	NotifyAnnouncement(a *events.AnnouncementCreated)
	NotifyMembershipApproved(m *events.MembershipApproved)
}

// NotificationService is the current Notifier implementation: always
// writes an operational log line, and additionally POSTs the payload to
// a webhook when NOTIFY_WEBHOOK_URL is configured.
type NotificationService struct {
	webhookURL string
	client     *http.Client
}

// NewNotificationService creates a new notification service
func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{
		webhookURL: cfg.NotifyWebhookURL,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// IsEnabled checks if webhook delivery is enabled
func (s *NotificationService) IsEnabled() bool {
	return s.webhookURL != ""
}

// NotifyAnnouncement notifies about a new club announcement
func (s *NotificationService) NotifyAnnouncement(a *events.AnnouncementCreated) {
	log.Printf("📣 Announcement notification -> club %d: %s", a.ClubID, a.Text)
	s.deliver("announcement", a)
}

// NotifyMembershipApproved notifies a student their request was approved
func (s *NotificationService) NotifyMembershipApproved(m *events.MembershipApproved) {
	log.Printf("🎉 Membership approved -> %s for club %s", m.UserEmail, m.ClubName)
	s.deliver("membership_approved", m)
}

// NotifyEventReminder reminds a registrant about an upcoming event.
// Called directly by the reminder cron, not through the bus.
func (s *NotificationService) NotifyEventReminder(r *models.EventReminder) {
	log.Printf("⏰ Event reminder -> %s: %s at %s on %s",
		r.UserEmail,
		r.Title,
		r.Location,
		r.Date.Format("2006-01-02 15:04"),
	)
	s.deliver("event_reminder", r)
}

// deliver POSTs the payload to the configured webhook. Failures are
// logged and swallowed: a lost notification never fails the caller.
func (s *NotificationService) deliver(kind string, payload interface{}) {
	if !s.IsEnabled() {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"kind":    kind,
		"payload": payload,
	})
	if err != nil {
		log.Printf("⚠️ Notification encode failed (%s): %v", kind, err)
		return
	}

	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("⚠️ Notification delivery failed (%s): %v", kind, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("⚠️ Notification delivery failed (%s): %s", kind, fmt.Sprintf("status %d", resp.StatusCode))
	}
}
