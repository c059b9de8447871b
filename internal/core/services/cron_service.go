package services

import (
	"context"
	"log"
	"time"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs the daily event-reminder job (08:30). Reminders go
// straight to the notification service; the bus is only for domain
// events triggered by requests.
type CronService struct {
	cron             *cron.Cron
	registrationRepo repositories.RegistrationRepository
	notifyService    *NotificationService
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB, notifyService *NotificationService) *CronService {
	return &CronService{
		cron:             cron.New(),
		registrationRepo: repositories.NewRegistrationRepository(db),
		notifyService:    notifyService,
	}
}

// Start schedules and launches the cron jobs
func (s *CronService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.sendEventReminders); err != nil {
		log.Printf("❌ Failed to schedule reminder job: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 CronService started (event reminders at 08:30 daily)")
}

// Stop stops the cron scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CronService stopped")
}

// reminderWindow returns tomorrow's [midnight, midnight) in t's location
func reminderWindow(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).Add(24 * time.Hour)
	return from, from.Add(24 * time.Hour)
}

// sendEventReminders notifies everyone registered for an event happening
// tomorrow
func (s *CronService) sendEventReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	from, to := reminderWindow(time.Now())

	reminders, err := s.registrationRepo.ListActiveForEventDate(ctx, from, to)
	if err != nil {
		log.Printf("❌ Reminder query error: %v", err)
		return
	}

	for _, reminder := range reminders {
		s.notifyService.NotifyEventReminder(reminder)
	}

	if len(reminders) > 0 {
		log.Printf("✅ Sent %d event reminders", len(reminders))
	}
}
