package config

import (
	"log"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/core/domain"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedClubs(); err != nil {
		log.Printf("⚠️ Club seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds a default admin user for development.
// In production, admins come from the identity process, not the seeder.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", domain.RoleAdmin).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	admin := &models.User{
		Email: "admin@asu.edu",
		Name:  "admin@asu.edu",
		Role:  string(domain.RoleAdmin),
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// seedClubs seeds a few demo clubs. There is no club-creation endpoint in
// current scope, so clubs enter the system here.
func (s *Seeder) seedClubs() error {
	var count int64
	s.db.Model(&models.Club{}).Count(&count)
	if count > 0 {
		return nil // Clubs already seeded
	}

	leader := &models.User{
		Email: "leader@asu.edu",
		Name:  "leader@asu.edu",
		Role:  string(domain.RoleLeader),
	}
	if err := s.db.Where(models.User{Email: leader.Email}).FirstOrCreate(leader).Error; err != nil {
		return err
	}

	clubs := []*models.Club{
		{
			Name:        "Chess Club",
			Description: "Weekly blitz nights and campus tournaments",
			Status:      domain.ClubStatusApproved,
			OwnerID:     leader.ID,
		},
		{
			Name:        "Robotics Society",
			Description: "Build bots, enter competitions, break things",
			Status:      domain.ClubStatusApproved,
			OwnerID:     leader.ID,
		},
		{
			Name:        "Film Appreciation",
			Description: "Screenings and discussion, all genres welcome",
			Status:      domain.ClubStatusPending,
			OwnerID:     leader.ID,
		},
	}

	for _, club := range clubs {
		if err := s.db.Create(club).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d demo clubs", len(clubs))
	return nil
}
