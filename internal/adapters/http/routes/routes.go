package routes

import (
	"github.com/tgmciner/SunDevil-Connect/internal/adapters/http/handlers"
	"github.com/tgmciner/SunDevil-Connect/internal/adapters/http/middleware"
	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/repositories"
	"github.com/tgmciner/SunDevil-Connect/internal/config"
	"github.com/tgmciner/SunDevil-Connect/internal/core/events"
	"github.com/tgmciner/SunDevil-Connect/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, bus *events.Bus) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	clubRepo := repositories.NewClubRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	registrationRepo := repositories.NewRegistrationRepository(db)
	announcementRepo := repositories.NewAnnouncementRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	clubService := services.NewClubService(clubRepo)
	membershipService := services.NewMembershipService(membershipRepo, clubRepo, bus)
	eventService := services.NewEventService(eventRepo, registrationRepo, clubRepo)
	announcementService := services.NewAnnouncementService(announcementRepo, bus)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	clubHandler := handlers.NewClubHandler(clubService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	eventHandler := handlers.NewEventHandler(eventService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	adminHandler := handlers.NewAdminHandler(clubService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")

	// Auth routes (public)
	api.Post("/login", middleware.LoginRateLimiter(), authHandler.Login)

	// Club routes (public reads)
	api.Get("/clubs", clubHandler.List)
	api.Get("/clubs/:id", clubHandler.Get)
	api.Get("/clubs/:id/announcements", announcementHandler.List)

	// Event routes (public reads)
	api.Get("/events", eventHandler.List)
	api.Get("/events/:id", eventHandler.Get)

	// Authenticated routes
	auth := api.Group("", middleware.AuthMiddleware(cfg))

	auth.Get("/clubs/:id/membership", membershipHandler.Status)
	auth.Post("/clubs/:id/join", membershipHandler.Join)
	auth.Post("/clubs/:id/announcements", announcementHandler.Create)
	auth.Post("/events/:id/register", eventHandler.Register)
	auth.Delete("/events/:id/register", eventHandler.Cancel)
	auth.Get("/me/clubs", membershipHandler.MyClubs)
	auth.Get("/me/events", eventHandler.MyEvents)

	// Leader routes
	auth.Get("/leader/clubs", middleware.LeaderOnly(), clubHandler.LeaderClubs)
	auth.Get("/leader/memberships/pending", middleware.LeaderOnly(), membershipHandler.Pending)
	auth.Put("/memberships/:id/:decision", middleware.LeaderOnly(), membershipHandler.Decide)
	auth.Post("/events", middleware.LeaderOnly(), eventHandler.Create)

	// Admin routes
	admin := auth.Group("/admin", middleware.AdminOnly())
	admin.Get("/clubs/pending", adminHandler.PendingClubs)
	admin.Put("/clubs/:id/approve", adminHandler.ApproveClub)
}
