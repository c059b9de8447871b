package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tgmciner/SunDevil-Connect/internal/adapters/http/middleware"
	"github.com/tgmciner/SunDevil-Connect/internal/adapters/http/routes"
	"github.com/tgmciner/SunDevil-Connect/internal/adapters/persistence/models"
	"github.com/tgmciner/SunDevil-Connect/internal/config"
	"github.com/tgmciner/SunDevil-Connect/internal/core/events"
	"github.com/tgmciner/SunDevil-Connect/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "github.com/tgmciner/SunDevil-Connect/docs" // Swagger docs
)

// @title SunDevil Connect API
// @version 1.0
// @description Campus club and event management API for ASU students
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email connect@sundevils.asu.edu

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host connect.sundevils.asu.edu
// @BasePath /api
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed demo users and clubs
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Event bus + notification fan-out
	bus := events.NewBus()
	notifyService := services.NewNotificationService(cfg)
	services.RegisterSubscribers(bus, notifyService)

	// Start Cron Service for event reminders (08:30 daily)
	cronService := services.NewCronService(db, notifyService)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SunDevil Connect API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, cfg and bus for dependency injection)
	routes.Setup(app, db, cfg, bus)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
