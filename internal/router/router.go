package router

import (
	"log"

	"github.com/guestbook-app/backend/internal/handlers"
	"github.com/guestbook-app/backend/internal/models"
	"github.com/guestbook-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes migrates the schema, wires repositories into handlers and
// registers all application routes
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Entry{},
		&models.Like{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	entryRepo := repositories.NewPostgresEntryRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)

	api := e.Group("/api")

	entryHandler := handlers.NewEntryHandler(entryRepo)
	entryHandler.RegisterEntryRoutes(api)
	log.Println("Guestbook routes configured.")

	likeHandler := handlers.NewLikeHandler(likeRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")
}
