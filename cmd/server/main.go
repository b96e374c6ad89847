package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/bugtrail/bug-tracker-api/internal/auth"
	"github.com/bugtrail/bug-tracker-api/internal/config"
	"github.com/bugtrail/bug-tracker-api/internal/database"
	"github.com/bugtrail/bug-tracker-api/internal/handlers"
	"github.com/bugtrail/bug-tracker-api/internal/logger"
	"github.com/bugtrail/bug-tracker-api/internal/middleware"
	"github.com/bugtrail/bug-tracker-api/internal/repository"
	"github.com/bugtrail/bug-tracker-api/internal/services"
	"github.com/bugtrail/bug-tracker-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize attachment storage
	store, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize token service
	tokens := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiryHours)

	// Initialize repositories and services
	db := database.GetDB()
	authService := services.NewAuthService(repository.NewUserRepository(db), tokens)
	bugService := services.NewBugService(repository.NewBugRepository(db))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	bugHandler := handlers.NewBugHandler(bugService, store)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Bug Tracker API is running",
		})
	})

	// Auth routes (public)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Bug routes. Tokens are validated whenever present; AUTH_REQUIRED
	// decides whether requests without a valid token are rejected.
	bugs := r.Group("/bugs")
	bugs.Use(middleware.BearerAuth(tokens, cfg.AuthRequired))
	{
		bugs.POST("", bugHandler.CreateBug)
		bugs.GET("", bugHandler.ListBugs)
		bugs.GET("/paginated", bugHandler.ListBugsPaginated)
		bugs.GET("/status/:status", bugHandler.GetBugsByStatus)
		bugs.GET("/attachments/:filename", bugHandler.GetAttachment)
		bugs.GET("/:id", bugHandler.GetBug)
		bugs.PUT("/:id", bugHandler.UpdateBug)
		bugs.DELETE("/:id", bugHandler.DeleteBug)
		bugs.DELETE("/:id/attachments/:filename", bugHandler.DeleteAttachment)
	}

	// Start server
	logger.Logger.Info("server starting", "port", cfg.Port, "auth_required", cfg.AuthRequired)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
