package main

import (
	"log"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aryankuttarmare14/job-board-app/internal/config"
	"github.com/aryankuttarmare14/job-board-app/internal/database"
	"github.com/aryankuttarmare14/job-board-app/internal/handlers"
	"github.com/aryankuttarmare14/job-board-app/internal/logger"
	"github.com/aryankuttarmare14/job-board-app/internal/middleware"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/repository"
	"github.com/aryankuttarmare14/job-board-app/internal/services"
	"github.com/aryankuttarmare14/job-board-app/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	slog.SetDefault(logger.New(cfg.LogLevel, cfg.LogFormat))

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
	if err := database.AddIndexes(database.GetDB()); err != nil {
		slog.Warn("failed to create search indexes", "error", err)
	}

	// Resume blob store
	resumeStore, err := storage.NewResumeStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize resume store: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(database.GetDB())
	jobRepo := repository.NewJobRepository(database.GetDB())
	appRepo := repository.NewApplicationRepository(database.GetDB())

	// Services
	authService := services.NewAuthService(userRepo)
	jobService := services.NewJobService(jobRepo, resumeStore)
	appService := services.NewApplicationService(appRepo, jobRepo, resumeStore)
	adminService := services.NewAdminService(userRepo, jobRepo, appRepo, resumeStore)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	jobHandler := handlers.NewJobHandler(jobService)
	appHandler := handlers.NewApplicationHandler(appService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Initialize Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Uploaded resumes are served statically
	r.Static("/uploads", resumeStore.Dir())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Job Board API is running",
		})
	})

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
			auth.PUT("/profile", requireAuth, authHandler.UpdateProfile)
			auth.PUT("/password", requireAuth, authHandler.ChangePassword)
		}

		// Job routes (search and detail are public)
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.Search)
			jobs.GET("/featured", jobHandler.Featured)
			jobs.GET("/employer", requireAuth, middleware.RequireRole(models.RoleEmployer), jobHandler.ListMine)
			jobs.GET("/:id", jobHandler.Get)
			jobs.POST("", requireAuth, middleware.RequireRole(models.RoleEmployer), jobHandler.Create)
			jobs.PUT("/:id", requireAuth, middleware.RequireRole(models.RoleEmployer, models.RoleAdmin), jobHandler.Update)
			jobs.DELETE("/:id", requireAuth, middleware.RequireRole(models.RoleEmployer, models.RoleAdmin), jobHandler.Delete)
		}

		// Application routes (protected)
		apps := api.Group("/applications")
		apps.Use(requireAuth)
		{
			apps.GET("/me", middleware.RequireRole(models.RoleJobseeker), appHandler.ListMine)
			apps.GET("/job/:jobId", middleware.RequireRole(models.RoleEmployer, models.RoleAdmin), appHandler.ListForJob)
			apps.POST("/:jobId", middleware.RequireRole(models.RoleJobseeker), appHandler.Apply)
			apps.PUT("/:id", middleware.RequireRole(models.RoleEmployer, models.RoleAdmin), appHandler.UpdateStatus)
			apps.DELETE("/:id", middleware.RequireRole(models.RoleJobseeker), appHandler.Withdraw)
			apps.GET("/:id/resume", middleware.RequireRole(models.RoleEmployer, models.RoleAdmin), appHandler.DownloadResume)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(requireAuth, middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/jobs", adminHandler.ListJobs)
			admin.PUT("/jobs/:id", adminHandler.UpdateJob)
			admin.DELETE("/jobs/:id", adminHandler.DeleteJob)
			admin.GET("/applications", adminHandler.ListApplications)
			admin.GET("/stats", adminHandler.Stats)
		}
	}

	// Start server
	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
