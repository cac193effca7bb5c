package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/taruapp/api-taru/internal/config"
	"github.com/taruapp/api-taru/internal/handler"
	"github.com/taruapp/api-taru/internal/middleware"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/queue"
	"github.com/taruapp/api-taru/internal/repository"
	"github.com/taruapp/api-taru/internal/service"
	"github.com/taruapp/api-taru/migrations"
	"github.com/taruapp/api-taru/pkg/auth"
	"github.com/taruapp/api-taru/pkg/notification"
	"github.com/taruapp/api-taru/pkg/storage"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// @title           TARU API
// @version         1.0
// @description     Mobile backend for TARU: IFS check-ins, streaks, journaling, loved-one letters, community wall and trigger-driven interventions.

// @contact.name   API Support
// @contact.email  support@taru.local

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      api.localhost
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// ==================== Load Config ====================
	cfg := config.Load()
	log.Printf("🚀 Starting TARU API Server [env=%s]", cfg.App.Env)

	// ==================== Database (PostgreSQL) ====================
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.App.Env == "production" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to PostgreSQL")

	// ==================== Run Migrations ====================
	if err := migrations.Run(cfg.DB.URL()); err != nil {
		log.Printf("⚠️  Migration warning: %v", err)
		log.Println("📦 Falling back to GORM AutoMigrate...")
		if err := db.AutoMigrate(
			&model.User{},
			&model.CheckIn{},
			&model.Streak{},
			&model.TriggerEvent{},
			&model.LovedOneLetter{},
			&model.JournalEntry{},
			&model.GratitudeEntry{},
			&model.CommunityMessage{},
			&model.PushToken{},
		); err != nil {
			log.Fatalf("❌ Failed to migrate database: %v", err)
		}
	}
	log.Println("✅ Database migrated successfully")

	// ==================== Redis ====================
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis")

	// ==================== Task Queue ====================
	queueClient := queue.NewClient(cfg.Redis.Addr(), cfg.Redis.Password)
	defer queueClient.Close()
	log.Println("✅ Task queue client ready")

	// ==================== Push Notifications (FCM) ====================
	pusher, err := notification.NewFCMSender(cfg.Push.CredentialsFile)
	if err != nil {
		log.Printf("⚠️  FCM not available: %v (push delivery disabled)", err)
	}
	if pusher != nil && cfg.Push.Enabled {
		log.Println("✅ FCM push notifications enabled")
	}

	// ==================== MinIO Storage ====================
	// mediaStore stays a nil interface when MinIO is down so the upload
	// handler's guard works; wrapping a nil *MinIOStorage would defeat it.
	var mediaStore storage.Storage
	minioStorage, err := storage.NewMinIO(storage.Config{
		Endpoint:  cfg.MinIO.Endpoint,
		PublicURL: cfg.MinIO.PublicURL,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		UseSSL:    cfg.MinIO.UseSSL,
	})
	if err != nil {
		log.Printf("⚠️  MinIO not available: %v (file upload disabled)", err)
	}
	if minioStorage != nil {
		mediaStore = minioStorage
		log.Println("✅ Connected to MinIO")
	}

	// ==================== Initialize Layers ====================
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	streakRepo := repository.NewStreakRepository(db)
	triggerRepo := repository.NewTriggerRepository(db)
	letterRepo := repository.NewLetterRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	gratitudeRepo := repository.NewGratitudeRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	pushTokenRepo := repository.NewPushTokenRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, streakRepo, jwtManager, rdb)
	userService := service.NewUserService(userRepo, checkInRepo, streakRepo, letterRepo, pushTokenRepo)
	checkInService := service.NewCheckInService(checkInRepo, streakRepo)
	interventionService := service.NewInterventionService(rdb)
	letterService := service.NewLetterService(letterRepo)
	journalService := service.NewJournalService(journalRepo, gratitudeRepo)
	communityService := service.NewCommunityService(communityRepo)
	triggerService := service.NewTriggerService(
		triggerRepo, userRepo, checkInRepo, interventionService,
		queueClient, pusher, cfg.Push.Enabled,
	)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	checkInHandler := handler.NewCheckInHandler(checkInService)
	interventionHandler := handler.NewInterventionHandler(interventionService)
	letterHandler := handler.NewLetterHandler(letterService)
	journalHandler := handler.NewJournalHandler(journalService)
	communityHandler := handler.NewCommunityHandler(communityService)
	triggerHandler := handler.NewTriggerHandler(triggerService)
	uploadHandler := handler.NewUploadHandler(mediaStore)

	// ==================== Gin Router ====================
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Swagger configuration
	router.StaticFile("/docs/swagger.json", "./docs/swagger.json")
	url := ginSwagger.URL("/docs/swagger.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// Global middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "taru-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// ==================== API Routes ====================
	api := router.Group("/api/v1")
	{
		// Auth routes (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Trigger webhook (shared-secret auth, not JWT)
		webhookGroup := api.Group("/webhooks")
		webhookGroup.Use(middleware.WebhookAuthMiddleware(cfg.Webhook.Secret))
		{
			webhookGroup.POST("/trigger", triggerHandler.Webhook)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtManager, rdb))
		{
			// Auth
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Users
			protected.PUT("/users/me", userHandler.UpdateProfile)
			protected.PUT("/users/me/archetype", userHandler.UpdateArchetype)
			protected.GET("/users/me/stats", userHandler.GetStats)

			// Push tokens
			protected.POST("/push/register", userHandler.RegisterPushToken)
			protected.GET("/push/tokens", userHandler.ListPushTokens)

			// Check-ins & streaks
			protected.POST("/checkins", checkInHandler.Create)
			protected.GET("/checkins", checkInHandler.List)
			protected.GET("/checkins/stats", checkInHandler.GetStats)
			protected.GET("/streaks", checkInHandler.GetStreaks)

			// Interventions
			protected.GET("/interventions/:archetype", interventionHandler.Get)

			// Letters
			protected.POST("/letters", letterHandler.Create)
			protected.GET("/letters", letterHandler.List)
			protected.GET("/letters/:id", letterHandler.Get)
			protected.PUT("/letters/:id", letterHandler.Update)
			protected.DELETE("/letters/:id", letterHandler.Delete)

			// Journal
			protected.POST("/journal", journalHandler.CreateEntry)
			protected.GET("/journal", journalHandler.ListEntries)
			protected.GET("/journal/:id", journalHandler.GetEntry)
			protected.PUT("/journal/:id", journalHandler.UpdateEntry)
			protected.DELETE("/journal/:id", journalHandler.DeleteEntry)

			// Gratitude
			protected.POST("/gratitude", journalHandler.CreateGratitude)
			protected.GET("/gratitude", journalHandler.ListGratitude)
			protected.DELETE("/gratitude/:id", journalHandler.DeleteGratitude)

			// Community wall
			protected.POST("/messages", communityHandler.Create)
			protected.GET("/messages", communityHandler.List)
			protected.POST("/messages/:id/like", communityHandler.Like)
			protected.POST("/messages/:id/flag", communityHandler.Flag)

			// Trigger history
			protected.GET("/triggers", triggerHandler.List)

			// Uploads
			protected.POST("/upload", uploadHandler.UploadAudio)
		}
	}

	// ==================== Start Server ====================
	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	log.Printf("🌐 TARU API running on http://0.0.0.0:%s", cfg.App.Port)
	log.Printf("📋 API docs: http://0.0.0.0:%s/swagger/index.html", cfg.App.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	// Give ongoing requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
