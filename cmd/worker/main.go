package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/taruapp/api-taru/internal/config"
	"github.com/taruapp/api-taru/internal/queue"
	"github.com/taruapp/api-taru/internal/repository"
	"github.com/taruapp/api-taru/internal/service"
	"github.com/taruapp/api-taru/pkg/notification"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// ==================== Load Config ====================
	cfg := config.Load()
	log.Printf("🚀 Starting TARU Worker [env=%s]", cfg.App.Env)

	// ==================== Database (PostgreSQL) ====================
	gormLogger := logger.Default.LogMode(logger.Warn)
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to PostgreSQL")

	// ==================== Redis ====================
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis")

	// ==================== Push Notifications (FCM) ====================
	pusher, err := notification.NewFCMSender(cfg.Push.CredentialsFile)
	if err != nil {
		log.Printf("⚠️  FCM not available: %v (push delivery disabled)", err)
	}

	// ==================== Initialize Layers ====================
	userRepo := repository.NewUserRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	triggerRepo := repository.NewTriggerRepository(db)

	interventionService := service.NewInterventionService(rdb)
	triggerService := service.NewTriggerService(
		triggerRepo, userRepo, checkInRepo, interventionService,
		nil, pusher, cfg.Push.Enabled,
	)

	// ==================== Task Server ====================
	srv := queue.NewServer(cfg.Redis.Addr(), cfg.Redis.Password)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeTriggerProcess, triggerService.HandleTriggerTask)

	log.Println("👷 Worker ready, processing trigger events...")
	if err := srv.Run(mux); err != nil {
		log.Fatalf("❌ Worker failed: %v", err)
	}
}
