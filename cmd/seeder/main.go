package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/config"
	"github.com/taruapp/api-taru/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var archetypes = []model.Archetype{
	model.ArchetypeWarrior,
	model.ArchetypeSage,
	model.ArchetypeLover,
	model.ArchetypeSeeker,
}

func main() {
	// Load config
	cfg := config.Load()

	// Force DB logging off to avoid noise
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to Database")

	// Common password for all demo users
	password := "password123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	log.Println("🌱 Seeding 8 users...")

	for i := 1; i <= 8; i++ {
		email := fmt.Sprintf("user%d@taru.local", i)

		// Check if exists
		var existing model.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			continue
		}

		user := model.User{
			ID:        uuid.New(),
			Email:     email,
			Password:  string(hashedPassword),
			Archetype: archetypes[(i-1)%len(archetypes)],
			Timezone:  "America/New_York",
			Bedtime:   "22:30",
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", email, err)
			continue
		}

		// Provision streak counters like registration does
		now := time.Now()
		for _, streakType := range []model.StreakType{model.StreakTypeSelfLed, model.StreakTypeAbstinence} {
			db.Create(&model.Streak{
				UserID:    user.ID,
				Type:      streakType,
				LastCheck: now,
			})
		}

		log.Printf("✅ Created user: %s (%s) | Pass: %s", email, user.Archetype, password)
	}

	seedCheckIns(db)
	seedCommunity(db)

	log.Println("🎉 Seeding completed!")
}

func seedCheckIns(db *gorm.DB) {
	var users []model.User
	if err := db.Limit(4).Find(&users).Error; err != nil || len(users) == 0 {
		return
	}

	emotions := []string{"anxious", "calm", "hopeful", "overwhelmed"}
	parts := []string{"The Protector", "The Exile", "The Manager", "The Firefighter"}

	for i, user := range users {
		var count int64
		db.Model(&model.CheckIn{}).Where("user_id = ?", user.ID).Count(&count)
		if count > 0 {
			continue
		}

		checkIn := model.CheckIn{
			UserID:    user.ID,
			Part:      parts[i%len(parts)],
			Emotion:   emotions[i%len(emotions)],
			Quadrant:  "high-energy",
			Intensity: 3 + i,
			Notes:     "Seeded check-in",
		}
		if err := db.Create(&checkIn).Error; err != nil {
			log.Printf("❌ Failed to seed check-in: %v", err)
		}
	}
	log.Println("✅ Seeded check-ins")
}

func seedCommunity(db *gorm.DB) {
	var users []model.User
	if err := db.Limit(2).Find(&users).Error; err != nil || len(users) < 2 {
		return
	}

	var count int64
	db.Model(&model.CommunityMessage{}).Count(&count)
	if count > 0 {
		return
	}

	messages := []model.CommunityMessage{
		{UserID: users[0].ID, Content: "Day 30 today. One day at a time really does work."},
		{UserID: users[1].ID, Content: "Struggled last night but the breathing exercises helped.", IsAnonymous: true},
	}
	for _, msg := range messages {
		if err := db.Create(&msg).Error; err != nil {
			log.Printf("❌ Failed to seed community message: %v", err)
		}
	}
	log.Println("✅ Seeded community messages")
}
