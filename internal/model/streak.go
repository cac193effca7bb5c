package model

import (
	"time"

	"github.com/google/uuid"
)

// StreakType identifies which engagement counter a streak row tracks
type StreakType string

const (
	StreakTypeSelfLed    StreakType = "self_led"
	StreakTypeAbstinence StreakType = "abstinence"
)

// Streak is a consecutive-day engagement counter. One row per (user, type),
// provisioned at registration. Best is a high-water mark: best >= current
// after every update.
type Streak struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_streak_type"`
	Type      StreakType `json:"type" gorm:"type:varchar(20);not null;uniqueIndex:idx_user_streak_type"`
	Current   int        `json:"current" gorm:"not null;default:0"`
	Best      int        `json:"best" gorm:"not null;default:0"`
	LastCheck time.Time  `json:"last_check" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// StreakState is the API shape of a single streak counter
type StreakState struct {
	Current   int       `json:"current"`
	Best      int       `json:"best"`
	LastCheck time.Time `json:"last_check"`
}
