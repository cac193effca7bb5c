package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn is a user-submitted IFS/mood self-report. Append-only: there is no
// update path once a check-in is created.
type CheckIn struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Part      string    `json:"part" gorm:"size:100;not null"`
	Emotion   string    `json:"emotion" gorm:"size:100;not null"`
	Quadrant  string    `json:"quadrant" gorm:"size:50;not null"`
	Intensity int       `json:"intensity" gorm:"not null"` // 1..10
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
