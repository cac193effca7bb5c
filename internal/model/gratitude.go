package model

import (
	"time"

	"github.com/google/uuid"
)

// GratitudeEntry is a single gratitude ritual entry
type GratitudeEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Category  string    `json:"category,omitempty" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
