package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LovedOneLetter is a letter a user writes to (or receives from) a loved one.
// Letters can carry an optional recorded audio message.
type LovedOneLetter struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;index;not null"`
	Recipient   string         `json:"recipient" gorm:"size:100;not null"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	AudioURL    string         `json:"audio_url,omitempty" gorm:"size:500"`
	IsDelivered bool           `json:"is_delivered" gorm:"default:false"`
	DeliveredAt *time.Time     `json:"delivered_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
