package model

import (
	"time"

	"github.com/google/uuid"
)

// PushToken is a registered push notification token. Registration is an
// idempotent upsert keyed by the token value: re-registering the same token
// reassigns it and leaves exactly one active row.
type PushToken struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Token     string    `json:"token" gorm:"uniqueIndex;size:255;not null"`
	Platform  string    `json:"platform" gorm:"size:20;not null"` // ios, android
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
