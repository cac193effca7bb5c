package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Archetype is one of the four fixed personas used to personalize intervention copy
type Archetype string

const (
	ArchetypeWarrior Archetype = "Warrior"
	ArchetypeSage    Archetype = "Sage"
	ArchetypeLover   Archetype = "Lover"
	ArchetypeSeeker  Archetype = "Seeker"
)

// IsValid reports whether the archetype is one of the four known personas
func (a Archetype) IsValid() bool {
	switch a {
	case ArchetypeWarrior, ArchetypeSage, ArchetypeLover, ArchetypeSeeker:
		return true
	}
	return false
}

// User represents a registered TARU user
type User struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Archetype Archetype      `json:"archetype" gorm:"type:varchar(20);not null"`
	Timezone  string         `json:"timezone" gorm:"size:64;default:''"`
	Bedtime   string         `json:"bedtime" gorm:"size:10;default:''"` // HH:MM, user-local
	Settings  datatypes.JSON `json:"settings" gorm:"type:jsonb"`
	PushToken string         `json:"-" gorm:"size:255;default:''"` // most recently registered token
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// UserResponse is the safe version of User for API responses
type UserResponse struct {
	ID        uuid.UUID      `json:"id"`
	Email     string         `json:"email"`
	Archetype Archetype      `json:"archetype"`
	Timezone  string         `json:"timezone"`
	Bedtime   string         `json:"bedtime"`
	Settings  datatypes.JSON `json:"settings,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ToResponse converts User to safe UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Archetype: u.Archetype,
		Timezone:  u.Timezone,
		Bedtime:   u.Bedtime,
		Settings:  u.Settings,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
