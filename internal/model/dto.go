package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ========== Auth DTOs ==========

type RegisterRequest struct {
	Email     string    `json:"email" binding:"required,email"`
	Password  string    `json:"password" binding:"required,min=6"`
	Archetype Archetype `json:"archetype" binding:"required,oneof=Warrior Sage Lover Seeker"`
	Timezone  string    `json:"timezone" binding:"max=64"`
	Bedtime   string    `json:"bedtime" binding:"max=10"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ========== User DTOs ==========

type UpdateUserRequest struct {
	Timezone string         `json:"timezone" binding:"max=64"`
	Bedtime  string         `json:"bedtime" binding:"max=10"`
	Settings datatypes.JSON `json:"settings"`
}

type UpdateArchetypeRequest struct {
	Archetype Archetype `json:"archetype" binding:"required,oneof=Warrior Sage Lover Seeker"`
}

// UserStatsResponse aggregates engagement counters for the profile screen
type UserStatsResponse struct {
	TotalCheckIns    int64       `json:"total_check_ins"`
	SelfLedStreak    StreakState `json:"self_led_streak"`
	AbstinenceStreak StreakState `json:"abstinence_streak"`
	LettersCount     int64       `json:"letters_count"`
}

type RegisterPushTokenRequest struct {
	Token    string `json:"token" binding:"required,max=255"`
	Platform string `json:"platform" binding:"required,oneof=ios android"`
}

// ========== Check-in DTOs ==========

type CreateCheckInRequest struct {
	Part      string `json:"part" binding:"required,max=100"`
	Emotion   string `json:"emotion" binding:"required,max=100"`
	Quadrant  string `json:"quadrant" binding:"required,max=50"`
	Intensity int    `json:"intensity" binding:"required,min=1,max=10"`
	Notes     string `json:"notes"`
}

type CheckInListResponse struct {
	CheckIns   []CheckIn  `json:"check_ins"`
	Pagination Pagination `json:"pagination"`
}

// CheckInStatsResponse summarizes recent check-ins over a day window
type CheckInStatsResponse struct {
	Count               int            `json:"count"`
	AverageIntensity    float64        `json:"average_intensity"`
	EmotionDistribution map[string]int `json:"emotion_distribution"`
}

// ========== Letter DTOs ==========

type CreateLetterRequest struct {
	Recipient string `json:"recipient" binding:"required,max=100"`
	Content   string `json:"content" binding:"required"`
	AudioURL  string `json:"audio_url" binding:"max=500"`
}

type UpdateLetterRequest struct {
	Content     string `json:"content"`
	AudioURL    string `json:"audio_url" binding:"max=500"`
	IsDelivered *bool  `json:"is_delivered"`
}

// ========== Journal / Gratitude DTOs ==========

type CreateJournalEntryRequest struct {
	Title     string         `json:"title" binding:"required,max=200"`
	Content   string         `json:"content" binding:"required"`
	Mood      string         `json:"mood" binding:"max=50"`
	Tags      datatypes.JSON `json:"tags"`
	IsPrivate *bool          `json:"is_private"`
}

type UpdateJournalEntryRequest struct {
	Title     string         `json:"title" binding:"max=200"`
	Content   string         `json:"content"`
	Mood      string         `json:"mood" binding:"max=50"`
	Tags      datatypes.JSON `json:"tags"`
	IsPrivate *bool          `json:"is_private"`
}

type CreateGratitudeEntryRequest struct {
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"max=50"`
}

// ========== Community DTOs ==========

type CreateCommunityMessageRequest struct {
	Content     string `json:"content" binding:"required,max=2000"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// ========== Trigger DTOs ==========

type TriggerEventRequest struct {
	UserID    uuid.UUID      `json:"userId" binding:"required"`
	EventType string         `json:"eventType" binding:"required,max=100"`
	Payload   datatypes.JSON `json:"payload"`
}

// ========== Intervention DTOs ==========

// InterventionCategory describes one of the four content categories
type InterventionCategory struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ArchetypeSpecificContent carries the archetype-tailored prompts
type ArchetypeSpecificContent struct {
	Journal   []string `json:"journal"`
	Gratitude []string `json:"gratitude"`
}

// InterventionContent is the full content bundle served per archetype
type InterventionContent struct {
	Archetype         Archetype                       `json:"archetype"`
	Categories        map[string]InterventionCategory `json:"interventions"`
	ArchetypeSpecific ArchetypeSpecificContent        `json:"archetype_specific"`
}

// ========== Common ==========

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
