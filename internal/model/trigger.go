package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TriggerEvent is an externally reported behavioral signal. Created
// synchronously on webhook receipt and mutated exactly once by the worker,
// which fills in the selected intervention and the notification response.
type TriggerEvent struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;index;not null"`
	EventType      string         `json:"event_type" gorm:"size:100;not null"`
	Payload        datatypes.JSON `json:"payload" gorm:"type:jsonb"`
	InterventionID string         `json:"intervention_id,omitempty" gorm:"size:50"`
	Response       datatypes.JSON `json:"response,omitempty" gorm:"type:jsonb"`
	ProcessedAt    *time.Time     `json:"processed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// InterventionType is a content category selected in response to a trigger
type InterventionType string

const (
	InterventionBreathing InterventionType = "breathing"
	InterventionLetter    InterventionType = "letter"
	InterventionJournal   InterventionType = "journal"
	InterventionGratitude InterventionType = "gratitude"
)

// Intervention pairs a content category with a delivery priority
type Intervention struct {
	Type     InterventionType `json:"type"`
	Priority string           `json:"priority"` // high | medium
}

// Notification is the formatted push payload prepared by the worker
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}
