package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunityMessage is a message shared on the community wall. Anonymous
// messages hide the author in API responses; flagged messages are excluded
// from the public feed.
type CommunityMessage struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;index;not null"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	IsAnonymous bool           `json:"is_anonymous" gorm:"default:false"`
	Likes       int            `json:"likes" gorm:"default:0"`
	Flagged     bool           `json:"flagged" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// CommunityMessageResponse hides the author for anonymous messages
type CommunityMessageResponse struct {
	ID          uuid.UUID  `json:"id"`
	Content     string     `json:"content"`
	IsAnonymous bool       `json:"is_anonymous"`
	Likes       int        `json:"likes"`
	CreatedAt   time.Time  `json:"created_at"`
	Author      *AuthorRef `json:"author,omitempty"`
}

// AuthorRef is the minimal public identity attached to a community message
type AuthorRef struct {
	ID        uuid.UUID `json:"id"`
	Archetype Archetype `json:"archetype"`
}

// ToResponse converts a CommunityMessage to its public shape
func (m *CommunityMessage) ToResponse() CommunityMessageResponse {
	resp := CommunityMessageResponse{
		ID:          m.ID,
		Content:     m.Content,
		IsAnonymous: m.IsAnonymous,
		Likes:       m.Likes,
		CreatedAt:   m.CreatedAt,
	}
	if !m.IsAnonymous {
		resp.Author = &AuthorRef{ID: m.User.ID, Archetype: m.User.Archetype}
	}
	return resp
}
