package repository

import (
	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"gorm.io/gorm"
)

// CommunityRepository handles database operations for CommunityMessage
type CommunityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// Create inserts a new community message
func (r *CommunityRepository) Create(msg *model.CommunityMessage) error {
	return r.db.Create(msg).Error
}

// ListPublic returns unflagged messages for the community feed, newest first
func (r *CommunityRepository) ListPublic(limit, offset int) ([]model.CommunityMessage, error) {
	var messages []model.CommunityMessage
	err := r.db.
		Preload("User").
		Where("flagged = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}

// FindByID finds a message by id
func (r *CommunityRepository) FindByID(id uuid.UUID) (*model.CommunityMessage, error) {
	var msg model.CommunityMessage
	err := r.db.Where("id = ?", id).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// IncrementLikes adds one like to a message
func (r *CommunityRepository) IncrementLikes(id uuid.UUID) error {
	return r.db.Model(&model.CommunityMessage{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1")).Error
}

// Flag marks a message as flagged, removing it from the public feed
func (r *CommunityRepository) Flag(id uuid.UUID) error {
	return r.db.Model(&model.CommunityMessage{}).
		Where("id = ?", id).
		Update("flagged", true).Error
}
