package repository

import (
	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"gorm.io/gorm"
)

// GratitudeRepository handles database operations for GratitudeEntry
type GratitudeRepository struct {
	db *gorm.DB
}

func NewGratitudeRepository(db *gorm.DB) *GratitudeRepository {
	return &GratitudeRepository{db: db}
}

// Create inserts a new gratitude entry
func (r *GratitudeRepository) Create(entry *model.GratitudeEntry) error {
	return r.db.Create(entry).Error
}

// ListByUser returns gratitude entries for a user, newest first
func (r *GratitudeRepository) ListByUser(userID uuid.UUID, limit, offset int) ([]model.GratitudeEntry, error) {
	var entries []model.GratitudeEntry
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, err
}

// FindOwned finds an entry by id scoped to its owner
func (r *GratitudeRepository) FindOwned(id, userID uuid.UUID) (*model.GratitudeEntry, error) {
	var entry model.GratitudeEntry
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes a gratitude entry
func (r *GratitudeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.GratitudeEntry{}, "id = ?", id).Error
}
