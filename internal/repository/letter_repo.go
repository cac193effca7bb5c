package repository

import (
	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"gorm.io/gorm"
)

// LetterRepository handles database operations for LovedOneLetter
type LetterRepository struct {
	db *gorm.DB
}

func NewLetterRepository(db *gorm.DB) *LetterRepository {
	return &LetterRepository{db: db}
}

// Create inserts a new letter
func (r *LetterRepository) Create(letter *model.LovedOneLetter) error {
	return r.db.Create(letter).Error
}

// ListByUser returns all letters for a user, newest first
func (r *LetterRepository) ListByUser(userID uuid.UUID) ([]model.LovedOneLetter, error) {
	var letters []model.LovedOneLetter
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&letters).Error
	return letters, err
}

// FindOwned finds a letter by id scoped to its owner. A letter belonging to
// another user reads as not found.
func (r *LetterRepository) FindOwned(id, userID uuid.UUID) (*model.LovedOneLetter, error) {
	var letter model.LovedOneLetter
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&letter).Error
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

// Update writes the given field changes to a letter row
func (r *LetterRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&model.LovedOneLetter{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a letter
func (r *LetterRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.LovedOneLetter{}, "id = ?", id).Error
}

// CountByUser counts all letters for a user
func (r *LetterRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.LovedOneLetter{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
