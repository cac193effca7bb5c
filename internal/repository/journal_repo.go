package repository

import (
	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"gorm.io/gorm"
)

// JournalRepository handles database operations for JournalEntry
type JournalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Create inserts a new journal entry
func (r *JournalRepository) Create(entry *model.JournalEntry) error {
	return r.db.Create(entry).Error
}

// ListByUser returns journal entries for a user, newest first
func (r *JournalRepository) ListByUser(userID uuid.UUID, limit, offset int) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, err
}

// FindOwned finds an entry by id scoped to its owner
func (r *JournalRepository) FindOwned(id, userID uuid.UUID) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update writes the given field changes to an entry
func (r *JournalRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&model.JournalEntry{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a journal entry
func (r *JournalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.JournalEntry{}, "id = ?", id).Error
}
