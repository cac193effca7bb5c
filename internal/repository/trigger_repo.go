package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TriggerRepository handles database operations for TriggerEvent
type TriggerRepository struct {
	db *gorm.DB
}

func NewTriggerRepository(db *gorm.DB) *TriggerRepository {
	return &TriggerRepository{db: db}
}

// Create inserts a new trigger event
func (r *TriggerRepository) Create(event *model.TriggerEvent) error {
	return r.db.Create(event).Error
}

// FindByID finds a trigger event by id
func (r *TriggerRepository) FindByID(id uuid.UUID) (*model.TriggerEvent, error) {
	var event model.TriggerEvent
	err := r.db.Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// MarkProcessed records the worker's result on the trigger event row
func (r *TriggerRepository) MarkProcessed(id uuid.UUID, interventionID string, response datatypes.JSON, processedAt time.Time) error {
	return r.db.Model(&model.TriggerEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"intervention_id": interventionID,
			"response":        response,
			"processed_at":    processedAt,
		}).Error
}

// ListByUser returns trigger events for a user, newest first
func (r *TriggerRepository) ListByUser(userID uuid.UUID, limit int) ([]model.TriggerEvent, error) {
	var events []model.TriggerEvent
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
