package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PushTokenRepository handles database operations for PushToken
type PushTokenRepository struct {
	db *gorm.DB
}

func NewPushTokenRepository(db *gorm.DB) *PushTokenRepository {
	return &PushTokenRepository{db: db}
}

// Upsert registers a push token. Keyed by token value: re-registering an
// existing token reassigns it to the caller and reactivates it, leaving
// exactly one row per token.
func (r *PushTokenRepository) Upsert(userID uuid.UUID, token, platform string) (*model.PushToken, error) {
	record := model.PushToken{
		UserID:   userID,
		Token:    token,
		Platform: platform,
		IsActive: true,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"user_id":    userID,
			"platform":   platform,
			"is_active":  true,
			"updated_at": time.Now(),
		}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}

	var saved model.PushToken
	if err := r.db.Where("token = ?", token).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListActive returns the user's active tokens
func (r *PushTokenRepository) ListActive(userID uuid.UUID) ([]model.PushToken, error) {
	var tokens []model.PushToken
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&tokens).Error
	return tokens, err
}

// Deactivate marks a token inactive (e.g. after a permanent delivery failure)
func (r *PushTokenRepository) Deactivate(token string) error {
	return r.db.Model(&model.PushToken{}).
		Where("token = ?", token).
		Update("is_active", false).Error
}
