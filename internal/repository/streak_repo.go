package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"gorm.io/gorm"
)

// StreakRepository handles database operations for Streak
type StreakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{db: db}
}

// Create inserts a new streak row
func (r *StreakRepository) Create(streak *model.Streak) error {
	return r.db.Create(streak).Error
}

// FindByUserAndType finds the streak row for a (user, type) pair
func (r *StreakRepository) FindByUserAndType(userID uuid.UUID, streakType model.StreakType) (*model.Streak, error) {
	var streak model.Streak
	err := r.db.Where("user_id = ? AND type = ?", userID, streakType).First(&streak).Error
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

// ListByUser returns all streak rows for a user
func (r *StreakRepository) ListByUser(userID uuid.UUID) ([]model.Streak, error) {
	var streaks []model.Streak
	err := r.db.Where("user_id = ?", userID).Find(&streaks).Error
	return streaks, err
}

// UpdateCounters writes back the streak counters after an update. Single-row
// update; no lock is taken, so concurrent check-ins are last-writer-wins.
func (r *StreakRepository) UpdateCounters(id uuid.UUID, current, best int, lastCheck time.Time) error {
	return r.db.Model(&model.Streak{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current":    current,
			"best":       best,
			"last_check": lastCheck,
		}).Error
}
