package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"gorm.io/gorm"
)

// CheckInRepository handles database operations for CheckIn
type CheckInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// Create inserts a new check-in
func (r *CheckInRepository) Create(checkIn *model.CheckIn) error {
	return r.db.Create(checkIn).Error
}

// ListByUser returns paginated check-ins, newest first
func (r *CheckInRepository) ListByUser(userID uuid.UUID, page, limit int) ([]model.CheckIn, int64, error) {
	var checkIns []model.CheckIn
	var total int64

	if err := r.db.Model(&model.CheckIn{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&checkIns).Error
	return checkIns, total, err
}

// FindLatest returns the most recent check-in for a user
func (r *CheckInRepository) FindLatest(userID uuid.UUID) (*model.CheckIn, error) {
	var checkIn model.CheckIn
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&checkIn).Error
	if err != nil {
		return nil, err
	}
	return &checkIn, nil
}

// ListSince returns check-ins created after the given time
func (r *CheckInRepository) ListSince(userID uuid.UUID, since time.Time) ([]model.CheckIn, error) {
	var checkIns []model.CheckIn
	err := r.db.
		Where("user_id = ? AND created_at >= ?", userID, since).
		Find(&checkIns).Error
	return checkIns, err
}

// CountByUser counts all check-ins for a user
func (r *CheckInRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.CheckIn{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
