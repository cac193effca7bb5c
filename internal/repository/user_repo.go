package repository

import (
	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by UUID
func (r *UserRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the mutable profile fields
func (r *UserRepository) UpdateProfile(userID uuid.UUID, timezone, bedtime string, settings datatypes.JSON) error {
	updates := map[string]interface{}{}
	if timezone != "" {
		updates["timezone"] = timezone
	}
	if bedtime != "" {
		updates["bedtime"] = bedtime
	}
	if settings != nil {
		updates["settings"] = settings
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error
}

// UpdateArchetype changes the user's archetype
func (r *UserRepository) UpdateArchetype(userID uuid.UUID, archetype model.Archetype) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("archetype", archetype).Error
}

// UpdatePushToken stores the most recently registered push token
func (r *UserRepository) UpdatePushToken(userID uuid.UUID, token string) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("push_token", token).Error
}
