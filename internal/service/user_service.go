package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/repository"
)

// UserService handles profile management, engagement stats and push tokens
type UserService struct {
	userRepo      *repository.UserRepository
	checkInRepo   *repository.CheckInRepository
	streakRepo    *repository.StreakRepository
	letterRepo    *repository.LetterRepository
	pushTokenRepo *repository.PushTokenRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	checkInRepo *repository.CheckInRepository,
	streakRepo *repository.StreakRepository,
	letterRepo *repository.LetterRepository,
	pushTokenRepo *repository.PushTokenRepository,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		checkInRepo:   checkInRepo,
		streakRepo:    streakRepo,
		letterRepo:    letterRepo,
		pushTokenRepo: pushTokenRepo,
	}
}

// UpdateProfile updates the user's mutable profile fields
func (s *UserService) UpdateProfile(userID uuid.UUID, req model.UpdateUserRequest) (*model.UserResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, ErrNotFound
	}

	if err := s.userRepo.UpdateProfile(userID, req.Timezone, req.Bedtime, req.Settings); err != nil {
		return nil, errors.New("failed to update profile")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, errors.New("failed to reload user")
	}
	resp := user.ToResponse()
	return &resp, nil
}

// UpdateArchetype changes the user's archetype
func (s *UserService) UpdateArchetype(userID uuid.UUID, archetype model.Archetype) (*model.UserResponse, error) {
	if !archetype.IsValid() {
		return nil, errors.New("invalid archetype")
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, ErrNotFound
	}

	if err := s.userRepo.UpdateArchetype(userID, archetype); err != nil {
		return nil, errors.New("failed to update archetype")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, errors.New("failed to reload user")
	}
	resp := user.ToResponse()
	return &resp, nil
}

// GetStats aggregates the user's engagement counters
func (s *UserService) GetStats(userID uuid.UUID) (*model.UserStatsResponse, error) {
	checkIns, err := s.checkInRepo.CountByUser(userID)
	if err != nil {
		return nil, errors.New("failed to count check-ins")
	}

	letters, err := s.letterRepo.CountByUser(userID)
	if err != nil {
		return nil, errors.New("failed to count letters")
	}

	streaks, err := s.streakRepo.ListByUser(userID)
	if err != nil {
		return nil, errors.New("failed to list streaks")
	}

	stats := &model.UserStatsResponse{
		TotalCheckIns: checkIns,
		LettersCount:  letters,
	}
	for _, streak := range streaks {
		state := model.StreakState{
			Current:   streak.Current,
			Best:      streak.Best,
			LastCheck: streak.LastCheck,
		}
		switch streak.Type {
		case model.StreakTypeSelfLed:
			stats.SelfLedStreak = state
		case model.StreakTypeAbstinence:
			stats.AbstinenceStreak = state
		}
	}
	return stats, nil
}

// RegisterPushToken registers a device token for push delivery. Upserts by
// token value and mirrors it onto the user row as the most recent token.
func (s *UserService) RegisterPushToken(userID uuid.UUID, req model.RegisterPushTokenRequest) (*model.PushToken, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, ErrNotFound
	}

	token, err := s.pushTokenRepo.Upsert(userID, req.Token, req.Platform)
	if err != nil {
		return nil, errors.New("failed to register push token")
	}

	if err := s.userRepo.UpdatePushToken(userID, req.Token); err != nil {
		return nil, errors.New("failed to update push token")
	}

	return token, nil
}

// ListPushTokens returns the user's active device tokens
func (s *UserService) ListPushTokens(userID uuid.UUID) ([]model.PushToken, error) {
	return s.pushTokenRepo.ListActive(userID)
}
