package service

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/repository"
	"gorm.io/gorm"
)

// CheckInService handles IFS check-ins and the streak counters they advance
type CheckInService struct {
	checkInRepo *repository.CheckInRepository
	streakRepo  *repository.StreakRepository
}

func NewCheckInService(checkInRepo *repository.CheckInRepository, streakRepo *repository.StreakRepository) *CheckInService {
	return &CheckInService{
		checkInRepo: checkInRepo,
		streakRepo:  streakRepo,
	}
}

// CreateCheckIn records a check-in and advances the self_led streak
func (s *CheckInService) CreateCheckIn(userID uuid.UUID, req model.CreateCheckInRequest) (*model.CheckIn, error) {
	checkIn := &model.CheckIn{
		UserID:    userID,
		Part:      req.Part,
		Emotion:   req.Emotion,
		Quadrant:  req.Quadrant,
		Intensity: req.Intensity,
		Notes:     req.Notes,
	}
	if err := s.checkInRepo.Create(checkIn); err != nil {
		return nil, errors.New("failed to create check-in")
	}

	// Streak advancement is best-effort: a failed update never fails the
	// check-in itself.
	if _, err := s.UpdateStreak(userID, model.StreakTypeSelfLed); err != nil {
		log.Printf("⚠️  Failed to update streak for user %s: %v", userID, err)
	}

	return checkIn, nil
}

// GetCheckIns returns the user's check-ins, newest first, paginated
func (s *CheckInService) GetCheckIns(userID uuid.UUID, page, limit int) (*model.CheckInListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	checkIns, total, err := s.checkInRepo.ListByUser(userID, page, limit)
	if err != nil {
		return nil, errors.New("failed to list check-ins")
	}

	return &model.CheckInListResponse{
		CheckIns: checkIns,
		Pagination: model.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// GetStreaks returns the user's streak counters keyed by type
func (s *CheckInService) GetStreaks(userID uuid.UUID) (map[model.StreakType]model.StreakState, error) {
	streaks, err := s.streakRepo.ListByUser(userID)
	if err != nil {
		return nil, errors.New("failed to list streaks")
	}

	result := make(map[model.StreakType]model.StreakState, len(streaks))
	for _, streak := range streaks {
		result[streak.Type] = model.StreakState{
			Current:   streak.Current,
			Best:      streak.Best,
			LastCheck: streak.LastCheck,
		}
	}
	return result, nil
}

// GetStats summarizes check-ins over the trailing day window
func (s *CheckInService) GetStats(userID uuid.UUID, days int) (*model.CheckInStatsResponse, error) {
	if days < 1 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	checkIns, err := s.checkInRepo.ListSince(userID, since)
	if err != nil {
		return nil, errors.New("failed to compute check-in stats")
	}

	stats := &model.CheckInStatsResponse{
		Count:               len(checkIns),
		EmotionDistribution: make(map[string]int),
	}
	if len(checkIns) == 0 {
		return stats, nil
	}

	totalIntensity := 0
	for _, checkIn := range checkIns {
		totalIntensity += checkIn.Intensity
		stats.EmotionDistribution[checkIn.Emotion]++
	}
	stats.AverageIntensity = float64(totalIntensity) / float64(len(checkIns))
	return stats, nil
}

// UpdateStreak applies the consecutive-day rule to one streak counter:
// under 24h since the last check is a same-day no-op, 24-48h continues the
// run, anything later resets it to 1. Best only ever goes up. A missing
// streak row is silently skipped.
func (s *CheckInService) UpdateStreak(userID uuid.UUID, streakType model.StreakType) (*model.Streak, error) {
	streak, err := s.streakRepo.FindByUserAndType(userID, streakType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := time.Now()
	hours := now.Sub(streak.LastCheck).Hours()

	switch {
	case hours < 24:
		return streak, nil
	case hours < 48:
		streak.Current++
	default:
		streak.Current = 1
	}

	if streak.Current > streak.Best {
		streak.Best = streak.Current
	}
	streak.LastCheck = now

	if err := s.streakRepo.UpdateCounters(streak.ID, streak.Current, streak.Best, streak.LastCheck); err != nil {
		return nil, err
	}
	return streak, nil
}
