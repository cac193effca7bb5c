package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.CheckIn{},
		&model.Streak{},
		&model.TriggerEvent{},
		&model.LovedOneLetter{},
		&model.JournalEntry{},
		&model.GratitudeEntry{},
		&model.CommunityMessage{},
		&model.PushToken{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, archetype model.Archetype) *model.User {
	t.Helper()
	user := &model.User{
		Email:     uuid.New().String() + "@taru.local",
		Password:  "hashed",
		Archetype: archetype,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedStreak(t *testing.T, db *gorm.DB, userID uuid.UUID, streakType model.StreakType, current, best int, lastCheck time.Time) *model.Streak {
	t.Helper()
	streak := &model.Streak{
		UserID:    userID,
		Type:      streakType,
		Current:   current,
		Best:      best,
		LastCheck: lastCheck,
	}
	require.NoError(t, db.Create(streak).Error)
	return streak
}

func newCheckInService(db *gorm.DB) *CheckInService {
	return NewCheckInService(
		repository.NewCheckInRepository(db),
		repository.NewStreakRepository(db),
	)
}

func TestUpdateStreakSameDayNoOp(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeWarrior)
	lastCheck := time.Now().Add(-6 * time.Hour)
	seedStreak(t, db, user.ID, model.StreakTypeSelfLed, 3, 5, lastCheck)

	svc := newCheckInService(db)
	streak, err := svc.UpdateStreak(user.ID, model.StreakTypeSelfLed)
	require.NoError(t, err)
	require.NotNil(t, streak)

	assert.Equal(t, 3, streak.Current)
	assert.Equal(t, 5, streak.Best)
	assert.WithinDuration(t, lastCheck, streak.LastCheck, time.Second)
}

func TestUpdateStreakNextDayIncrements(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeWarrior)
	seedStreak(t, db, user.ID, model.StreakTypeSelfLed, 3, 5, time.Now().Add(-30*time.Hour))

	svc := newCheckInService(db)
	streak, err := svc.UpdateStreak(user.ID, model.StreakTypeSelfLed)
	require.NoError(t, err)
	require.NotNil(t, streak)

	assert.Equal(t, 4, streak.Current)
	assert.Equal(t, 5, streak.Best)
	assert.WithinDuration(t, time.Now(), streak.LastCheck, time.Second)
}

func TestUpdateStreakNewBest(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeWarrior)
	seedStreak(t, db, user.ID, model.StreakTypeSelfLed, 5, 5, time.Now().Add(-25*time.Hour))

	svc := newCheckInService(db)
	streak, err := svc.UpdateStreak(user.ID, model.StreakTypeSelfLed)
	require.NoError(t, err)
	require.NotNil(t, streak)

	assert.Equal(t, 6, streak.Current)
	assert.Equal(t, 6, streak.Best)
}

func TestUpdateStreakLapseResets(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeWarrior)
	seedStreak(t, db, user.ID, model.StreakTypeSelfLed, 12, 12, time.Now().Add(-72*time.Hour))

	svc := newCheckInService(db)
	streak, err := svc.UpdateStreak(user.ID, model.StreakTypeSelfLed)
	require.NoError(t, err)
	require.NotNil(t, streak)

	// Current resets but best stays as the high-water mark
	assert.Equal(t, 1, streak.Current)
	assert.Equal(t, 12, streak.Best)
}

func TestUpdateStreakExactly48HoursResets(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeWarrior)
	seedStreak(t, db, user.ID, model.StreakTypeSelfLed, 4, 4, time.Now().Add(-48*time.Hour-time.Minute))

	svc := newCheckInService(db)
	streak, err := svc.UpdateStreak(user.ID, model.StreakTypeSelfLed)
	require.NoError(t, err)
	require.NotNil(t, streak)

	assert.Equal(t, 1, streak.Current)
}

func TestUpdateStreakMissingRowIsSilent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeWarrior)

	svc := newCheckInService(db)
	streak, err := svc.UpdateStreak(user.ID, model.StreakTypeSelfLed)
	assert.NoError(t, err)
	assert.Nil(t, streak)
}

func TestUpdateStreakPersistsCounters(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeWarrior)
	seedStreak(t, db, user.ID, model.StreakTypeSelfLed, 1, 1, time.Now().Add(-26*time.Hour))

	svc := newCheckInService(db)
	_, err := svc.UpdateStreak(user.ID, model.StreakTypeSelfLed)
	require.NoError(t, err)

	var saved model.Streak
	require.NoError(t, db.Where("user_id = ? AND type = ?", user.ID, model.StreakTypeSelfLed).First(&saved).Error)
	assert.Equal(t, 2, saved.Current)
	assert.Equal(t, 2, saved.Best)
}

func TestCreateCheckInAdvancesSelfLedOnly(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeSage)
	seedStreak(t, db, user.ID, model.StreakTypeSelfLed, 2, 2, time.Now().Add(-30*time.Hour))
	seedStreak(t, db, user.ID, model.StreakTypeAbstinence, 7, 7, time.Now().Add(-30*time.Hour))

	svc := newCheckInService(db)
	checkIn, err := svc.CreateCheckIn(user.ID, model.CreateCheckInRequest{
		Part:      "The Protector",
		Emotion:   "anxious",
		Quadrant:  "high-energy",
		Intensity: 6,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, checkIn.ID)

	var selfLed, abstinence model.Streak
	require.NoError(t, db.Where("user_id = ? AND type = ?", user.ID, model.StreakTypeSelfLed).First(&selfLed).Error)
	require.NoError(t, db.Where("user_id = ? AND type = ?", user.ID, model.StreakTypeAbstinence).First(&abstinence).Error)
	assert.Equal(t, 3, selfLed.Current)
	assert.Equal(t, 7, abstinence.Current)
}

func TestGetCheckInsPagination(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeLover)

	for i := 0; i < 25; i++ {
		require.NoError(t, db.Create(&model.CheckIn{
			UserID:    user.ID,
			Part:      "part",
			Emotion:   "calm",
			Quadrant:  "low-energy",
			Intensity: 5,
		}).Error)
	}

	svc := newCheckInService(db)
	resp, err := svc.GetCheckIns(user.ID, 2, 10)
	require.NoError(t, err)

	assert.Len(t, resp.CheckIns, 10)
	assert.Equal(t, int64(25), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestGetStats(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeSeeker)

	for _, c := range []struct {
		emotion   string
		intensity int
	}{
		{"anxious", 8},
		{"anxious", 6},
		{"calm", 4},
	} {
		require.NoError(t, db.Create(&model.CheckIn{
			UserID:    user.ID,
			Part:      "part",
			Emotion:   c.emotion,
			Quadrant:  "q",
			Intensity: c.intensity,
		}).Error)
	}

	svc := newCheckInService(db)
	stats, err := svc.GetStats(user.ID, 7)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 6.0, stats.AverageIntensity, 0.01)
	assert.Equal(t, 2, stats.EmotionDistribution["anxious"])
	assert.Equal(t, 1, stats.EmotionDistribution["calm"])
}

func TestGetStatsEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeSeeker)

	svc := newCheckInService(db)
	stats, err := svc.GetStats(user.ID, 7)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Count)
	assert.Zero(t, stats.AverageIntensity)
}

func TestGetStreaksKeyedByType(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.ArchetypeWarrior)
	seedStreak(t, db, user.ID, model.StreakTypeSelfLed, 2, 4, time.Now())
	seedStreak(t, db, user.ID, model.StreakTypeAbstinence, 10, 10, time.Now())

	svc := newCheckInService(db)
	streaks, err := svc.GetStreaks(user.ID)
	require.NoError(t, err)

	require.Len(t, streaks, 2)
	assert.Equal(t, 2, streaks[model.StreakTypeSelfLed].Current)
	assert.Equal(t, 4, streaks[model.StreakTypeSelfLed].Best)
	assert.Equal(t, 10, streaks[model.StreakTypeAbstinence].Current)
}
