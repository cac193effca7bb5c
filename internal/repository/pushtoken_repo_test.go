package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taruapp/api-taru/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.PushToken{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{
		Email:     uuid.New().String() + "@taru.local",
		Password:  "hashed",
		Archetype: model.ArchetypeWarrior,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestPushTokenUpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	repo := NewPushTokenRepository(db)

	first, err := repo.Upsert(user.ID, "token-abc", "ios")
	require.NoError(t, err)
	assert.Equal(t, user.ID, first.UserID)
	assert.True(t, first.IsActive)

	second, err := repo.Upsert(user.ID, "token-abc", "ios")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.PushToken{}).Where("token = ?", "token-abc").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPushTokenUpsertReassignsToNewUser(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db)
	bob := seedUser(t, db)
	repo := NewPushTokenRepository(db)

	_, err := repo.Upsert(alice.ID, "shared-device", "android")
	require.NoError(t, err)

	// Device handed over: same token registered by another account
	reassigned, err := repo.Upsert(bob.ID, "shared-device", "android")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, reassigned.UserID)

	var count int64
	require.NoError(t, db.Model(&model.PushToken{}).Where("token = ?", "shared-device").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPushTokenDeactivate(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	repo := NewPushTokenRepository(db)

	_, err := repo.Upsert(user.ID, "stale-token", "ios")
	require.NoError(t, err)
	require.NoError(t, repo.Deactivate("stale-token"))

	active, err := repo.ListActive(user.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Re-registering reactivates it
	reactivated, err := repo.Upsert(user.ID, "stale-token", "ios")
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive)
}
