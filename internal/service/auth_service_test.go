package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/repository"
	"github.com/taruapp/api-taru/pkg/auth"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewStreakRepository(db),
		auth.NewJWTManager("test-secret", time.Hour),
		nil,
	)
}

func TestRegisterProvisionsStreaks(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(model.RegisterRequest{
		Email:     "warrior@taru.local",
		Password:  "secret123",
		Archetype: model.ArchetypeWarrior,
		Timezone:  "America/New_York",
		Bedtime:   "22:30",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.ArchetypeWarrior, resp.User.Archetype)

	var streaks []model.Streak
	require.NoError(t, db.Where("user_id = ?", resp.User.ID).Find(&streaks).Error)
	require.Len(t, streaks, 2)

	types := map[model.StreakType]bool{}
	for _, streak := range streaks {
		types[streak.Type] = true
		assert.Equal(t, 0, streak.Current)
		assert.Equal(t, 0, streak.Best)
		assert.WithinDuration(t, time.Now(), streak.LastCheck, 5*time.Second)
	}
	assert.True(t, types[model.StreakTypeSelfLed])
	assert.True(t, types[model.StreakTypeAbstinence])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	req := model.RegisterRequest{
		Email:     "dup@taru.local",
		Password:  "secret123",
		Archetype: model.ArchetypeSage,
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(model.RegisterRequest{
		Email:     "hash@taru.local",
		Password:  "secret123",
		Archetype: model.ArchetypeLover,
	})
	require.NoError(t, err)

	var user model.User
	require.NoError(t, db.Where("id = ?", resp.User.ID).First(&user).Error)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(model.RegisterRequest{
		Email:     "login@taru.local",
		Password:  "secret123",
		Archetype: model.ArchetypeSeeker,
	})
	require.NoError(t, err)

	resp, err := svc.Login(model.LoginRequest{Email: "login@taru.local", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(model.LoginRequest{Email: "login@taru.local", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(model.LoginRequest{Email: "nobody@taru.local", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
