package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateToken(userID, "user@taru.local", "Warrior")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@taru.local", claims.Email)
	assert.Equal(t, "Warrior", claims.Archetype)
	assert.Equal(t, "taru", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	token, err := manager.GenerateToken(uuid.New(), "user@taru.local", "Sage")
	require.NoError(t, err)

	other := NewJWTManager("different-secret", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)
	token, err := manager.GenerateToken(uuid.New(), "user@taru.local", "Lover")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	_, err := manager.ValidateToken("not-a-token")
	assert.Error(t, err)
}
