package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", 720*time.Hour)

	t.Run("generates valid token for user ID", func(t *testing.T) {
		userID := "507f1f77bcf86cd799439011"

		token, err := manager.GenerateToken(userID)

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		// Token should be a valid JWT format (3 parts separated by dots)
		assert.Regexp(t, `^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`, token)
	})

	t.Run("token contains correct user ID", func(t *testing.T) {
		userID := "test-user-123"

		token, _ := manager.GenerateToken(userID)
		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})
}

func TestJWTManager_ValidateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", 720*time.Hour)

	t.Run("validates correctly signed token", func(t *testing.T) {
		userID := "507f1f77bcf86cd799439011"
		token, _ := manager.GenerateToken(userID)

		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.NotNil(t, claims)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("returns error for expired token", func(t *testing.T) {
		shortManager := NewJWTManager("testsecret123", 1*time.Millisecond)
		token, _ := shortManager.GenerateToken("user123")

		time.Sleep(10 * time.Millisecond)

		claims, err := shortManager.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("returns error for wrong secret", func(t *testing.T) {
		manager1 := NewJWTManager("secret1", time.Hour)
		manager2 := NewJWTManager("secret2", time.Hour)

		token, _ := manager1.GenerateToken("user123")
		claims, err := manager2.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("returns error for invalid token format", func(t *testing.T) {
		claims, err := manager.ValidateToken("not.a.valid.token")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("returns error for empty token", func(t *testing.T) {
		claims, err := manager.ValidateToken("")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("validates token expiry time is set correctly", func(t *testing.T) {
		expiry := 720 * time.Hour // 30-day fixed bearer lifetime
		manager := NewJWTManager("secret", expiry)
		beforeGeneration := time.Now()

		token, _ := manager.GenerateToken("user123")
		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		expectedExpiry := beforeGeneration.Add(expiry)
		assert.WithinDuration(t, expectedExpiry, claims.ExpiresAt.Time, 2*time.Second)
	})
}
