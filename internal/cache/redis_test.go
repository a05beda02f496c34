package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		expected string
	}{
		{"simple id", "123", "user:123"},
		{"objectid format", "507f1f77bcf86cd799439011", "user:507f1f77bcf86cd799439011"},
		{"empty string", "", "user:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UserCacheKey(tt.userID)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTrekCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		trekID   string
		expected string
	}{
		{"simple id", "abc", "trek:abc"},
		{"objectid format", "507f1f77bcf86cd799439011", "trek:507f1f77bcf86cd799439011"},
		{"empty string", "", "trek:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TrekCacheKey(tt.trekID)
			assert.Equal(t, tt.expected, result)
		})
	}
}
