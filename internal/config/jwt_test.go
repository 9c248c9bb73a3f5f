package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	tests := []struct {
		name          string
		secret        string
		hours         string
		expectError   string
		expectedHours int
	}{
		{
			name:          "defaults to one day",
			secret:        "placement-api-secret",
			expectedHours: 24,
		},
		{
			name:          "explicit lifetime",
			secret:        "placement-api-secret",
			hours:         "72",
			expectedHours: 72,
		},
		{
			name:        "missing secret",
			secret:      "",
			expectError: "JWT_SECRET is required",
		},
		{
			name:        "non numeric lifetime",
			secret:      "placement-api-secret",
			hours:       "one day",
			expectError: "invalid JWT_EXPIRATION_HOURS",
		},
		{
			name:        "zero hours rejected",
			secret:      "placement-api-secret",
			hours:       "0",
			expectError: "at least 1 hour",
		},
		{
			name:        "negative hours rejected",
			secret:      "placement-api-secret",
			hours:       "-5",
			expectError: "at least 1 hour",
		},
		{
			name:        "lifetime capped at a week",
			secret:      "placement-api-secret",
			hours:       "200",
			expectError: "at most 168 hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", tt.secret)
			t.Setenv("JWT_EXPIRATION_HOURS", tt.hours)

			cfg, err := NewJWTConfig()
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.secret, cfg.Secret)
			assert.Equal(t, tt.expectedHours, cfg.ExpirationHours)
		})
	}
}

func TestNewJWTConfigWeekBoundary(t *testing.T) {
	t.Setenv("JWT_SECRET", "placement-api-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "168")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 168, cfg.ExpirationHours)
}
