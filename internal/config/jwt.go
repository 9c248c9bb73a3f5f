package config

import (
	"fmt"
	"os"
	"strconv"
)

// Session lifetime bounds. A placement drive runs for days, so API sessions
// default to a full day and may be stretched up to a week.
const (
	defaultTokenLifetimeHours = 24
	maxTokenLifetimeHours     = 24 * 7
)

// JWTConfig holds the signing secret and token lifetime for API sessions.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS
// (default 24, capped at one week).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours := defaultTokenLifetimeHours
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		hours = parsed
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", hours)
	}
	if hours > maxTokenLifetimeHours {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at most %d hours, got: %d", maxTokenLifetimeHours, hours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: hours}, nil
}
