package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/google/uuid"
	"github.com/rishi/placement-autofill/internal/types"
)

// SaveProfile upserts a named profile for the user and marks it last used.
// Returns the profile row ID.
func (db *DB) SaveProfile(ctx context.Context, userID uuid.UUID, name string, fields types.Profile) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(fields)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile fields: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO profiles (user_id, name, fields, last_used_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id, name) DO UPDATE SET fields = $3, last_used_at = NOW(), updated_at = NOW()
		 RETURNING id`,
		userID, name, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile %s: %w", name, err)
	}
	return id, nil
}

// GetProfile retrieves a named profile for the user. Returns nil when not
// found.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID, name string) (*StoredProfile, error) {
	var p StoredProfile
	var fieldBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, fields, last_used_at, created_at, updated_at
		 FROM profiles WHERE user_id = $1 AND name = $2`,
		userID, name,
	).Scan(&p.ID, &p.UserID, &p.Name, &fieldBytes, &p.LastUsedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", name, err)
	}
	if err := json.Unmarshal(fieldBytes, &p.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode profile fields: %w", err)
	}
	return &p, nil
}

// GetLastUsedProfile retrieves the user's most recently used profile.
// Returns nil when the user has no profiles.
func (db *DB) GetLastUsedProfile(ctx context.Context, userID uuid.UUID) (*StoredProfile, error) {
	var p StoredProfile
	var fieldBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, fields, last_used_at, created_at, updated_at
		 FROM profiles WHERE user_id = $1
		 ORDER BY last_used_at DESC NULLS LAST, updated_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.Name, &fieldBytes, &p.LastUsedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last used profile: %w", err)
	}
	if err := json.Unmarshal(fieldBytes, &p.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode profile fields: %w", err)
	}
	return &p, nil
}

// MarkProfileUsed stamps the named profile's last_used_at
func (db *DB) MarkProfileUsed(ctx context.Context, userID uuid.UUID, name string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE profiles SET last_used_at = NOW() WHERE user_id = $1 AND name = $2`,
		userID, name,
	)
	if err != nil {
		return fmt.Errorf("failed to mark profile used: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", name)
	}
	return nil
}

// ListProfiles retrieves profile summaries for the user, most recently used
// first
func (db *DB) ListProfiles(ctx context.Context, userID uuid.UUID) ([]ProfileSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, last_used_at, updated_at
		 FROM profiles WHERE user_id = $1
		 ORDER BY last_used_at DESC NULLS LAST, updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var summaries []ProfileSummary
	for rows.Next() {
		var s ProfileSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.LastUsedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteProfile removes a named profile for the user
func (db *DB) DeleteProfile(ctx context.Context, userID uuid.UUID, name string) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM profiles WHERE user_id = $1 AND name = $2`,
		userID, name,
	)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", name)
	}
	return nil
}
