package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateUserRequest represents the request to create a new user with password authentication.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=7"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest represents a password change request.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// User represents a user account for API responses (avoids import cycle with db package).
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	PasswordSet bool      `json:"password_set"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse represents the login/register response with user data and authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// SaveProfileRequest represents a request to create or replace a named profile.
type SaveProfileRequest struct {
	Name   string  `json:"name" validate:"required,min=1,max=64"`
	Fields Profile `json:"fields" validate:"required,min=1"`
}

// MatchRequest represents a request to match a form snapshot (or raw HTML)
// against a named or inline profile. Exactly one of HTML/Snapshot and one of
// ProfileName/Profile must be set; the handler enforces the cross-field rules.
type MatchRequest struct {
	HTML        string        `json:"html,omitempty"`
	Snapshot    *FormSnapshot `json:"snapshot,omitempty"`
	ProfileName string        `json:"profile_name,omitempty"`
	Profile     Profile       `json:"profile,omitempty"`
}

// MatchURLRequest represents a request to fetch a form page and match it
// against a named or inline profile.
type MatchURLRequest struct {
	URL         string  `json:"url" validate:"required,url"`
	ProfileName string  `json:"profile_name,omitempty"`
	Profile     Profile `json:"profile,omitempty"`
}

// Validate validates the MatchURLRequest using the validator.
func (r *MatchURLRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// MatchResponse carries the candidate list for one matching pass.
type MatchResponse struct {
	Candidates []Candidate `json:"candidates"`
	Relaxed    bool        `json:"relaxed"`
	Message    string      `json:"message,omitempty"`
}

// Validate validates the CreateUserRequest using the validator.
func (r *CreateUserRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveProfileRequest using the validator.
func (r *SaveProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
