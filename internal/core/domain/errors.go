package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrForbidden          = errors.New("access forbidden")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrTestNotFound       = errors.New("ab test not found")
)

// Human-readable reasons shown to the user on a failed credential operation.
const (
	ReasonLogin  = "Invalid email or password"
	ReasonSignup = "Could not create your account. Please try again."
)

// AuthFailure is returned by login and signup when the operation could not
// produce an identity. Reason is safe to show to the user; Err carries the cause.
type AuthFailure struct {
	Op     string
	Reason string
	Err    error
}

func (e *AuthFailure) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
}

func (e *AuthFailure) Unwrap() error { return e.Err }

// NewLoginFailure wraps err as a failed login.
func NewLoginFailure(err error) *AuthFailure {
	return &AuthFailure{Op: "login", Reason: ReasonLogin, Err: err}
}

// NewSignupFailure wraps err as a failed signup.
func NewSignupFailure(err error) *AuthFailure {
	return &AuthFailure{Op: "signup", Reason: ReasonSignup, Err: err}
}

// RehydrationError describes a persisted session that could not be restored.
// It is logged and never reaches the user.
type RehydrationError struct {
	Scope string
	Err   error
}

func (e *RehydrationError) Error() string {
	return fmt.Sprintf("rehydrate scope %s: %v", e.Scope, e.Err)
}

func (e *RehydrationError) Unwrap() error { return e.Err }
