package app

import (
	"errors"
	"fmt"
)

var (
	errNilAPI      = errors.New("api client is required")
	errNilSessions = errors.New("session manager is required")

	// ErrSessionRequired is returned before any network call when a protected
	// operation runs without a live session; callers route to login.
	ErrSessionRequired = errors.New("sign in required")
	// ErrNotPurchased gates protected course content.
	ErrNotPurchased = errors.New("course not purchased")
	// ErrAlreadyPurchased stops a second checkout for an accessible course.
	ErrAlreadyPurchased = errors.New("course already purchased")
	// ErrAssistantUnavailable is returned when no AI assistant is configured.
	ErrAssistantUnavailable = errors.New("ai assistant not configured")
)

// UnverifiedError routes a login attempt on an unverified account to the
// verification step, carrying the submitted email.
type UnverifiedError struct {
	Email string
}

func (e *UnverifiedError) Error() string {
	return fmt.Sprintf("account %s is not verified", e.Email)
}

// ValidationError carries field-scoped messages for inline feedback. It is
// resolved locally and never surfaced as a global error.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, message string) {
	if _, dup := e.Fields[field]; !dup {
		e.Fields[field] = message
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
