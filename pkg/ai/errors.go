package ai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrMissingAPIKey means the Gemini key is absent or rejected. Assistant
	// features degrade; nothing else in the client is affected.
	ErrMissingAPIKey = errors.New("gemini api key missing or invalid")
	// ErrQuotaExceeded maps the upstream rate/quota responses.
	ErrQuotaExceeded = errors.New("gemini quota exceeded")
)

// ServiceError is a generic upstream AI failure. It is always an
// assistant-side condition, never a judgment on the user's message.
type ServiceError struct {
	Status  int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func classifyError(status int, message, fallback string) error {
	if message == "" {
		message = fallback
	}
	lower := strings.ToLower(message)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden,
		strings.Contains(lower, "api key"):
		return fmt.Errorf("%w: %s", ErrMissingAPIKey, message)
	case status == http.StatusTooManyRequests, strings.Contains(lower, "quota"):
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, message)
	default:
		return &ServiceError{Status: status, Message: message}
	}
}
