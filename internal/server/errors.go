package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidClient indicates a failed token exchange.
type ErrInvalidClient struct{}

func (e *ErrInvalidClient) Error() string {
	return "invalid client ID or secret"
}

// ErrValidation indicates a malformed or invalid request body.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrRunNotFound indicates the requested match run does not exist.
type ErrRunNotFound struct {
	RunID uuid.UUID
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("match run not found: %s", e.RunID)
}

// ErrUpstream indicates a dependency (LLM, scraper) failed.
type ErrUpstream struct {
	Service string
	Cause   error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Cause)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Cause
}

// ErrNotConfigured indicates an endpoint needs a dependency the server
// was started without (database, LLM API key).
type ErrNotConfigured struct {
	Dependency string
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("%s is not configured", e.Dependency)
}

// HTTPStatus maps an error to the HTTP status code it should produce.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidClient:
		return http.StatusUnauthorized
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrRunNotFound:
		return http.StatusNotFound
	case *ErrUpstream:
		return http.StatusBadGateway
	case *ErrNotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
