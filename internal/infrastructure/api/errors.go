package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned for 401 responses. A 403 is a refusal of
	// one action and comes back as *APIError.
	ErrUnauthorized = errors.New("booking api: unauthorized")

	// ErrNotFound is returned for 404 responses
	ErrNotFound = errors.New("booking api: not found")

	// ErrUpstream is returned for 5xx responses and undecodable bodies
	ErrUpstream = errors.New("booking api: upstream error")

	// ErrUnavailable is returned when the API cannot be reached
	ErrUnavailable = errors.New("booking api: unavailable")
)

// APIError is a 4xx response carrying a message meant for the user
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking api: status %d: %s", e.Status, e.Message)
}
