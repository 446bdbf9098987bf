package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionExpired    = errors.New("session expired")
	ErrSessionIncomplete = errors.New("session has access token but no user id")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrValidation        = errors.New("invalid request")
)

// NetworkError wraps a transport-level failure (timeout, DNS, refused
// connection) so callers can tell it apart from a backend error code.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ApplicationError is a backend envelope with a non-success code.
type ApplicationError struct {
	Code    int
	Message string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error code %d", e.Code)
	}
	return fmt.Sprintf("backend error code %d: %s", e.Code, e.Message)
}
