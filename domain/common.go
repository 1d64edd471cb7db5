package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest  = "failed to process request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token is invalid")
	ErrTokenExpired  = errors.New("token is expired")
)

// ValidationError carries a field -> reason mapping for rejected input.
// Nothing has been written when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}
