package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrFollowingNotFound  = errors.New("following not found")
	ErrForbidden          = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
	ErrInvalidPage        = errors.New("invalid page")
)

// ValidationError carries field-keyed messages for rejected input.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Add appends msg to the messages of field.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Has reports whether field already has a message.
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

// OrNil returns e if it has messages and nil otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
