package models

import "errors"

// Store conflict errors, translated from unique constraint violations
var (
	ErrDuplicateUsername  = errors.New("duplicate username")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrDuplicateFollowing = errors.New("duplicate following")
)

// ErrSelfFollow is returned when the store rejects an edge from a user to themselves.
var ErrSelfFollow = errors.New("user cannot follow themselves")
