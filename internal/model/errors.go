package model

import "errors"

var (
	// ErrNotFound is returned when a referenced user, edge or snapshot is absent.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned when a caller-fixed user id is already in use.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrSelfLoop is returned when a user is befriended with itself.
	ErrSelfLoop = errors.New("self loop")
	// ErrInvalidInput is returned for malformed names, tags, ids or paths.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIO is returned when a snapshot cannot be read, written or parsed.
	ErrIO = errors.New("io failure")
	// ErrReadOnly is returned by transports when mutations are disabled.
	ErrReadOnly = errors.New("graph is read-only")
)
