package domain

import "errors"

var (
	ErrAuthFailure       = errors.New("invalid username or password")
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrAlreadyRegistered = errors.New("client already registered for this session")
	ErrCapacityExceeded  = errors.New("section capacity reached")
	ErrForbidden         = errors.New("forbidden")
)
