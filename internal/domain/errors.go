package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmployeeAlreadyExists = errors.New("employee already exists for user")
	ErrInvalidInput          = errors.New("invalid input")
)
