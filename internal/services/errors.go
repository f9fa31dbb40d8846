package services

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists is returned when a user with the same email already exists.
	ErrEmailExists = errors.New("email already in use")
	// ErrCartNotFound is returned when no cart matches the given id.
	ErrCartNotFound = errors.New("cart not found")
)
