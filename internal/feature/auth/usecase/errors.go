package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidName is returned when the display name fails signup validation.
	ErrInvalidName = errors.New("name can only contain alphabets and spaces")

	// ErrInvalidEmail is returned when the email address fails signup validation.
	ErrInvalidEmail = errors.New("please enter a valid email address")

	// ErrInvalidPassword is returned when the password fails signup validation.
	ErrInvalidPassword = errors.New("password must be 4-10 characters long, with at least one uppercase letter, one number, and one special character")
)
