package usecase

import "errors"

var (
	// ErrUserNotFound is returned when the referenced user record is absent.
	// Distinct from the idempotent "symbol already present" case, which is
	// a successful no-op.
	ErrUserNotFound = errors.New("user not found")
)
