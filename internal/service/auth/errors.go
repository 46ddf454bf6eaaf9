package auth

import "errors"

// Common credential service errors
var (
	// ErrRegistrationFailed indicates the account could not be inserted,
	// typically because the email is already in use. Callers must not
	// reveal which constraint tripped.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrInvalidCredentials covers both "unknown email" and "wrong
	// password" so that login responses cannot be used to enumerate
	// accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrHashFailure indicates the password could not be hashed. This only
	// happens on entropy or allocator failure.
	ErrHashFailure = errors.New("failed to hash password")

	// ErrMalformedHash indicates a stored hash string could not be parsed.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrIncompatibleHash indicates the stored hash uses an algorithm or
	// version this build cannot verify.
	ErrIncompatibleHash = errors.New("incompatible password hash")
)
