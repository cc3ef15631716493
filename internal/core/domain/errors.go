package domain

import "errors"

var (
	ErrUserExists         = errors.New("username already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")

	// ErrTokenCreation signals a misconfigured signing subsystem. It is a
	// server-side failure, never a client input error.
	ErrTokenCreation = errors.New("token creation failed")

	// ErrTokenInvalid covers every verification failure: bad signature,
	// wrong issuer, expired, malformed. Callers treat it as a normal
	// "invalid" outcome, not as an internal fault.
	ErrTokenInvalid = errors.New("invalid token")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidDocument  = errors.New("invalid customer document")
)
