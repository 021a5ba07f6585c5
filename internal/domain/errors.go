package domain

import "errors"

var (
	// ErrInvalidCredentials means the username/password pair does not match a
	// known account. User-facing and non-fatal: no session state changes.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated means the token is missing, expired or rejected.
	// Session-fatal: the controller always forces a logout on it.
	ErrUnauthenticated = errors.New("unauthenticated")
)
