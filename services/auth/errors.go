package auth

import "errors"

var (
	// ErrNotSignedIn is returned when the session holds no user
	ErrNotSignedIn = errors.New("not signed in")
	// ErrInvalidCode is returned for verification codes that are not 6 digits
	ErrInvalidCode = errors.New("invalid verification code")
)
