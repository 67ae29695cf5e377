package service

import "errors"

// Token verification failures. The HTTP layer maps every one of them to the
// same 401 response; the distinct values exist so the rejection reason can
// be logged.
var (
	ErrMalformedAuthHeader = errors.New("malformed authorization header")
	ErrMalformedToken      = errors.New("malformed token")
	ErrUnknownSigningKey   = errors.New("token signed by unknown key")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token is expired")
)

var (
	// ErrHeroNotFound is returned when an operation targets a superhero that
	// does not exist or belongs to another user. The two cases are
	// deliberately indistinguishable so that foreign record identifiers
	// cannot be probed.
	ErrHeroNotFound = errors.New("superhero does not exist or was not registered by the current user")

	// ErrInvalidDataProvided is returned when a request payload fails
	// validation before reaching the store.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
