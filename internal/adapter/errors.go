package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("superhero not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrFetchingKeySet is returned when the remote signing-key set cannot
	// be fetched or decoded.
	ErrFetchingKeySet = errors.New("failed to fetch signing-key set")
)
