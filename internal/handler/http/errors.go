// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserIDInContext is logged when a handler runs without the auth
	// middleware having stored the caller identity, which indicates a
	// route-wiring fault.
	ErrNoUserIDInContext = errors.New("no user id in request context")
)

// heroNotFoundMessage is the body of every 404 response. Absent records and
// records owned by another user are reported identically.
const heroNotFoundMessage = "This superhero does not exist or was not registered by the current user!"
