package models

import "github.com/golang-jwt/jwt/v5"

// Identity is the authenticated caller produced by a successful token
// verification. It carries the token's subject claim, which is the owner
// identifier stored on every record the caller registers.
type Identity struct {
	// Subject is the "sub" claim of the verified token.
	Subject string `json:"sub"`
}

// Token wraps a verified JWT together with the identity extracted from it.
type Token struct {
	// Token is the underlying parsed JWT. Excluded from JSON serialization;
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Identity is the caller identity derived from the token's claims.
	Identity Identity `json:"-"`
}
