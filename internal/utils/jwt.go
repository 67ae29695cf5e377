package utils

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors for bearer-header and token-header parsing.
var (
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header value does not have the exact `Bearer <token>` shape.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrNoKeyID is returned by GetTokenKeyID when the token's header segment
	// does not carry a "kid" value.
	ErrNoKeyID = errors.New("token header has no kid")
)

// ParseBearerToken extracts the compact JWS string from a raw
// "Authorization" HTTP header value.
//
// The header must follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively ("bearer", "Bearer", "BEARER"
// are all accepted). Any other shape — missing scheme, wrong scheme, empty
// token, extra parts — yields [ErrInvalidAuthorizationHeader].
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// GetTokenKeyID decodes the token's header segment without verifying the
// signature and returns the key identifier ("kid") it carries.
//
// Returns an error if the compact form cannot be parsed at all, and
// [ErrNoKeyID] if the header parses but contains no non-empty "kid".
func GetTokenKeyID(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("error parsing token header: %w", err)
	}

	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return "", ErrNoKeyID
	}

	return kid, nil
}

// CertificateToRSAPublicKey converts a base64 (standard encoding) DER
// certificate — the x5c entry format of a JSON Web Key — into the RSA
// public key it certifies.
//
// Returns an error if the base64 decoding or certificate parsing fails,
// or if the certified key is not an RSA key.
func CertificateToRSAPublicKey(x5c string) (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(x5c)
	if err != nil {
		return nil, fmt.Errorf("error decoding certificate base64: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("error parsing certificate: %w", err)
	}

	publicKey, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("certificate does not hold an RSA public key")
	}

	return publicKey, nil
}
