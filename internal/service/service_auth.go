package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-hero-registry/internal/adapter"
	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/utils"
	"github.com/MKhiriev/go-hero-registry/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService. It verifies
// RS256-signed bearer tokens against a remote signing-key set: the key is
// selected by the "kid" the token names, and its public key is read from
// the key's certificate chain.
type authService struct {
	// keySetClient fetches the signing-key set. The set is fetched fresh for
	// every verification; no caching is performed.
	keySetClient adapter.KeySetClient

	// parser is the shared JWT parser restricted to the RS256 algorithm.
	// Tokens naming any other algorithm fail verification regardless of
	// their signature.
	parser *jwt.Parser

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService verifying tokens against the
// key set served by keySetClient.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(keySetClient adapter.KeySetClient, logger *logger.Logger) AuthService {
	return &authService{
		keySetClient: keySetClient,
		parser:       jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})),
		logger:       logger,
	}
}

// VerifyToken validates an Authorization header value end to end.
//
// Verification steps:
//  1. Extract the compact token from the `Bearer <token>` header shape.
//  2. Read the "kid" from the token header without verifying the signature.
//  3. Fetch the remote key set and select the signature key matching the
//     kid. Only RSA keys marked for signature use with a certificate chain
//     qualify.
//  4. Verify the signature and time claims with the certified public key.
//
// Every failure is returned as one of the package's token sentinel errors
// so callers can log the reason while responding uniformly.
func (a *authService) VerifyToken(ctx context.Context, authorizationHeader string) (models.Token, error) {
	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		log.Err(err).Str("func", "authService.VerifyToken").Msg("malformed authorization header")
		return models.Token{}, ErrMalformedAuthHeader
	}

	kid, err := utils.GetTokenKeyID(tokenString)
	if err != nil {
		log.Err(err).Str("func", "authService.VerifyToken").Msg("failed to read token key id")
		return models.Token{}, ErrMalformedToken
	}

	publicKey, err := a.signingKey(ctx, kid)
	if err != nil {
		log.Err(err).Str("func", "authService.VerifyToken").Str("kid", kid).Msg("failed to resolve signing key")
		return models.Token{}, err
	}

	claims := &jwt.RegisteredClaims{}
	token, err := a.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return publicKey, nil
	})
	if err != nil {
		log.Err(err).Str("func", "authService.VerifyToken").Str("kid", kid).Msg("token verification failed")

		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrInvalidToken
	}

	return models.Token{
		Token:    token,
		Identity: models.Identity{Subject: claims.Subject},
	}, nil
}

// signingKey fetches the remote key set and returns the RSA public key of
// the signature key identified by kid. A key qualifies only when it is an
// RSA signature key carrying at least one certificate.
func (a *authService) signingKey(ctx context.Context, kid string) (any, error) {
	keySet, err := a.keySetClient.FetchKeySet(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownSigningKey, err)
	}

	for _, key := range keySet.Keys {
		if key.Kid != kid || key.Use != "sig" || key.Kty != "RSA" || len(key.X5C) == 0 {
			continue
		}

		publicKey, err := utils.CertificateToRSAPublicKey(key.X5C[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnknownSigningKey, err)
		}

		return publicKey, nil
	}

	return nil, ErrUnknownSigningKey
}
