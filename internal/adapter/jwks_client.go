package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-hero-registry/internal/config"
	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/utils"
	"github.com/MKhiriev/go-hero-registry/models"
)

// jwksHTTPClient fetches the signing-key set document over HTTP. The JWKS
// URL is fixed at construction time; no caching is performed, so each
// verification sees the key set as currently published.
type jwksHTTPClient struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewKeySetClient constructs a [KeySetClient] fetching from the configured
// JWKS discovery URL.
//
// Returns an error if the URL is empty.
func NewKeySetClient(authCfg config.Auth, logger *logger.Logger) (KeySetClient, error) {
	if authCfg.JWKSURL == "" {
		return nil, fmt.Errorf("jwks url is not configured")
	}

	return &jwksHTTPClient{
		client: utils.NewHTTPClient(),
		url:    authCfg.JWKSURL,
		logger: logger,
	}, nil
}

// FetchKeySet implements [KeySetClient]. It GETs the JWKS document and
// decodes it into a [models.JSONWebKeySet]. Any transport failure, non-2xx
// status, or malformed document is wrapped as [ErrFetchingKeySet].
func (j *jwksHTTPClient) FetchKeySet(ctx context.Context) (models.JSONWebKeySet, error) {
	log := logger.FromContext(ctx)

	resp, err := j.client.R().
		SetContext(ctx).
		Get(j.url)
	if err != nil {
		log.Err(err).Str("func", "jwksHTTPClient.FetchKeySet").Msg("jwks request failed")
		return models.JSONWebKeySet{}, fmt.Errorf("%w: %w", ErrFetchingKeySet, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "jwksHTTPClient.FetchKeySet").Msg("jwks endpoint returned error status")
		return models.JSONWebKeySet{}, fmt.Errorf("%w: %w", ErrFetchingKeySet, err)
	}

	var keySet models.JSONWebKeySet
	if err = json.Unmarshal(resp.Body(), &keySet); err != nil {
		log.Err(err).Str("func", "jwksHTTPClient.FetchKeySet").Msg("failed to decode jwks document")
		return models.JSONWebKeySet{}, fmt.Errorf("%w: %w", ErrFetchingKeySet, err)
	}

	return keySet, nil
}
