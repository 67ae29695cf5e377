package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/utils"
	"github.com/MKhiriev/go-hero-registry/models"
)

type httpRegistryClient struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewRegistryClient constructs an HTTP implementation of [RegistryClient]
// bound to the given base address. It normalises and validates the base URL
// and configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewRegistryClient(address string, requestTimeout time.Duration, logger *logger.Logger) (RegistryClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid registry address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpRegistryClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RegistryClient]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpRegistryClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// ListSuperheroes implements [RegistryClient]. It GETs /superheroes and
// returns the decoded record list.
func (h *httpRegistryClient) ListSuperheroes(ctx context.Context) ([]models.SuperheroResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		Get("/superheroes")
	if err != nil {
		return nil, fmt.Errorf("list superheroes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listing models.SuperheroesResponse
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return nil, fmt.Errorf("decode superheroes listing: %w", err)
	}

	return listing.Superheroes, nil
}

// RegisterSuperhero implements [RegistryClient]. It POSTs the profile to
// /superheroes and returns the server-assigned record.
func (h *httpRegistryClient) RegisterSuperhero(ctx context.Context, request models.RegisterSuperheroRequest) (models.SuperheroResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/superheroes")
	if err != nil {
		return models.SuperheroResponse{}, fmt.Errorf("register superhero request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SuperheroResponse{}, err
	}

	var registered models.RegisteredSuperheroResponse
	if err = json.Unmarshal(resp.Body(), &registered); err != nil {
		return models.SuperheroResponse{}, fmt.Errorf("decode registered superhero: %w", err)
	}

	return registered.Superhero, nil
}

// UpdateSuperhero implements [RegistryClient]. It PATCHes the owner-mutable
// fields of one record.
func (h *httpRegistryClient) UpdateSuperhero(ctx context.Context, superheroID string, request models.UpdateSuperheroRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Patch("/superheroes/" + url.PathEscape(superheroID))
	if err != nil {
		return fmt.Errorf("update superhero request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteSuperhero implements [RegistryClient].
func (h *httpRegistryClient) DeleteSuperhero(ctx context.Context, superheroID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		Delete("/superheroes/" + url.PathEscape(superheroID))
	if err != nil {
		return fmt.Errorf("delete superhero request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateImageUploadURL implements [RegistryClient]. It POSTs to the record's
// image endpoint and returns the minted presigned upload URL.
func (h *httpRegistryClient) CreateImageUploadURL(ctx context.Context, superheroID string) (*url.URL, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		Post("/superheroes/" + url.PathEscape(superheroID) + "/image")
	if err != nil {
		return nil, fmt.Errorf("create image upload url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var minted models.ImageUploadURLResponse
	if err = json.Unmarshal(resp.Body(), &minted); err != nil {
		return nil, fmt.Errorf("decode image upload url: %w", err)
	}

	uploadURL, err := url.Parse(minted.ImageUploadURL)
	if err != nil {
		return nil, fmt.Errorf("parse image upload url: %w", err)
	}

	return uploadURL, nil
}

// UploadImage implements [RegistryClient]. It PUTs the raw image bytes
// directly to the presigned URL, bypassing the registry. The presigned URL
// already carries its authorization in the query string, so no bearer token
// is attached.
func (h *httpRegistryClient) UploadImage(ctx context.Context, uploadURL *url.URL, image []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL.String(), bytes.NewReader(image))
	if err != nil {
		return fmt.Errorf("build image upload request: %w", err)
	}

	resp, err := h.client.GetClient().Do(req)
	if err != nil {
		return fmt.Errorf("image upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("image upload failed: http %d", resp.StatusCode)
	}

	return nil
}
