package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-hero-registry/internal/config"
	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/service"
	"github.com/MKhiriev/go-hero-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService verifies every request as the configured subject.
type fakeAuthService struct {
	verifyFunc func(ctx context.Context, authorizationHeader string) (models.Token, error)
}

func (f *fakeAuthService) VerifyToken(ctx context.Context, authorizationHeader string) (models.Token, error) {
	return f.verifyFunc(ctx, authorizationHeader)
}

// fakeHeroService delegates each method to an optional function field.
type fakeHeroService struct {
	listFunc     func(ctx context.Context, userID string) ([]models.Superhero, error)
	registerFunc func(ctx context.Context, userID string, request models.RegisterSuperheroRequest) (models.Superhero, error)
	updateFunc   func(ctx context.Context, userID, superheroID string, request models.UpdateSuperheroRequest) error
	deleteFunc   func(ctx context.Context, userID, superheroID string) error
	imageFunc    func(ctx context.Context, userID, superheroID string) (string, error)
}

func (f *fakeHeroService) ListSuperheroes(ctx context.Context, userID string) ([]models.Superhero, error) {
	return f.listFunc(ctx, userID)
}

func (f *fakeHeroService) RegisterSuperhero(ctx context.Context, userID string, request models.RegisterSuperheroRequest) (models.Superhero, error) {
	return f.registerFunc(ctx, userID, request)
}

func (f *fakeHeroService) UpdateSuperhero(ctx context.Context, userID, superheroID string, request models.UpdateSuperheroRequest) error {
	return f.updateFunc(ctx, userID, superheroID, request)
}

func (f *fakeHeroService) DeleteSuperhero(ctx context.Context, userID, superheroID string) error {
	return f.deleteFunc(ctx, userID, superheroID)
}

func (f *fakeHeroService) CreateImageUploadURL(ctx context.Context, userID, superheroID string) (string, error) {
	return f.imageFunc(ctx, userID, superheroID)
}

func allowAllAuth(subject string) *fakeAuthService {
	return &fakeAuthService{
		verifyFunc: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Identity: models.Identity{Subject: subject}}, nil
		},
	}
}

func newTestRouter(auth service.AuthService, heroes service.HeroService) http.Handler {
	services := &service.Services{AuthService: auth, HeroService: heroes}
	h := NewHandler(services, config.Server{CORSOrigin: "https://heroes.example.com"}, logger.NewLogger("test"))
	return h.Init()
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListSuperheroes_ReturnsListing(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	heroes := &fakeHeroService{
		listFunc: func(_ context.Context, userID string) ([]models.Superhero, error) {
			assert.Equal(t, "auth0|user-1", userID)
			return []models.Superhero{
				{UserID: "auth0|user-1", SuperheroID: "hero-1", CreatedAt: now, Name: "Nightwatch", Visibility: models.VisibilityPrivate},
				{UserID: "auth0|user-2", SuperheroID: "hero-2", CreatedAt: now, Name: "Blaze", Visibility: models.VisibilityPublic, ImageURL: "https://images.example.com/hero-2"},
			}, nil
		},
	}

	router := newTestRouter(allowAllAuth("auth0|user-1"), heroes)
	rec := doRequest(t, router, http.MethodGet, "/superheroes", "token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var listing models.SuperheroesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))

	require.Len(t, listing.Superheroes, 2)
	assert.False(t, listing.Superheroes[0].Public)
	assert.True(t, listing.Superheroes[1].Public)
	assert.Equal(t, "https://images.example.com/hero-2", listing.Superheroes[1].ImageURL)
}

func TestListSuperheroes_EmptyListingIsNotNull(t *testing.T) {
	heroes := &fakeHeroService{
		listFunc: func(_ context.Context, _ string) ([]models.Superhero, error) {
			return nil, nil
		},
	}

	router := newTestRouter(allowAllAuth("auth0|user-1"), heroes)
	rec := doRequest(t, router, http.MethodGet, "/superheroes", "token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"superheroes": []}`, rec.Body.String())
}

func TestRegisterSuperhero_Created(t *testing.T) {
	heroes := &fakeHeroService{
		registerFunc: func(_ context.Context, userID string, request models.RegisterSuperheroRequest) (models.Superhero, error) {
			assert.Equal(t, "auth0|user-1", userID)
			assert.Equal(t, "Nightwatch", request.Name)
			return models.Superhero{
				UserID:      userID,
				SuperheroID: "hero-1",
				Name:        request.Name,
				Backstory:   request.Backstory,
				Superpowers: request.Superpowers,
				Visibility:  models.VisibilityPrivate,
			}, nil
		},
	}

	router := newTestRouter(allowAllAuth("auth0|user-1"), heroes)
	rec := doRequest(t, router, http.MethodPost, "/superheroes", "token",
		`{"name": "Nightwatch", "backstory": "watches at night", "superpowers": ["flight"]}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response models.RegisteredSuperheroResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "hero-1", response.Superhero.SuperheroID)
	assert.False(t, response.Superhero.Public)
}

func TestRegisterSuperhero_InvalidJSON(t *testing.T) {
	heroes := &fakeHeroService{}

	router := newTestRouter(allowAllAuth("auth0|user-1"), heroes)
	rec := doRequest(t, router, http.MethodPost, "/superheroes", "token", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSuperhero_NoContent(t *testing.T) {
	heroes := &fakeHeroService{
		updateFunc: func(_ context.Context, userID, superheroID string, request models.UpdateSuperheroRequest) error {
			assert.Equal(t, "auth0|user-1", userID)
			assert.Equal(t, "hero-1", superheroID)
			assert.True(t, request.Public)
			return nil
		},
	}

	router := newTestRouter(allowAllAuth("auth0|user-1"), heroes)
	rec := doRequest(t, router, http.MethodPatch, "/superheroes/hero-1", "token",
		`{"name": "Shade", "backstory": "", "superpowers": [], "public": true}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUpdateSuperhero_NotFoundBody(t *testing.T) {
	heroes := &fakeHeroService{
		updateFunc: func(_ context.Context, _, _ string, _ models.UpdateSuperheroRequest) error {
			return service.ErrHeroNotFound
		},
	}

	router := newTestRouter(allowAllAuth("auth0|user-1"), heroes)
	rec := doRequest(t, router, http.MethodPatch, "/superheroes/missing", "token", `{"name": "x"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "This superhero does not exist or was not registered by the current user!"}`, rec.Body.String())
}

func TestDeleteSuperhero_NoContent(t *testing.T) {
	heroes := &fakeHeroService{
		deleteFunc: func(_ context.Context, _, superheroID string) error {
			assert.Equal(t, "hero-1", superheroID)
			return nil
		},
	}

	router := newTestRouter(allowAllAuth("auth0|user-1"), heroes)
	rec := doRequest(t, router, http.MethodDelete, "/superheroes/hero-1", "token", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteSuperhero_NotFound(t *testing.T) {
	heroes := &fakeHeroService{
		deleteFunc: func(_ context.Context, _, _ string) error {
			return service.ErrHeroNotFound
		},
	}

	router := newTestRouter(allowAllAuth("auth0|user-1"), heroes)
	rec := doRequest(t, router, http.MethodDelete, "/superheroes/missing", "token", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "This superhero does not exist or was not registered by the current user!"}`, rec.Body.String())
}

func TestCreateImageUploadURL_Created(t *testing.T) {
	heroes := &fakeHeroService{
		imageFunc: func(_ context.Context, _, superheroID string) (string, error) {
			assert.Equal(t, "hero-1", superheroID)
			return "https://images.example.com/hero-images/hero-1?X-Amz-Signature=abc", nil
		},
	}

	router := newTestRouter(allowAllAuth("auth0|user-1"), heroes)
	rec := doRequest(t, router, http.MethodPost, "/superheroes/hero-1/image", "token", "")

	require.Equal(t, http.StatusCreated, rec.Code)

	var response models.ImageUploadURLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.ImageUploadURL, "X-Amz-Signature")
}

func TestHeroEndpoints_StoreFailureIs500(t *testing.T) {
	heroes := &fakeHeroService{
		listFunc: func(_ context.Context, _ string) ([]models.Superhero, error) {
			return nil, errors.New("db network error")
		},
	}

	router := newTestRouter(allowAllAuth("auth0|user-1"), heroes)
	rec := doRequest(t, router, http.MethodGet, "/superheroes", "token", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
