package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-hero-registry/internal/service"
	"github.com/MKhiriev/go-hero-registry/models"
	"github.com/stretchr/testify/assert"
)

func TestAuth_MissingHeader(t *testing.T) {
	heroes := &fakeHeroService{}
	auth := &fakeAuthService{
		verifyFunc: func(_ context.Context, _ string) (models.Token, error) {
			t.Fatal("VerifyToken must not be called without an Authorization header")
			return models.Token{}, nil
		},
	}

	router := newTestRouter(auth, heroes)
	rec := doRequest(t, router, http.MethodGet, "/superheroes", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RejectionsAreUniform(t *testing.T) {
	// every verification failure must yield an identical response body
	failures := []error{
		service.ErrMalformedAuthHeader,
		service.ErrMalformedToken,
		service.ErrUnknownSigningKey,
		service.ErrInvalidToken,
		service.ErrTokenExpired,
	}

	var bodies []string
	for _, failure := range failures {
		auth := &fakeAuthService{
			verifyFunc: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, failure
			},
		}

		router := newTestRouter(auth, &fakeHeroService{})
		rec := doRequest(t, router, http.MethodGet, "/superheroes", "whatever", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i], "rejection bodies must not reveal the failure reason")
	}
}

func TestAuth_PassesVerbatimHeaderToService(t *testing.T) {
	var gotHeader string
	auth := &fakeAuthService{
		verifyFunc: func(_ context.Context, authorizationHeader string) (models.Token, error) {
			gotHeader = authorizationHeader
			return models.Token{Identity: models.Identity{Subject: "auth0|user-1"}}, nil
		},
	}

	heroes := &fakeHeroService{
		listFunc: func(_ context.Context, userID string) ([]models.Superhero, error) {
			assert.Equal(t, "auth0|user-1", userID)
			return nil, nil
		},
	}

	router := newTestRouter(auth, heroes)
	rec := doRequest(t, router, http.MethodGet, "/superheroes", "the-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer the-token", gotHeader)
}
