package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-hero-registry/internal/config"
	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestWithCORS_HeadersOnEveryResponse(t *testing.T) {
	router := newTestRouter(allowAllAuth("auth0|user-1"), &fakeHeroService{})

	// unauthorized response still carries CORS headers
	rec := doRequest(t, router, http.MethodGet, "/superheroes", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "https://heroes.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestWithCORS_Preflight(t *testing.T) {
	router := newTestRouter(allowAllAuth("auth0|user-1"), &fakeHeroService{})

	req := httptest.NewRequest(http.MethodOptions, "/superheroes", nil)
	req.Header.Set("Origin", "https://heroes.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://heroes.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestWithCORS_DefaultsToWildcardOrigin(t *testing.T) {
	services := &service.Services{AuthService: allowAllAuth("auth0|user-1"), HeroService: &fakeHeroService{}}
	h := NewHandler(services, config.Server{}, logger.NewLogger("test"))
	router := h.Init()

	req := httptest.NewRequest(http.MethodOptions, "/superheroes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
