package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-hero-registry/internal/service"
	"github.com/MKhiriev/go-hero-registry/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrHeroNotFound:        http.StatusNotFound,

	service.ErrMalformedAuthHeader: http.StatusUnauthorized,
	service.ErrMalformedToken:      http.StatusUnauthorized,
	service.ErrUnknownSigningKey:   http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrTokenExpired:        http.StatusUnauthorized,

	// identifiers are generated server-side, so a collision is a server
	// fault rather than a caller conflict
	store.ErrHeroNotFound:      http.StatusNotFound,
	store.ErrHeroAlreadyExists: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:    http.StatusInternalServerError,
	store.ErrExecutingQuery:      http.StatusInternalServerError,
	store.ErrExecutingStatement:  http.StatusInternalServerError,
	store.ErrScanningRow:         http.StatusInternalServerError,
	store.ErrScanningRows:        http.StatusInternalServerError,
	store.ErrPresigningUploadURL: http.StatusInternalServerError,
	store.ErrRemovingImage:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
