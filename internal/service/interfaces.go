package service

import (
	"context"

	"github.com/MKhiriev/go-hero-registry/models"
)

type AuthService interface {
	// VerifyToken validates the Authorization header value end to end:
	// extracting the bearer token, resolving its signing key from the
	// remote key set, and verifying the signature and time claims. On
	// success the returned token carries the caller's identity.
	VerifyToken(ctx context.Context, authorizationHeader string) (models.Token, error)
}

type HeroService interface {
	ListSuperheroes(ctx context.Context, userID string) ([]models.Superhero, error)
	RegisterSuperhero(ctx context.Context, userID string, request models.RegisterSuperheroRequest) (models.Superhero, error)
	UpdateSuperhero(ctx context.Context, userID, superheroID string, request models.UpdateSuperheroRequest) error
	DeleteSuperhero(ctx context.Context, userID, superheroID string) error

	// CreateImageUploadURL mints a presigned upload URL for the superhero's
	// image and records the image's stable address on the profile.
	CreateImageUploadURL(ctx context.Context, userID, superheroID string) (string, error)
}

// ImageCleanupQueue accepts fire-and-forget image removal requests. The
// implementation must never block the caller.
type ImageCleanupQueue interface {
	Enqueue(superheroID string)
}
