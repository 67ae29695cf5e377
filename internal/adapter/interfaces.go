package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-hero-registry/models"
)

// KeySetClient fetches the remote signing-key set used to verify bearer
// tokens. The set is fetched fresh on every call; callers own any caching
// policy.
type KeySetClient interface {
	FetchKeySet(ctx context.Context) (models.JSONWebKeySet, error)
}

// RegistryClient is the outbound API surface of the superhero registry,
// mirroring its REST endpoints one method per operation. It is consumed by
// integration tooling and smoke tests rather than the server itself.
type RegistryClient interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	ListSuperheroes(ctx context.Context) ([]models.SuperheroResponse, error)
	RegisterSuperhero(ctx context.Context, request models.RegisterSuperheroRequest) (models.SuperheroResponse, error)
	UpdateSuperhero(ctx context.Context, superheroID string, request models.UpdateSuperheroRequest) error
	DeleteSuperhero(ctx context.Context, superheroID string) error

	// CreateImageUploadURL asks the registry to mint a presigned upload URL
	// for the superhero's image.
	CreateImageUploadURL(ctx context.Context, superheroID string) (*url.URL, error)

	// UploadImage PUTs raw image bytes to a presigned upload URL obtained
	// from [RegistryClient.CreateImageUploadURL].
	UploadImage(ctx context.Context, uploadURL *url.URL, image []byte) error
}
