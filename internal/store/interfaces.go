package store

import (
	"context"
	"net/url"
	"time"

	"github.com/MKhiriev/go-hero-registry/models"
	"github.com/minio/minio-go/v7"
)

// HeroRepository is the persistence contract for superhero records.
// All operations are single-query round trips; none open transactions.
type HeroRepository interface {
	// ListForOwnerOrPublic returns the caller's own records (any
	// visibility) followed by every public record of every user. The two
	// groups are concatenated without deduplication, so a caller's own
	// public record appears in both.
	ListForOwnerOrPublic(ctx context.Context, userID string) ([]models.Superhero, error)

	// GetHero returns the record stored under (userID, superheroID) or
	// [ErrHeroNotFound].
	GetHero(ctx context.Context, userID, superheroID string) (models.Superhero, error)

	// CreateHero persists a new record. Returns [ErrHeroAlreadyExists] on a
	// primary-key collision.
	CreateHero(ctx context.Context, hero models.Superhero) (models.Superhero, error)

	// UpdateHero applies the owner-mutable field set. The caller must have
	// confirmed the record exists beforehand.
	UpdateHero(ctx context.Context, userID, superheroID string, update models.SuperheroUpdate) error

	// SetHeroImageURL persists the record's image location with any query
	// string component stripped.
	SetHeroImageURL(ctx context.Context, userID, superheroID, imageURL string) error

	// DeleteHero removes the record. Deleting an absent record is not an
	// error at this layer.
	DeleteHero(ctx context.Context, userID, superheroID string) error
}

// ImageStore is the blob-store contract for superhero images. Objects are
// named by superhero id inside a fixed bucket.
type ImageStore interface {
	// PresignUploadURL mints a time-limited URL authorizing a single PUT of
	// the image object for the given superhero.
	PresignUploadURL(ctx context.Context, superheroID string) (*url.URL, error)

	// RemoveImage deletes the superhero's image object. Removing an absent
	// object is not an error.
	RemoveImage(ctx context.Context, superheroID string) error
}

// MinioClient is the subset of *minio.Client used by the image store.
// Defining the interface here keeps the store mockable in tests and stops
// it from reaching bucket-administration APIs it has no business calling.
type MinioClient interface {
	PresignedPutObject(ctx context.Context, bucketName, objectName string, expires time.Duration) (*url.URL, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// ErrorClassificator classifies driver-level errors as retryable or not.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
