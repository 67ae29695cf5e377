package store

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-hero-registry/internal/config"
	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioImageStore is the S3-compatible implementation of [ImageStore].
// Each superhero owns at most one image object, keyed by superhero id
// inside a single pre-provisioned bucket.
type minioImageStore struct {
	client  MinioClient
	bucket  string
	expires time.Duration
	logger  *logger.Logger
}

// NewMinioClient dials the configured S3-compatible endpoint using static
// credentials. The bucket is expected to exist already; the registry never
// creates or administers buckets.
func NewMinioClient(cfg config.Images) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to image store: %w", err)
	}

	return client, nil
}

// NewImageStore constructs an [ImageStore] over the given blob-store client.
func NewImageStore(client MinioClient, cfg config.Images, logger *logger.Logger) ImageStore {
	return &minioImageStore{
		client:  client,
		bucket:  cfg.Bucket,
		expires: cfg.UploadURLExpiration,
		logger:  logger,
	}
}

// PresignUploadURL mints a time-limited URL authorizing a single PUT of the
// superhero's image object. The URL embeds the signature in its query
// string; the path component alone is the object's stable address.
func (s *minioImageStore) PresignUploadURL(ctx context.Context, superheroID string) (*url.URL, error) {
	log := logger.FromContext(ctx)

	uploadURL, err := s.client.PresignedPutObject(ctx, s.bucket, superheroID, s.expires)
	if err != nil {
		log.Err(err).
			Str("func", "minioImageStore.PresignUploadURL").
			Str("superhero_id", superheroID).
			Msg("failed to presign image upload url")
		return nil, fmt.Errorf("%w: %w", ErrPresigningUploadURL, err)
	}

	return uploadURL, nil
}

// RemoveImage deletes the superhero's image object. The blob store treats
// removal of an absent object as success, so callers may invoke this
// unconditionally when a superhero is deleted.
func (s *minioImageStore) RemoveImage(ctx context.Context, superheroID string) error {
	log := logger.FromContext(ctx)

	if err := s.client.RemoveObject(ctx, s.bucket, superheroID, minio.RemoveObjectOptions{}); err != nil {
		log.Err(err).
			Str("func", "minioImageStore.RemoveImage").
			Str("superhero_id", superheroID).
			Msg("failed to remove image object")
		return fmt.Errorf("%w: %w", ErrRemovingImage, err)
	}

	return nil
}
