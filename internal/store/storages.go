package store

import (
	"github.com/MKhiriev/go-hero-registry/internal/config"
	"github.com/MKhiriev/go-hero-registry/internal/logger"
)

// Storages aggregates the registry's persistence backends: the relational
// superhero repository and the blob-backed image store.
type Storages struct {
	HeroRepository HeroRepository
	ImageStore     ImageStore
}

// NewStorages wires the concrete repository implementations over the given
// database connection and blob-store client.
func NewStorages(db *DB, minioClient MinioClient, cfg config.Images, logger *logger.Logger) *Storages {
	return &Storages{
		HeroRepository: NewHeroRepository(db, logger),
		ImageStore:     NewImageStore(minioClient, cfg, logger),
	}
}
