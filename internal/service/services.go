package service

import (
	"github.com/MKhiriev/go-hero-registry/internal/adapter"
	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/store"
)

type Services struct {
	AuthService AuthService
	HeroService HeroService
}

func NewServices(storages *store.Storages, keySetClient adapter.KeySetClient, cleanupQueue ImageCleanupQueue, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(keySetClient, logger),
		HeroService: NewHeroService(storages, cleanupQueue, logger),
	}
}
