package http

import (
	"github.com/MKhiriev/go-hero-registry/internal/config"
	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/service"
)

type Handler struct {
	services *service.Services

	corsOrigin string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		corsOrigin: cfg.CORSOrigin,
		logger:     logger,
	}
}
