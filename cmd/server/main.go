package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hero-registry/internal/adapter"
	"github.com/MKhiriev/go-hero-registry/internal/config"
	"github.com/MKhiriev/go-hero-registry/internal/handler"
	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/server"
	"github.com/MKhiriev/go-hero-registry/internal/service"
	"github.com/MKhiriev/go-hero-registry/internal/store"
	"github.com/MKhiriev/go-hero-registry/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hero-registry")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	minioClient, err := store.NewMinioClient(cfg.Storage.Images)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to image store")
	}

	storages := store.NewStorages(db, minioClient, cfg.Storage.Images, log)

	keySetClient, err := adapter.NewKeySetClient(cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating key set client")
	}

	imageCleanup := workers.NewImageCleanup(storages.ImageStore, log)
	workers.NewWorkers(imageCleanup).Run()

	services := service.NewServices(storages, keySetClient, imageCleanup, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	imageCleanup.Stop()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
