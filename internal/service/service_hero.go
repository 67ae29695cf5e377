package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/store"
	"github.com/MKhiriev/go-hero-registry/internal/utils"
	"github.com/MKhiriev/go-hero-registry/models"
)

// heroService is the concrete implementation of HeroService. It owns the
// business rules of the registry: server-side identifier generation,
// ownership checks, visibility defaults, and coupling profile deletion
// with image cleanup.
type heroService struct {
	heroRepository store.HeroRepository
	imageStore     store.ImageStore
	cleanupQueue   ImageCleanupQueue
	uuidGenerator  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHeroService constructs a HeroService over the given storages. The
// cleanupQueue receives the superhero id of every deleted profile so its
// image object is removed in the background.
func NewHeroService(storages *store.Storages, cleanupQueue ImageCleanupQueue, logger *logger.Logger) HeroService {
	return &heroService{
		heroRepository: storages.HeroRepository,
		imageStore:     storages.ImageStore,
		cleanupQueue:   cleanupQueue,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// ListSuperheroes returns the caller's own profiles followed by every
// public profile, in store order. The two groups are not deduplicated.
func (h *heroService) ListSuperheroes(ctx context.Context, userID string) ([]models.Superhero, error) {
	log := logger.FromContext(ctx)

	heroes, err := h.heroRepository.ListForOwnerOrPublic(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "heroService.ListSuperheroes").Str("user_id", userID).Msg("failed to list superheroes")
		return nil, fmt.Errorf("listing superheroes ended with error: %w", err)
	}

	return heroes, nil
}

// RegisterSuperhero creates a new profile owned by userID. The identifier
// is generated server-side and the profile starts private with no image.
func (h *heroService) RegisterSuperhero(ctx context.Context, userID string, request models.RegisterSuperheroRequest) (models.Superhero, error) {
	log := logger.FromContext(ctx)

	hero := models.Superhero{
		UserID:      userID,
		SuperheroID: h.uuidGenerator.Generate(),
		Name:        request.Name,
		Backstory:   request.Backstory,
		Superpowers: request.Superpowers,
		Visibility:  models.VisibilityPrivate,
	}

	registered, err := h.heroRepository.CreateHero(ctx, hero)
	if err != nil {
		log.Err(err).
			Str("func", "heroService.RegisterSuperhero").
			Str("user_id", userID).
			Str("superhero_id", hero.SuperheroID).
			Msg("superhero registration ended with error")
		return models.Superhero{}, fmt.Errorf("superhero registration ended with error: %w", err)
	}

	return registered, nil
}

// UpdateSuperhero applies the owner-mutable fields to an existing profile.
// Returns [ErrHeroNotFound] when the profile does not exist or is owned by
// another user.
func (h *heroService) UpdateSuperhero(ctx context.Context, userID, superheroID string, request models.UpdateSuperheroRequest) error {
	log := logger.FromContext(ctx)

	if err := h.requireOwnedHero(ctx, userID, superheroID); err != nil {
		return err
	}

	update := models.SuperheroUpdate{
		Name:        request.Name,
		Backstory:   request.Backstory,
		Superpowers: request.Superpowers,
		Visibility:  models.VisibilityFromBool(request.Public),
	}

	if err := h.heroRepository.UpdateHero(ctx, userID, superheroID, update); err != nil {
		log.Err(err).
			Str("func", "heroService.UpdateSuperhero").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("superhero update ended with error")
		return fmt.Errorf("superhero update ended with error: %w", err)
	}

	return nil
}

// DeleteSuperhero removes a profile and schedules removal of its image
// object. Returns [ErrHeroNotFound] when the profile does not exist or is
// owned by another user.
func (h *heroService) DeleteSuperhero(ctx context.Context, userID, superheroID string) error {
	log := logger.FromContext(ctx)

	if err := h.requireOwnedHero(ctx, userID, superheroID); err != nil {
		return err
	}

	if err := h.heroRepository.DeleteHero(ctx, userID, superheroID); err != nil {
		log.Err(err).
			Str("func", "heroService.DeleteSuperhero").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("superhero deletion ended with error")
		return fmt.Errorf("superhero deletion ended with error: %w", err)
	}

	// image removal is fire-and-forget; the profile is gone either way
	h.cleanupQueue.Enqueue(superheroID)

	return nil
}

// CreateImageUploadURL mints a presigned upload URL for the profile's image
// and persists the image's stable address (the URL without its signature
// query string) on the profile. Returns [ErrHeroNotFound] when the profile
// does not exist or is owned by another user.
func (h *heroService) CreateImageUploadURL(ctx context.Context, userID, superheroID string) (string, error) {
	log := logger.FromContext(ctx)

	if err := h.requireOwnedHero(ctx, userID, superheroID); err != nil {
		return "", err
	}

	uploadURL, err := h.imageStore.PresignUploadURL(ctx, superheroID)
	if err != nil {
		log.Err(err).
			Str("func", "heroService.CreateImageUploadURL").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("presigning image upload url ended with error")
		return "", fmt.Errorf("presigning image upload url ended with error: %w", err)
	}

	if err := h.heroRepository.SetHeroImageURL(ctx, userID, superheroID, uploadURL.String()); err != nil {
		log.Err(err).
			Str("func", "heroService.CreateImageUploadURL").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("persisting image url ended with error")
		return "", fmt.Errorf("persisting image url ended with error: %w", err)
	}

	return uploadURL.String(), nil
}

// requireOwnedHero confirms the profile exists under the caller's owner
// key. A missing record and a record owned by someone else both map to
// [ErrHeroNotFound].
func (h *heroService) requireOwnedHero(ctx context.Context, userID, superheroID string) error {
	log := logger.FromContext(ctx)

	if _, err := h.heroRepository.GetHero(ctx, userID, superheroID); err != nil {
		if errors.Is(err, store.ErrHeroNotFound) {
			return ErrHeroNotFound
		}

		log.Err(err).
			Str("func", "heroService.requireOwnedHero").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("superhero lookup ended with error")
		return fmt.Errorf("superhero lookup ended with error: %w", err)
	}

	return nil
}
