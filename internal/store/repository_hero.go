package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/models"
	"github.com/jackc/pgerrcode"
)

// heroRepository is the PostgreSQL-backed implementation of
// [HeroRepository]. It executes all superhero CRUD operations directly
// against the "superheroes" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, superhero_id).
type heroRepository struct {
	*DB
	logger *logger.Logger
}

// NewHeroRepository constructs a [HeroRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewHeroRepository(db *DB, logger *logger.Logger) HeroRepository {
	return &heroRepository{
		DB:     db,
		logger: logger,
	}
}

// ListForOwnerOrPublic returns the caller's own records followed by every
// public record. The two result sets are concatenated as-is; the caller's
// own public records therefore appear twice.
func (r *heroRepository) ListForOwnerOrPublic(ctx context.Context, userID string) ([]models.Superhero, error) {
	log := logger.FromContext(ctx)

	ownHeroes, err := r.queryHeroes(ctx, listOwnerHeroes, userID)
	if err != nil {
		log.Err(err).
			Str("func", "heroRepository.ListForOwnerOrPublic").
			Str("user_id", userID).
			Msg("failed to list caller's superheroes")
		return nil, err
	}

	publicHeroes, err := r.queryHeroes(ctx, listPublicHeroes, models.VisibilityPublic)
	if err != nil {
		log.Err(err).
			Str("func", "heroRepository.ListForOwnerOrPublic").
			Str("user_id", userID).
			Msg("failed to list public superheroes")
		return nil, err
	}

	return append(ownHeroes, publicHeroes...), nil
}

// GetHero retrieves the record stored under (userID, superheroID).
//
// Error handling:
//   - No matching row → [ErrHeroNotFound].
//   - Any other driver-level error → wrapped as [ErrScanningRow].
func (r *heroRepository) GetHero(ctx context.Context, userID, superheroID string) (models.Superhero, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getHero, userID, superheroID)

	hero, err := scanHero(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Superhero{}, ErrHeroNotFound
		}

		log.Err(err).
			Str("func", "heroRepository.GetHero").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("failed to scan superhero row")
		return models.Superhero{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return hero, nil
}

// CreateHero persists a new record and returns the fully populated
// [models.Superhero] with server-assigned fields (CreatedAt).
//
// The INSERT uses the [createHero] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly registered superhero.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrHeroAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *heroRepository) CreateHero(ctx context.Context, hero models.Superhero) (models.Superhero, error) {
	log := logger.FromContext(ctx)

	superpowers, err := json.Marshal(hero.Superpowers)
	if err != nil {
		log.Err(err).
			Str("func", "heroRepository.CreateHero").
			Str("user_id", hero.UserID).
			Msg("failed to encode superpowers")
		return models.Superhero{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, createHero,
		hero.UserID, hero.SuperheroID, hero.Name, hero.Backstory, superpowers, hero.Visibility, hero.ImageURL)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "heroRepository.CreateHero").
			Str("user_id", hero.UserID).
			Str("superhero_id", hero.SuperheroID).
			Msg("failed to insert superhero")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Superhero{}, ErrHeroAlreadyExists
		default:
			return models.Superhero{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved, err := scanHero(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Superhero{}, ErrHeroAlreadyExists
		}

		log.Err(err).
			Str("func", "heroRepository.CreateHero").
			Str("user_id", hero.UserID).
			Str("superhero_id", hero.SuperheroID).
			Msg("failed to scan inserted superhero")
		return models.Superhero{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// UpdateHero applies the owner-mutable field set to a single record. The
// caller is expected to have confirmed the record exists; updating an
// absent row is silently a no-op at this layer.
func (r *heroRepository) UpdateHero(ctx context.Context, userID, superheroID string, update models.SuperheroUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateHeroQuery(userID, superheroID, update)
	if err != nil {
		log.Err(err).
			Str("func", "heroRepository.UpdateHero").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("failed to build update query")
		return err
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "heroRepository.UpdateHero").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SetHeroImageURL persists the record's image location. Any query string
// component is stripped before the URL is stored, so the saved value is the
// stable object address rather than the short-lived presigned form.
func (r *heroRepository) SetHeroImageURL(ctx context.Context, userID, superheroID, imageURL string) error {
	log := logger.FromContext(ctx)

	stableURL, _, _ := strings.Cut(imageURL, "?")

	query, args, err := buildSetHeroImageURLQuery(userID, superheroID, stableURL)
	if err != nil {
		log.Err(err).
			Str("func", "heroRepository.SetHeroImageURL").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("failed to build image url update query")
		return err
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "heroRepository.SetHeroImageURL").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("failed to execute image url update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteHero removes the record stored under (userID, superheroID).
// Deleting an absent record is not an error at this layer; existence checks
// belong to the service.
func (r *heroRepository) DeleteHero(ctx context.Context, userID, superheroID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteHero, userID, superheroID); err != nil {
		log.Err(err).
			Str("func", "heroRepository.DeleteHero").
			Str("user_id", userID).
			Str("superhero_id", superheroID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// queryHeroes runs a multi-row superhero query and scans the full result set.
func (r *heroRepository) queryHeroes(ctx context.Context, query string, args ...any) ([]models.Superhero, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	heroes := make([]models.Superhero, 0, 20)

	for rows.Next() {
		hero, scanErr := scanHero(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		heroes = append(heroes, hero)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return heroes, nil
}

// rowScanner abstracts over *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanHero scans a single superhero row, decoding the jsonb superpowers
// column into its slice form.
func scanHero(row rowScanner) (models.Superhero, error) {
	var (
		hero        models.Superhero
		superpowers []byte
	)

	if err := row.Scan(
		&hero.UserID,
		&hero.SuperheroID,
		&hero.CreatedAt,
		&hero.Name,
		&hero.Backstory,
		&superpowers,
		&hero.Visibility,
		&hero.ImageURL,
	); err != nil {
		return models.Superhero{}, err
	}

	if len(superpowers) > 0 {
		if err := json.Unmarshal(superpowers, &hero.Superpowers); err != nil {
			return models.Superhero{}, err
		}
	}

	return hero, nil
}
