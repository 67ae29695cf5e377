package store

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-hero-registry/models"
)

const (
	heroColumns = `user_id, superhero_id, created_at, name, backstory, superpowers, visibility, image_url`

	listOwnerHeroes = `SELECT ` + heroColumns + `
		FROM superheroes
		WHERE user_id = $1
		ORDER BY created_at;`

	listPublicHeroes = `SELECT ` + heroColumns + `
		FROM superheroes
		WHERE visibility = $1
		ORDER BY created_at;`

	getHero = `SELECT ` + heroColumns + `
		FROM superheroes
		WHERE user_id = $1 AND superhero_id = $2;`

	createHero = `INSERT INTO superheroes (
			user_id,
			superhero_id,
			name,
			backstory,
			superpowers,
			visibility,
			image_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + heroColumns + `;`

	deleteHero = `DELETE FROM superheroes
		WHERE user_id = $1 AND superhero_id = $2;`
)

// psql is the statement builder for queries whose SET list is only known at
// runtime. Postgres expects $N placeholders rather than squirrel's default.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildUpdateHeroQuery builds the UPDATE statement applying the
// owner-mutable field set to a single record.
func buildUpdateHeroQuery(userID, superheroID string, update models.SuperheroUpdate) (string, []any, error) {
	superpowers, err := json.Marshal(update.Superpowers)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := psql.Update("superheroes").
		Set("name", update.Name).
		Set("backstory", update.Backstory).
		Set("superpowers", superpowers).
		Set("visibility", update.Visibility).
		Where(squirrel.Eq{"user_id": userID, "superhero_id": superheroID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSetHeroImageURLQuery builds the UPDATE statement persisting the
// record's image location.
func buildSetHeroImageURLQuery(userID, superheroID, imageURL string) (string, []any, error) {
	query, args, err := psql.Update("superheroes").
		Set("image_url", imageURL).
		Where(squirrel.Eq{"user_id": userID, "superhero_id": superheroID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
