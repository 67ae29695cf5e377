package models

import "time"

// SuperheroResponse is the caller-facing shape of a superhero record.
// The stored two-valued visibility flag is rendered as the Public boolean,
// and ImageURL is omitted entirely until an image upload was requested.
type SuperheroResponse struct {
	UserID      string    `json:"userId"`
	SuperheroID string    `json:"superheroId"`
	CreatedAt   time.Time `json:"createdAt"`
	Name        string    `json:"name"`
	Backstory   string    `json:"backstory"`
	Superpowers []string  `json:"superpowers"`
	Public      bool      `json:"public"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// NewSuperheroResponse maps a stored [Superhero] to its response shape.
func NewSuperheroResponse(hero Superhero) SuperheroResponse {
	return SuperheroResponse{
		UserID:      hero.UserID,
		SuperheroID: hero.SuperheroID,
		CreatedAt:   hero.CreatedAt,
		Name:        hero.Name,
		Backstory:   hero.Backstory,
		Superpowers: hero.Superpowers,
		Public:      hero.Visibility == VisibilityPublic,
		ImageURL:    hero.ImageURL,
	}
}

// SuperheroesResponse is the body of GET /superheroes.
type SuperheroesResponse struct {
	Superheroes []SuperheroResponse `json:"superheroes"`
}

// RegisteredSuperheroResponse is the body of POST /superheroes.
type RegisteredSuperheroResponse struct {
	Superhero SuperheroResponse `json:"superhero"`
}

// ImageUploadURLResponse is the body of POST /superheroes/{id}/image.
// The URL is the full time-limited presigned form, including its signature
// query component.
type ImageUploadURLResponse struct {
	ImageUploadURL string `json:"imageUploadUrl"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
