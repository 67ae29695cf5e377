package models

// RegisterSuperheroRequest is the body of POST /superheroes.
type RegisterSuperheroRequest struct {
	Name        string   `json:"name"`
	Backstory   string   `json:"backstory"`
	Superpowers []string `json:"superpowers"`
}

// UpdateSuperheroRequest is the body of PATCH /superheroes/{id}.
// Public maps to the record's stored visibility flag.
type UpdateSuperheroRequest struct {
	Name        string   `json:"name"`
	Backstory   string   `json:"backstory"`
	Superpowers []string `json:"superpowers"`
	Public      bool     `json:"public"`
}
