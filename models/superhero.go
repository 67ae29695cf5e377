package models

import "time"

// Visibility is the two-valued listing flag of a superhero record.
// Records are created private and may later be made public by their owner,
// which exposes them (read-only) in every user's listing.
type Visibility string

const (
	// VisibilityPrivate hides the record from everyone but its owner.
	VisibilityPrivate Visibility = "private"

	// VisibilityPublic exposes the record in all users' listings.
	// Public visibility never grants write access to non-owners.
	VisibilityPublic Visibility = "public"
)

// VisibilityFromBool converts the boolean "public" flag used on the wire
// into the stored [Visibility] value.
func VisibilityFromBool(public bool) Visibility {
	if public {
		return VisibilityPublic
	}
	return VisibilityPrivate
}

// Superhero is a single registered superhero profile.
//
// UserID, SuperheroID and CreatedAt are assigned at registration time and
// immutable afterwards. ImageURL is empty until the owner requests an image
// upload URL for the record.
type Superhero struct {
	// UserID identifies the authenticated user who registered the record.
	// Together with SuperheroID it forms the record's primary key.
	UserID string `json:"user_id"`

	// SuperheroID is the server-generated unique identifier of the record.
	SuperheroID string `json:"superhero_id"`

	// CreatedAt is the registration timestamp (UTC).
	CreatedAt time.Time `json:"created_at"`

	Name      string `json:"name"`
	Backstory string `json:"backstory"`

	// Superpowers is an ordered list of free-text tags. Duplicates are not
	// rejected by the store.
	Superpowers []string `json:"superpowers"`

	Visibility Visibility `json:"visibility"`

	// ImageURL is the canonical location of the record's uploaded image,
	// without any presigned query component. Empty when no image upload was
	// ever requested.
	ImageURL string `json:"image_url,omitempty"`
}

// SuperheroUpdate carries the owner-mutable field set applied by a partial
// update. Exactly these four fields change; identity fields and ImageURL are
// never touched by an update.
type SuperheroUpdate struct {
	Name        string     `json:"name"`
	Backstory   string     `json:"backstory"`
	Superpowers []string   `json:"superpowers"`
	Visibility  Visibility `json:"visibility"`
}
