package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrHeroNotFound is returned when a lookup targets a superhero record
	// (identified by user_id and superhero_id) that does not exist in the
	// database. Absence and foreign ownership are indistinguishable at this
	// layer: a record registered by another user is simply not found.
	ErrHeroNotFound = errors.New("superhero was not found")

	// ErrHeroAlreadyExists is returned when an INSERT collides with an
	// existing (user_id, superhero_id) pair. Identifiers are generated
	// server-side, so a collision indicates a fault and is never retried.
	ErrHeroAlreadyExists = errors.New("superhero already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. They represent the store-unavailable failure class: the
// repository never retries them internally.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan superhero row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan superhero rows")
)

// Blob-store operation errors returned by [ImageStore] methods.
var (
	// ErrPresigningUploadURL is returned when the blob store fails to mint
	// a presigned upload URL for an image object.
	ErrPresigningUploadURL = errors.New("failed to presign image upload url")

	// ErrRemovingImage is returned when deleting an image object from the
	// blob store fails.
	ErrRemovingImage = errors.New("failed to remove image object")
)
