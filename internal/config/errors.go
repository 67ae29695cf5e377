package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidImagesConfigs indicates invalid blob-store settings
	// (for example, a missing bucket or non-positive URL expiration).
	ErrInvalidImagesConfigs = errors.New("invalid images configuration")
	// ErrInvalidAuthConfigs indicates invalid token verification settings
	// (for example, a missing signing-key discovery URL).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
