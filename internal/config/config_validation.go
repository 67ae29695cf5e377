// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel
// error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Images.Endpoint == "" ||
		cfg.Storage.Images.Bucket == "" ||
		cfg.Storage.Images.UploadURLExpiration <= 0 {
		return ErrInvalidImagesConfigs
	}

	if cfg.Auth.JWKSURL == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
