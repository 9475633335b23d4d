// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// package's ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET is required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.JWTExpiresIn <= 0 {
		return fmt.Errorf("%w: JWT_EXPIRES_IN must be positive", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
		return fmt.Errorf("%w: login account is incomplete", ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.Host == "" || cfg.Storage.DB.Name == "" {
		return fmt.Errorf("%w: DB_HOST and DB_NAME are required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.S3.BucketName == "" {
		return fmt.Errorf("%w: AWS_BUCKET_NAME is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.MaxBodySize <= 0 {
		return fmt.Errorf("%w: MAX_BODY_SIZE must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Upload.MaxFileSize <= 0 {
		return ErrInvalidUploadConfigs
	}

	return nil
}
