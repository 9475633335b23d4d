package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates missing or unusable token settings
	// (for example, an empty JWT secret).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates incomplete database or bucket settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an out-of-range listening port.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUploadConfigs indicates a non-positive upload size limit.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidDuration is returned when a token lifetime cannot be parsed.
	ErrInvalidDuration = errors.New("invalid duration")
)
