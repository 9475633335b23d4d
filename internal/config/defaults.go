package config

import "time"

// Default values applied when no source sets a field.
const (
	DefaultPort         = 3000
	DefaultDBHost       = "localhost"
	DefaultDBPort       = 5432
	DefaultJWTExpiresIn = Duration(time.Hour)
	DefaultS3Endpoint   = "s3.amazonaws.com"
	DefaultMaxFileSize  = 100 * 1024 * 1024
	DefaultMaxBodySize  = 100 * 1024
	DefaultEnvironment  = "development"
	DefaultUsername     = "admin"
	DefaultPassword     = "password"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Environment: DefaultEnvironment},
		Auth: Auth{
			JWTExpiresIn: DefaultJWTExpiresIn,
			Username:     DefaultUsername,
			Password:     DefaultPassword,
		},
		Storage: Storage{
			DB: DB{Host: DefaultDBHost, Port: DefaultDBPort},
			S3: S3{Endpoint: DefaultS3Endpoint, UseSSL: ToggleOn},
		},
		Server: Server{
			Port:              DefaultPort,
			PublicScanRecords: ToggleOn,
			CORSOrigins:       []string{"*"},
			MaxBodySize:       DefaultMaxBodySize,
		},
		Upload: Upload{MaxFileSize: DefaultMaxFileSize},
	}
}
