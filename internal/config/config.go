// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"
)

// EnvironmentProduction is the App.Environment value that switches the
// service into production mode.
const EnvironmentProduction = "production"

// StructuredConfig is the top-level configuration container for the
// scan-records service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the runtime environment.
	App App

	// Auth holds token signing and login account settings.
	Auth Auth

	// Storage holds configuration for the relational database and the
	// S3-compatible object store.
	Storage Storage

	// Server holds the listening port and routing switches.
	Server Server

	// Upload holds limits applied to 3D model uploads.
	Upload Upload

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// Environment is the deployment environment name. "production" enables
	// TLS to the database, Info level logging and hides stack traces from
	// error responses.
	// Env: NODE_ENV
	Environment string `env:"NODE_ENV"`
}

// IsProduction reports whether the service runs in production mode.
func (a App) IsProduction() bool {
	return a.Environment == EnvironmentProduction
}

// Auth holds JWT and login settings.
type Auth struct {
	// JWTSecret is the HMAC key used to sign and verify tokens. Required.
	// Env: JWT_SECRET
	JWTSecret string `env:"JWT_SECRET"`

	// JWTExpiresIn is the token lifetime. Accepts Go durations ("1h"),
	// plain seconds ("3600") and days ("7d").
	// Env: JWT_EXPIRES_IN
	JWTExpiresIn Duration `env:"JWT_EXPIRES_IN"`

	// Username and Password describe the single static login account.
	// Env: AUTH_USERNAME, AUTH_PASSWORD
	Username string `env:"AUTH_USERNAME"`
	Password string `env:"AUTH_PASSWORD"`
}

// Server holds inbound transport settings.
type Server struct {
	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// PublicScanRecords controls whether the /api/scan-records mount is
	// reachable without a bearer token.
	// Env: PUBLIC_SCAN_RECORDS
	PublicScanRecords Toggle `env:"PUBLIC_SCAN_RECORDS"`

	// CORSOrigins lists the allowed CORS origins. "*" allows any origin.
	// Env: CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// MaxBodySize caps non-multipart request bodies in bytes, measured after
	// gzip decoding.
	// Env: MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`
}

// Address returns the listen address in ":port" form.
func (s Server) Address() string {
	return net.JoinHostPort("", strconv.Itoa(s.Port))
}

// BodyLimit returns MaxBodySize, or DefaultMaxBodySize when unset.
func (s Server) BodyLimit() int64 {
	if s.MaxBodySize <= 0 {
		return DefaultMaxBodySize
	}
	return s.MaxBodySize
}

// ScanRecordsArePublic reports PublicScanRecords, true when unset.
func (s Server) ScanRecordsArePublic() bool {
	return s.PublicScanRecords.Enabled(true)
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the PostgreSQL connection settings.
	DB DB `envPrefix:"DB_"`

	// S3 holds the object storage settings for uploaded models.
	S3 S3 `envPrefix:"AWS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	Name     string `env:"NAME"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
}

// DSN renders a PostgreSQL connection URL. TLS is required when secure is
// true and disabled otherwise.
func (db DB) DSN(secure bool) string {
	sslMode := "disable"
	if secure {
		sslMode = "require"
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:     "/" + db.Name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	if db.User != "" {
		u.User = url.UserPassword(db.User, db.Password)
	}

	return u.String()
}

// S3 holds settings for the S3-compatible object store.
type S3 struct {
	BucketName      string `env:"BUCKET_NAME"`
	Region          string `env:"REGION"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// Endpoint is the object store host, "s3.amazonaws.com" for AWS.
	Endpoint string `env:"ENDPOINT"`
	UseSSL   Toggle `env:"USE_SSL"`
}

// Secure reports UseSSL, true when unset.
func (s S3) Secure() bool {
	return s.UseSSL.Enabled(true)
}

// Upload holds limits for the model upload endpoint.
type Upload struct {
	// MaxFileSize is the largest accepted model size in bytes.
	// Env: MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
