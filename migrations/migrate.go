// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded SQL schema of the scan-records
// database and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned by Migrate when no database handle is supplied.
var ErrNilDB = errors.New("migration error: db is nil")

// Migrate brings the scan_records schema up to the latest embedded version
// and logs every migration it applied. Already applied versions are skipped.
func Migrate(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return ErrNilDB
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, embedMigrations)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	for _, result := range results {
		log.Info().
			Str("func", "migrations.Migrate").
			Int64("version", result.Source.Version).
			Str("file", result.Source.Path).
			Dur("duration", result.Duration).
			Msg("migration applied")
	}
	if len(results) == 0 {
		log.Debug().Str("func", "migrations.Migrate").Msg("schema is up to date")
	}

	return nil
}
