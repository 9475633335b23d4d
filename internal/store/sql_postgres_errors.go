package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify]
// and [PostgresErrorClassifier.Classify]. It tells the repository which
// sentinel error a failed database operation should surface as.
type ErrorClassification int

const (
	// Unclassified errors are wrapped and reported as internal failures.
	Unclassified ErrorClassification = iota

	// InvalidInput means the query arguments could never match a row, e.g. a
	// malformed UUID (22P02). Reported as not found.
	InvalidInput

	// Unavailable means the database could not serve the request at all:
	// connection failures, too many connections, server shutting down.
	Unavailable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to a [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. PostgreSQL errors are delegated
// to [ClassifyPgError]; pool acquire timeouts, bad connections and network
// errors are [Unavailable]; anything else is [Unclassified].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) ||
		errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return Unavailable
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Invalid input:
//   - 22P02 invalid_text_representation (e.g. malformed uuid)
//
// Unavailable:
//   - Class 08: connection exceptions
//   - 53300 too_many_connections
//   - Class 57: admin shutdown, cannot connect now
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.InvalidTextRepresentation:
		return InvalidInput

	case pgerrcode.TooManyConnections,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return Unavailable
	}

	if pgerrcode.IsConnectionException(pgErr.Code) {
		return Unavailable
	}

	return Unclassified
}

// classify converts err into a sentinel-wrapped error. ErrScanRecordNotFound
// and ErrStoreUnavailable are returned bare so callers can match them with
// errors.Is; everything else is wrapped under fallback.
func (db *DB) classify(err error, fallback error) error {
	switch db.errorClassificator.Classify(err) {
	case InvalidInput:
		return ErrScanRecordNotFound
	case Unavailable:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}
