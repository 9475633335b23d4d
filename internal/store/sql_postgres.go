package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/scan-records/internal/config"
	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Connection pool and statement limits.
const (
	maxConns           = 20
	minConns           = 5
	connMaxIdleTime    = 10 * time.Second
	acquireTimeout     = 30 * time.Second
	statementTimeoutMS = "10000"
)

// DB is the process-wide PostgreSQL handle. It is built once in main and
// passed by reference to every repository.
type DB struct {
	*sql.DB
	pool               *pgxpool.Pool
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens the pool, configures limits and pings the
// database. TLS is required when secure is true.
func NewConnectPostgres(ctx context.Context, cfg config.DB, secure bool, log *logger.Logger) (*DB, error) {
	poolConfig, err := newPoolConfig(cfg, secure)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("invalid database configuration")
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error creating connection pool")
		return nil, fmt.Errorf("error creating connection pool: %w", err)
	}

	// database/sql keeps no idle connections of its own; pgxpool owns them
	db := &DB{
		DB:                 stdlib.OpenDBFromPool(pool),
		pool:               pool,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	// ping database
	if err = db.Ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = db.Close()
		return nil, err
	}
	log.Info().
		Str("func", "NewConnectPostgres").
		Str("host", cfg.Host).
		Str("database", cfg.Name).
		Int32("max_conns", poolConfig.MaxConns).
		Int32("min_conns", poolConfig.MinConns).
		Msg("connected to database successfully")

	return db, nil
}

// newPoolConfig parses the DSN and applies the pool and statement limits.
// At least minConns connections are kept open, idle ones above that are
// closed after connMaxIdleTime.
func newPoolConfig(cfg config.DB, secure bool) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN(secure))
	if err != nil {
		return nil, fmt.Errorf("error parsing database config: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnIdleTime = connMaxIdleTime
	poolConfig.ConnConfig.RuntimeParams["statement_timeout"] = statementTimeoutMS

	return poolConfig, nil
}

// Close closes the database/sql handle and then the underlying pool.
func (db *DB) Close() error {
	err := db.DB.Close()
	if db.pool != nil {
		db.pool.Close()
	}
	return err
}

// Ping checks that a connection can be acquired within the acquire timeout.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.logger)
}

// withAcquireTimeout bounds a single store call. Cancellation of the parent
// is ignored so that a client disconnect does not abort in-flight I/O.
func withAcquireTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), acquireTimeout)
}
