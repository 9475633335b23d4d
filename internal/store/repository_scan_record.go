package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/MKhiriev/scan-records/models"
)

// scanRecordRepository is the PostgreSQL-backed implementation of
// [ScanRecordRepository] over the "scan_records" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type scanRecordRepository struct {
	db          *DB
	idGenerator *utils.UUIDGenerator
	logger      *logger.Logger
}

// NewScanRecordRepository constructs a [ScanRecordRepository] backed by the
// provided database connection and logger.
func NewScanRecordRepository(db *DB, logger *logger.Logger) ScanRecordRepository {
	logger.Debug().Msg("creating scan record repository")
	return &scanRecordRepository{
		db:          db,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanScanRecord(row rowScanner) (models.ScanRecord, error) {
	var (
		record      models.ScanRecord
		scanData    []byte
		status      string
		processedAt sql.NullTime
	)

	if err := row.Scan(&record.ID, &scanData, &status, &processedAt, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return models.ScanRecord{}, err
	}

	record.ScanData = json.RawMessage(scanData)
	record.Status = models.ScanStatus(status)
	if processedAt.Valid {
		t := processedAt.Time
		record.ProcessedAt = &t
	}

	return record, nil
}

// ListScanRecords returns at most ten records ordered by created_at
// descending. An empty table yields an empty, non-nil slice.
func (r *scanRecordRepository) ListScanRecords(ctx context.Context) ([]models.ScanRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := listScanRecordsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := withAcquireTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scanRecordRepository.ListScanRecords").Msg("error executing query")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	records := make([]models.ScanRecord, 0, listPageSize)
	for rows.Next() {
		record, err := scanScanRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "*scanRecordRepository.ListScanRecords").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*scanRecordRepository.ListScanRecords").Msg("error iterating rows")
		return nil, r.db.classify(err, ErrScanningRows)
	}

	return records, nil
}

// GetScanRecord returns the record with the given id.
//
// Error handling:
//   - no row or malformed id (22P02) → [ErrScanRecordNotFound].
//   - connection problems → [ErrStoreUnavailable].
func (r *scanRecordRepository) GetScanRecord(ctx context.Context, id string) (models.ScanRecord, error) {
	query, args, err := getScanRecordQuery(id)
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*scanRecordRepository.GetScanRecord", query, args)
}

// CreateScanRecord inserts a new record with a generated UUID and status
// pending. The stored representation, timestamps included, is returned.
func (r *scanRecordRepository) CreateScanRecord(ctx context.Context, scanData json.RawMessage) (models.ScanRecord, error) {
	query, args, err := createScanRecordQuery(r.idGenerator.Generate(), scanData)
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*scanRecordRepository.CreateScanRecord", query, args)
}

// UpdateScanRecord replaces scan_data and sets updated_at to NOW() in a
// single statement. No matching row → [ErrScanRecordNotFound].
func (r *scanRecordRepository) UpdateScanRecord(ctx context.Context, id string, scanData json.RawMessage) (models.ScanRecord, error) {
	query, args, err := updateScanRecordQuery(id, scanData)
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*scanRecordRepository.UpdateScanRecord", query, args)
}

// DeleteScanRecord hard-deletes the record. Zero affected rows →
// [ErrScanRecordNotFound].
func (r *scanRecordRepository) DeleteScanRecord(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteScanRecordQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := withAcquireTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scanRecordRepository.DeleteScanRecord").Msg("error executing statement")
		return r.db.classify(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrScanRecordNotFound
	}

	return nil
}

// queryOne runs a statement that returns at most one scan record row.
func (r *scanRecordRepository) queryOne(ctx context.Context, funcName, query string, args []any) (models.ScanRecord, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := withAcquireTimeout(ctx)
	defer cancel()

	record, err := scanScanRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ScanRecord{}, ErrScanRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return models.ScanRecord{}, r.db.classify(err, ErrExecutingQuery)
	}

	return record, nil
}
