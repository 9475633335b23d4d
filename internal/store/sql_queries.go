package store

import (
	"encoding/json"
	"strings"

	"github.com/MKhiriev/scan-records/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	scanRecordsTable = "scan_records"
	listPageSize     = 10
)

var scanRecordColumns = []string{
	"id",
	"scan_data",
	"status",
	"processed_at",
	"created_at",
	"updated_at",
}

// psql renders $n placeholders for PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningScanRecord() string {
	return "RETURNING " + strings.Join(scanRecordColumns, ", ")
}

// listScanRecordsQuery selects the first page, newest first.
func listScanRecordsQuery() (string, []any, error) {
	return psql.Select(scanRecordColumns...).
		From(scanRecordsTable).
		OrderBy("created_at DESC").
		Limit(listPageSize).
		Offset(0).
		ToSql()
}

func getScanRecordQuery(id string) (string, []any, error) {
	return psql.Select(scanRecordColumns...).
		From(scanRecordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func createScanRecordQuery(id string, scanData json.RawMessage) (string, []any, error) {
	return psql.Insert(scanRecordsTable).
		Columns("id", "scan_data", "status").
		Values(id, []byte(scanData), string(models.ScanStatusPending)).
		Suffix(returningScanRecord()).
		ToSql()
}

func updateScanRecordQuery(id string, scanData json.RawMessage) (string, []any, error) {
	return psql.Update(scanRecordsTable).
		Set("scan_data", []byte(scanData)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningScanRecord()).
		ToSql()
}

func deleteScanRecordQuery(id string) (string, []any, error) {
	return psql.Delete(scanRecordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
