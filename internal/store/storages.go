package store

import "github.com/MKhiriev/scan-records/internal/logger"

// Storages groups the persistence backends handed to the service layer.
type Storages struct {
	Database             Pinger
	ScanRecordRepository ScanRecordRepository
	ObjectStorage        ObjectStorage
}

// NewStorages builds the repositories on top of db and bundles them with
// the object store.
func NewStorages(db *DB, objects ObjectStorage, logger *logger.Logger) *Storages {
	return &Storages{
		Database:             db,
		ScanRecordRepository: NewScanRecordRepository(db, logger),
		ObjectStorage:        objects,
	}
}
