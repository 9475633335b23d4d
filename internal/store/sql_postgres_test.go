package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/scan-records/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDBConfig() config.DB {
	return config.DB{Host: "db.internal", Port: 5432, Name: "scans", User: "scanner", Password: "secret"}
}

func TestNewPoolConfig(t *testing.T) {
	poolConfig, err := newPoolConfig(testDBConfig(), false)
	require.NoError(t, err)

	assert.Equal(t, int32(20), poolConfig.MaxConns)
	assert.Equal(t, int32(5), poolConfig.MinConns)
	assert.Equal(t, 10*time.Second, poolConfig.MaxConnIdleTime)
	assert.Equal(t, "10000", poolConfig.ConnConfig.RuntimeParams["statement_timeout"])
	assert.Equal(t, "db.internal", poolConfig.ConnConfig.Host)
	assert.Equal(t, "scans", poolConfig.ConnConfig.Database)
	assert.Nil(t, poolConfig.ConnConfig.TLSConfig)
}

func TestNewPoolConfig_SecureRequiresTLS(t *testing.T) {
	poolConfig, err := newPoolConfig(testDBConfig(), true)
	require.NoError(t, err)

	assert.NotNil(t, poolConfig.ConnConfig.TLSConfig)
	assert.Empty(t, poolConfig.ConnConfig.Fallbacks)
}

func TestNewPoolConfig_InvalidPort(t *testing.T) {
	cfg := testDBConfig()
	cfg.Port = -1

	_, err := newPoolConfig(cfg, false)
	assert.Error(t, err)
}

func TestDB_CloseWithoutPool(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	db := &DB{DB: sqlDB}

	require.NoError(t, db.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
