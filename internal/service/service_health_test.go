package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/mock"
	"github.com/MKhiriev/scan-records/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthService_AllHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockHealthChecker(ctrl)
	storage := mock.NewMockHealthChecker(ctrl)

	db.EXPECT().Ping(gomock.Any()).Return(nil)
	storage.EXPECT().Ping(gomock.Any()).Return(nil)

	svc := NewHealthService(map[string]HealthChecker{"database": db, "storage": storage},
		models.NewAppBuildInfo("1.2.3", "", ""), false, logger.Nop())

	status := svc.Check(context.Background())
	assert.Equal(t, StatusHealthy, status.Status)
	assert.Equal(t, "1.2.3", status.Version)
	assert.Equal(t, models.CheckStatus{Status: StatusHealthy}, status.Checks["database"])
	assert.Equal(t, models.CheckStatus{Status: StatusHealthy}, status.Checks["storage"])
	assert.False(t, status.Timestamp.IsZero())
}

func TestHealthService_OneUnhealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockHealthChecker(ctrl)
	storage := mock.NewMockHealthChecker(ctrl)

	db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	storage.EXPECT().Ping(gomock.Any()).Return(nil)

	svc := NewHealthService(map[string]HealthChecker{"database": db, "storage": storage}, models.AppBuildInfo{}, false, logger.Nop())

	status := svc.Check(context.Background())
	assert.Equal(t, StatusUnhealthy, status.Status)
	assert.Equal(t, "dev", status.Version)
	assert.Equal(t, models.CheckStatus{Status: StatusUnhealthy, Message: "connection refused"}, status.Checks["database"])
	assert.Equal(t, StatusHealthy, status.Checks["storage"].Status)
}

func TestHealthService_ProductionHidesCheckErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockHealthChecker(ctrl)
	db.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp 10.0.3.7:5432: connection refused"))

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	status := NewHealthService(map[string]HealthChecker{"database": db}, models.AppBuildInfo{}, true, log).
		Check(context.Background())

	assert.Equal(t, StatusUnhealthy, status.Status)
	assert.Equal(t, models.CheckStatus{Status: StatusUnhealthy}, status.Checks["database"])
	assert.Contains(t, buf.String(), "10.0.3.7:5432")
	assert.Contains(t, buf.String(), `"check":"database"`)
}

func TestHealthService_ChecksRunConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockHealthChecker(ctrl)
	storage := mock.NewMockHealthChecker(ctrl)

	// each ping waits until both have started, so a sequential run
	// would only finish when the budget expires
	var entered sync.WaitGroup
	entered.Add(2)
	ping := func(ctx context.Context) error {
		entered.Done()
		both := make(chan struct{})
		go func() {
			entered.Wait()
			close(both)
		}()
		select {
		case <-both:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	db.EXPECT().Ping(gomock.Any()).DoAndReturn(ping)
	storage.EXPECT().Ping(gomock.Any()).DoAndReturn(ping)

	status := NewHealthService(map[string]HealthChecker{"database": db, "storage": storage}, models.AppBuildInfo{}, false, logger.Nop()).
		Check(context.Background())

	assert.Equal(t, StatusHealthy, status.Status)
}

func TestHealthService_CheckHasDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockHealthChecker(ctrl)

	db.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	})

	NewHealthService(map[string]HealthChecker{"database": db}, models.AppBuildInfo{}, false, logger.Nop()).Check(context.Background())
}
