package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/models"
)

const (
	healthCheckBudget = 5 * time.Second

	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

type healthService struct {
	checkers map[string]HealthChecker
	version  string
	// production keeps checker error text out of the report.
	production bool
	logger     *logger.Logger
}

// NewHealthService runs every checker on each Check call. The map keys are
// reported as check names.
func NewHealthService(checkers map[string]HealthChecker, buildInfo models.AppBuildInfo, production bool, logger *logger.Logger) HealthService {
	return &healthService{
		checkers:   checkers,
		version:    buildInfo.BuildVersion(),
		production: production,
		logger:     logger,
	}
}

// Check pings all checkers concurrently under one shared deadline.
func (s *healthService) Check(ctx context.Context) models.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckBudget)
	defer cancel()

	health := models.HealthStatus{
		Status:    StatusHealthy,
		Version:   s.version,
		Timestamp: time.Now().UTC(),
		Checks:    make(map[string]models.CheckStatus, len(s.checkers)),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range s.checkers {
		wg.Go(func() {
			check := s.check(ctx, name, checker)

			mu.Lock()
			defer mu.Unlock()
			health.Checks[name] = check
			if check.Status != StatusHealthy {
				health.Status = StatusUnhealthy
			}
		})
	}
	wg.Wait()

	return health
}

func (s *healthService) check(ctx context.Context, name string, checker HealthChecker) models.CheckStatus {
	err := checker.Ping(ctx)
	if err == nil {
		return models.CheckStatus{Status: StatusHealthy}
	}

	s.logger.ForContext(ctx).Warn().Err(err).
		Str("func", "healthService.Check").
		Str("check", name).
		Msg("health check failed")

	if s.production {
		return models.CheckStatus{Status: StatusUnhealthy}
	}
	return models.CheckStatus{Status: StatusUnhealthy, Message: err.Error()}
}
