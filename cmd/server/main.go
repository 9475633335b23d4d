package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/scan-records/internal/config"
	handler "github.com/MKhiriev/scan-records/internal/handler/http"
	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/server"
	"github.com/MKhiriev/scan-records/internal/service"
	"github.com/MKhiriev/scan-records/internal/store"
	"github.com/MKhiriev/scan-records/models"
)

const serviceName = "scan-records-api"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(serviceName, false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(serviceName, cfg.App.IsProduction())
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.Date).
		Str("build_commit", buildInfo.Commit).
		Str("environment", cfg.App.Environment).
		Int("port", cfg.Server.Port).
		Str("db_host", cfg.Storage.DB.Host).
		Str("bucket", cfg.Storage.S3.BucketName).
		Msg("starting server")

	if err = run(cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, cfg.App.IsProduction(), log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(context.Background()); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Msg("database migrations applied")

	objects, err := store.NewMinioObjectStorage(cfg.Storage.S3, log)
	if err != nil {
		return fmt.Errorf("error creating object storage client: %w", err)
	}

	services, err := service.NewServices(store.NewStorages(db, objects, log), cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	srv, err := server.NewServer(handler.NewHandler(services, cfg, log).Init(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
