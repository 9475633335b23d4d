package config

import (
	"flag"
	"fmt"
	"os"
)

// parseFlags parses command-line flags from args into a partial
// [StructuredConfig]. Unset flags leave the corresponding fields zero so they
// do not shadow lower priority sources during the merge.
//
// Flags:
//
//	-p port to listen on
//	-c/-config json file path with configs
//	-env runtime environment (development, production)
//	-jwt-secret token signing secret
//	-jwt-expires-in token lifetime (e.g. "1h", "3600", "7d")
//	-db-host, -db-port, -db-name, -db-user, -db-password database settings
//	-bucket object storage bucket name
//	-region object storage region
//	-s3-endpoint object storage endpoint
//	-public-scan-records serve /api/scan-records without a token
//	-max-file-size upload size limit in bytes
//	-max-body-size request body limit in bytes
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	fs.IntVar(&cfg.Server.Port, "p", 0, "Port to listen on")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.Environment, "env", "", "Runtime environment")
	fs.StringVar(&cfg.Auth.JWTSecret, "jwt-secret", "", "Token signing secret")
	fs.Var(&cfg.Auth.JWTExpiresIn, "jwt-expires-in", "Token lifetime (e.g. 1h, 3600, 7d)")
	fs.StringVar(&cfg.Storage.DB.Host, "db-host", "", "Database host")
	fs.IntVar(&cfg.Storage.DB.Port, "db-port", 0, "Database port")
	fs.StringVar(&cfg.Storage.DB.Name, "db-name", "", "Database name")
	fs.StringVar(&cfg.Storage.DB.User, "db-user", "", "Database user")
	fs.StringVar(&cfg.Storage.DB.Password, "db-password", "", "Database password")
	fs.StringVar(&cfg.Storage.S3.BucketName, "bucket", "", "Object storage bucket name")
	fs.StringVar(&cfg.Storage.S3.Region, "region", "", "Object storage region")
	fs.StringVar(&cfg.Storage.S3.Endpoint, "s3-endpoint", "", "Object storage endpoint")
	fs.Var(&cfg.Server.PublicScanRecords, "public-scan-records", "Serve /api/scan-records without a token")
	fs.Int64Var(&cfg.Upload.MaxFileSize, "max-file-size", 0, "Upload size limit in bytes")
	fs.Int64Var(&cfg.Server.MaxBodySize, "max-body-size", 0, "Request body limit in bytes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "scan-records"
}
