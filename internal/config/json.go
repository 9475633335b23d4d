package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
	} `json:"app,omitempty"`

	Auth struct {
		JWTSecret    string   `json:"jwt_secret"`
		JWTExpiresIn Duration `json:"jwt_expires_in"`
		Username     string   `json:"username"`
		Password     string   `json:"password"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Name     string `json:"name"`
			User     string `json:"user"`
			Password string `json:"password"`
		} `json:"db,omitempty"`

		S3 struct {
			BucketName      string `json:"bucket_name"`
			Region          string `json:"region"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			Endpoint        string `json:"endpoint"`
			UseSSL          Toggle `json:"use_ssl"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Port              int      `json:"port"`
		PublicScanRecords Toggle   `json:"public_scan_records"`
		CORSOrigins       []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Upload struct {
		MaxFileSize int64 `json:"max_file_size"`
	} `json:"upload,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment: jsonCfg.App.Environment,
		},
		Auth: Auth{
			JWTSecret:    jsonCfg.Auth.JWTSecret,
			JWTExpiresIn: jsonCfg.Auth.JWTExpiresIn,
			Username:     jsonCfg.Auth.Username,
			Password:     jsonCfg.Auth.Password,
		},
		Storage: Storage{
			DB: DB{
				Host:     jsonCfg.Storage.DB.Host,
				Port:     jsonCfg.Storage.DB.Port,
				Name:     jsonCfg.Storage.DB.Name,
				User:     jsonCfg.Storage.DB.User,
				Password: jsonCfg.Storage.DB.Password,
			},
			S3: S3{
				BucketName:      jsonCfg.Storage.S3.BucketName,
				Region:          jsonCfg.Storage.S3.Region,
				AccessKeyID:     jsonCfg.Storage.S3.AccessKeyID,
				SecretAccessKey: jsonCfg.Storage.S3.SecretAccessKey,
				Endpoint:        jsonCfg.Storage.S3.Endpoint,
				UseSSL:          jsonCfg.Storage.S3.UseSSL,
			},
		},
		Server: Server{
			Port:              jsonCfg.Server.Port,
			PublicScanRecords: jsonCfg.Server.PublicScanRecords,
			CORSOrigins:       jsonCfg.Server.CORSOrigins,
		},
		Upload: Upload{
			MaxFileSize: jsonCfg.Upload.MaxFileSize,
		},
	}

	return cfg, nil
}
