package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	OTel     OTelConfig
}

type ServerConfig struct {
	Port        int
	Environment string
}

func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

type DatabaseConfig struct {
	URL             string
	MaxConns        int32
	ConnMaxLifetime time.Duration
}

// StorageConfig controls where photo files land on disk and how they are
// addressed publicly.
type StorageConfig struct {
	// ImageRoot is the filesystem root under which per-workspace photo
	// directories are created.
	ImageRoot string
	// PublicImageBase is the URL prefix the boundary layer serves ImageRoot
	// under, e.g. "images".
	PublicImageBase string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

// Load reads configuration from the environment, with .env support for local
// development. Missing optional values fall back to defaults; a missing
// DATABASE_URL is an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	port, err := intEnv("PORT", 8080)
	if err != nil {
		return nil, err
	}

	maxConns, err := intEnv("DATABASE_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Port:        port,
			Environment: stringEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			URL:             dbURL,
			MaxConns:        int32(maxConns),
			ConnMaxLifetime: time.Hour,
		},
		Storage: StorageConfig{
			ImageRoot:       stringEnv("IMAGE_ROOT", "images"),
			PublicImageBase: stringEnv("PUBLIC_IMAGE_BASE", "images"),
		},
		OTel: OTelConfig{
			Endpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Headers:        os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"),
			ServiceName:    stringEnv("OTEL_SERVICE_NAME", "syncarea-api"),
			ServiceVersion: stringEnv("OTEL_SERVICE_VERSION", "dev"),
		},
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return parsed, nil
}
