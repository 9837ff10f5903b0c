package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StorageLocal = "local"
	StorageGCS   = "gcs"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	minSecretBytes = 32
)

type Config struct {
	Port string
	Env  string

	DB DBConfig

	JWTSecret string
	JWTTTL    time.Duration

	FrontendURL string

	StorageMode    string
	UploadDir      string
	GCSBucket      string
	MaxUploadBytes int64

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiModel   string

	OTelEnabled      bool
	OTelServiceName  string
	OTelOTLPEndpoint string
	OTelInsecure     bool
}

type DBConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN builds the postgres connection string.
func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s application_name=healthmate TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// LoadDotEnv reads the first .env file found among paths. A missing file is
// not an error; the process environment still applies.
func LoadDotEnv(paths ...string) (string, bool) {
	if len(paths) == 0 {
		paths = []string{".env", "../.env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// Load reads configuration from the environment. JWT_SECRET is required and
// there is no built-in fallback.
func Load() (*Config, error) {
	var errs []error

	cfg := &Config{
		Port: getEnv("PORT", "5000"),
		Env:  strings.ToLower(getEnv("APP_ENV", EnvProduction)),
		DB: DBConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       getEnv("DB_NAME", "healthmate"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "healthmate.db"),
		},
		JWTSecret:        os.Getenv("JWT_SECRET"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:5173"),
		StorageMode:      strings.ToLower(getEnv("STORAGE_MODE", StorageLocal)),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		GCSBucket:        os.Getenv("GCS_BUCKET"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OTelServiceName:  getEnv("OTEL_SERVICE_NAME", "healthmate-api"),
		OTelOTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	switch cfg.Env {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, cfg.Env))
	}

	switch {
	case cfg.JWTSecret == "":
		errs = append(errs, errors.New("JWT_SECRET is required"))
	case len(cfg.JWTSecret) < minSecretBytes:
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretBytes))
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "168h"))
	if err != nil || ttl <= 0 {
		errs = append(errs, fmt.Errorf("JWT_TTL must be a positive duration: %q", os.Getenv("JWT_TTL")))
	}
	cfg.JWTTTL = ttl

	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", strconv.Itoa(10<<20)), 10, 64)
	if err != nil || maxUpload <= 0 {
		errs = append(errs, fmt.Errorf("MAX_UPLOAD_BYTES must be a positive integer: %q", os.Getenv("MAX_UPLOAD_BYTES")))
	}
	cfg.MaxUploadBytes = maxUpload

	switch cfg.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, cfg.DB.Driver))
	}

	switch cfg.StorageMode {
	case StorageLocal:
	case StorageGCS:
		if cfg.GCSBucket == "" {
			errs = append(errs, errors.New("GCS_BUCKET is required when STORAGE_MODE=gcs"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_MODE must be %q or %q, got %q", StorageLocal, StorageGCS, cfg.StorageMode))
	}

	cfg.OTelEnabled, err = strconv.ParseBool(getEnv("OTEL_ENABLED", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("OTEL_ENABLED must be a boolean: %w", err))
	}
	cfg.OTelInsecure, err = strconv.ParseBool(getEnv("OTEL_EXPORTER_OTLP_INSECURE", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("OTEL_EXPORTER_OTLP_INSECURE must be a boolean: %w", err))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
