package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/cup-results/internal/platform/logging"
	"golang.org/x/text/language"
)

const (
	StorageMemory     = "memory"
	StorageFilesystem = "filesystem"
	StorageS3         = "s3"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	LogFormat          string
	CORSAllowedOrigins []string
	AdminCode          string

	Groups          []string
	CollationLang   language.Tag
	CacheTTL        time.Duration
	StandingWorkers int

	StorageDriver   string
	StorageDir      string
	MatchesDocument string
	RosterDocument  string
	AwardsDocument  string
	StaffDocument   string

	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Prefix          string

	StorageCircuitEnabled      bool
	StorageCircuitFailureCount int
	StorageCircuitOpenTimeout  time.Duration
	StorageCircuitHalfOpenMax  int

	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormatDefault := "json"
	if appEnv == EnvDev {
		logFormatDefault = "console"
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "cup-results-api"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		LogLevel:           logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", logFormatDefault))),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminCode:          strings.TrimSpace(getEnv("ADMIN_CODE", "")),
		Groups:             splitCSV(getEnv("GROUPS", "A,B,C,D")),
		StorageDriver:      strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", StorageFilesystem))),
		StorageDir:         getEnv("STORAGE_DIR", "./data"),
		MatchesDocument:    getEnv("MATCHES_DOCUMENT", "matches.csv"),
		RosterDocument:     getEnv("ROSTER_DOCUMENT", "roster.json"),
		AwardsDocument:     getEnv("AWARDS_DOCUMENT", "awards.json"),
		StaffDocument:      getEnv("STAFF_DOCUMENT", "staff.json"),
		S3Bucket:           strings.TrimSpace(getEnv("S3_BUCKET", "")),
		S3Region:           getEnv("S3_REGION", "auto"),
		S3Endpoint:         strings.TrimSpace(getEnv("S3_ENDPOINT", "")),
		S3AccessKeyID:      strings.TrimSpace(getEnv("S3_ACCESS_KEY_ID", "")),
		S3SecretAccessKey:  strings.TrimSpace(getEnv("S3_SECRET_ACCESS_KEY", "")),
		S3Prefix:           strings.Trim(getEnv("S3_PREFIX", ""), "/ "),
		UptraceDSN:         strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PprofAddr:          getEnv("PPROF_ADDR", "127.0.0.1:6060"),
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.AdminCode == "" && appEnv != EnvDev {
		return Config{}, fmt.Errorf("ADMIN_CODE is required when APP_ENV=%s", appEnv)
	}
	if len(cfg.Groups) == 0 {
		return Config{}, fmt.Errorf("GROUPS cannot be empty")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: valid values are json, console", cfg.LogFormat)
	}

	cfg.CollationLang, err = language.Parse(getEnv("COLLATION_LANG", "und"))
	if err != nil {
		return Config{}, fmt.Errorf("parse COLLATION_LANG: %w", err)
	}

	if cfg.ReadTimeout, err = time.ParseDuration(getEnv("READ_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("parse READ_TIMEOUT: %w", err)
	}
	if cfg.WriteTimeout, err = time.ParseDuration(getEnv("WRITE_TIMEOUT", "15s")); err != nil {
		return Config{}, fmt.Errorf("parse WRITE_TIMEOUT: %w", err)
	}

	cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cfg.CacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	cfg.StandingWorkers, err = getEnvAsInt("STANDINGS_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse STANDINGS_WORKERS: %w", err)
	}
	if cfg.StandingWorkers < 1 {
		return Config{}, fmt.Errorf("STANDINGS_WORKERS must be >= 1")
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StorageFilesystem:
		if strings.TrimSpace(cfg.StorageDir) == "" {
			return Config{}, fmt.Errorf("STORAGE_DIR is required when STORAGE_DRIVER=%s", StorageFilesystem)
		}
	case StorageS3:
		if cfg.S3Bucket == "" {
			return Config{}, fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=%s", StorageS3)
		}
		if (cfg.S3AccessKeyID == "") != (cfg.S3SecretAccessKey == "") {
			return Config{}, fmt.Errorf("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY must be set together")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s, %s",
			cfg.StorageDriver, StorageMemory, StorageFilesystem, StorageS3)
	}

	if cfg.StorageCircuitEnabled, err = strconv.ParseBool(getEnv("STORAGE_CIRCUIT_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse STORAGE_CIRCUIT_ENABLED: %w", err)
	}
	cfg.StorageCircuitFailureCount, err = getEnvAsInt("STORAGE_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse STORAGE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfg.StorageCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("STORAGE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	cfg.StorageCircuitOpenTimeout, err = time.ParseDuration(getEnv("STORAGE_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STORAGE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if cfg.StorageCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("STORAGE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	cfg.StorageCircuitHalfOpenMax, err = getEnvAsInt("STORAGE_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse STORAGE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cfg.StorageCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("STORAGE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	if cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	cfg.PyroscopeUploadRate, err = time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if cfg.PyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	if cfg.PprofEnabled, err = strconv.ParseBool(getEnv("PPROF_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
