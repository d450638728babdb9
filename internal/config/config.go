package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

const (
	defaultPort         = "5000"
	defaultDatabaseURL  = "mongodb://localhost:27017/hotel-reservation"
	defaultMongoDB      = "hotel-reservation"
	defaultLockTTL      = "10s"
	defaultLockWait     = "2s"
	defaultStoreTimeout = "5s"
	defaultLogLevel     = "info"
	defaultLogFormat    = "json"
	defaultRateRPS      = "5"
	defaultRateBurst    = "10"
	defaultSeedOnStart  = "true"
)

// DefaultOrigins are the Vite dev server ports the web client runs on.
var DefaultOrigins = []string{"http://localhost:5173", "http://localhost:5174"}

type Config struct {
	Port           string
	AppEnv         string
	DatabaseURL    string
	MongoDatabase  string
	RedisURL       string
	LockTTL        time.Duration
	LockWait       time.Duration
	StoreTimeout   time.Duration
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	RateLimitRPS   rate.Limit
	RateLimitBurst int
	SeedOnStart    bool
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("NODE_ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", getEnv("MONGODB_URI", defaultDatabaseURL)))
	cfg.MongoDatabase = strings.TrimSpace(getEnv("MONGO_DATABASE", defaultMongoDB))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", defaultLogFormat)))
	cfg.SeedOnStart = parseBoolEnv("SEED_ON_START", defaultSeedOnStart)
	cfg.AllowedOrigins = append(append([]string{}, DefaultOrigins...), parseListEnv("CORS_ALLOWED_ORIGINS")...)

	var err error
	if cfg.LockTTL, err = parseDurationEnv("LOCK_TTL", defaultLockTTL); err != nil {
		return nil, err
	}
	if cfg.LockWait, err = parseDurationEnv("LOCK_WAIT", defaultLockWait); err != nil {
		return nil, err
	}
	if cfg.StoreTimeout, err = parseDurationEnv("STORE_TIMEOUT", defaultStoreTimeout); err != nil {
		return nil, err
	}

	rps, err := strconv.ParseFloat(strings.TrimSpace(getEnv("RATE_LIMIT_RPS", defaultRateRPS)), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS value: %w", err)
	}
	cfg.RateLimitRPS = rate.Limit(rps)
	if cfg.RateLimitBurst, err = strconv.Atoi(strings.TrimSpace(getEnv("RATE_LIMIT_BURST", defaultRateBurst))); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST value: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a TCP port number")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.LockTTL <= 0 {
		return fmt.Errorf("LOCK_TTL must be > 0")
	}
	if cfg.LockWait < 0 {
		return fmt.Errorf("LOCK_WAIT must be >= 0")
	}
	if cfg.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be > 0")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be > 0 when rate limiting is on")
	}
	if IsProdLike(cfg.AppEnv) && strings.HasPrefix(cfg.DatabaseURL, "memory") {
		return fmt.Errorf("in prod/release DATABASE_URL must point at a persistent store")
	}
	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func parseListEnv(name string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(name), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
