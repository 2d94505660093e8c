package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App    AppConfig
	Store  StoreConfig
	Logger LoggerConfig
	Auth   AuthConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// StoreConfig tunes the in-memory complaint store.
type StoreConfig struct {
	// LatencyMillis simulates backend latency on every store operation.
	// Zero disables the delay (tests run with zero).
	LatencyMillis int
	// CounterStart seeds the tracking-id counter; the first issued id is
	// TICKET-<CounterStart+1>.
	CounterStart int64
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines the operator account and session token parameters.
type AuthConfig struct {
	JWTSecret       string
	SessionTTLHours int
	AdminEmail      string
	AdminPassword   string
	BcryptCost      int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	counterStart, err := strconv.ParseInt(getEnv("STORE_COUNTER_START", "10000"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_COUNTER_START: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "hall-complaints"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Store: StoreConfig{
			LatencyMillis: getEnvAsInt("STORE_LATENCY_MILLIS", 200),
			CounterStart:  counterStart,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("AUTH_JWT_SECRET", "dev-secret"),
			SessionTTLHours: getEnvAsInt("AUTH_SESSION_TTL_HOURS", 24),
			AdminEmail:      getEnv("AUTH_ADMIN_EMAIL", "admin@hallcomplaint.com"),
			AdminPassword:   getEnv("AUTH_ADMIN_PASSWORD", "12345"),
			BcryptCost:      getEnvAsInt("AUTH_BCRYPT_COST", 10),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Latency returns the simulated store latency duration.
func (s StoreConfig) Latency() time.Duration {
	if s.LatencyMillis <= 0 {
		return 0
	}
	return time.Duration(s.LatencyMillis) * time.Millisecond
}

// SessionTTL returns the session token lifetime.
func (a AuthConfig) SessionTTL() time.Duration {
	if a.SessionTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(a.SessionTTLHours) * time.Hour
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
