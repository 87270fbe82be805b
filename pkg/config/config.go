package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Session backends
const (
	SessionBackendFile  = "file"
	SessionBackendRedis = "redis"
)

// Config holds all console configuration
type Config struct {
	Environment string
	Console     ConsoleConfig
	API         APIConfig
	Session     SessionConfig
	Redis       RedisConfig
	OTEL        OTELConfig
}

// ConsoleConfig holds the local HTTP server configuration
type ConsoleConfig struct {
	Host string
	Port int
}

// APIConfig holds the upstream auto-service API configuration
type APIConfig struct {
	BaseURL string
}

// SessionConfig holds session persistence configuration
type SessionConfig struct {
	Backend  string
	FilePath string
}

// RedisConfig holds Redis configuration for the redis session backend
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Console: ConsoleConfig{
			Host: getEnv("CONSOLE_HOST", "127.0.0.1"),
			Port: getEnvAsInt("CONSOLE_PORT", 3000),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
		},
		Session: SessionConfig{
			Backend:  getEnv("SESSION_BACKEND", SessionBackendFile),
			FilePath: getEnv("SESSION_FILE", defaultSessionFile()),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "autoservice-console"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// ListenAddr returns the console listen address
func (c *ConsoleConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "autoservice-console", "session.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
