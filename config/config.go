// Package config loads and validates application configuration from
// environment variables. All problems found during loading are collected and
// reported together so an operator can fix a misconfigured deployment in one
// pass instead of one variable at a time.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds the settings for the PostgreSQL connection pool.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxConns int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret            string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port          string
	Env           string // "development" or "production"
	LogLevel      string
	AllowedOrigin string
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Database *DatabaseConfig
	Auth     *AuthConfig
	Server   *ServerConfig
}

// IsProduction reports whether the server runs with production settings.
func (c *AppConfig) IsProduction() bool {
	return c.Server.Env == "production"
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size in a sane range for a single instance.
func clampPoolSize(size int, varName string, errs *[]string) int {
	if size < 2 {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is less than minimum 2, clamping to 2", varName, size))
		return 2
	}
	if size > 100 {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100, clamping to 100", varName, size))
		return 100
	}
	return size
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns them as a single aggregated error.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	dbUser := getRequiredEnv("DB_USER", &errs)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errs)
	dbName := getRequiredEnv("DB_NAME", &errs)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errs)
	dbMaxConns := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errs), "DB_POOL_SIZE", &errs)

	database := &DatabaseConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxConns: dbMaxConns,
	}

	jwtSecret := getRequiredEnv("JWT_SECRET", &errs)
	accessTokenDuration := getOptionalEnvDuration("JWT_ACCESS_TOKEN_DURATION", 15*time.Minute, &errs)
	refreshTokenDuration := getOptionalEnvDuration("JWT_REFRESH_TOKEN_DURATION", 168*time.Hour, &errs) // 7 days

	auth := &AuthConfig{
		JWTSecret:            jwtSecret,
		AccessTokenDuration:  accessTokenDuration,
		RefreshTokenDuration: refreshTokenDuration,
	}

	server := &ServerConfig{
		Port:          getOptionalEnv("PORT", "8080"),
		Env:           getOptionalEnv("APP_ENV", "development"),
		LogLevel:      getOptionalEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getOptionalEnv("CORS_ALLOWED_ORIGIN", "*"),
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		Database: database,
		Auth:     auth,
		Server:   server,
	}, nil
}
