package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Access    AccessConfig
	Timesheet TimesheetConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AccessConfig holds the shared terminal access credential. PINHash is a
// bcrypt hash; the plain PIN never appears in configuration.
type AccessConfig struct {
	PINHash string
}

// TimesheetConfig holds the reconciliation defaults applied when a person
// has no shift definition of their own.
type TimesheetConfig struct {
	ToleranceMinutes    int
	DefaultShiftWindow  string
	DefaultBreakMinutes int
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "puantaj"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Terminal access configuration
	config.Access = AccessConfig{
		PINHash: getEnv("ACCESS_PIN_HASH", ""),
	}

	// Timesheet configuration
	tolerance, err := strconv.Atoi(getEnv("TIMESHEET_TOLERANCE_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMESHEET_TOLERANCE_MINUTES: %w", err)
	}
	defaultBreak, err := strconv.Atoi(getEnv("TIMESHEET_DEFAULT_BREAK_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMESHEET_DEFAULT_BREAK_MINUTES: %w", err)
	}

	config.Timesheet = TimesheetConfig{
		ToleranceMinutes:    tolerance,
		DefaultShiftWindow:  getEnv("TIMESHEET_DEFAULT_SHIFT_WINDOW", "09:00-18:00"),
		DefaultBreakMinutes: defaultBreak,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Access.PINHash == "" {
		return fmt.Errorf("ACCESS_PIN_HASH is required")
	}
	if c.Timesheet.ToleranceMinutes < 0 {
		return fmt.Errorf("TIMESHEET_TOLERANCE_MINUTES must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
