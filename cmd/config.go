package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort               = "8080"
	defaultHistoryRetentionDays   = 180
	defaultHistoryCleanupSchedule = "0 0 3 * * *"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	HistoryRetentionDays   int
	HistoryCleanupSchedule string
}

// LoadConfig reads the environment after merging envFile into it. Variables
// already set in the environment win over the file; a missing file is not an
// error.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	retention, err := intVariable("HISTORY_RETENTION_DAYS", defaultHistoryRetentionDays)
	if err != nil {
		return Config{}, err
	}
	if retention <= 0 {
		return Config{}, fmt.Errorf("HISTORY_RETENTION_DAYS must be positive, got %d", retention)
	}

	return Config{
		HTTPPort:               stringVariable("HTTP_PORT", defaultHTTPPort),
		DBHost:                 stringVariable("DB_HOST", "localhost"),
		DBPort:                 stringVariable("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              stringVariable("DB_SSLMODE", "disable"),
		HistoryRetentionDays:   retention,
		HistoryCleanupSchedule: stringVariable("HISTORY_CLEANUP_SCHEDULE", defaultHistoryCleanupSchedule),
	}, nil
}

// DSN renders the PostgreSQL connection string for the GORM driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func stringVariable(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}
