package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/felixgeelhaar/dayplan/internal/shared/infrastructure/database"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string
	UserName string

	// Database
	DatabaseURL string

	// Planning window
	DayStart time.Duration
	DayEnd   time.Duration

	// Granularity of the planning grid
	SlotSize time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	dayStart, err := getClockEnv("DAYPLAN_DAY_START", 6*time.Hour)
	if err != nil {
		return nil, err
	}
	dayEnd, err := getClockEnv("DAYPLAN_DAY_END", 23*time.Hour)
	if err != nil {
		return nil, err
	}
	if dayEnd <= dayStart {
		return nil, fmt.Errorf("config: DAYPLAN_DAY_END %s must be after DAYPLAN_DAY_START %s",
			clockString(dayEnd), clockString(dayStart))
	}

	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		UserName:    getEnv("DAYPLAN_USER", ""),
		DatabaseURL: getEnv("DATABASE_URL", "sqlite://"+database.DefaultSQLitePath()),
		DayStart:    dayStart,
		DayEnd:      dayEnd,
		SlotSize:    getDurationEnv("DAYPLAN_SLOT_SIZE", 15*time.Minute),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getClockEnv reads an HH:MM wall-clock value as an offset from midnight.
func getClockEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("config: %s: expected HH:MM, got %q", key, value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 24 {
		return 0, fmt.Errorf("config: %s: invalid hour in %q", key, value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("config: %s: invalid minute in %q", key, value)
	}
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute, nil
}

func clockString(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
