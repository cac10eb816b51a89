package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type CatalogSource string

const (
	CatalogDefault  CatalogSource = "default"
	CatalogFile     CatalogSource = "file"
	CatalogPostgres CatalogSource = "postgres"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RabbitURL string

	CatalogSource CatalogSource
	CatalogFile   string
	CatalogSeed   bool

	WindowDays        int
	MaxWindowDays     int
	MarinaTimezone    string
	RequireBoatLength bool
	SessionTTL        time.Duration
}

// Load reads a .env file when present, then the process environment.
// Variables already set in the environment win over the file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: failed to load .env: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8082"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "dockmate"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RabbitURL: getEnv("RABBITMQ_URL", ""),

		CatalogSource: CatalogSource(strings.ToLower(getEnv("CATALOG_SOURCE", string(CatalogDefault)))),
		CatalogFile:   getEnv("CATALOG_FILE", "vendors.yaml"),
		CatalogSeed:   getEnvAsBool("CATALOG_SEED", false),

		WindowDays:        getEnvAsInt("WINDOW_DAYS", 30),
		MaxWindowDays:     getEnvAsInt("MAX_WINDOW_DAYS", 90),
		MarinaTimezone:    getEnv("MARINA_TIMEZONE", "UTC"),
		RequireBoatLength: getEnvAsBool("REQUIRE_BOAT_LENGTH", false),
		SessionTTL:        getEnvAsDuration("SESSION_TTL", 24*time.Hour),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Location resolves MarinaTimezone; "today" for availability is read there.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.MarinaTimezone)
	if err != nil {
		return nil, fmt.Errorf("marina timezone %q: %w", c.MarinaTimezone, err)
	}
	return loc, nil
}

func (c *Config) Validate() error {
	switch c.CatalogSource {
	case CatalogDefault, CatalogFile, CatalogPostgres:
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	if c.WindowDays < 1 {
		return fmt.Errorf("WINDOW_DAYS must be positive, got %d", c.WindowDays)
	}
	if c.MaxWindowDays < c.WindowDays {
		return fmt.Errorf("MAX_WINDOW_DAYS (%d) must be at least WINDOW_DAYS (%d)", c.MaxWindowDays, c.WindowDays)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
