package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "CATALOG_SOURCE", "WINDOW_DAYS", "MAX_WINDOW_DAYS", "MARINA_TIMEZONE", "REQUIRE_BOAT_LENGTH", "SESSION_TTL", "RABBITMQ_URL"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8082", cfg.ServerPort)
	assert.Equal(t, CatalogDefault, cfg.CatalogSource)
	assert.Equal(t, 30, cfg.WindowDays)
	assert.Equal(t, 90, cfg.MaxWindowDays)
	assert.Equal(t, "UTC", cfg.MarinaTimezone)
	assert.False(t, cfg.RequireBoatLength)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.RabbitURL)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CATALOG_SOURCE", "File")
	t.Setenv("CATALOG_FILE", "/etc/dockmate/vendors.yaml")
	t.Setenv("WINDOW_DAYS", "14")
	t.Setenv("MARINA_TIMEZONE", "America/Halifax")
	t.Setenv("REQUIRE_BOAT_LENGTH", "true")
	t.Setenv("SESSION_TTL", "90m")

	cfg := FromEnv()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, CatalogFile, cfg.CatalogSource)
	assert.Equal(t, "/etc/dockmate/vendors.yaml", cfg.CatalogFile)
	assert.Equal(t, 14, cfg.WindowDays)
	assert.True(t, cfg.RequireBoatLength)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "America/Halifax", cfg.MarinaTimezone)
}

func TestLocation(t *testing.T) {
	cfg := &Config{MarinaTimezone: "UTC"}

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestFromEnv_BadNumbersFallBack(t *testing.T) {
	t.Setenv("WINDOW_DAYS", "two weeks")
	t.Setenv("SESSION_TTL", "forever")

	cfg := FromEnv()

	assert.Equal(t, 30, cfg.WindowDays)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"catalog source", func(c *Config) { c.CatalogSource = "s3" }},
		{"window", func(c *Config) { c.WindowDays = 0 }},
		{"max window", func(c *Config) { c.MaxWindowDays = 7; c.WindowDays = 14 }},
		{"timezone", func(c *Config) { c.MarinaTimezone = "Mars/Olympus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromEnv()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "dockmate", DBSSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=dockmate sslmode=disable", cfg.DSN())
}
