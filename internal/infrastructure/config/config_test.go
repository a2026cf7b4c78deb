package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "census-case-api", cfg.App.Name)
	assert.Equal(t, "8161", cfg.App.Port)
	assert.Equal(t, "casev2", cfg.Database.DBName)
	assert.Equal(t, "case.uac-qid-linked", cfg.Redis.Stream)
	assert.Equal(t, 100, cfg.Event.BatchSize)
	assert.Equal(t, 5, cfg.Event.MaxRetries)
	assert.NotZero(t, cfg.Event.PollInterval)
	assert.NotZero(t, cfg.UacQid.Timeout)
	assert.NotEmpty(t, cfg.UacQid.BaseURL)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("CENSUS_DATABASE_HOST", "db.internal")
	t.Setenv("CENSUS_APP_PORT", "9000")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "9000", cfg.App.Port)
}

func TestValidate(t *testing.T) {
	t.Run("rejects idle conns above open conns", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Database.MaxIdleConns = 50
		cfg.Database.MaxOpenConns = 10

		assert.Error(t, cfg.validate())
	})

	t.Run("production requires a database password", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.App.Env = "production"
		cfg.Database.SSLMode = "require"

		assert.Error(t, cfg.validate())
	})

	t.Run("production rejects wildcard CORS origin", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.App.Env = "production"
		cfg.Database.Password = "secret"
		cfg.Database.SSLMode = "require"
		cfg.HTTP.CORSAllowOrigins = []string{"*"}

		assert.Error(t, cfg.validate())
	})
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "casev2",
		SSLMode:  "disable",
	}

	dsn := d.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word") // special characters must be escaped
}
