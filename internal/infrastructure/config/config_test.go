package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"CONSOLE_APP_NAME":          os.Getenv("CONSOLE_APP_NAME"),
		"CONSOLE_APP_ENV":           os.Getenv("CONSOLE_APP_ENV"),
		"CONSOLE_APP_PORT":          os.Getenv("CONSOLE_APP_PORT"),
		"CONSOLE_DATABASE_HOST":     os.Getenv("CONSOLE_DATABASE_HOST"),
		"CONSOLE_DATABASE_PASSWORD": os.Getenv("CONSOLE_DATABASE_PASSWORD"),
		"CONSOLE_DATABASE_SSLMODE":  os.Getenv("CONSOLE_DATABASE_SSLMODE"),
		"CONSOLE_PARSER_BASE_URL":   os.Getenv("CONSOLE_PARSER_BASE_URL"),
		"CONSOLE_REDIS_HOST":        os.Getenv("CONSOLE_REDIS_HOST"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "console-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "console", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "localhost", cfg.Redis.Host)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "http://localhost:8100", cfg.Parser.BaseURL)
	})

	t.Run("env vars override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("CONSOLE_APP_PORT", "9090")
		os.Setenv("CONSOLE_DATABASE_HOST", "db.internal")
		os.Setenv("CONSOLE_PARSER_BASE_URL", "http://parser.internal:8100")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "http://parser.internal:8100", cfg.Parser.BaseURL)
	})

	t.Run("production requires database password", func(t *testing.T) {
		clearEnv()
		os.Setenv("CONSOLE_APP_ENV", "production")
		os.Setenv("CONSOLE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})

	t.Run("production rejects sslmode disable", func(t *testing.T) {
		clearEnv()
		os.Setenv("CONSOLE_APP_ENV", "production")
		os.Setenv("CONSOLE_DATABASE_PASSWORD", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "console",
		SSLMode:  "disable",
	}

	dsn := d.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters in the password are escaped.
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
