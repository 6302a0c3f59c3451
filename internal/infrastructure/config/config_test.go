package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"TEXTILE_APP_NAME":                os.Getenv("TEXTILE_APP_NAME"),
		"TEXTILE_APP_ENV":                 os.Getenv("TEXTILE_APP_ENV"),
		"TEXTILE_APP_PORT":                os.Getenv("TEXTILE_APP_PORT"),
		"TEXTILE_DATABASE_DRIVER":         os.Getenv("TEXTILE_DATABASE_DRIVER"),
		"TEXTILE_DATABASE_HOST":           os.Getenv("TEXTILE_DATABASE_HOST"),
		"TEXTILE_DATABASE_PORT":           os.Getenv("TEXTILE_DATABASE_PORT"),
		"TEXTILE_DATABASE_USER":           os.Getenv("TEXTILE_DATABASE_USER"),
		"TEXTILE_DATABASE_PASSWORD":       os.Getenv("TEXTILE_DATABASE_PASSWORD"),
		"TEXTILE_DATABASE_DBNAME":         os.Getenv("TEXTILE_DATABASE_DBNAME"),
		"TEXTILE_DATABASE_SSLMODE":        os.Getenv("TEXTILE_DATABASE_SSLMODE"),
		"TEXTILE_DATABASE_MAX_OPEN_CONNS": os.Getenv("TEXTILE_DATABASE_MAX_OPEN_CONNS"),
		"TEXTILE_DATABASE_MAX_IDLE_CONNS": os.Getenv("TEXTILE_DATABASE_MAX_IDLE_CONNS"),
		"TEXTILE_REDIS_ENABLED":           os.Getenv("TEXTILE_REDIS_ENABLED"),
		"TEXTILE_JWT_SECRET":              os.Getenv("TEXTILE_JWT_SECRET"),
		"TEXTILE_SCHEDULER_SWEEP_HOUR":    os.Getenv("TEXTILE_SCHEDULER_SWEEP_HOUR"),
		"TEXTILE_SCHEDULER_SWEEP_MINUTE":  os.Getenv("TEXTILE_SCHEDULER_SWEEP_MINUTE"),
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

		assert.Equal(t, "textile-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "textile", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "textile-backend", cfg.JWT.Issuer)
		assert.Equal(t, 10, cfg.JWT.MaxRefreshCount)
		assert.Equal(t, 1, cfg.Scheduler.SweepHour)
		assert.Equal(t, 0, cfg.Scheduler.SweepMinute)
		assert.Equal(t, time.Minute, cfg.Scheduler.SweepCheckInterval)
	})

	t.Run("scheduler sweep time from environment, midnight allowed", func(t *testing.T) {
		clearEnv()
		os.Setenv("TEXTILE_SCHEDULER_SWEEP_HOUR", "0")
		os.Setenv("TEXTILE_SCHEDULER_SWEEP_MINUTE", "30")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Scheduler.SweepHour)
		assert.Equal(t, 30, cfg.Scheduler.SweepMinute)
	})

	t.Run("rejects sweep hour outside the 24h clock", func(t *testing.T) {
		clearEnv()
		os.Setenv("TEXTILE_SCHEDULER_SWEEP_HOUR", "24")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheduler.sweep_hour")
	})

	t.Run("loads values from environment variables with TEXTILE prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("TEXTILE_APP_NAME", "test-app")
		os.Setenv("TEXTILE_APP_ENV", "testing")
		os.Setenv("TEXTILE_APP_PORT", "9000")
		os.Setenv("TEXTILE_DATABASE_HOST", "testdb.local")
		os.Setenv("TEXTILE_DATABASE_PORT", "5433")
		os.Setenv("TEXTILE_DATABASE_USER", "testuser")
		os.Setenv("TEXTILE_DATABASE_PASSWORD", "testpass")
		os.Setenv("TEXTILE_DATABASE_DBNAME", "testdb")
		os.Setenv("TEXTILE_DATABASE_SSLMODE", "require")
		os.Setenv("TEXTILE_REDIS_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.True(t, cfg.Redis.Enabled)
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		clearEnv()
		os.Setenv("TEXTILE_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("TEXTILE_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("TEXTILE_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("TEXTILE_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		clearEnv()
		os.Setenv("TEXTILE_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"TEXTILE_APP_ENV":           os.Getenv("TEXTILE_APP_ENV"),
		"TEXTILE_DATABASE_DRIVER":   os.Getenv("TEXTILE_DATABASE_DRIVER"),
		"TEXTILE_JWT_SECRET":        os.Getenv("TEXTILE_JWT_SECRET"),
		"TEXTILE_DATABASE_PASSWORD": os.Getenv("TEXTILE_DATABASE_PASSWORD"),
		"TEXTILE_DATABASE_SSLMODE":  os.Getenv("TEXTILE_DATABASE_SSLMODE"),
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

	setValidProductionBase := func() {
		os.Setenv("TEXTILE_APP_ENV", "production")
		os.Setenv("TEXTILE_JWT_SECRET", "a-very-long-signing-secret-of-32-or-more-chars")
		os.Setenv("TEXTILE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("TEXTILE_DATABASE_SSLMODE", "require")
	}

	t.Run("requires jwt.secret in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("TEXTILE_JWT_SECRET")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required in production")
	})

	t.Run("requires jwt.secret at least 32 characters in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("TEXTILE_JWT_SECRET", "short-secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret must be at least 32 characters")
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("TEXTILE_DATABASE_PASSWORD")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("TEXTILE_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("rejects sqlite driver in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("TEXTILE_DATABASE_DRIVER", "sqlite")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver must be postgres in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
		assert.True(t, cfg.IsProduction())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid postgres DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "pass%40word%23123")
	})

	t.Run("sqlite driver uses file path as DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver: "sqlite",
			DBName: "textile_test.db",
		}

		assert.Equal(t, "textile_test.db", cfg.DSN())
	})

	t.Run("sqlite driver without dbname uses shared in-memory database", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: "sqlite"}

		assert.Equal(t, "file::memory:?cache=shared", cfg.DSN())
	})
}
