package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSystemConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DEBUG_MODE", "HTTP_PORT", "STORAGE_DRIVER", "STORAGE_MAX_RECORDS", "SUBMIT_LATENCY_MS",
		"DRAFT_AUTOSAVE_ENABLED", "DRAFT_AUTOSAVE_INTERVAL_SEC", "DISPLAY_TIMEZONE", "REDIS_KEY_PREFIX", "RULES_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := NewSystemConfig()
	assert.False(t, cfg.DebugMode)
	assert.Equal(t, 8082, cfg.HTTPConfig.Port)
	assert.Equal(t, DriverMemory, cfg.StorageConfig.Driver)
	assert.Equal(t, 500, cfg.StorageConfig.MaxRecords)
	assert.Equal(t, 1500*time.Millisecond, cfg.FormConfig.SubmitLatency)
	assert.Empty(t, cfg.FormConfig.RulesFile)
	assert.False(t, cfg.DraftConfig.Enabled)
	assert.Equal(t, 30*time.Second, cfg.DraftConfig.Interval)
	assert.Equal(t, "Local", cfg.DisplayConfig.TimeZone)
	assert.Equal(t, "webrequest:", cfg.RedisConfig.KeyPrefix)
}

func TestNewSystemConfigFromEnv(t *testing.T) {
	t.Setenv("DEBUG_MODE", "true")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", DriverSqlite)
	t.Setenv("STORAGE_MAX_RECORDS", "-4")
	t.Setenv("SUBMIT_LATENCY_MS", "0")
	t.Setenv("DRAFT_AUTOSAVE_ENABLED", "true")
	t.Setenv("DRAFT_AUTOSAVE_INTERVAL_SEC", "nope")
	t.Setenv("SQLITE_PATH", "/tmp/requests.db")

	cfg := NewSystemConfig()
	assert.True(t, cfg.DebugMode)
	assert.Equal(t, 9090, cfg.HTTPConfig.Port)
	assert.Equal(t, DriverSqlite, cfg.StorageConfig.Driver)
	assert.Zero(t, cfg.StorageConfig.MaxRecords)
	assert.Zero(t, cfg.FormConfig.SubmitLatency)
	assert.True(t, cfg.DraftConfig.Enabled)
	assert.Equal(t, 30*time.Second, cfg.DraftConfig.Interval)
	assert.Equal(t, "/tmp/requests.db", cfg.SqliteConfig.Path)
}

func TestValidate(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("REDIS_ADDR", "")
	assert.NoError(t, NewSystemConfig().Validate())

	t.Setenv("STORAGE_DRIVER", "mongo")
	assert.ErrorContains(t, NewSystemConfig().Validate(), "Driver")

	t.Setenv("STORAGE_DRIVER", DriverRedis)
	t.Setenv("REDIS_ADDR", "no-port")
	assert.ErrorContains(t, NewSystemConfig().Validate(), "Url")

	t.Setenv("REDIS_ADDR", "")
	t.Setenv("HTTP_PORT", "70000")
	assert.ErrorContains(t, NewSystemConfig().Validate(), "Port")
}
