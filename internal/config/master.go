package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

type AppConfig struct {
	DebugMode      bool
	HTTPConfig     *HTTPConfig
	StorageConfig  *StorageConfig
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	SqliteConfig   *SqliteConfig
	FormConfig     *FormConfig
	DraftConfig    *DraftConfig
	DisplayConfig  *DisplayConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		HTTPConfig:     NewHTTPConfig(),
		StorageConfig:  NewStorageConfig(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		SqliteConfig:   NewSqliteConfig(),
		FormConfig:     NewFormConfig(),
		DraftConfig:    NewDraftConfig(),
		DisplayConfig:  NewDisplayConfig(),
	}
}

// Validate checks every value read from the environment
func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
