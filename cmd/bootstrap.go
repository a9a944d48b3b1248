package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"gitlab.com/webrequest.net/internal/adapter/memory/kvstore"
	"gitlab.com/webrequest.net/internal/adapter/redis/kvport"
	"gitlab.com/webrequest.net/internal/adapter/sql/kvrepository"
	"gitlab.com/webrequest.net/internal/config"
	"gitlab.com/webrequest.net/internal/core/ports/primary"
	"gitlab.com/webrequest.net/internal/core/ports/secondary"
	"gitlab.com/webrequest.net/internal/core/services/submission"
	"gitlab.com/webrequest.net/internal/core/services/validator"
	"gitlab.com/webrequest.net/internal/domain"
	"gitlab.com/webrequest.net/internal/static/errs"
)

// setupStorage opens the configured key-value backend. The returned func
// releases its connections.
func setupStorage(ctx context.Context, cfg *config.AppConfig, logger primary.Logger) (secondary.KeyValueStore, func(), error) {
	switch cfg.StorageConfig.Driver {
	case config.DriverMemory:
		logger.Warn("Using in-memory storage, submissions are lost on restart")
		return kvstore.New(), func() {}, nil

	case config.DriverRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConfig.Url,
			Password: cfg.RedisConfig.Password,
			DB:       cfg.RedisConfig.DB,
		})
		repo := kvport.NewKeyValueRepository(redisClient, cfg.RedisConfig.KeyPrefix, logger)
		if err := repo.Ping(ctx); err != nil {
			_ = redisClient.Close()
			return nil, nil, err
		}
		return repo, func() { _ = redisClient.Close() }, nil

	case config.DriverPostgres:
		return setupDatabase(ctx, "postgres", cfg.PostgresConfig.Url, cfg.PostgresConfig.Schema, logger)

	case config.DriverSqlite:
		return setupDatabase(ctx, kvrepository.SQLiteDriver, cfg.SqliteConfig.Path, "", logger)
	}

	return nil, nil, fmt.Errorf("%w: %q", errs.ErrUnknownDriver, cfg.StorageConfig.Driver)
}

// setupDatabase opens a SQL database and makes sure the storage table exists
func setupDatabase(ctx context.Context, driver, dsn, schema string, logger primary.Logger) (secondary.KeyValueStore, func(), error) {
	db, err := kvrepository.Open(ctx, driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	repo := kvrepository.New(db, logger, schema)
	if err := repo.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return repo, func() { _ = db.Close() }, nil
}

// setupRules returns the default rule set, or the one in RULES_FILE
func setupRules(cfg *config.FormConfig) (*domain.RuleSet, error) {
	if cfg.RulesFile == "" {
		return validator.DefaultRules(), nil
	}

	f, err := os.Open(cfg.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open rules file: %w", err)
	}
	defer f.Close()

	return validator.LoadRules(f)
}

// setupLocation resolves the display time zone
func setupLocation(cfg *config.DisplayConfig) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", cfg.TimeZone, err)
	}
	return loc, nil
}

// newSubmissionStore wires the store the same way for every command
func newSubmissionStore(kv secondary.KeyValueStore, cfg *config.AppConfig, logger primary.Logger) *submission.SubmissionStore {
	return submission.NewSubmissionStore(kv, logger,
		submission.WithMaxRecords(cfg.StorageConfig.MaxRecords),
		submission.WithDrafts(cfg.DraftConfig.Enabled),
	)
}
