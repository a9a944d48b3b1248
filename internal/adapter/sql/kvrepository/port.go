package kvrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/webrequest.net/internal/core/ports/primary"
	"gitlab.com/webrequest.net/internal/core/ports/secondary"
	querybuilder "gitlab.com/webrequest.net/internal/utils"
)

var _ secondary.KeyValueStore = (*Repository)(nil)

const (
	tableName = "local_storage"
	colKey    = "storage_key"
	colValue  = "storage_value"
	colTime   = "updated_at"
)

// Repository keeps the storage area in a key/value table. It works with any
// driver that understands INSERT ... ON CONFLICT (PostgreSQL, SQLite).
type Repository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// New creates a SQL backed key-value store. schema qualifies the table
// ("public" for PostgreSQL, "main" or "" for SQLite).
func New(db *sqlx.DB, logger primary.Logger, schema string) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (r *Repository) table() string {
	if r.schema == "" {
		return tableName
	}
	return r.schema + "." + tableName
}

// Migrate creates the storage table when it does not exist
func (r *Repository) Migrate(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			%s TEXT PRIMARY KEY,
			%s TEXT NOT NULL,
			%s TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, r.table(), colKey, colValue, colTime)

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		r.logger.Error("Failed to create storage table", "table", r.table(), "error", err)
		return fmt.Errorf("failed to create storage table: %w", err)
	}
	return nil
}

// Get retrieves the value stored under key
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := querybuilder.NewQueryBuilder(r.schema).
		Select(colValue).
		From(tableName).
		Where(fmt.Sprintf("%s = ?", colKey), key).
		Build()
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.db.GetContext(ctx, &value, r.db.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		r.logger.Error("Failed to get value", "key", key, "error", err)
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key in a single statement
func (r *Repository) Set(ctx context.Context, key string, value string) error {
	query, args, err := querybuilder.NewQueryBuilder(r.schema).
		Insert(colKey, colValue).
		Into(tableName).
		Values(key, value).
		OnConflict(colKey).
		SetExclude(colValue, colTime).
		Build()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to set value", "key", key, "error", err)
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (r *Repository) Delete(ctx context.Context, key string) error {
	query, args, err := querybuilder.NewQueryBuilder(r.schema).
		Delete(tableName).
		Where(fmt.Sprintf("%s = ?", colKey), key).
		Build()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to delete value", "key", key, "error", err)
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
