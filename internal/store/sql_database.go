package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-task-board/internal/config"
	"github.com/MKhiriev/go-task-board/internal/logger"
	"github.com/MKhiriev/go-task-board/migrations"
	"github.com/Masterminds/squirrel"
)

// DB wraps *sql.DB together with the driver-specific pieces the
// repositories need: a squirrel statement builder configured with the
// right placeholder format, a unique-violation detector, and an error
// classifier for retryability decisions.
type DB struct {
	*sql.DB

	driver             string
	builder            squirrel.StatementBuilderType
	uniqueViolation    func(error) bool
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens a database connection for the configured driver.
func NewDB(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
}

// Migrate applies all pending schema migrations for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Builder returns a statement builder with the placeholder format of the
// connected driver ($N for postgres, ? for sqlite).
func (db *DB) Builder() squirrel.StatementBuilderType {
	return db.builder
}

// IsUniqueViolation reports whether err is the driver's uniqueness
// constraint violation. This is the authoritative duplicate check for
// user emails and task names.
func (db *DB) IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return db.uniqueViolation(err)
}

// Classify delegates to the driver's [ErrorClassificator].
func (db *DB) Classify(err error) ErrorClassification {
	return db.errorClassificator.Classify(err)
}

// wrapDBError tags err with [ErrTransientStoreFailure] when the driver's
// classifier judges it retryable, so that callers up the stack can decide
// to retry or redirect without knowing the driver.
func (db *DB) wrapDBError(err error) error {
	if db.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTransientStoreFailure, err)
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}
