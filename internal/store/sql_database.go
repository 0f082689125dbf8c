package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/migrations"
)

// ErrorClassificator tells transient driver failures from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a database/sql connection pool. Every call reaches the driver
// exactly once; the classifier only labels failures in the log.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the server's PostgreSQL migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateClient applies the client's SQLite migrations.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

func (db *DB) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		db.logFailure(ctx, "DB.execContext", err)
	}
	return result, err
}

func (db *DB) queryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		db.logFailure(ctx, "DB.queryContext", err)
	}
	return rows, err
}

func (db *DB) logFailure(ctx context.Context, funcName string, err error) {
	transient := db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
	logger.FromContext(ctx).Debug().Err(err).
		Str("func", funcName).
		Bool("transient", transient).
		Msg("database call failed")
}
