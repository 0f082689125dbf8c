package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
)

// ClientStorages groups the terminal client's local repositories.
type ClientStorages struct {
	SessionRepository LocalSessionRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, applies the
// client migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewLocalSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
