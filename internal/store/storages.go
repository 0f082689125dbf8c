package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
)

// Storages groups the server-side repositories. AssetStorage is nil when no
// object storage endpoint is configured.
type Storages struct {
	UserRepository  UserRepository
	ModelRepository ModelRepository
	AssetStorage    AssetStorage

	closers []func(ctx context.Context) error
}

// NewStorages selects the model record backend by DSN scheme
// ("postgres://", "postgresql://" or "mongodb://", "mongodb+srv://"),
// prepares its schema and connects the optional object storage.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	storages := &Storages{}

	switch backendOf(cfg.DB.DSN) {
	case backendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		storages.UserRepository = NewUserRepository(db, logger)
		storages.ModelRepository = NewModelRepository(db, logger)
		storages.closers = append(storages.closers, func(context.Context) error { return db.Close() })

	case backendMongo:
		db, err := NewConnectMongo(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("mongo connection error: %w", err)
		}
		if err = db.EnsureIndexes(ctx); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("mongo indexes failed: %w", err)
		}
		storages.UserRepository = NewMongoUserRepository(db, logger)
		storages.ModelRepository = NewMongoModelRepository(db, logger)
		storages.closers = append(storages.closers, db.Close)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DB.DSN))
	}

	if cfg.Assets.Enabled() {
		assets, err := NewMinioAssetStorage(ctx, cfg.Assets, logger)
		if err != nil {
			_ = storages.Close(ctx)
			return nil, fmt.Errorf("object storage error: %w", err)
		}
		storages.AssetStorage = assets
	}

	return storages, nil
}

// Close releases every opened connection.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn(ctx))
	}
	return errors.Join(errs...)
}

type backend int

const (
	backendUnknown backend = iota
	backendPostgres
	backendMongo
)

func backendOf(dsn string) backend {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return backendPostgres
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return backendMongo
	default:
		return backendUnknown
	}
}

// redactDSN keeps only the scheme so credentials never reach the logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "…"
	}
	return ""
}
