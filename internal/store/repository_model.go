package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/jackc/pgerrcode"
)

// modelRepository is the PostgreSQL-backed implementation of
// [ModelRepository]. Saved views live in the JSONB column saved_views of the
// owning row.
type modelRepository struct {
	*DB
	logger *logger.Logger
}

// NewModelRepository constructs a [ModelRepository] backed by db.
func NewModelRepository(db *DB, logger *logger.Logger) ModelRepository {
	return &modelRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *modelRepository) ListModels(ctx context.Context, ownerID string) ([]models.ModelSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListModelsQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "modelRepository.ListModels").Msg("failed to create query")
		return nil, err
	}

	rows, err := m.queryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "modelRepository.ListModels").Str("owner_id", ownerID).Msg("failed to list models")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.ModelSummary, 0, 16)
	for rows.Next() {
		var s models.ModelSummary
		if err = rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.Thumbnail); err != nil {
			log.Err(err).Str("func", "modelRepository.ListModels").Msg("failed to scan model row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "modelRepository.ListModels").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

func (m *modelRepository) CreateModel(ctx context.Context, model models.Model) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertModelQuery(model)
	if err != nil {
		log.Err(err).Str("func", "modelRepository.CreateModel").Msg("failed to create query")
		return err
	}

	if _, err = m.execContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "modelRepository.CreateModel").Str("model_id", model.ID).Msg("failed to insert model")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (m *modelRepository) GetModel(ctx context.Context, ownerID, modelID string) (models.Model, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetModelQuery(ownerID, modelID)
	if err != nil {
		log.Err(err).Str("func", "modelRepository.GetModel").Msg("failed to create query")
		return models.Model{}, err
	}

	var (
		model     models.Model
		updatedAt sql.NullTime
		views     []byte
	)
	err = m.QueryRowContext(ctx, query, args...).Scan(
		&model.ID,
		&model.OwnerID,
		&model.Name,
		&model.FileURL,
		&model.Thumbnail,
		&model.CreatedAt,
		&updatedAt,
		&views,
	)
	if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return models.Model{}, ErrModelNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "modelRepository.GetModel").Str("model_id", modelID).Msg("failed to get model")
		return models.Model{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if updatedAt.Valid {
		model.UpdatedAt = &updatedAt.Time
	}

	model.SavedViews = []models.SavedView{}
	if len(views) > 0 {
		if err = json.Unmarshal(views, &model.SavedViews); err != nil {
			log.Err(err).Str("func", "modelRepository.GetModel").Str("model_id", modelID).Msg("failed to decode saved views")
			return models.Model{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
	}

	return model, nil
}

func (m *modelRepository) UpdateModel(ctx context.Context, ownerID, modelID string, patch models.ModelPatch, updatedAt time.Time) error {
	query, args, err := buildUpdateModelQuery(ownerID, modelID, patch, updatedAt)
	if err != nil {
		return err
	}

	return m.execAffectingOne(ctx, "modelRepository.UpdateModel", modelID, query, args...)
}

func (m *modelRepository) DeleteModel(ctx context.Context, ownerID, modelID string) error {
	query, args, err := buildDeleteModelQuery(ownerID, modelID)
	if err != nil {
		return err
	}

	return m.execAffectingOne(ctx, "modelRepository.DeleteModel", modelID, query, args...)
}

func (m *modelRepository) AppendView(ctx context.Context, ownerID, modelID string, view models.SavedView) error {
	query, args, err := buildAppendViewQuery(ownerID, modelID, view)
	if err != nil {
		return err
	}

	return m.execAffectingOne(ctx, "modelRepository.AppendView", modelID, query, args...)
}

// execAffectingOne executes a statement filtered by id and owner and maps
// zero affected rows to ErrModelNotFound.
func (m *modelRepository) execAffectingOne(ctx context.Context, funcName, modelID, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := m.execContext(ctx, query, args...)
	if postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return ErrModelNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Str("model_id", modelID).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrModelNotFound
	}

	return nil
}
