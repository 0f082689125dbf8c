package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-model-viewer/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, email, name, password_hash, created_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, email, name, password_hash, created_at;`

	findUserByEmail = `SELECT id, email, name, password_hash, created_at
    FROM users
    WHERE email = $1;`
)

const modelsTable = "models"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func ownedModel(ownerID, modelID string) sq.Eq {
	return sq.Eq{"id": modelID, "owner_id": ownerID}
}

func buildListModelsQuery(ownerID string) (string, []any, error) {
	query, args, err := psql.
		Select("id", "name", "created_at", "thumbnail").
		From(modelsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertModelQuery(model models.Model) (string, []any, error) {
	views := model.SavedViews
	if views == nil {
		views = []models.SavedView{}
	}
	viewsJSON, err := json.Marshal(views)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := psql.
		Insert(modelsTable).
		Columns("id", "owner_id", "name", "file_url", "thumbnail", "created_at", "saved_views").
		Values(model.ID, model.OwnerID, model.Name, model.FileURL, model.Thumbnail, model.CreatedAt,
			sq.Expr("?::jsonb", string(viewsJSON))).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetModelQuery(ownerID, modelID string) (string, []any, error) {
	query, args, err := psql.
		Select("id", "owner_id", "name", "file_url", "thumbnail", "created_at", "updated_at", "saved_views").
		From(modelsTable).
		Where(ownedModel(ownerID, modelID)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateModelQuery sets only the present fields of patch and always
// stamps updated_at.
func buildUpdateModelQuery(ownerID, modelID string, patch models.ModelPatch, updatedAt time.Time) (string, []any, error) {
	builder := psql.Update(modelsTable)
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.FileURL != nil {
		builder = builder.Set("file_url", *patch.FileURL)
	}

	query, args, err := builder.
		Set("updated_at", updatedAt).
		Where(ownedModel(ownerID, modelID)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteModelQuery(ownerID, modelID string) (string, []any, error) {
	query, args, err := psql.
		Delete(modelsTable).
		Where(ownedModel(ownerID, modelID)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildAppendViewQuery concatenates a one-element JSONB array onto
// saved_views, so the append is a single-row atomic update.
func buildAppendViewQuery(ownerID, modelID string, view models.SavedView) (string, []any, error) {
	viewJSON, err := json.Marshal([]models.SavedView{view})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := psql.
		Update(modelsTable).
		Set("saved_views", sq.Expr("saved_views || ?::jsonb", string(viewJSON))).
		Where(ownedModel(ownerID, modelID)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
