package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-model-viewer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new user. Returns ErrEmailAlreadyExists on a
	// duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with exactly this email or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ModelRepository persists model records and their embedded saved views.
// Every method filters on both the record identifier and the owner identifier.
type ModelRepository interface {
	ListModels(ctx context.Context, ownerID string) ([]models.ModelSummary, error)
	CreateModel(ctx context.Context, model models.Model) error
	GetModel(ctx context.Context, ownerID, modelID string) (models.Model, error)
	UpdateModel(ctx context.Context, ownerID, modelID string, patch models.ModelPatch, updatedAt time.Time) error
	DeleteModel(ctx context.Context, ownerID, modelID string) error
	// AppendView appends view to the record's saved views in a single atomic
	// update. Returns ErrModelNotFound when nothing matched.
	AppendView(ctx context.Context, ownerID, modelID string, view models.SavedView) error
}

// AssetStorage stores uploaded model files.
type AssetStorage interface {
	PutAsset(ctx context.Context, asset models.Asset) error
	GetAsset(ctx context.Context, key string) (models.Asset, error)
}
