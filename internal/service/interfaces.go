package service

import (
	"context"

	"github.com/MKhiriev/go-model-viewer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ModelService manages model records and their saved views. Every method is
// scoped to ownerID, which always comes from the authenticated identity.
type ModelService interface {
	List(ctx context.Context, ownerID string) ([]models.ModelSummary, error)
	Create(ctx context.Context, ownerID string, req models.CreateModelRequest) (models.Model, error)
	Get(ctx context.Context, ownerID, modelID string) (models.Model, error)
	Update(ctx context.Context, ownerID, modelID string, patch models.ModelPatch) error
	Delete(ctx context.Context, ownerID, modelID string) error

	// AddView appends a new saved view and returns it. Identical calls
	// produce distinct entries.
	AddView(ctx context.Context, ownerID, modelID string, req models.AddViewRequest) (models.SavedView, error)
}

// AssetService stores uploaded model files in object storage.
type AssetService interface {
	// Enabled reports whether an object storage backend is configured.
	Enabled() bool

	// Upload stores the file under the owner's prefix and returns the
	// server-relative locator to put in a model record.
	Upload(ctx context.Context, ownerID string, upload models.AssetUpload) (string, error)

	// Open returns the stored file. Keys outside the owner's prefix are
	// reported as missing.
	Open(ctx context.Context, ownerID, key string) (models.Asset, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
