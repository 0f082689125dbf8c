package service

import (
	"context"

	"github.com/MKhiriev/go-model-viewer/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration,
// authentication and the credential kept between runs.
type ClientAuthService interface {
	// Register creates an account on the server and persists the issued
	// credential locally.
	Register(ctx context.Context, user models.User) (models.UserSummary, error)

	// Login authenticates against the server and persists the issued
	// credential locally.
	Login(ctx context.Context, user models.User) (models.UserSummary, error)

	// Restore loads the locally saved credential, drops it when expired and
	// confirms it with the server. Returns ErrNoSavedSession when the user
	// has to log in again.
	Restore(ctx context.Context) (models.UserSummary, error)

	// Logout expires the credential on the server and forgets it locally.
	Logout(ctx context.Context) error
}

// ClientModelService defines the client-side contract for browsing model
// records and saving camera views.
type ClientModelService interface {
	List(ctx context.Context) ([]models.ModelSummary, error)
	Get(ctx context.Context, modelID string) (models.Model, error)
	Create(ctx context.Context, req models.CreateModelRequest) (models.Model, error)
	Rename(ctx context.Context, modelID, name string) error
	Delete(ctx context.Context, modelID string) error

	// AddView saves pose under name on the record identified by modelID.
	AddView(ctx context.Context, modelID, name string, pose models.CameraPose) (models.SavedView, error)

	// UploadAndCreate uploads the local file at path and registers a model
	// record pointing at it.
	UploadAndCreate(ctx context.Context, name, path string) (models.Model, error)
}

// ClientAppInfoService reports version information about the server.
type ClientAppInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}
