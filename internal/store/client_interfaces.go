package store

import (
	"context"

	"github.com/MKhiriev/go-model-viewer/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the terminal client's credential between runs.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	// GetSession returns ErrLocalSessionNotFound when nothing is stored.
	GetSession(ctx context.Context) (models.LocalSession, error)
	DeleteSession(ctx context.Context) error
}
