package viewer

import (
	"context"

	"github.com/MKhiriev/go-model-viewer/models"
)

// ModelSource loads persisted model records and appends saved views to them.
type ModelSource interface {
	Get(ctx context.Context, modelID string) (models.Model, error)
	AddView(ctx context.Context, modelID, name string, pose models.CameraPose) (models.SavedView, error)
}
