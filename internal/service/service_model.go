package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/utils"
	"github.com/MKhiriev/go-model-viewer/models"
)

type idGenerator interface {
	Generate() string
}

type modelService struct {
	modelRepository store.ModelRepository

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewModelService(modelRepository store.ModelRepository, logger *logger.Logger) ModelService {
	return &modelService{
		modelRepository: modelRepository,
		ids:             utils.NewUUIDGenerator(),
		now:             time.Now,
		logger:          logger,
	}
}

func (m *modelService) List(ctx context.Context, ownerID string) ([]models.ModelSummary, error) {
	return m.modelRepository.ListModels(ctx, ownerID)
}

func (m *modelService) Create(ctx context.Context, ownerID string, req models.CreateModelRequest) (models.Model, error) {
	model := models.Model{
		ID:         m.ids.Generate(),
		OwnerID:    ownerID,
		Name:       req.Name,
		FileURL:    req.FileURL,
		Thumbnail:  req.Thumbnail,
		CreatedAt:  m.now().UTC(),
		SavedViews: []models.SavedView{},
	}

	if err := m.modelRepository.CreateModel(ctx, model); err != nil {
		return models.Model{}, fmt.Errorf("model creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("model_id", model.ID).Msg("model created")
	return model, nil
}

// Get treats a malformed identifier as a miss.
func (m *modelService) Get(ctx context.Context, ownerID, modelID string) (models.Model, error) {
	if !utils.IsValidUUID(modelID) {
		return models.Model{}, store.ErrModelNotFound
	}
	return m.modelRepository.GetModel(ctx, ownerID, modelID)
}

func (m *modelService) Update(ctx context.Context, ownerID, modelID string, patch models.ModelPatch) error {
	if !utils.IsValidUUID(modelID) {
		return store.ErrModelNotFound
	}
	return m.modelRepository.UpdateModel(ctx, ownerID, modelID, patch.Normalize(), m.now().UTC())
}

func (m *modelService) Delete(ctx context.Context, ownerID, modelID string) error {
	if !utils.IsValidUUID(modelID) {
		return store.ErrModelNotFound
	}
	return m.modelRepository.DeleteModel(ctx, ownerID, modelID)
}

// AddView rejects a malformed identifier with ErrInvalidModelID before the
// store is touched.
func (m *modelService) AddView(ctx context.Context, ownerID, modelID string, req models.AddViewRequest) (models.SavedView, error) {
	if !utils.IsValidUUID(modelID) {
		return models.SavedView{}, ErrInvalidModelID
	}

	view := models.SavedView{
		ID:        m.ids.Generate(),
		Name:      req.Name,
		CreatedAt: m.now().UTC(),
	}
	if req.CameraPosition != nil {
		view.Position = req.CameraPosition.Position
		view.Target = req.CameraPosition.Target
	}

	if err := m.modelRepository.AppendView(ctx, ownerID, modelID, view); err != nil {
		return models.SavedView{}, err
	}

	logger.FromContext(ctx).Info().Str("model_id", modelID).Str("view_id", view.ID).Msg("view saved")
	return view, nil
}
