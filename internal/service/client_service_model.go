package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-model-viewer/internal/adapter"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/validators"
	"github.com/MKhiriev/go-model-viewer/models"
)

type clientModelService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientModelService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientModelService {
	return &clientModelService{adapter: serverAdapter, logger: logger}
}

func (c *clientModelService) List(ctx context.Context) ([]models.ModelSummary, error) {
	summaries, err := c.adapter.ListModels(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return summaries, nil
}

func (c *clientModelService) Get(ctx context.Context, modelID string) (models.Model, error) {
	model, err := c.adapter.GetModel(ctx, modelID)
	if err != nil {
		return models.Model{}, mapAdapterError(err)
	}
	return model, nil
}

func (c *clientModelService) Create(ctx context.Context, req models.CreateModelRequest) (models.Model, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.FileURL = strings.TrimSpace(req.FileURL)
	if req.Name == "" || req.FileURL == "" {
		return models.Model{}, ErrInvalidDataProvided
	}

	model, err := c.adapter.CreateModel(ctx, req)
	if err != nil {
		return models.Model{}, mapAdapterError(err)
	}
	return model, nil
}

func (c *clientModelService) Rename(ctx context.Context, modelID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyName)
	}

	if err := c.adapter.UpdateModel(ctx, modelID, models.ModelPatch{Name: &name}); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (c *clientModelService) Delete(ctx context.Context, modelID string) error {
	if err := c.adapter.DeleteModel(ctx, modelID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (c *clientModelService) AddView(ctx context.Context, modelID, name string, pose models.CameraPose) (models.SavedView, error) {
	view, err := c.adapter.AddView(ctx, modelID, models.AddViewRequest{Name: name, CameraPosition: &pose})
	if err != nil {
		return models.SavedView{}, mapAdapterError(err)
	}
	return view, nil
}

// UploadAndCreate names the record after the file when name is blank.
func (c *clientModelService) UploadAndCreate(ctx context.Context, name, path string) (models.Model, error) {
	if err := validators.ValidateModelFileName(path); err != nil {
		return models.Model{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	fileURL, err := c.adapter.UploadAsset(ctx, path)
	if err != nil {
		return models.Model{}, mapAdapterError(err)
	}
	logger.FromContext(ctx).Debug().Str("file_url", fileURL).Msg("asset uploaded")

	return c.Create(ctx, models.CreateModelRequest{Name: name, FileURL: fileURL})
}
