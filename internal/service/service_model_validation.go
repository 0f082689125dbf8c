package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-viewer/internal/validators"
	"github.com/MKhiriev/go-model-viewer/models"
)

// ModelServiceWrapper defines middleware composition for ModelService.
// Implementations wrap an existing ModelService to add behavior such as
// logging or validating.
type ModelServiceWrapper interface {
	Wrap(ModelService) ModelService // returns a decorated ModelService applying additional behavior
}

// ModelValidationService rejects malformed create and add-view payloads with
// ErrInvalidDataProvided before they reach the wrapped service.
type ModelValidationService struct {
	inner     ModelService
	validator validators.Validator
}

func NewModelValidationService() ModelServiceWrapper {
	return &ModelValidationService{
		validator: validators.NewModelValidator(),
	}
}

func (v *ModelValidationService) List(ctx context.Context, ownerID string) ([]models.ModelSummary, error) {
	return v.inner.List(ctx, ownerID)
}

func (v *ModelValidationService) Create(ctx context.Context, ownerID string, req models.CreateModelRequest) (models.Model, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Model{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, ownerID, req)
}

func (v *ModelValidationService) Get(ctx context.Context, ownerID, modelID string) (models.Model, error) {
	return v.inner.Get(ctx, ownerID, modelID)
}

func (v *ModelValidationService) Update(ctx context.Context, ownerID, modelID string, patch models.ModelPatch) error {
	return v.inner.Update(ctx, ownerID, modelID, patch)
}

func (v *ModelValidationService) Delete(ctx context.Context, ownerID, modelID string) error {
	return v.inner.Delete(ctx, ownerID, modelID)
}

func (v *ModelValidationService) AddView(ctx context.Context, ownerID, modelID string, req models.AddViewRequest) (models.SavedView, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SavedView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddView(ctx, ownerID, modelID, req)
}

func (v *ModelValidationService) Wrap(wrapped ModelService) ModelService {
	v.inner = wrapped
	return v
}
