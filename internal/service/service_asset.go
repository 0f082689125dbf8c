package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/utils"
	"github.com/MKhiriev/go-model-viewer/internal/validators"
	"github.com/MKhiriev/go-model-viewer/models"
)

// AssetURLPrefix is the server-relative path under which stored assets are
// served back to clients.
const AssetURLPrefix = "/api/assets/"

var contentTypes = map[string]string{
	".glb":  "model/gltf-binary",
	".gltf": "model/gltf+json",
	".obj":  "model/obj",
}

type assetService struct {
	storage store.AssetStorage
	maxSize int64
	ids     idGenerator

	logger *logger.Logger
}

// NewAssetService returns an AssetService over storage. A nil storage yields
// a service whose operations fail with ErrAssetStorageDisabled.
func NewAssetService(storage store.AssetStorage, cfg config.Assets, logger *logger.Logger) AssetService {
	return &assetService{
		storage: storage,
		maxSize: cfg.MaxUploadSize,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (s *assetService) Enabled() bool {
	return s.storage != nil
}

func (s *assetService) Upload(ctx context.Context, ownerID string, upload models.AssetUpload) (string, error) {
	if upload.Body != nil {
		defer upload.Body.Close()
	}
	if !s.Enabled() {
		return "", ErrAssetStorageDisabled
	}

	if err := validators.ValidateModelFileName(upload.FileName); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if upload.Body == nil || upload.Size <= 0 {
		return "", fmt.Errorf("%w: empty file", ErrInvalidDataProvided)
	}
	if s.maxSize > 0 && upload.Size > s.maxSize {
		return "", ErrAssetTooLarge
	}

	ext := strings.ToLower(filepath.Ext(upload.FileName))
	key := ownerID + "/" + s.ids.Generate() + ext

	err := s.storage.PutAsset(ctx, models.Asset{
		Key:         key,
		ContentType: contentTypes[ext],
		Size:        upload.Size,
		Body:        upload.Body,
	})
	if err != nil {
		return "", fmt.Errorf("asset upload ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("key", key).Int64("size", upload.Size).Msg("asset stored")
	return AssetURLPrefix + key, nil
}

func (s *assetService) Open(ctx context.Context, ownerID, key string) (models.Asset, error) {
	if !s.Enabled() {
		return models.Asset{}, ErrAssetStorageDisabled
	}
	if ownerID == "" || !strings.HasPrefix(key, ownerID+"/") || strings.Contains(key, "..") {
		return models.Asset{}, store.ErrAssetNotFound
	}
	return s.storage.GetAsset(ctx, key)
}
