package service

import (
	"fmt"

	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/store"
)

type Services struct {
	AuthService    AuthService
	ModelService   ModelService
	AssetService   AssetService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ModelService:   NewModelValidationService().Wrap(NewModelService(storages.ModelRepository, logger)),
		AssetService:   NewAssetService(storages.AssetStorage, cfg.Storage.Assets, logger),
		AppInfoService: appInfoService,
	}, nil
}
