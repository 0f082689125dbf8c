package service

import (
	"github.com/MKhiriev/go-model-viewer/internal/adapter"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	ModelService   ClientModelService
	AppInfoService ClientAppInfoService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		ModelService:   NewClientModelService(serverAdapter, logger),
		AppInfoService: NewClientAppInfoService(serverAdapter),
	}
}
