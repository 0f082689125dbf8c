package service

import (
	"context"

	"github.com/MKhiriev/go-model-viewer/internal/adapter"
)

type clientAppInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{adapter: serverAdapter}
}

func (c *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.GetAppVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	if version == "" {
		return "", ErrVersionIsNotSpecified
	}
	return version, nil
}
