package http

import (
	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/metrics"
	"github.com/MKhiriev/go-model-viewer/internal/service"
)

type Handler struct {
	services *service.Services

	app    config.App
	server config.Server

	maxUploadSize int64

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      cfg.App,
		server:   cfg.Server,

		maxUploadSize: cfg.Storage.Assets.MaxUploadSize,
		metrics:       metrics,
		logger:        logger,
	}
}
