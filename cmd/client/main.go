package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-viewer/internal/adapter"
	"github.com/MKhiriev/go-model-viewer/internal/client"
	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/tui"
	"github.com/MKhiriev/go-model-viewer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("model-viewer-client").Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the UI, so logs go to a file only
	log := logger.NewClientLogger("model-viewer-client", cfg.Log)
	ctx := context.Background()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	baseURL, _ := adapter.NormalizeBaseURL(cfg.Adapter.HTTPAddress)

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, baseURL, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
