package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/handler"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/server"
	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("model-viewer-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log := logger.New("model-viewer-server", cfg.Log)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("environment", cfg.App.Environment).
		Bool("assets", cfg.Storage.Assets.Enabled()).
		Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(ctx); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
