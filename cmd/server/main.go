package main

import (
	"fmt"

	"github.com/MKhiriev/go-merge-relay/internal/adapter"
	"github.com/MKhiriev/go-merge-relay/internal/config"
	"github.com/MKhiriev/go-merge-relay/internal/handler"
	"github.com/MKhiriev/go-merge-relay/internal/logger"
	"github.com/MKhiriev/go-merge-relay/internal/server"
	"github.com/MKhiriev/go-merge-relay/internal/service"
	"github.com/MKhiriev/go-merge-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("relay-server")
	log.SetAsDefault()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Info().Object("build", buildInfo).Msg("starting relay")
	log.Debug().Any("config", cfg).Msg("received configs")

	fetcher := adapter.NewHTTPFetcher(cfg.Adapter, log)
	services := service.NewServices(fetcher, cfg.Upstream, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
