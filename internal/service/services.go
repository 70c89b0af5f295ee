package service

import (
	"github.com/MKhiriev/go-merge-relay/internal/adapter"
	"github.com/MKhiriev/go-merge-relay/internal/config"
	"github.com/MKhiriev/go-merge-relay/internal/logger"
)

type Services struct {
	MergeService MergeService
	RelayService RelayService
}

func NewServices(fetcher adapter.Fetcher, cfg config.Upstream, logger *logger.Logger) *Services {
	mergeService := NewMergeService(fetcher, logger)

	return &Services{
		MergeService: mergeService,
		RelayService: NewRelayService(mergeService, cfg, logger),
	}
}
