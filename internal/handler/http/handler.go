package http

import (
	"github.com/MKhiriev/go-merge-relay/internal/config"
	"github.com/MKhiriev/go-merge-relay/internal/logger"
	"github.com/MKhiriev/go-merge-relay/internal/service"
)

type Handler struct {
	services *service.Services

	// slots bounds the number of requests processed at once; nil means unlimited.
	slots chan struct{}

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}

	if cfg.MaxConcurrentRequests > 0 {
		h.slots = make(chan struct{}, cfg.MaxConcurrentRequests)
	}

	logger.Info().Int("max_concurrent_requests", cfg.MaxConcurrentRequests).Msg("http handler created")
	return h
}
