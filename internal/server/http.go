package server

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"

	"github.com/MKhiriev/go-merge-relay/internal/config"
	"github.com/MKhiriev/go-merge-relay/internal/logger"
)

type httpServer struct {
	server *http.Server

	// cancelRequests aborts the contexts of requests still running once the
	// graceful shutdown deadline has passed.
	cancelRequests context.CancelFunc

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	baseCtx, cancel := context.WithCancel(logger.WithContext(context.Background()))

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          stdlog.New(logger, "", 0),
			BaseContext: func(net.Listener) context.Context {
				return baseCtx
			},
		},
		cancelRequests: cancel,
		logger:         logger,
	}
}

// RunServer blocks until the server is shut down. It returns nil after a
// shutdown and the listen error otherwise.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("HTTP server listening")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	err := h.server.Shutdown(ctx)
	if err == nil {
		return nil
	}

	// deadline reached with requests still running
	h.cancelRequests()
	if closeErr := h.server.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	return fmt.Errorf("HTTP server Shutdown: %w", err)
}
