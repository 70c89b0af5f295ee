package server

import "context"

// Server defines the lifecycle contract of the relay server.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal is
	// received and the server has shut down, or until serving fails.
	RunServer() error

	// Shutdown gracefully stops the server. In-flight requests get until
	// ctx is done to finish; after that they are aborted.
	Shutdown(ctx context.Context) error
}
