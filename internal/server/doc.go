// Package server runs the relay's HTTP server.
//
// It owns the server lifecycle: startup with explicit timeouts, waiting for
// SIGINT, SIGTERM or SIGQUIT, and a graceful shutdown bounded by the
// configured shutdown timeout.
package server
