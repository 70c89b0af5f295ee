// Package http implements the HTTP surface of the relay.
//
// It wires the chi router with the fixed set of routes ("/", "/sub", "/up",
// "/re"), their handlers, and the middleware chain: panic recovery, request
// tracing, access logging, the concurrency limit and response compression.
// Handlers delegate merging to the service layer and only encode results.
package http
