// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-merge-relay application. It is resolved once at startup from the
// process environment, the flat configuration file and built-in defaults,
// and is never modified afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Upstream describes the remote documents merged by the relay routes.
	Upstream Upstream

	// App holds application-level settings such as the log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound HTTP client used to fetch
	// remote documents.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// ConfigFilePath is the path of the flat key=value configuration file
	// consulted for every key that is absent from the environment.
	// Env: CONFIG_FILE
	ConfigFilePath string `env:"CONFIG_FILE"`
}

// Upstream holds the base URL and the three URL lists served by the relay.
// Its fields carry no struct tags: they are filled by [Resolver.Resolve]
// (see resolveUpstream), not by caarlos0/env.
type Upstream struct {
	// BaseURL is prepended verbatim to every percent-encoded entry of
	// SubURLs. Required.
	// Env: BASE_URL
	BaseURL string

	// SubURLs are paths relative to BaseURL merged by the /sub route.
	// Env: SUB_URLS (comma-separated)
	SubURLs URLList

	// UpURLs are absolute URLs merged by the /up route.
	// Env: UP_URLS (comma-separated)
	UpURLs URLList

	// ReURLs are absolute URLs merged by the /re route.
	// Env: RE_URLS (comma-separated)
	ReURLs URLList
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimal zerolog level emitted by the application
	// (e.g. "debug", "info", "warn").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadHeaderTimeout bounds the time allowed to read request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// WriteTimeout bounds the whole response cycle, including every remote
	// fetch of a merge. Zero means no limit.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// IdleTimeout bounds how long a keep-alive connection may stay idle.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// ShutdownTimeout is how long in-flight requests are given to finish
	// after a termination signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxConcurrentRequests limits how many requests are handled at once.
	// 1 processes requests strictly one after another; 0 disables the limit.
	// Env: SERVER_MAX_CONCURRENT_REQUESTS
	MaxConcurrentRequests int `env:"MAX_CONCURRENT_REQUESTS" envDefault:"1"`
}

// Adapter holds settings of the outbound HTTP client.
type Adapter struct {
	// RequestTimeout is the maximum duration of a single remote GET,
	// including reading the response body (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every remote GET.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Configuration file (CONFIG_FILE, default "conf.env")
//  3. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if the final
// config fails validation (e.g. BASE_URL is missing everywhere).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}
