package config

import "errors"

// Errors returned while resolving and validating the configuration.
var (
	// ErrConfigMissing indicates that a required setting is absent from the
	// environment, the configuration file and the defaults. The wrapping
	// error names the missing key.
	ErrConfigMissing = errors.New("required configuration is missing")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a negative concurrency limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
