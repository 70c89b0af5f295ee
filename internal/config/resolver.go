// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// configFileEnv names the environment variable that overrides the path
	// of the configuration file.
	configFileEnv = "CONFIG_FILE"

	// defaultConfigFile is used when CONFIG_FILE is not set.
	defaultConfigFile = "conf.env"

	baseURLKey = "BASE_URL"
	subURLsKey = "SUB_URLS"
	upURLsKey  = "UP_URLS"
	reURLsKey  = "RE_URLS"
)

// Resolver resolves named settings with the precedence
// environment variable > configuration file > supplied default.
//
// The configuration file is read once, in [NewResolver]; the environment is
// consulted on every call.
type Resolver struct {
	fileValues map[string]string

	lookupEnv func(string) (string, bool)
	environ   func() []string
}

// NewResolver reads the configuration file at path and returns a resolver
// backed by it and by the process environment. A missing, unreadable or
// malformed file is treated as empty.
func NewResolver(path string) *Resolver {
	fileValues, err := parseEnvFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("config file ignored")
		}
		fileValues = map[string]string{}
	}

	return &Resolver{
		fileValues: fileValues,
		lookupEnv:  os.LookupEnv,
		environ:    os.Environ,
	}
}

// ConfigFilePath returns the configuration file path named by CONFIG_FILE,
// or "conf.env" when the variable is not set.
func ConfigFilePath() string {
	if path, ok := os.LookupEnv(configFileEnv); ok && strings.TrimSpace(path) != "" {
		return strings.TrimSpace(path)
	}
	return defaultConfigFile
}

type resolveOptions struct {
	defaultValue string
	hasDefault   bool
	required     bool
}

// ResolveOption customises a single [Resolver.Resolve] call.
type ResolveOption func(*resolveOptions)

// WithDefault makes Resolve return value when the key is absent from both the
// environment and the configuration file. An empty value is a valid default.
func WithDefault(value string) ResolveOption {
	return func(o *resolveOptions) {
		o.defaultValue = value
		o.hasDefault = true
	}
}

// Required makes Resolve fail with [ErrConfigMissing] when the key is absent
// everywhere and no default was supplied.
func Required() ResolveOption {
	return func(o *resolveOptions) {
		o.required = true
	}
}

// Lookup returns the value of key and whether it was found.
//
// A set environment variable wins even when empty; its value is trimmed.
// A file entry counts only if it is non-empty after trimming.
func (r *Resolver) Lookup(key string) (string, bool) {
	if value, ok := r.lookupEnv(key); ok {
		return strings.TrimSpace(value), true
	}

	if value := strings.TrimSpace(r.fileValues[strings.ToUpper(key)]); value != "" {
		return value, true
	}

	return "", false
}

// Resolve returns the value of key following the precedence
// environment > configuration file > default.
//
// If the key is absent everywhere, no default was given and [Required] was
// passed, the returned error wraps [ErrConfigMissing] and names the key.
// Otherwise an absent key yields an empty string and a nil error.
func (r *Resolver) Resolve(key string, opts ...ResolveOption) (string, error) {
	if value, ok := r.Lookup(key); ok {
		return value, nil
	}

	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.hasDefault {
		return o.defaultValue, nil
	}
	if o.required {
		return "", fmt.Errorf("%w: %s", ErrConfigMissing, key)
	}

	return "", nil
}

// Environ returns every setting known to the resolver as a flat map: the
// non-empty configuration file entries overlaid by the (trimmed) process
// environment. It is the input for struct-tag based parsing.
func (r *Resolver) Environ() map[string]string {
	environ := make(map[string]string, len(r.fileValues))
	for key, value := range r.fileValues {
		if value = strings.TrimSpace(value); value != "" {
			environ[key] = value
		}
	}

	for _, kv := range r.environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		environ[key] = strings.TrimSpace(value)
	}

	return environ
}

// resolveUpstream builds the [Upstream] settings: BASE_URL is required, the
// three URL lists default to empty.
func resolveUpstream(r *Resolver) (Upstream, error) {
	baseURL, err := r.Resolve(baseURLKey, Required())
	if err != nil {
		return Upstream{}, err
	}

	upstream := Upstream{BaseURL: baseURL}
	lists := []struct {
		key  string
		dest *URLList
	}{
		{subURLsKey, &upstream.SubURLs},
		{upURLsKey, &upstream.UpURLs},
		{reURLsKey, &upstream.ReURLs},
	}
	for _, list := range lists {
		raw, err := r.Resolve(list.key, WithDefault(""))
		if err != nil {
			return Upstream{}, err
		}
		*list.dest = ParseURLList(raw)
	}

	return upstream, nil
}
