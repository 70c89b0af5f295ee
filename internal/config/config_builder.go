package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults, applied to every field left empty by the environment
// and the configuration file.
const (
	DefaultHTTPAddress       = "0.0.0.0:8080"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultIdleTimeout       = 60 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultRequestTimeout    = 30 * time.Second
	DefaultUserAgent         = "go-merge-relay"
	DefaultLogLevel          = "info"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 2),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// withEnv resolves every setting from the environment and, for keys the
// environment lacks, from the configuration file. The upstream settings go
// through [Resolver.Resolve]; the remaining tagged settings are parsed by
// caarlos0/env from the same merged view.
func (b *configBuilder) withEnv() *configBuilder {
	path := ConfigFilePath()
	resolver := NewResolver(path)

	upstream, err := resolveUpstream(resolver)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	envCfg := &StructuredConfig{Upstream: upstream}
	if err = parseEnv(envCfg, resolver.Environ()); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if envCfg.ConfigFilePath == "" {
		envCfg.ConfigFilePath = path
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			IdleTimeout:       DefaultIdleTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
		ConfigFilePath: defaultConfigFile,
	})
	return b
}
