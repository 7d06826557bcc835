package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates partial configs, one per source, and merges them
// in build. Source order is priority order: mergo fills only zero fields, so
// a field set by an earlier source is never overridden by a later one.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// add appends one source, recording its read error instead of the config.
func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

// build merges the collected sources into one config and validates the
// result. Errors collected while reading the sources surface here.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("merge config sources: %w", err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	return b.add(envCfg, parseEnv(envCfg))
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags(), nil)
}

// withJSON resolves the config file path from the sources gathered so far
// (the last source naming a path wins) and, when a path is set, appends the
// parsed file as the lowest-priority source.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	return b.add(parseJSON(jsonPath))
}
