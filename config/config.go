// SPDX-License-Identifier: MIT

// Package config loads and validates the roadnet YAML configuration.
//
// Example:
//
//	log:
//	  level: info
//	  development: false
//	server:
//	  addr: ":8080"
//	routing:
//	  max_distance: 0        # 0 = unlimited
//	  closed_road_weight: 0  # 0 = every road open
//	data:
//	  files: [towns.txt]
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/validation"
)

// Sentinel errors for configuration loading.
var (
	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is the root configuration document.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
	Routing RoutingConfig `yaml:"routing"`
	Data    DataConfig    `yaml:"data"`
}

// LogConfig selects the zap logger flavour and level.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

// RoutingConfig tunes shortest-path queries. Zero disables a limit.
type RoutingConfig struct {
	MaxDistance      int64 `yaml:"max_distance" validate:"gte=0"`
	ClosedRoadWeight int64 `yaml:"closed_road_weight" validate:"gte=0"`
}

// DataConfig lists road files loaded at startup.
type DataConfig struct {
	Files []string `yaml:"files" validate:"dive,required"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads and validates the YAML file at path. Missing keys keep their
// Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// PathOptions translates the routing section into dijkstra options.
func (c *Config) PathOptions() []dijkstra.Option {
	var opts []dijkstra.Option
	if c.Routing.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(c.Routing.MaxDistance))
	}
	if c.Routing.ClosedRoadWeight > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(c.Routing.ClosedRoadWeight))
	}

	return opts
}
