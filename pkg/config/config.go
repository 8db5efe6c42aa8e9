// Package config loads the service's YAML configuration, with defaults
// matching the original implementation's Context (app/context.py).
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chazu/wayfarer/pkg/solve"
)

// Config is the service-level configuration: listen address, logging,
// and the request-param defaults a client's request can omit.
type Config struct {
	ListenAddress string `yaml:"listen_address"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`

	DefaultCellSize       int `yaml:"default_cell_size"`
	DefaultBorderSize     int `yaml:"default_border_size"`
	DefaultTrajectorySize int `yaml:"default_trajectory_size"`
	DefaultPointSize      int `yaml:"default_point_size"`
}

// Default returns the built-in configuration, used when no file is
// supplied and as the base a loaded file is merged onto.
func Default() Config {
	d := solve.Defaults()
	return Config{
		ListenAddress:         ":8080",
		LogLevel:              "info",
		LogFile:               "",
		DefaultCellSize:       d.CellSize,
		DefaultBorderSize:     d.BorderSize,
		DefaultTrajectorySize: d.TrajectorySize,
		DefaultPointSize:      d.PointSize,
	}
}

// Load reads a YAML file at path and overlays it onto Default(). A
// missing path is not an error — the defaults are returned as-is,
// mirroring a service that runs fine with no config file present.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
