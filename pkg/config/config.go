// Package config defines the YAML run configuration shared between this
// module and the external optimizer that drives it.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
)

// Config is the complete run configuration.
type Config struct {
	// Instance selects the knapsack instance to evaluate against
	Instance InstanceConfig `yaml:"instance" validate:"required"`

	// Run holds the generational-run knobs
	Run RunConfig `yaml:"run,omitempty"`

	// Logging configures report output
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// InstanceConfig selects the problem instance.
type InstanceConfig struct {
	// Path to an instance file, or the name of a bundled instance
	Path string `yaml:"path" validate:"required"`
}

// RunConfig carries the generational-run knobs. The evaluation core never
// runs the search itself; these are published for the optimizer driving it.
type RunConfig struct {
	// Maximum number of generations to run
	// Default: 1000
	MaxGenerations int `yaml:"max_generations" validate:"min=1"`

	// Number of individuals per generation
	// Default: 1000
	PopulationSize int `yaml:"population_size" validate:"min=1"`

	// Tournament size for tournament selection
	// Default: 2
	TournamentSize int `yaml:"tournament_size" validate:"min=1"`

	// Evaluate the population in parallel
	// Default: true
	Parallel bool `yaml:"parallel"`

	// Seed for the optimizer's random source; 0 means seed from entropy
	// Default: 0
	Seed int64 `yaml:"seed"`
}

// LoggingConfig configures generation reporting.
type LoggingConfig struct {
	// Log level (DEBUG, INFO, WARN, ERROR, FATAL)
	// Default: INFO
	Level string `yaml:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR FATAL"`

	// Colorize console output
	// Default: false
	Color bool `yaml:"color"`

	// Optional file that reports are copied into
	File string `yaml:"file,omitempty"`
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Instance: InstanceConfig{
			Path: "tiny",
		},
		Run: RunConfig{
			MaxGenerations: 1000,
			PopulationSize: 1000,
			TournamentSize: 2,
			Parallel:       true,
			Seed:           0,
		},
		Logging: LoggingConfig{
			Level: "INFO",
			Color: false,
		},
	}
}

// Load reads a YAML config file, layers it over DefaultConfig, and
// validates the result. Missing files report IOFailed; unparseable files
// report InvalidFormat.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to read config file"),
			errors.Fields{"path": path})
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.InvalidFormat, "failed to parse config file"),
			errors.Fields{"path": path})
	}

	if err := NewValidator().ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.Unknown, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to write config file"),
			errors.Fields{"path": path})
	}
	return nil
}
