// Package config provides unified configuration loading for phasefield.
// It supports loading from YAML files and environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config contains all phasefield settings.
type Config struct {
	// Oscillator holds construction-time parameters for the simulation
	// context.
	Oscillator OscillatorConfig `yaml:"oscillator"`

	// Simulation holds the driver loop parameters.
	Simulation SimulationConfig `yaml:"simulation"`

	// Logging configures operational and trace logging.
	Logging LoggingConfig `yaml:"logging"`

	// Topology is an optional path to a YAML topology definition.
	// Empty selects the built-in nine-center reference layout.
	Topology string `yaml:"topology,omitempty"`
}

// OscillatorConfig configures the oscillator itself.
type OscillatorConfig struct {
	// BaseFrequency is the global scalar multiplying group frequency
	// coefficients. Must be positive.
	BaseFrequency float64 `yaml:"base_frequency"`

	// CouplingStrength is the global edge-weight multiplier. Must be
	// nonnegative.
	CouplingStrength float64 `yaml:"coupling_strength"`

	// Seed, when set, makes initial phase seeding reproducible.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// SimulationConfig configures the simulation driver loop.
type SimulationConfig struct {
	// Duration is the total simulated time per run.
	Duration float64 `yaml:"duration"`

	// Dt is the fixed integration step size.
	Dt float64 `yaml:"dt"`

	// RecordInterval samples history every N-th step.
	RecordInterval int `yaml:"record_interval"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets verbosity: "info" (default), "debug", or "trace".
	// "debug" enables JSONL run traces under .phasefield/.
	Level string `yaml:"level"`
}

// Default returns a Config with the reference parameters.
func Default() *Config {
	return &Config{
		Oscillator: OscillatorConfig{
			BaseFrequency:    1.0,
			CouplingStrength: 0.3,
		},
		Simulation: SimulationConfig{
			Duration:       100,
			Dt:             0.01,
			RecordInterval: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment.
// Order: defaults -> ~/.phasefield/config.yaml -> environment variables.
func Load() (*Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(homeDir, ".phasefield", "config.yaml")
		if _, statErr := os.Stat(path); statErr == nil {
			fileCfg, loadErr := LoadFromFile(path)
			if loadErr != nil {
				return nil, errors.Wrap(loadErr, "loading config file")
			}
			cfg = fileCfg
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file, on top of
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Oscillator.BaseFrequency <= 0 {
		return errors.Newf("base_frequency must be positive, got %v", c.Oscillator.BaseFrequency)
	}
	if c.Oscillator.CouplingStrength < 0 {
		return errors.Newf("coupling_strength must be nonnegative, got %v", c.Oscillator.CouplingStrength)
	}
	if c.Simulation.Duration <= 0 {
		return errors.Newf("duration must be positive, got %v", c.Simulation.Duration)
	}
	if c.Simulation.Dt <= 0 {
		return errors.Newf("dt must be positive, got %v", c.Simulation.Dt)
	}
	if c.Simulation.RecordInterval <= 0 {
		return errors.Newf("record_interval must be positive, got %d", c.Simulation.RecordInterval)
	}

	validLevels := map[string]bool{"": true, "info": true, "debug": true, "trace": true}
	if !validLevels[c.Logging.Level] {
		return errors.Newf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	return nil
}

// applyEnvOverrides applies PHASEFIELD_* environment overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PHASEFIELD_BASE_FREQUENCY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Oscillator.BaseFrequency = f
		}
	}
	if v := os.Getenv("PHASEFIELD_COUPLING_STRENGTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Oscillator.CouplingStrength = f
		}
	}
	if v := os.Getenv("PHASEFIELD_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Oscillator.Seed = &n
		}
	}
	if v := os.Getenv("PHASEFIELD_DURATION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Simulation.Duration = f
		}
	}
	if v := os.Getenv("PHASEFIELD_DT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Simulation.Dt = f
		}
	}
	if v := os.Getenv("PHASEFIELD_RECORD_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.RecordInterval = n
		}
	}
	if v := os.Getenv("PHASEFIELD_TOPOLOGY"); v != "" {
		cfg.Topology = v
	}
	if v := os.Getenv("PHASEFIELD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
