package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"conway-live/internal/sims/life"
)

const (
	DefaultWidth    = 320
	DefaultHeight   = 240
	DefaultTickRate = 60.0
	DefaultScale    = 3
	// DefaultSeed of zero asks the CLI to seed from the wall clock.
	DefaultSeed = 0
)

// Domain errors reported by Validate.
var (
	// ErrInvalidSize indicates a non-positive grid dimension.
	ErrInvalidSize = errors.New("config: grid dimensions must be positive")

	// ErrInvalidTickRate indicates a tick rate that is not a positive finite number.
	ErrInvalidTickRate = errors.New("config: tick rate must be positive and finite")

	// ErrInvalidScale indicates a non-positive pixel scale.
	ErrInvalidScale = errors.New("config: scale must be positive")

	// ErrInvalidStepCap indicates a negative per-advance step cap.
	ErrInvalidStepCap = errors.New("config: max steps per advance must not be negative")
)

// Config holds everything needed to build and present a simulation.
type Config struct {
	Width              int     `yaml:"width"`
	Height             int     `yaml:"height"`
	TickRate           float64 `yaml:"tick_rate"`
	Seed               int64   `yaml:"seed"`
	MaxStepsPerAdvance int     `yaml:"max_steps_per_advance"`
	StartRunning       bool    `yaml:"start_running"`
	Scale              int     `yaml:"scale"`
}

// DefaultConfig returns a Config populated with the standard values.
func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		TickRate: DefaultTickRate,
		Seed:     DefaultSeed,
		Scale:    DefaultScale,
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read file: %s", path)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %s", path)
	}
	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "[Load] invalid config in %s", path)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "[Save] failed to marshal config")
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "[Save] failed to write file: %s", path)
	}
	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidSize, "got %dx%d", c.Width, c.Height)
	case !(c.TickRate > 0) || math.IsInf(c.TickRate, 1):
		return errors.Wrapf(ErrInvalidTickRate, "got %v", c.TickRate)
	case c.Scale <= 0:
		return errors.Wrapf(ErrInvalidScale, "got %d", c.Scale)
	case c.MaxStepsPerAdvance < 0:
		return errors.Wrapf(ErrInvalidStepCap, "got %d", c.MaxStepsPerAdvance)
	}
	return nil
}

// Life converts the config into simulation parameters.
func (c *Config) Life() life.Config {
	return life.Config{
		Width:              c.Width,
		Height:             c.Height,
		TickRate:           c.TickRate,
		Seed:               c.Seed,
		MaxStepsPerAdvance: c.MaxStepsPerAdvance,
		StartRunning:       c.StartRunning,
	}
}
