package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("expected 320x240, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TickRate != 60 {
		t.Errorf("expected tick rate 60, got %v", cfg.TickRate)
	}
	if cfg.MaxStepsPerAdvance != 0 {
		t.Errorf("step cap should be off by default, got %d", cfg.MaxStepsPerAdvance)
	}
	if cfg.StartRunning {
		t.Error("simulation should start stopped by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidSize},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidSize},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, ErrInvalidTickRate},
		{"NaN tick rate", func(c *Config) { c.TickRate = math.NaN() }, ErrInvalidTickRate},
		{"infinite tick rate", func(c *Config) { c.TickRate = math.Inf(1) }, ErrInvalidTickRate},
		{"zero scale", func(c *Config) { c.Scale = 0 }, ErrInvalidScale},
		{"negative cap", func(c *Config) { c.MaxStepsPerAdvance = -2 }, ErrInvalidStepCap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if errors.Cause(err) != tt.want {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	data := []byte("width: 64\nheight: 48\ntick_rate: 30\nmax_steps_per_advance: 10\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Errorf("expected 64x48, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TickRate != 30 || cfg.MaxStepsPerAdvance != 10 {
		t.Errorf("unexpected clock settings: %+v", cfg)
	}
	if cfg.Scale != DefaultScale {
		t.Errorf("unset scale should keep default, got %d", cfg.Scale)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if errors.Cause(err) != ErrInvalidTickRate {
		t.Errorf("expected ErrInvalidTickRate, got %v", err)
	}
}

func TestLoadRejectsNaNTickRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: .nan\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if errors.Cause(err) != ErrInvalidTickRate {
		t.Errorf("expected ErrInvalidTickRate, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.StartRunning = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLifeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxStepsPerAdvance = 4
	lc := cfg.Life()
	if lc.Width != cfg.Width || lc.Height != cfg.Height || lc.TickRate != cfg.TickRate {
		t.Errorf("dimensions or rate not carried over: %+v", lc)
	}
	if lc.MaxStepsPerAdvance != 4 || lc.Seed != cfg.Seed {
		t.Errorf("cap or seed not carried over: %+v", lc)
	}
}
