// Package config loads keepsake settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EpochLayout is the format of KEEPSAKE_EPOCH, read in local time.
const EpochLayout = "2006-01-02T15:04:05"

// Config holds every tunable of a session.
type Config struct {
	Secret           string  `env:"KEEPSAKE_SECRET"            envDefault:"10"`
	EpochRaw         string  `env:"KEEPSAKE_EPOCH"             envDefault:"2024-01-10T00:00:00"`
	MusicPath        string  `env:"KEEPSAKE_MUSIC"`
	TrailProbability float64 `env:"KEEPSAKE_TRAIL_PROBABILITY" envDefault:"0.3"`
	MaxEntities      int     `env:"KEEPSAKE_MAX_ENTITIES"      envDefault:"256"`
	Seed             uint64  `env:"KEEPSAKE_SEED"              envDefault:"0"`
	LogPath          string  `env:"KEEPSAKE_LOG"`
	Volume           int     `env:"KEEPSAKE_VOLUME"            envDefault:"70"`

	epoch time.Time
}

// Load reads the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Secret == "" {
		return fmt.Errorf("KEEPSAKE_SECRET must not be empty")
	}
	epoch, err := time.ParseInLocation(EpochLayout, c.EpochRaw, time.Local)
	if err != nil {
		return fmt.Errorf("KEEPSAKE_EPOCH: %w", err)
	}
	c.epoch = epoch
	if c.TrailProbability > 1 {
		return fmt.Errorf("KEEPSAKE_TRAIL_PROBABILITY must be at most 1, got %g", c.TrailProbability)
	}
	if c.MaxEntities < 0 {
		return fmt.Errorf("KEEPSAKE_MAX_ENTITIES must not be negative, got %d", c.MaxEntities)
	}
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("KEEPSAKE_VOLUME must be between 0 and 100, got %d", c.Volume)
	}
	return nil
}

// Epoch is the moment the elapsed counter starts from.
func (c Config) Epoch() time.Time {
	return c.epoch
}

// Gain returns Volume as a fraction in [0,1].
func (c Config) Gain() float64 {
	return float64(c.Volume) / 100
}
