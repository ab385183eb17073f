package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"harvest-guard/internal/advisory"
	"harvest-guard/internal/weather"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Language selects advisory rendering: "bn" (default) or "en".
	Language string `yaml:"language"`

	// Workers bounds concurrent per-record processing in the pipeline.
	// 0 or 1 means sequential.
	Workers int `yaml:"workers"`

	Notifications NotificationConfig `yaml:"notifications"`

	// RegionProfiles extends or overrides the built-in climate profiles.
	// Keys are division names; "default" replaces the fallback profile.
	RegionProfiles map[string]weather.Profile `yaml:"region_profiles"`

	// CropNames / StorageNames extend the localized display-name tables.
	CropNames    map[string]string `yaml:"crop_names"`
	StorageNames map[string]string `yaml:"storage_names"`
}

type NotificationConfig struct {
	// Enabled turns emergency notification delivery on. The decision to
	// notify is always computed; this only gates the delivery side effect.
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Language: string(advisory.LangBangla),
		Workers:  1,
		Notifications: NotificationConfig{
			Enabled: true,
		},
	}
}

// Load reads, defaults and validates a YAML config.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Language == "" {
		c.Language = string(advisory.LangBangla)
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validation. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch advisory.Lang(c.Language) {
	case advisory.LangBangla, advisory.LangEnglish:
	default:
		return fmt.Errorf("language must be %q or %q, got %q",
			advisory.LangBangla, advisory.LangEnglish, c.Language)
	}
	if c.Workers < 0 {
		return errors.New("workers must be >= 0")
	}
	for name, p := range c.RegionProfiles {
		if err := validateProfile(p); err != nil {
			return fmt.Errorf("region profile %q invalid: %w", name, err)
		}
	}
	return nil
}

func validateProfile(p weather.Profile) error {
	for _, r := range []struct {
		name string
		rng  weather.Range
	}{
		{"temperature_c", p.TemperatureC},
		{"humidity_percent", p.HumidityPercent},
		{"rain_probability", p.RainProbability},
	} {
		if r.rng.Min > r.rng.Max {
			return fmt.Errorf("%s: min %.1f > max %.1f", r.name, r.rng.Min, r.rng.Max)
		}
	}
	return nil
}
