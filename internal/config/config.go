// Package config loads the display configuration: a YAML file merged over
// built-in defaults, with numeric invariants clamped rather than rejected.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds every recognized display option. Numeric fields outside
// their valid range are clamped by Clamp; the remaining fields are checked
// by Validate.
type Config struct {
	ElementWidth      int      `yaml:"element_width" validate:"min=2"`
	ElementSeparation int      `yaml:"element_separation" validate:"min=0"`
	Indentation       int      `yaml:"indentation" validate:"min=0"`
	Convention        string   `yaml:"convention" validate:"oneof=conventional ordered"`
	Scheme            string   `yaml:"scheme" validate:"required"`
	Epsilon           float64  `yaml:"epsilon" validate:"gt=0"`
	ExcludedProps     []string `yaml:"excluded_properties"`
	Temperature       float64  `yaml:"temperature" validate:"gt=0"`
	Year              int      `yaml:"year" validate:"min=0"`
	LookupURL         string   `yaml:"lookup_url"`
	LogLevel          string   `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ElementWidth:      2,
		ElementSeparation: 1,
		Indentation:       2,
		Convention:        "conventional",
		Scheme:            "group",
		Epsilon:           0.005,
		Temperature:       298.15,
		Year:              1800,
		LookupURL:         "https://en.wikipedia.org/wiki/%n",
		LogLevel:          "info",
	}
}

// Load reads a YAML config file merged over the defaults. A missing file is
// not an error; the defaults apply. The result is clamped and validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Clamp()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Clamp forces the numeric options back into range: width below 2 clamps
// to 2, negative separation and indentation clamp to 0, non-positive
// epsilon and temperature fall back to the defaults.
func (c *Config) Clamp() {
	if c.ElementWidth < 2 {
		c.ElementWidth = 2
	}
	if c.ElementSeparation < 0 {
		c.ElementSeparation = 0
	}
	if c.Indentation < 0 {
		c.Indentation = 0
	}
	if c.Epsilon <= 0 {
		c.Epsilon = Default().Epsilon
	}
	if c.Temperature <= 0 {
		c.Temperature = Default().Temperature
	}
	if c.Year < 0 {
		c.Year = Default().Year
	}
}

// Validate checks the non-clampable fields.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
