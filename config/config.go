// Package config loads settings for the ppmconv command from a YAML file.
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds ppmconv settings. Command line flags override them.
type Config struct {
	// Output encoding used when the output path has no known extension.
	Format string `yaml:"format"`
	// Resampling factor applied before encoding.
	Scale float64 `yaml:"scale"`

	Limits Limits `yaml:"limits"`
	OCR    OCR    `yaml:"ocr"`
}

// Limits bounds the images the decoder accepts. A zero MaxPixels still
// converts at most raster.DefaultMaxPixels pixels; other zero limits mean
// unlimited.
type Limits struct {
	MaxPixels uint64 `yaml:"max_pixels"`
	MaxDepth  uint32 `yaml:"max_depth"`
	AllowZero bool   `yaml:"allow_zero"`
}

// OCR configures text recognition.
type OCR struct {
	Language string `yaml:"language"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format: "png",
		Scale:  1,
		OCR:    OCR{Language: "eng"},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Configuration file '%s' not found. Using defaults.", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read configuration file '%s': %w", path, err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse configuration file '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration file '%s': %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.Format == "" {
		return fmt.Errorf("format must not be empty")
	}
	return nil
}

// Save writes c to path as YAML.
func Save(path string, c Config) error {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file '%s': %w", path, err)
	}
	return nil
}
