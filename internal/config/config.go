// Package config loads the strmatch CLI configuration file.
//
// The file is YAML. Every key is optional; missing keys keep their defaults
// and unknown keys are rejected. Command-line flags override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings.
type Config struct {
	Algorithm         string `yaml:"algorithm" validate:"oneof=gsv morris-pratt mp kmp kmp-standard aho-corasick"`
	Workers           int    `yaml:"workers" validate:"gte=0,lte=1024"`
	ParallelThreshold int    `yaml:"parallel_threshold" validate:"gte=0"`
	Color             string `yaml:"color" validate:"oneof=auto always never"`
	LogLevel          string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Context           int    `yaml:"context" validate:"gte=0,lte=4096"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Algorithm:         "gsv",
		Workers:           1,
		ParallelThreshold: 64 * 1024,
		Color:             "auto",
		LogLevel:          "warn",
	}
}

// Load reads and validates the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// An empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints. Field errors are
// reported by their YAML key.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (%s)", yamlKey(fe.Field()), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// SlogLevel returns the log level as a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

var yamlKeys = map[string]string{
	"Algorithm":         "algorithm",
	"Workers":           "workers",
	"ParallelThreshold": "parallel_threshold",
	"Color":             "color",
	"LogLevel":          "log_level",
	"Context":           "context",
}

func yamlKey(field string) string {
	if k, ok := yamlKeys[field]; ok {
		return k
	}
	return field
}
