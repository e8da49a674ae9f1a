// Package config resolves the wayfarer application configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// WAYFARER_* environment variables. Command-line flags are applied last by
// the CLI, which calls Validate once everything is merged.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wayfarer/internal/ctxlog"
)

// ErrInvalid is returned by Validate and Load for unusable settings.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WAYFARER_"

// Config holds the settings shared by all subcommands.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// DataPath is the road table used for route queries. Empty selects the
	// embedded network.
	DataPath string `yaml:"data"`

	// MinimaxPath is the game table used by best-move. Empty selects the
	// embedded game.
	MinimaxPath string `yaml:"minimax"`

	DefaultStart string `yaml:"start"`
	DefaultGoal  string `yaml:"goal"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:     "info",
		LogFormat:    "text",
		DefaultStart: "Addis Ababa",
		DefaultGoal:  "Moyale",
	}
}

// LookupFunc reads an environment variable; os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the variables visible through lookup. A nil
// lookup uses os.LookupEnv.
func Load(path string, lookup LookupFunc) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if err := cfg.decode(f); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg.applyEnv(lookup)

	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) applyEnv(lookup LookupFunc) {
	for suffix, dst := range c.envFields() {
		if v, ok := lookup(EnvPrefix + suffix); ok {
			*dst = v
		}
	}
}

func (c *Config) envFields() map[string]*string {
	return map[string]*string{
		"LOG_LEVEL":  &c.LogLevel,
		"LOG_FORMAT": &c.LogFormat,
		"DATA":       &c.DataPath,
		"MINIMAX":    &c.MinimaxPath,
		"START":      &c.DefaultStart,
		"GOAL":       &c.DefaultGoal,
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalid, c.LogFormat)
	}
	if strings.TrimSpace(c.DefaultStart) == "" {
		return fmt.Errorf("%w: start is empty", ErrInvalid)
	}

	return nil
}
