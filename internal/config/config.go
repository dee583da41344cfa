// Package config loads startup configuration from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvConfig     = "MANHATTAN_CONFIG"
	EnvLogLevel   = "MANHATTAN_LOG_LEVEL"
	EnvBreakpoint = "MANHATTAN_BREAKPOINT"
	EnvMapImage   = "MANHATTAN_MAP_IMAGE"
	EnvLandmarks  = "MANHATTAN_LANDMARKS"
	EnvHotReload  = "MANHATTAN_HOT_RELOAD"
)

// DefaultPath is the config file read when MANHATTAN_CONFIG is unset.
const DefaultPath = "manhattan.yaml"

// Config holds the application startup settings.
type Config struct {
	LogLevel   string  `yaml:"log_level"`
	Breakpoint float64 `yaml:"breakpoint"`
	MapImage   string  `yaml:"map_image"`
	Portrait   string  `yaml:"portrait"`
	// Landmarks is a YAML or JSON landmark file; empty uses the built-in set.
	Landmarks string `yaml:"landmarks"`
	Window    Window `yaml:"window"`
	HotReload bool   `yaml:"hot_reload"`
}

// Window is the initial window size.
type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:   "info",
		Breakpoint: 768,
		MapImage:   "assets/map.png",
		Portrait:   "assets/portrait.png",
		Window:     Window{Width: 1280, Height: 860},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error. The returned config is normalized even
// when err is set.
func Load(path string) (cfg Config, err error) {
	cfg = Default()
	defer cfg.normalize()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by MANHATTAN_CONFIG or DefaultPath.
func LoadFromEnv() (Config, error) {
	return Load(envOr(EnvConfig, DefaultPath))
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvMapImage); ok && v != "" {
		c.MapImage = v
	}
	if v, ok := lookup(EnvLandmarks); ok {
		c.Landmarks = v
	}
	if v, ok := lookup(EnvBreakpoint); ok && v != "" {
		bp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBreakpoint, err)
		}
		c.Breakpoint = bp
	}
	if v, ok := lookup(EnvHotReload); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHotReload, err)
		}
		c.HotReload = on
	}
	return nil
}

func (c *Config) normalize() {
	def := Default()
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Breakpoint <= 0 {
		c.Breakpoint = def.Breakpoint
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window = def.Window
	}
}

func envOr(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
