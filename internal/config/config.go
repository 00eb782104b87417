// Package config loads the optional yaml configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Audio AudioConfig `yaml:"audio"`
	Log   LogConfig   `yaml:"log"`
	UI    UIConfig    `yaml:"ui"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

type LogConfig struct {
	Path  string `yaml:"path"` // empty disables logging
	Level string `yaml:"level"`
}

type UIConfig struct {
	// FlashIntervalMS is the celebration strobe tick rate. The value is
	// cosmetic; the celebration's length is governed by its own timer.
	FlashIntervalMS int  `yaml:"flash_interval_ms"`
	Mono            bool `yaml:"mono"` // on/off flash instead of two colors
}

func defaultConfig() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			FlashIntervalMS: 140,
		},
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.clamp()
	return cfg, nil
}

// LoadOrDefault reads the file at path, falling back to defaults when the
// path is empty or the file does not exist. Any other error is returned.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	return cfg, err
}

// FlashInterval returns the strobe tick rate as a duration.
func (c *Config) FlashInterval() time.Duration {
	return time.Duration(c.UI.FlashIntervalMS) * time.Millisecond
}

func (c *Config) clamp() {
	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
	if c.UI.FlashIntervalMS <= 0 {
		c.UI.FlashIntervalMS = 140
	}
}
