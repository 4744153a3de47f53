// Package config handles configuration for appium-gestures.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/appium-gestures/pkg/gesture"
	"github.com/devicelab-dev/appium-gestures/pkg/viewport"
)

// Config represents the workspace configuration (gestures.yaml).
type Config struct {
	// Server settings
	Server   string `yaml:"server"`   // Appium server URL
	Platform string `yaml:"platform"` // Target platform (android/ios)

	// Session capabilities passed through to session creation
	Capabilities map[string]interface{} `yaml:"capabilities"`

	// Scroll tuning
	CropFactors     *viewport.CropFactors `yaml:"cropFactors"`
	ProbeAttempts   int                   `yaml:"probeAttempts"`
	ActionThreshold float64               `yaml:"actionThreshold"` // px below which partial swipes are dropped
	SwipePause      int                   `yaml:"swipePause"`      // ms between swipe primitives

	// Logging
	LogFile string `yaml:"logFile"`
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir looks for gestures.yaml or gestures.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, "gestures.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	configPath = filepath.Join(dir, "gestures.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}

// GestureConfig converts the file settings into the gesture layer's config,
// leaving zero values for its defaults to fill.
func (c *Config) GestureConfig() gesture.Config {
	gc := gesture.Config{
		ProbeAttempts:     c.ProbeAttempts,
		ActionThresholdPx: c.ActionThreshold,
		SwipePauseMs:      c.SwipePause,
	}
	if c.CropFactors != nil {
		gc.CropFactors = *c.CropFactors
	}
	return gc
}
