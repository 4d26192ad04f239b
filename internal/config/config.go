// Package config loads and saves whisper-setup's YAML configuration.
//
// Everything in the config is optional. The defaults reproduce the
// stock provisioning behavior; the file exists so the interpreter
// binaries, the dependency list, and the verification model can be
// overridden without rebuilding.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/whisper-tools/whisper-setup/internal/verify"
)

// Config is the on-disk configuration.
type Config struct {
	Python   string   `yaml:"python,omitempty"`   // interpreter override (default: python3, then python)
	Pip      string   `yaml:"pip,omitempty"`      // pip override (default: pip3, then pip)
	Packages []string `yaml:"packages,omitempty"` // dependency list override
	Model    string   `yaml:"model,omitempty"`    // reference model for verification
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Model: verify.DefaultModel}
}

// SavePath returns the config file location (~/.config/whisper-setup/config.yml).
func SavePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "config.yml"
	}
	return filepath.Join(configDir, "whisper-setup", "config.yml")
}

// Exists reports whether a config file has been written.
func Exists() bool {
	_, err := os.Stat(SavePath())
	return err == nil
}

// LoadOrDefault reads the config file, falling back to defaults when the
// file is missing or unreadable. Setup must work on a fresh host, so a
// broken config never aborts the run.
func LoadOrDefault() *Config {
	cfg, err := loadFrom(SavePath())
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config to its standard location.
func Save(cfg *Config) error {
	return saveTo(SavePath(), cfg)
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Model == "" {
		cfg.Model = verify.DefaultModel
	}
	return cfg, nil
}

func saveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
