// Package config handles configuration loading and validation for
// para.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// IconSet names the built-in status icon sets.
const (
	IconSetDefault = "default"
	IconSetDots    = "dots"
	IconSetCheck   = "check"
	IconSetSimple  = "simple"
)

// Config holds the application configuration.
type Config struct {
	// TaskFile is the path of the plain-text task file.
	TaskFile string `yaml:"task_file"`
	// Editor opens the task file for the open command.
	Editor string `yaml:"editor"`
	// IconSet selects the status icons used in listings.
	IconSet string `yaml:"icon_set"`
	// Theme selects the color palette.
	Theme string `yaml:"theme"`
	// CarryOver controls whether unfinished tasks from the previous
	// day are pulled into a new daily log.
	CarryOver bool `yaml:"carry_over"`
	// StaleDays is the age threshold highlighted by the status
	// command.
	StaleDays int `yaml:"stale_days"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		TaskFile:  filepath.Join(home, "tasks.md"),
		Editor:    defaultEditor(),
		IconSet:   IconSetDefault,
		Theme:     "tokyo-night",
		CarryOver: true,
		StaleDays: 7,
	}
}

func defaultEditor() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vim"
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "para", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "para", "config.yaml")
}

// Load reads the config file, layering it over defaults. A missing
// file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config file, creating parent directories.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
