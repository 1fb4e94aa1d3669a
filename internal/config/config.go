// Package config persists the renderer's default Options across CLI
// invocations, the way a terminal tool remembers its last chosen display
// settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/stimpy77/ConsoleInk.NET/theme"
)

// Config is the on-disk shape of config.yaml.
type Config struct {
	Width         int    `mapstructure:"width" yaml:"width"`
	Colors        bool   `mapstructure:"colors" yaml:"colors"`
	Theme         string `mapstructure:"theme" yaml:"theme"`
	StripHTML     bool   `mapstructure:"strip_html" yaml:"strip_html"`
	UseHyperlinks bool   `mapstructure:"use_hyperlinks" yaml:"use_hyperlinks"`
}

// GetDefaults is the single source of truth for every key Load falls back
// to when config.yaml is absent or missing a field.
func GetDefaults() map[string]any {
	return map[string]any{
		"width":          80,
		"colors":         true,
		"theme":          "default",
		"strip_html":     true,
		"use_hyperlinks": true,
	}
}

// GetConfigDir returns the XDG config directory for this tool, honoring
// $XDG_CONFIG_HOME before falling back to ~/.config.
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "consoleink"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "consoleink"), nil
}

// GetConfigPath returns the path config.yaml would live at.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads config.yaml, falling back to GetDefaults for anything unset.
// A missing file is not an error.
func Load() (*Config, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	for key, value := range GetDefaults() {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Save writes cfg to config.yaml, creating the config directory if needed.
// Marshaling goes through yaml.v3 directly rather than viper; Config's yaml
// tags match its mapstructure tags, so the file uses the key names Load
// expects back.
func Save(cfg *Config) error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

// Exists reports whether a config.yaml file is present.
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// ResolveTheme maps the config's theme name to a theme.Theme, falling back
// to the colored default for an unknown name.
func ResolveTheme(name string) theme.Theme {
	switch name {
	case "monochrome", "mono":
		return theme.Monochrome()
	case "default", "":
		return theme.Default()
	default:
		if t, ok := theme.Preset(name); ok {
			return t
		}
		return theme.Default()
	}
}
