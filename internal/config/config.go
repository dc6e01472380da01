// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultBackendURL is used when no backend address is configured.
const DefaultBackendURL = "http://localhost:5000"

// Config holds all configuration values for partsync.
type Config struct {
	BackendURL  string        `mapstructure:"backend_url" yaml:"backend_url"`
	DataDir     string        `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel    string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string        `mapstructure:"log_file" yaml:"log_file"`
	TipInterval time.Duration `mapstructure:"tip_interval" yaml:"tip_interval"`
	Theme       string        `mapstructure:"theme" yaml:"theme"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("partsync")

	v.SetDefault("backend_url", DefaultBackendURL)
	v.SetDefault("data_dir", ".partsync")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("tip_interval", "2.5s")
	v.SetDefault("theme", "dark")

	v.SetEnvPrefix("PARTSYNC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"backend_url", "data_dir", "log_level", "log_file", "tip_interval", "theme"} {
		if err := v.BindEnv(key, "PARTSYNC_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("backend_url must be an absolute http(s) URL, got %q", c.BackendURL)
	}
	if c.TipInterval <= 0 {
		return fmt.Errorf("tip_interval must be positive, got %s", c.TipInterval)
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("theme must be dark or light, got %q", c.Theme)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/partsync/partsync.yml or $XDG_CONFIG_HOME/partsync/partsync.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "partsync", "partsync.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "partsync", "partsync.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "partsync.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(fileConfig{
		BackendURL:  cfg.BackendURL,
		DataDir:     cfg.DataDir,
		LogLevel:    cfg.LogLevel,
		LogFile:     cfg.LogFile,
		TipInterval: cfg.TipInterval.String(),
		Theme:       cfg.Theme,
	})
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileConfig is the on-disk shape; durations are written as strings so the
// file stays hand-editable.
type fileConfig struct {
	BackendURL  string `yaml:"backend_url"`
	DataDir     string `yaml:"data_dir"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file,omitempty"`
	TipInterval string `yaml:"tip_interval"`
	Theme       string `yaml:"theme"`
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
