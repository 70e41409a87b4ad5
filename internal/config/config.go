// If you are AI: This file defines the configuration structure for soledit.
// It uses strict YAML decoding, explicit defaults and SOLEDIT_* environment overrides.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// relPath is the config file location below the XDG config home.
const relPath = "soledit/config.yaml"

// Config holds the complete configuration.
// All fields must have explicit defaults or be optional.
type Config struct {
	Save   SaveConfig   `yaml:"save"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Watch  WatchConfig  `yaml:"watch"`
}

// SaveConfig defines where saves live and how they are written.
type SaveConfig struct {
	Dir          string `yaml:"dir"`           // Directory searched for saves
	File         string `yaml:"file"`          // Default save file name or path
	BackupSuffix string `yaml:"backup_suffix"` // Appended to the save path for backups
	KeepBackup   *bool  `yaml:"keep_backup"`   // Back up before every write
}

// LogConfig selects the logging backend.
type LogConfig struct {
	Level   string `yaml:"level"`   // debug, info, warn, error
	Backend string `yaml:"backend"` // zap or logrus
	Format  string `yaml:"format"`  // console or json
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	HTTPPort int `yaml:"http_port"` // Port for the inspection API and health endpoint
}

// WatchConfig tunes the save file watcher.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"` // Quiet period before reloading
	Buffer   uint32        `yaml:"buffer"`   // Per-subscriber event buffer
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// DefaultPath returns the existing config file under the XDG config dirs.
// ok is false when none exists.
func DefaultPath() (path string, ok bool) {
	path, err := xdg.SearchConfigFile(relPath)
	if err != nil {
		return "", false
	}
	return path, true
}

// Load reads configuration from a YAML file and applies environment overrides.
// An empty path falls back to DefaultPath, and to defaults when that is absent too.
func Load(path string) (*Config, error) {
	return load(path, osEnv{})
}

func load(path string, src source) (*Config, error) {
	var cfg Config

	if path == "" {
		path, _ = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg, src); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	// Apply defaults
	cfg.setDefaults()

	return &cfg, nil
}

func decode(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields

	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Save.BackupSuffix == "" {
		c.Save.BackupSuffix = ".bak"
	}
	if c.Save.KeepBackup == nil {
		keep := true
		c.Save.KeepBackup = &keep
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Backend == "" {
		c.Log.Backend = "zap"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8087
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = 250 * time.Millisecond
	}
	if c.Watch.Buffer == 0 {
		c.Watch.Buffer = 64
	}
}

// Backups reports whether saves are backed up before writing.
func (s SaveConfig) Backups() bool {
	return s.KeepBackup == nil || *s.KeepBackup
}
