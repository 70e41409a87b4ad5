// If you are AI: This file validates configuration values and returns descriptive errors.

package config

import (
	"fmt"
)

// Validate checks that all configuration values are within acceptable ranges.
// Returns an error describing the first validation failure found.
func (c *Config) Validate() error {
	if err := c.Save.Validate(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Watch.Validate(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	return nil
}

// Validate checks save settings.
func (s *SaveConfig) Validate() error {
	if s.BackupSuffix == "" {
		return fmt.Errorf("backup_suffix must not be empty")
	}
	return nil
}

// Validate checks logging settings.
func (l *LogConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error, got %q", l.Level)
	}
	if l.Backend != "zap" && l.Backend != "logrus" {
		return fmt.Errorf("backend must be zap or logrus, got %q", l.Backend)
	}
	if l.Format != "console" && l.Format != "json" {
		return fmt.Errorf("format must be console or json, got %q", l.Format)
	}
	return nil
}

// Validate checks server configuration values.
func (s *ServerConfig) Validate() error {
	if s.HTTPPort <= 0 || s.HTTPPort > 65535 {
		return fmt.Errorf("http_port must be between 1 and 65535, got %d", s.HTTPPort)
	}
	return nil
}

// Validate checks watcher settings.
func (w *WatchConfig) Validate() error {
	if w.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", w.Debounce)
	}
	if w.Buffer == 0 || w.Buffer > 1<<16 {
		return fmt.Errorf("buffer must be between 1 and 65536, got %d", w.Buffer)
	}
	return nil
}
