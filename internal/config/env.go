// If you are AI: This file applies SOLEDIT_* environment overrides through go-simpler.org/env.
// Overrides win over the YAML file; unset variables leave fields untouched.

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go-simpler.org/env"
)

// source is the lookup interface env.Load reads variables through.
type source interface {
	LookupEnv(key string) (string, bool)
}

// osEnv reads the process environment.
type osEnv struct{}

func (osEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// Env is a fixed set of variables, used in place of the process environment.
type Env map[string]string

// LookupEnv returns the value stored under key.
func (e Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = e[key]
	return
}

// overrides mirrors the settable fields. Strings keep "unset" distinguishable from zero.
type overrides struct {
	SaveDir      string        `env:"SOLEDIT_SAVE_DIR" usage:"directory searched for saves"`
	SaveFile     string        `env:"SOLEDIT_SAVE_FILE" usage:"default save file"`
	BackupSuffix string        `env:"SOLEDIT_BACKUP_SUFFIX" usage:"backup file suffix"`
	KeepBackup   string        `env:"SOLEDIT_KEEP_BACKUP" usage:"back up before writing (true|false)"`
	LogLevel     string        `env:"SOLEDIT_LOG_LEVEL" usage:"debug level: debug info warn error"`
	LogBackend   string        `env:"SOLEDIT_LOG_BACKEND" usage:"zap or logrus"`
	LogFormat    string        `env:"SOLEDIT_LOG_FORMAT" usage:"console or json"`
	HTTPPort     int           `env:"SOLEDIT_HTTP_PORT" usage:"inspection server port"`
	Debounce     time.Duration `env:"SOLEDIT_WATCH_DEBOUNCE" usage:"watcher quiet period"`
	Buffer       uint32        `env:"SOLEDIT_WATCH_BUFFER" usage:"per-subscriber event buffer"`
}

// LoadEnv applies overrides from e on top of c, then re-applies defaults.
func (c *Config) LoadEnv(e Env) error {
	if err := applyEnv(c, e); err != nil {
		return err
	}
	c.setDefaults()
	return nil
}

func applyEnv(c *Config, src source) error {
	var o overrides
	if err := env.Load(&o, &env.Options{Source: src}); err != nil {
		return err
	}

	setString(&c.Save.Dir, o.SaveDir)
	setString(&c.Save.File, o.SaveFile)
	setString(&c.Save.BackupSuffix, o.BackupSuffix)
	setString(&c.Log.Level, o.LogLevel)
	setString(&c.Log.Backend, o.LogBackend)
	setString(&c.Log.Format, o.LogFormat)
	if o.KeepBackup != "" {
		keep, err := strconv.ParseBool(o.KeepBackup)
		if err != nil {
			return fmt.Errorf("SOLEDIT_KEEP_BACKUP: %w", err)
		}
		c.Save.KeepBackup = &keep
	}
	if o.HTTPPort != 0 {
		c.Server.HTTPPort = o.HTTPPort
	}
	if o.Debounce != 0 {
		c.Watch.Debounce = o.Debounce
	}
	if o.Buffer != 0 {
		c.Watch.Buffer = o.Buffer
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
