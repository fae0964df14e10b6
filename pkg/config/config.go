// Package config loads gridboard settings from a TOML file.
//
// The default location follows the XDG convention:
// $XDG_CONFIG_HOME/gridboard/config.toml, falling back to
// ~/.config/gridboard/config.toml. A missing file at the default location is
// not an error; every setting has a default.
//
// Example:
//
//	[log]
//	level = "debug"
//
//	[catalog]
//	path = "/etc/gridboard/widgets.toml"
//
//	[server]
//	addr = "127.0.0.1:7070"
//	session_ttl = "2h"
//
//	[notify]
//	redis_addr = "localhost:6379"
//	channel = "gridboard:changes"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/notify"
)

const appName = "gridboard"

// Config holds all settings.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Catalog CatalogConfig `toml:"catalog"`
	Server  ServerConfig  `toml:"server"`
	Notify  NotifyConfig  `toml:"notify"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type CatalogConfig struct {
	// Path to a TOML seed file. Empty means the built-in catalog.
	Path string `toml:"path"`
}

type ServerConfig struct {
	Addr       string   `toml:"addr"`
	SessionTTL Duration `toml:"session_ttl"`
}

type NotifyConfig struct {
	// RedisAddr enables change publishing when set.
	RedisAddr string `toml:"redis_addr"`
	Channel   string `toml:"channel"`
}

// Duration decodes TOML strings such as "90s" or "2h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Server: ServerConfig{
			Addr:       "127.0.0.1:7070",
			SessionTTL: Duration{2 * time.Hour},
		},
		Notify: NotifyConfig{Channel: notify.DefaultChannel},
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads path on top of the defaults. An empty path means DefaultPath,
// where a missing file is tolerated; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed in the TOML types.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Server.SessionTTL.Duration < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "server.session_ttl must not be negative")
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, errs.Wrap(errs.ErrCodeInvalidConfig, err, "log.level")
	}
	return level, nil
}
