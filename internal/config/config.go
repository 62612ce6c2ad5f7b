// Package config loads settings from defaults, a TOML file, the
// environment and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todo-remind/internal/notify"
	"github.com/idilsaglam/todo-remind/internal/ui"
)

const (
	AppName        = "todo-remind"
	ConfigFileName = "config.toml"
	EnvConfigPath  = "TODO_REMIND_CONFIG"
)

// Config holds everything the program can be tuned with.
type Config struct {
	Theme         string        `toml:"theme"`
	Mouse         bool          `toml:"mouse"`
	Notifications Notifications `toml:"notifications"`
	Log           Log           `toml:"log"`

	// Path of the file the values were read from; empty when none was found.
	Path string `toml:"-"`
}

type Notifications struct {
	Enabled bool `toml:"enabled"`
	// Initial host permission: default, granted or denied.
	Permission string `toml:"permission"`
}

type Log struct {
	File       string `toml:"file"` // empty disables logging
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: "classic",
		Mouse: true,
		Notifications: Notifications{
			Enabled:    true,
			Permission: string(notify.PermissionDefault),
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Permission returns the parsed initial notification permission.
func (c Config) Permission() notify.Permission {
	p, err := notify.ParsePermission(c.Notifications.Permission)
	if err != nil {
		return notify.PermissionDefault
	}
	return p
}

// Validate reports the first invalid value.
func (c Config) Validate() error {
	if !ui.Known(c.Theme) {
		return fmt.Errorf("theme %q: want one of %s", c.Theme, strings.Join(ui.Names, ", "))
	}
	if _, err := notify.ParsePermission(c.Notifications.Permission); err != nil {
		return fmt.Errorf("notifications.permission: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	return nil
}

// Load builds the configuration. getenv is usually os.Getenv.
func Load(fs *flag.FlagSet, args []string, getenv func(string) string) (Config, error) {
	cfg := Default()

	var (
		path     string
		theme    string
		logFile  string
		logLevel string
		noMouse  bool
	)
	fs.StringVar(&path, "config", "", "path to the TOML config file")
	fs.StringVar(&theme, "theme", "", "color theme: "+strings.Join(ui.Names, ", "))
	fs.StringVar(&logFile, "log-file", "", "write logs to this file")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&noMouse, "no-mouse", false, "disable mouse support")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	explicit := path != ""
	if path == "" {
		if v := getenv(EnvConfigPath); v != "" {
			path, explicit = v, true
		} else {
			path = defaultPath(getenv)
		}
	}
	if path != "" {
		if err := loadFile(&cfg, path, explicit); err != nil {
			return cfg, err
		}
	}

	if theme != "" {
		cfg.Theme = theme
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if noMouse {
		cfg.Mouse = false
	}
	cfg.Log.File = expandHome(cfg.Log.File, getenv)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadFile decodes path over cfg. A missing default file is not an error.
func loadFile(cfg *Config, path string, explicit bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return decode(cfg, path, string(b))
}

func decode(cfg *Config, path, data string) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return nil
}

func defaultPath(getenv func(string) string) string {
	dir := getenv("XDG_CONFIG_HOME")
	if dir == "" {
		d, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		dir = d
	}
	return filepath.Join(dir, AppName, ConfigFileName)
}

func expandHome(p string, getenv func(string) string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home := getenv("HOME")
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		home = h
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// WriteExample writes a commented config with the default values.
func WriteExample(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s configuration\n", AppName); err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(Default())
}
