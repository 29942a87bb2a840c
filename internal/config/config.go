// Package config resolves runtime settings. Later sources win: defaults,
// then the YAML config file, then PROJECTIONCTL_* environment variables,
// then command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	// AppDir is created under the user's home directory.
	AppDir = ".projectionctl"

	// JournalOff disables the change journal.
	JournalOff = "off"

	envPrefix = "PROJECTIONCTL_"
)

// Flag names shared by BindFlags and Resolve.
const (
	FlagConfig     = "config"
	FlagDocument   = "file"
	FlagJournal    = "journal"
	FlagLogLevel   = "log-level"
	FlagIDStrategy = "id-strategy"
)

type Config struct {
	// DocumentPath is loaded at startup when set.
	DocumentPath string `yaml:"document"`
	JournalPath  string `yaml:"journal"`
	LogLevel     string `yaml:"log_level"`
	// IDStrategy is uuid or sequence.
	IDStrategy string `yaml:"id_strategy"`
}

// Default returns the built-in settings. The journal lives next to the
// config file in the user's home directory.
func Default() Config {
	cfg := Config{
		JournalPath: JournalOff,
		LogLevel:    "info",
		IDStrategy:  "uuid",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.JournalPath = filepath.Join(home, AppDir, "journal.db")
	}
	return cfg
}

// DefaultFilePath is where the config file is looked for when none is named.
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "config.yaml")
}

// JournalEnabled reports whether mutations should be journaled.
func (c Config) JournalEnabled() bool {
	return c.JournalPath != "" && !strings.EqualFold(c.JournalPath, JournalOff)
}

// SlogLevel parses LogLevel (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values. A missing file is an error only when
// required is set.
func LoadFile(cfg *Config, path string, required bool) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays PROJECTIONCTL_* variables read through getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(envPrefix + "DOCUMENT"); v != "" {
		cfg.DocumentPath = v
	}
	if v := getenv(envPrefix + "JOURNAL"); v != "" {
		cfg.JournalPath = v
	}
	if v := getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(envPrefix + "ID_STRATEGY"); v != "" {
		cfg.IDStrategy = v
	}
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "config file (default ~/"+AppDir+"/config.yaml)")
	fs.StringP(FlagDocument, "f", "", "projection document to load at startup")
	fs.String(FlagJournal, "", `change journal database, or "off"`)
	fs.String(FlagLogLevel, "", "log level: debug, info, warn, error")
	fs.String(FlagIDStrategy, "", "id strategy for new entities: uuid or sequence")
}

// ApplyFlags overlays flags that were set explicitly on the command line.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) error {
	set := func(name string, dst *string) error {
		if !fs.Changed(name) {
			return nil
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	for name, dst := range map[string]*string{
		FlagDocument:   &cfg.DocumentPath,
		FlagJournal:    &cfg.JournalPath,
		FlagLogLevel:   &cfg.LogLevel,
		FlagIDStrategy: &cfg.IDStrategy,
	} {
		if err := set(name, dst); err != nil {
			return err
		}
	}
	return nil
}

// Resolve builds the effective configuration from every source. The
// config file is taken from --config, then PROJECTIONCTL_CONFIG, then the
// default location; only an explicitly named file must exist.
func Resolve(fs *pflag.FlagSet, getenv func(string) string) (Config, error) {
	cfg := Default()

	path, required := DefaultFilePath(), false
	if v := getenv(envPrefix + "CONFIG"); v != "" {
		path, required = v, true
	}
	if fs != nil && fs.Changed(FlagConfig) {
		v, err := fs.GetString(FlagConfig)
		if err != nil {
			return cfg, err
		}
		path, required = v, true
	}
	if err := LoadFile(&cfg, path, required); err != nil {
		return cfg, err
	}

	ApplyEnv(&cfg, getenv)

	if fs != nil {
		if err := ApplyFlags(&cfg, fs); err != nil {
			return cfg, err
		}
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
