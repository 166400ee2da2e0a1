// Package config loads the Forgewright settings file. Settings only affect
// the shell around the command core (palette page size, theme, logging);
// commands themselves are never persisted.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings are the user-tunable knobs of the palette application.
type Settings struct {
	// HistoryLimit bounds the command history ledger.
	HistoryLimit int `toml:"history_limit"`
	// PageSize is how many palette results are visible at once.
	PageSize int `toml:"page_size"`
	// Theme selects the editor theme applied at start-up.
	Theme string `toml:"theme"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// configFile is the top-level TOML structure.
type configFile struct {
	Settings Settings `toml:"settings"`
}

const defaultConfigTOML = `# Fantasy Forgewright settings

[settings]
history_limit = 50
page_size = 10
theme = "parchment"
log_level = "info"
`

// Defaults returns the settings used when no file exists yet.
func Defaults() Settings {
	return Settings{
		HistoryLimit: 50,
		PageSize:     10,
		Theme:        "parchment",
		LogLevel:     "info",
	}
}

// Dir returns the directory for Forgewright config files, using
// XDG_CONFIG_HOME or falling back to ~/.config.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "forgewright"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "forgewright"), nil
}

// Load reads the settings file at path, or the default location when path
// is empty. A missing file is created with the default contents first, so
// users always have something to edit.
func Load(path string) (Settings, error) {
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return Defaults(), err
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefault(path); err != nil {
			slog.Warn("Could not write default config", "path", path, "error", err)
			return Defaults(), nil
		}
	}

	var file configFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Defaults(), fmt.Errorf("parsing %s: %w", path, err)
	}

	settings := file.Settings
	defaults := Defaults()
	if settings.HistoryLimit <= 0 {
		settings.HistoryLimit = defaults.HistoryLimit
	}
	if settings.PageSize <= 0 {
		settings.PageSize = defaults.PageSize
	}
	if settings.Theme == "" {
		settings.Theme = defaults.Theme
	}
	if settings.LogLevel == "" {
		settings.LogLevel = defaults.LogLevel
	}
	return settings, nil
}

// writeDefault creates path with the default TOML contents.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigTOML), 0o644)
}

// SlogLevel maps the configured log level to a slog.Level, defaulting to
// Info for anything unrecognized.
func (s Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
