package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

const (
	configDirName  = ".composer"
	configFileName = "config.json"
	keymapFileName = "keymap.json"
)

// Defaults applied to fields left empty in config.json.
const (
	DefaultAutosizeMinRows = 3
	DefaultAutosizeMaxRows = 12
	DefaultLanguage        = "en"
	DefaultGlamourStyle    = "dark"
)

var ErrNotConfigured = errors.New("composer is not configured")

// Config stores user-defined composer settings.
type Config struct {
	// PeopleFile is a TOML directory used to turn recipient emails into names.
	PeopleFile string `json:"people_file,omitempty"`
	// Keybindings overrides action keys, e.g. {"compose.italic": "ctrl+t"}.
	Keybindings map[string]string `json:"keybindings,omitempty"`
	// KeymapFile is an optional JSON file with the same shape as Keybindings.
	// It is applied after Keybindings.
	KeymapFile string `json:"keymap_file,omitempty"`
	// MacKeyboard makes Meta (reported as alt by most terminals) the command
	// modifier for formatting shortcuts.
	MacKeyboard bool `json:"mac_keyboard,omitempty"`
	// NativeInsert selects the editor's own insert primitive. nil means true.
	NativeInsert    *bool  `json:"native_insert,omitempty"`
	AutosizeMinRows int    `json:"autosize_min_rows,omitempty"`
	AutosizeMaxRows int    `json:"autosize_max_rows,omitempty"`
	Language        string `json:"language,omitempty"`
	GlamourStyle    string `json:"glamour_style,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{}
	if path, err := defaultKeymapPath(); err == nil {
		cfg.KeymapFile = path
	}
	cfg.applyDefaults()
	return cfg
}

// UseNativeInsert reports whether the native insert primitive is enabled.
func (c Config) UseNativeInsert() bool {
	return c.NativeInsert == nil || *c.NativeInsert
}

// LanguageTag parses Language, falling back to English.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

func (c *Config) applyDefaults() {
	if c.AutosizeMinRows <= 0 {
		c.AutosizeMinRows = DefaultAutosizeMinRows
	}
	if c.AutosizeMaxRows <= 0 {
		c.AutosizeMaxRows = DefaultAutosizeMaxRows
	}
	if c.AutosizeMaxRows < c.AutosizeMinRows {
		c.AutosizeMaxRows = c.AutosizeMinRows
	}
	if strings.TrimSpace(c.Language) == "" {
		c.Language = DefaultLanguage
	}
	if strings.TrimSpace(c.GlamourStyle) == "" {
		c.GlamourStyle = DefaultGlamourStyle
	}
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func defaultKeymapPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, keymapFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load reads and validates the saved configuration. A missing file yields
// ErrNotConfigured; callers usually fall back to Default.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return Config{}, err
	}
	if cfg.KeymapFile == "" {
		if path, err := defaultKeymapPath(); err == nil {
			cfg.KeymapFile = path
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	if err := cfg.normalizePaths(); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(path, data, 0o600)
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.PeopleFile) != "" {
		path, err := NormalizePath(c.PeopleFile)
		if err != nil {
			return fmt.Errorf("invalid people_file: %w", err)
		}
		c.PeopleFile = path
	}
	if strings.TrimSpace(c.KeymapFile) != "" {
		path, err := NormalizePath(c.KeymapFile)
		if err != nil {
			return fmt.Errorf("invalid keymap_file: %w", err)
		}
		c.KeymapFile = path
	}
	return nil
}

// NormalizePath expands a leading "~" and returns a clean absolute path.
func NormalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
