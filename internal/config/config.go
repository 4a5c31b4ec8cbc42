package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runger/hop/internal/icon"
)

// Config represents the hop configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Icon    IconConfig    `yaml:"icon"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`

	// EntriesFile overrides the default entries file location.
	EntriesFile string `yaml:"entries_file"`
}

// UIConfig holds picker-related settings.
type UIConfig struct {
	MaxResults       int  `yaml:"max_results"`       // Max entries shown in the picker
	ShowDescriptions bool `yaml:"show_descriptions"` // Render entry descriptions under the list
}

// IconConfig holds icon resolution settings.
type IconConfig struct {
	Size        int      `yaml:"size"`         // Requested icon edge length in pixels
	ThemeDirs   []string `yaml:"theme_dirs"`   // Directories searched for theme icons
	DefaultIcon string   `yaml:"default_icon"` // Image used when no icon is found
}

// HistoryConfig holds launch history settings.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"` // Record launches to the database
	DBPath  string `yaml:"db_path"` // Database path (overrides default)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file path (overrides default)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			MaxResults:       10,
			ShowDescriptions: true,
		},
		Icon: IconConfig{
			Size:      16,
			ThemeDirs: nil, // No themes configured; placeholder icons
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "", // Use default from paths
		},
		Log: LogConfig{
			Level: "info",
			File:  "", // Use default from paths
		},
	}
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	paths := DefaultPaths()
	return c.SaveToFile(paths.ConfigFile())
}

// SaveToFile saves the configuration to the specified file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolvedEntriesFile returns the entries file path, honoring the
// config override.
func (c *Config) ResolvedEntriesFile(paths *Paths) string {
	if c.EntriesFile != "" {
		return c.EntriesFile
	}
	return paths.EntriesFile()
}

// ResolvedDBPath returns the history database path, honoring the
// config override.
func (c *Config) ResolvedDBPath(paths *Paths) string {
	if c.History.DBPath != "" {
		return c.History.DBPath
	}
	return paths.DatabaseFile()
}

// IconSettings converts the icon section to the worker settings value.
func (c *Config) IconSettings() icon.Settings {
	return icon.Settings{
		Size:        c.Icon.Size,
		ThemeDirs:   c.Icon.ThemeDirs,
		DefaultIcon: c.Icon.DefaultIcon,
	}
}

// Get retrieves a configuration value by dot-separated key.
// For example: "ui.max_results" or "log.level"
func (c *Config) Get(key string) (string, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return "", errors.New("key must be in format 'section.key'")
	}

	section, field := parts[0], parts[1]

	switch section {
	case "ui":
		return c.getUIField(field)
	case "icon":
		return c.getIconField(field)
	case "history":
		return c.getHistoryField(field)
	case "log":
		return c.getLogField(field)
	default:
		return "", fmt.Errorf("unknown section: %s", section)
	}
}

// Set sets a configuration value by dot-separated key.
func (c *Config) Set(key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return errors.New("key must be in format 'section.key'")
	}

	section, field := parts[0], parts[1]

	switch section {
	case "ui":
		return c.setUIField(field, value)
	case "icon":
		return c.setIconField(field, value)
	case "history":
		return c.setHistoryField(field, value)
	case "log":
		return c.setLogField(field, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

func (c *Config) getUIField(field string) (string, error) {
	switch field {
	case "max_results":
		return strconv.Itoa(c.UI.MaxResults), nil
	case "show_descriptions":
		return strconv.FormatBool(c.UI.ShowDescriptions), nil
	default:
		return "", fmt.Errorf("unknown field: ui.%s", field)
	}
}

func (c *Config) setUIField(field, value string) error {
	switch field {
	case "max_results":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for max_results: %w", err)
		}
		if v < 1 {
			return fmt.Errorf("invalid max_results: must be positive")
		}
		c.UI.MaxResults = v
	case "show_descriptions":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for show_descriptions: %w", err)
		}
		c.UI.ShowDescriptions = v
	default:
		return fmt.Errorf("unknown field: ui.%s", field)
	}
	return nil
}

func (c *Config) getIconField(field string) (string, error) {
	switch field {
	case "size":
		return strconv.Itoa(c.Icon.Size), nil
	case "theme_dirs":
		return strings.Join(c.Icon.ThemeDirs, string(os.PathListSeparator)), nil
	case "default_icon":
		return c.Icon.DefaultIcon, nil
	default:
		return "", fmt.Errorf("unknown field: icon.%s", field)
	}
}

func (c *Config) setIconField(field, value string) error {
	switch field {
	case "size":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for size: %w", err)
		}
		if v < 1 {
			return fmt.Errorf("invalid size: must be positive")
		}
		c.Icon.Size = v
	case "theme_dirs":
		if value == "" {
			c.Icon.ThemeDirs = nil
		} else {
			c.Icon.ThemeDirs = strings.Split(value, string(os.PathListSeparator))
		}
	case "default_icon":
		c.Icon.DefaultIcon = value
	default:
		return fmt.Errorf("unknown field: icon.%s", field)
	}
	return nil
}

func (c *Config) getHistoryField(field string) (string, error) {
	switch field {
	case "enabled":
		return strconv.FormatBool(c.History.Enabled), nil
	case "db_path":
		return c.History.DBPath, nil
	default:
		return "", fmt.Errorf("unknown field: history.%s", field)
	}
}

func (c *Config) setHistoryField(field, value string) error {
	switch field {
	case "enabled":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for enabled: %w", err)
		}
		c.History.Enabled = v
	case "db_path":
		c.History.DBPath = value
	default:
		return fmt.Errorf("unknown field: history.%s", field)
	}
	return nil
}

func (c *Config) getLogField(field string) (string, error) {
	switch field {
	case "level":
		return c.Log.Level, nil
	case "file":
		return c.Log.File, nil
	default:
		return "", fmt.Errorf("unknown field: log.%s", field)
	}
}

func (c *Config) setLogField(field, value string) error {
	switch field {
	case "level":
		if !isValidLogLevel(value) {
			return fmt.Errorf("invalid level: %s (must be debug, info, warn, or error)", value)
		}
		c.Log.Level = value
	case "file":
		c.Log.File = value
	default:
		return fmt.Errorf("unknown field: log.%s", field)
	}
	return nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.UI.MaxResults < 1 {
		return errors.New("ui.max_results must be >= 1")
	}

	if c.Icon.Size < 1 {
		return errors.New("icon.size must be >= 1")
	}

	if !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error (got: %s)", c.Log.Level)
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// ApplyEnvOverrides applies environment variable overrides to the
// config. Environment variables override config file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("HOP_ENTRIES"); v != "" {
		c.EntriesFile = v
	}
	if v := os.Getenv("HOP_LOG_LEVEL"); v != "" {
		if isValidLogLevel(v) {
			c.Log.Level = v
		}
	}
	if v := os.Getenv("HOP_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Log.Level = "debug"
		}
	}
	if v := os.Getenv("HOP_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.History.Enabled = b
		}
	}
}

// ListKeys returns user-facing configuration keys.
func ListKeys() []string {
	return []string{
		"ui.max_results",
		"ui.show_descriptions",
		"icon.size",
		"icon.theme_dirs",
		"icon.default_icon",
		"history.enabled",
		"history.db_path",
		"log.level",
		"log.file",
	}
}
