package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// ShowIDs renders the project ID under each card title.
	ShowIDs bool `mapstructure:"show_ids" yaml:"show_ids"`
}

// JournalConfig controls the activity journal database.
type JournalConfig struct {
	// Path is the SQLite database path. ":memory:" keeps the journal
	// for the current session only.
	Path string `mapstructure:"path" yaml:"path"`

	// HistoryLimit caps how many events the history view loads.
	HistoryLimit int `mapstructure:"history_limit" yaml:"history_limit"`
}

// LogConfig controls the structured log file.
type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path"`
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Journal JournalConfig `mapstructure:"journal" yaml:"journal"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// configDir returns ~/.config/projectboard, falling back to the working
// directory when the home directory is unknown.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "projectboard")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/projectboard/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			ShowIDs: false,
		},
		Journal: JournalConfig{
			Path:         ":memory:",
			HistoryLimit: 50,
		},
		Log: LogConfig{
			Path:  filepath.Join(configDir(), "board.log"),
			Level: "info",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("display.show_ids", defaults.Display.ShowIDs)
	v.SetDefault("journal.path", defaults.Journal.Path)
	v.SetDefault("journal.history_limit", defaults.Journal.HistoryLimit)
	v.SetDefault("log.path", defaults.Log.Path)
	v.SetDefault("log.level", defaults.Log.Level)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaults, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Journal.HistoryLimit <= 0 {
		cfg.Journal.HistoryLimit = defaults.Journal.HistoryLimit
	}
	if cfg.Journal.Path == "" {
		cfg.Journal.Path = defaults.Journal.Path
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("display.show_ids", cfg.Display.ShowIDs)
	v.Set("journal.path", cfg.Journal.Path)
	v.Set("journal.history_limit", cfg.Journal.HistoryLimit)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
