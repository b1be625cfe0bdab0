// Package config handles configuration loading from files, defaults, and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	UI       UIConfig       `toml:"ui"`
	Calendar CalendarConfig `toml:"calendar"`
	Storage  StorageConfig  `toml:"storage"`
	LLM      LLMConfig      `toml:"llm"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme       string `toml:"theme"`        // "mocha" or "latte"
	DefaultView string `toml:"default_view"` // "month" or "week"
}

// CalendarConfig holds calendar rendering settings.
type CalendarConfig struct {
	SlotMinutes  int      `toml:"slot_minutes"`  // week view slot interval; must divide 60
	DefaultColor string   `toml:"default_color"` // hex color for new events without one
	Categories   []string `toml:"categories"`    // options offered by the event form
	Colors       []string `toml:"colors"`        // color options offered by the event form
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// LLMConfig holds settings for the natural-language quick-add client.
type LLMConfig struct {
	Provider string `toml:"provider"` // "openai" or "ollama"
	Model    string `toml:"model"`    // e.g. "gpt-4o"
	BaseURL  string `toml:"base_url"` // provider endpoint; empty uses the provider default
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:       "mocha",
			DefaultView: "month",
		},
		Calendar: CalendarConfig{
			SlotMinutes:  60,
			DefaultColor: "#3b82f6",
			Categories:   []string{"Meeting", "Work", "Personal", "Health", "Travel"},
			Colors:       []string{"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6"},
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o",
			BaseURL:  "",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "almanac.db"
	}
	return filepath.Join(home, ".local", "share", "almanac", "almanac.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "almanac", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and
// env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path. It starts with
// defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ALMANAC_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("ALMANAC_VIEW"); v != "" {
		cfg.UI.DefaultView = v
	}
	if v := os.Getenv("ALMANAC_SLOT_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Calendar.SlotMinutes = n
		}
	}
	if v := os.Getenv("ALMANAC_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("ALMANAC_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("ALMANAC_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("ALMANAC_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.UI.DefaultView {
	case "month", "week":
	default:
		return fmt.Errorf("default_view must be \"month\" or \"week\", got %q", c.UI.DefaultView)
	}

	if c.Calendar.SlotMinutes <= 0 || 60%c.Calendar.SlotMinutes != 0 {
		return fmt.Errorf("slot_minutes must evenly divide 60, got %d", c.Calendar.SlotMinutes)
	}
	if err := validateColor(c.Calendar.DefaultColor, "default_color"); err != nil {
		return err
	}
	for _, col := range c.Calendar.Colors {
		if err := validateColor(col, "colors"); err != nil {
			return err
		}
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}

	switch c.LLM.Provider {
	case "", "openai", "ollama":
	default:
		return fmt.Errorf("llm provider must be \"openai\" or \"ollama\", got %q", c.LLM.Provider)
	}
	return nil
}

// validateColor checks a #RRGGBB hex color.
func validateColor(col, field string) error {
	if len(col) != 7 || col[0] != '#' {
		return fmt.Errorf("%s must be a #RRGGBB color, got %q", field, col)
	}
	for _, c := range col[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return fmt.Errorf("%s must be a #RRGGBB color, got %q", field, col)
		}
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
