package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "mocha" {
		t.Errorf("theme = %q, want mocha", cfg.UI.Theme)
	}
	if cfg.UI.DefaultView != "month" {
		t.Errorf("default_view = %q, want month", cfg.UI.DefaultView)
	}
	if cfg.Calendar.SlotMinutes != 60 {
		t.Errorf("slot_minutes = %d, want 60", cfg.Calendar.SlotMinutes)
	}
	if cfg.Calendar.DefaultColor != "#3b82f6" {
		t.Errorf("default_color = %q", cfg.Calendar.DefaultColor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.UI.DefaultView != "month" {
			t.Errorf("default_view = %q, want month", cfg.UI.DefaultView)
		}
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[ui]
default_view = "week"

[calendar]
slot_minutes = 30
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.UI.DefaultView != "week" {
			t.Errorf("default_view = %q, want week", cfg.UI.DefaultView)
		}
		if cfg.Calendar.SlotMinutes != 30 {
			t.Errorf("slot_minutes = %d, want 30", cfg.Calendar.SlotMinutes)
		}
		// Untouched sections keep defaults.
		if cfg.UI.Theme != "mocha" {
			t.Errorf("theme = %q, want default", cfg.UI.Theme)
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[ui]\ndefault_view = \"week\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("ALMANAC_VIEW", "month")
		t.Setenv("ALMANAC_DB_PATH", "/tmp/almanac-test.db")
		t.Setenv("ALMANAC_LLM_PROVIDER", "ollama")

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.UI.DefaultView != "month" {
			t.Errorf("default_view = %q, want env override", cfg.UI.DefaultView)
		}
		if cfg.Storage.DBPath != "/tmp/almanac-test.db" {
			t.Errorf("db_path = %q, want env override", cfg.Storage.DBPath)
		}
		if cfg.LLM.Provider != "ollama" {
			t.Errorf("llm provider = %q, want env override", cfg.LLM.Provider)
		}
	})

	t.Run("invalid file rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[calendar]\nslot_minutes = 7\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFrom(path); err == nil {
			t.Error("expected error for slot_minutes that does not divide 60")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"bad view", func(c *Config) { c.UI.DefaultView = "year" }, false},
		{"zero slot", func(c *Config) { c.Calendar.SlotMinutes = 0 }, false},
		{"slot not dividing 60", func(c *Config) { c.Calendar.SlotMinutes = 45 }, false},
		{"fifteen minute slots", func(c *Config) { c.Calendar.SlotMinutes = 15 }, true},
		{"bad default color", func(c *Config) { c.Calendar.DefaultColor = "blue" }, false},
		{"bad palette color", func(c *Config) { c.Calendar.Colors = []string{"#zzzzzz"} }, false},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }, false},
		{"ollama provider", func(c *Config) { c.LLM.Provider = "ollama" }, true},
		{"empty provider", func(c *Config) { c.LLM.Provider = "" }, true},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "copilot" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "latte"
	cfg.Storage.DBPath = "/tmp/almanac-test.db"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.UI.Theme != "latte" {
		t.Errorf("theme = %q, want latte", loaded.UI.Theme)
	}
}
