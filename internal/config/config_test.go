package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected default provider %q, got %q", ProviderOpenAI, cfg.Provider)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %q", cfg.Model)
	}
	if cfg.Server.Port != 8950 {
		t.Errorf("expected default port 8950, got %d", cfg.Server.Port)
	}
	if cfg.Chat.HistoryLimit != 10 {
		t.Errorf("expected default history_limit 10, got %d", cfg.Chat.HistoryLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.campusbot.yml")

	original := DefaultConfig()
	original.Provider = ProviderOllama
	original.Model = "llama3"
	original.Language = "hi"
	original.Server.Port = 9000
	original.Engine.ExtraCourses = []string{"bpharm", "mpharm"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Language != "hi" {
		t.Errorf("language: got %q, want hi", loaded.Language)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("port: got %d, want 9000", loaded.Server.Port)
	}
	if len(loaded.Engine.ExtraCourses) != 2 || loaded.Engine.ExtraCourses[0] != "bpharm" {
		t.Errorf("extra_courses: got %v", loaded.Engine.ExtraCourses)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected default provider, got %q", cfg.Provider)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("CAMPUSBOT_PROVIDER", "ollama")
	t.Setenv("CAMPUSBOT_MODEL", "llama3:70b")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Provider != ProviderOllama {
		t.Errorf("provider: got %q, want ollama from env", loaded.Provider)
	}
	if loaded.Model != "llama3:70b" {
		t.Errorf("model: got %q, want llama3:70b from env", loaded.Model)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty provider", func(c *Config) { c.Provider = "" }, true},
		{"unknown provider", func(c *Config) { c.Provider = "watson" }, true},
		{"empty model", func(c *Config) { c.Model = "" }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative timeout", func(c *Config) { c.Chat.FallbackTimeout = -1 }, true},
		{"threshold over 100", func(c *Config) { c.Engine.ConfidenceThreshold = 150 }, true},
		{"negative margin", func(c *Config) { c.Engine.AmbiguityMargin = -2 }, true},
		{"valid tuning", func(c *Config) {
			c.Engine.ConfidenceThreshold = 75
			c.Engine.AmbiguityMargin = 3
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
