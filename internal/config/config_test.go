package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "spendwise")
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Assistant.Model != "gemini-1.5-flash-latest" {
		t.Fatalf("default model = %q", cfg.Assistant.Model)
	}
	if cfg.Assistant.TimeoutSecs != 30 {
		t.Fatalf("default timeout = %d, want 30", cfg.Assistant.TimeoutSecs)
	}
	if cfg.General.Currency != "₹" {
		t.Fatalf("default currency = %q", cfg.General.Currency)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.Assistant.APIKey = "test-key"
	cfg.Assistant.Temperature = 0.7
	cfg.General.Currency = "$"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Assistant.APIKey != "test-key" {
		t.Fatalf("APIKey = %q", got.Assistant.APIKey)
	}
	if got.Assistant.Temperature != 0.7 {
		t.Fatalf("Temperature = %v", got.Assistant.Temperature)
	}
	if got.General.Currency != "$" {
		t.Fatalf("Currency = %q", got.General.Currency)
	}
}

func TestGetAPIKey_EnvWins(t *testing.T) {
	withTempConfigDir(t)
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := DefaultConfig()
	cfg.Assistant.APIKey = "file-key"
	if got := GetAPIKey(cfg); got != "env-key" {
		t.Fatalf("GetAPIKey = %q, want env-key", got)
	}

	os.Unsetenv("GEMINI_API_KEY")
	if got := GetAPIKey(cfg); got != "file-key" {
		t.Fatalf("GetAPIKey = %q, want file-key", got)
	}
}
