package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `api_key: "gsk_test"
model: "llama-3.1-8b-instant"
hotkey: "ctrl+shift+x"
debug: true
capture:
  settle_ms: 50
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIKey != "gsk_test" || cfg.Model != "llama-3.1-8b-instant" || cfg.Hotkey != "ctrl+shift+x" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !cfg.Debug {
		t.Fatal("debug should be true")
	}
	if cfg.Capture.SettleMs != 50 {
		t.Fatalf("settle_ms = %d, want override 50", cfg.Capture.SettleMs)
	}
	// Untouched sections keep their defaults.
	if cfg.BaseURL != defaultGroqBaseURL {
		t.Fatalf("base_url = %q", cfg.BaseURL)
	}
	if cfg.Paste.RestoreAfterS != 10 {
		t.Fatalf("restore_after_s = %d, want default 10", cfg.Paste.RestoreAfterS)
	}
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(`hotkey: "alt+shift+s"`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNIPAI_API_KEY", "")
	if _, err := loadConfig(path); err == nil || !strings.Contains(err.Error(), "api_key") {
		t.Fatalf("err = %v, want api_key complaint", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(`api_key: "from-file"`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNIPAI_API_KEY", "from-env")
	t.Setenv("SNIPAI_MODEL", "env-model")
	t.Setenv("SNIPAI_DEBUG", "yes")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Fatalf("APIKey = %q, want env override", cfg.APIKey)
	}
	if cfg.Model != "env-model" {
		t.Fatalf("Model = %q", cfg.Model)
	}
	if !cfg.Debug {
		t.Fatal("SNIPAI_DEBUG=yes should enable debug")
	}
}

func TestLoadConfigMissingFileEnvOnly(t *testing.T) {
	t.Setenv("SNIPAI_API_KEY", "env-key")
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("env-only configuration should work: %v", err)
	}
	if cfg.APIKey != "env-key" || cfg.Hotkey != "alt+shift+s" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestDefaultTimings(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Capture.SettleMs != 300 || cfg.Capture.SlowSettleMs != 500 || cfg.Capture.HoldStepMs != 100 {
		t.Fatalf("capture defaults = %+v", cfg.Capture)
	}
	if cfg.Paste.MaxSelectMoves != 1000 {
		t.Fatalf("max_select_moves = %d", cfg.Paste.MaxSelectMoves)
	}
}
