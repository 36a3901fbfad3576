package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

type config struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	Model        string `yaml:"model"`
	Hotkey       string `yaml:"hotkey"`
	SystemPrompt string `yaml:"system_prompt"`
	Debug        bool   `yaml:"debug"`

	Capture captureConfig `yaml:"capture"`
	Paste   pasteConfig   `yaml:"paste"`
}

type captureConfig struct {
	SettleMs     int `yaml:"settle_ms"`
	SlowSettleMs int `yaml:"slow_settle_ms"`
	HoldStepMs   int `yaml:"hold_step_ms"`
}

type pasteConfig struct {
	ActivateSettleMs int `yaml:"activate_settle_ms"`
	PasteSettleMs    int `yaml:"paste_settle_ms"`
	RefocusDelayMs   int `yaml:"refocus_delay_ms"`
	RestoreAfterS    int `yaml:"restore_after_s"`
	MaxSelectMoves   int `yaml:"max_select_moves"`
}

func defaultConfig() config {
	return config{
		BaseURL:      defaultGroqBaseURL,
		Model:        "llama-3.3-70b-versatile",
		Hotkey:       "alt+shift+s",
		SystemPrompt: defaultSystemPrompt,
		Capture: captureConfig{
			SettleMs:     300,
			SlowSettleMs: 500,
			HoldStepMs:   100,
		},
		Paste: pasteConfig{
			ActivateSettleMs: 500,
			PasteSettleMs:    300,
			RefocusDelayMs:   500,
			RestoreAfterS:    10,
			MaxSelectMoves:   1000,
		},
	}
}

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "snipai", "config.yaml"), nil
}

// loadConfig reads path (or the default location when path is empty), applies
// SNIPAI_* environment overrides, and validates the result. A missing file at
// the default location is seeded with a template so the user has something to
// fill in.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	seeded := false
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, fmt.Errorf("resolve config dir: %w", err)
		}
		path = p
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if werr := writeConfigTemplate(path); werr == nil {
				seeded = true
			}
		}
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if uerr := yaml.Unmarshal(raw, &cfg); uerr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, uerr)
		}
	case errors.Is(err, os.ErrNotExist):
		// Environment-only configuration is allowed.
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if strings.TrimSpace(cfg.APIKey) == "" {
		if seeded {
			return cfg, fmt.Errorf("api_key is not set; a template was written to %s", path)
		}
		return cfg, fmt.Errorf("api_key is not set (config %s or SNIPAI_API_KEY)", path)
	}
	if strings.TrimSpace(cfg.Hotkey) == "" {
		return cfg, fmt.Errorf("hotkey is not set (config %s or SNIPAI_HOTKEY)", path)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *config) {
	if v := strings.TrimSpace(os.Getenv("SNIPAI_API_KEY")); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("SNIPAI_HOTKEY")); v != "" {
		cfg.Hotkey = v
	}
	if v := strings.TrimSpace(os.Getenv("SNIPAI_MODEL")); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("SNIPAI_BASE_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SNIPAI_DEBUG"); v != "" {
		cfg.Debug = envBool("SNIPAI_DEBUG")
	}
}

func envBool(name string) bool {
	v := strings.TrimSpace(os.Getenv(name))
	return v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "yes") || strings.EqualFold(v, "on")
}

func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	const tmpl = `# SnipAI configuration.
# api_key is required. Get one at https://console.groq.com/keys
api_key: ""
model: "llama-3.3-70b-versatile"
# Global hotkey that opens a chat for the current selection.
hotkey: "alt+shift+s"
debug: false
`
	return os.WriteFile(path, []byte(tmpl), 0o600)
}

// dataDir is where logs and the session event journal live.
func (c config) dataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "snipai-data"
	}
	return filepath.Join(dir, "snipai")
}
