package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// writeRunSummary persists end-of-run counters next to the event journal.
func writeRunSummary(m appModel, dataDir string) {
	if dataDir == "" {
		return
	}
	_ = os.MkdirAll(dataDir, 0o755)

	alerts := m.alerts
	if len(alerts) > 10 {
		alerts = alerts[len(alerts)-10:]
	}

	out := map[string]any{
		"version":       1,
		"updatedAt":     time.Now().UTC().Format(time.RFC3339Nano),
		"model":         m.cfg.Model,
		"hotkey":        m.cfg.Hotkey,
		"captures":      m.counters.captures,
		"emptyCaptures": m.counters.emptyCaptures,
		"replies":       m.counters.replies,
		"replyErrors":   m.counters.replyErrors,
		"suggestions":   m.counters.suggestions,
		"pastes":        m.counters.pastes,
		"undos":         m.counters.undos,
		"recentAlerts":  alerts,
		"eventsPath":    filepath.Join(dataDir, "events.jsonl"),
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(filepath.Join(dataDir, "summary.json"), append(b, '\n'), 0o644)
}
