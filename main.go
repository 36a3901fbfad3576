package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"
)

const hotkeyDebounce = 500 * time.Millisecond

func main() {
	var configPath string
	var smoke bool
	flag.StringVar(&configPath, "config", "", "path to config.yaml (default: user config dir)")
	flag.BoolVar(&smoke, "smoke", false, "run deterministic non-interactive smoke simulation")
	flag.Parse()

	if smoke {
		cfg := defaultConfig()
		cfg.APIKey = "smoke"
		outDir := filepath.Join(cfg.dataDir(), "verify", fmt.Sprintf("run_%d", time.Now().UnixMilli()))
		_ = os.MkdirAll(outDir, 0o755)
		report := runSmoke(cfg)
		_ = os.WriteFile(filepath.Join(outDir, "view.txt"), []byte(report.view+"\n"), 0o644)
		_ = os.WriteFile(filepath.Join(outDir, "summary.json"), []byte(report.json+"\n"), 0o644)
		fmt.Println("snipai-smoke-ok")
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, closeLog, err := newFileLogger(cfg.dataDir(), cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log file:", err)
	}
	defer func() { _ = closeLog() }()

	if err := clipboard.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "clipboard unavailable:", err)
		os.Exit(1)
	}

	guard := newClipboardGuard(systemClipboard{})
	sim := kbdSimulator{}
	capturer := newSelectionCapturer(guard, sim, cfg.Capture, log)
	applier := newPasteApplier(guard, sim, cfg.Paste, log)

	deps := appDeps{
		provider:    newGroqProvider(cfg),
		capture:     capturer.Capture,
		paste:       applier.Apply,
		frontWindow: activeForeignWindow,
	}

	events := newEventLogger(cfg.dataDir())
	m := newAppModel(cfg, deps, events, log)

	p := tea.NewProgram(m, tea.WithAltScreen())

	hkm, err := newHotkeyManager(cfg.Hotkey, hotkeyDebounce, func() {
		p.Send(hotkeyTriggeredMsg{})
	}, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	go hkm.Listen()

	finalModel, err := p.Run()
	hkm.Stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if am, ok := finalModel.(appModel); ok {
		writeRunSummary(am, cfg.dataDir())
	}
}

type smokeReport struct {
	view string
	json string
}

type smokeWindow struct{}

func (smokeWindow) Title() string   { return "smoke-editor" }
func (smokeWindow) Activate() error { return nil }

// scriptedProvider returns one canned reply without touching the network.
type scriptedProvider struct {
	reply string
}

func (p scriptedProvider) Respond(_ context.Context, _ string) (string, error) {
	return p.reply, nil
}

func (p scriptedProvider) Reset() {}

// runSmoke drives the model through one full capture, chat, suggestion, and
// paste round trip with every collaborator faked, then reports what it saw.
func runSmoke(cfg config) smokeReport {
	pasted := []string{}
	deps := appDeps{
		provider: scriptedProvider{reply: "Voilà.\n```json\n{\"enhanced_content\": \"bonjour le monde\"}\n```\n"},
		capture:  func() (string, bool) { return "hello world", true },
		paste: func(_ foreignWindow, text string) error {
			pasted = append(pasted, text)
			return nil
		},
		frontWindow: func() foreignWindow { return smokeWindow{} },
	}

	m := newAppModel(cfg, deps, nil, nopLogger())
	var model tea.Model = m

	step := func(msg tea.Msg) {
		var cmd tea.Cmd
		model, cmd = model.Update(msg)
		if cmd != nil {
			if next := cmd(); next != nil {
				if _, isTick := next.(time.Time); !isTick {
					model, _ = model.Update(next)
				}
			}
		}
	}

	step(tea.WindowSizeMsg{Width: 80, Height: 24})
	step(hotkeyTriggeredMsg{})
	step(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("translate to french")})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	step(tea.KeyMsg{Type: tea.KeyCtrlP})

	am, _ := model.(appModel)
	sessionOpen := am.session != nil
	suggestion := ""
	if sessionOpen {
		suggestion = am.session.history.Current()
	}
	summary := map[string]any{
		"version":     1,
		"ok":          sessionOpen && suggestion == "bonjour le monde" && len(pasted) == 1,
		"sessionOpen": sessionOpen,
		"suggestion":  suggestion,
		"pasted":      pasted,
		"captures":    am.counters.captures,
		"replies":     am.counters.replies,
		"pastes":      am.counters.pastes,
	}
	b, _ := json.Marshal(summary)
	return smokeReport{view: am.View(), json: string(b)}
}
