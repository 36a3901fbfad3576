package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.design/x/hotkey"
)

// debouncer collapses rapid repeated triggers into one per window. A held
// hotkey auto-repeats at the OS level; without this, a single physical press
// would open a pile of capture attempts.
type debouncer struct {
	mu     sync.Mutex
	window time.Duration
	last   time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window}
}

// Allow reports whether a trigger at now should fire, and if so starts a new
// debounce window.
func (d *debouncer) Allow(now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.last.IsZero() && now.Sub(d.last) < d.window {
		return false
	}
	d.last = now
	return true
}

// hotkeyManager owns the global hotkey registration and forwards debounced
// keydown events to notify. notify is called from the listener goroutine, so
// it must be a thread-safe hand-off (tea.Program.Send in practice).
type hotkeyManager struct {
	hk     *hotkey.Hotkey
	deb    *debouncer
	notify func()
	log    *slog.Logger
	stop   chan struct{}
}

func newHotkeyManager(binding string, window time.Duration, notify func(), log *slog.Logger) (*hotkeyManager, error) {
	mods, key, err := parseBinding(binding)
	if err != nil {
		return nil, err
	}
	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("register hotkey %q: %w", binding, err)
	}
	return &hotkeyManager{
		hk:     hk,
		deb:    newDebouncer(window),
		notify: notify,
		log:    log,
		stop:   make(chan struct{}),
	}, nil
}

func (h *hotkeyManager) Listen() {
	for {
		select {
		case <-h.stop:
			return
		case <-h.hk.Keydown():
			if h.deb.Allow(time.Now()) {
				h.notify()
			} else {
				h.log.Debug("hotkey trigger dropped by debounce")
			}
		}
	}
}

func (h *hotkeyManager) Stop() {
	close(h.stop)
	_ = h.hk.Unregister()
}

var bindingKeys = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3,
	"f4": hotkey.KeyF4, "f5": hotkey.KeyF5, "f6": hotkey.KeyF6,
	"f7": hotkey.KeyF7, "f8": hotkey.KeyF8, "f9": hotkey.KeyF9,
	"f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
	"space": hotkey.KeySpace,
}

// parseBinding turns "alt+shift+s" style strings into hotkey registration
// arguments. The last part is the key; everything before it is a modifier.
func parseBinding(binding string) ([]hotkey.Modifier, hotkey.Key, error) {
	parts := strings.Split(binding, "+")
	if len(parts) < 2 {
		return nil, 0, fmt.Errorf("invalid hotkey %q: need at least one modifier and a key", binding)
	}
	var mods []hotkey.Modifier
	for _, part := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "ctrl", "control":
			mods = append(mods, hotkey.ModCtrl)
		case "shift":
			mods = append(mods, hotkey.ModShift)
		case "alt":
			mods = append(mods, modAlt)
		default:
			return nil, 0, fmt.Errorf("invalid hotkey %q: unknown modifier %q", binding, part)
		}
	}
	name := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	key, ok := bindingKeys[name]
	if !ok {
		return nil, 0, fmt.Errorf("invalid hotkey %q: unknown key %q", binding, name)
	}
	return mods, key, nil
}
