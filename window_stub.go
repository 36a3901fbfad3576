//go:build !windows

package main

// Focus control on X11/Wayland and macOS needs compositor- or
// AppleScript-specific plumbing that is not wired up yet; pastes land in
// whatever window currently has focus, which is usually the one the
// selection came from.
type nullWindow struct{}

func activeForeignWindow() foreignWindow {
	return nullWindow{}
}

func (nullWindow) Title() string { return "" }

func (nullWindow) Activate() error { return nil }
