package main

import (
	"sync"
	"time"

	"golang.design/x/clipboard"
)

// clipboardIO abstracts the system clipboard so the guard and the operations
// built on it can be exercised against a fake in tests.
type clipboardIO interface {
	readText() string
	writeText(string)
}

// systemClipboard is the real clipboard. clipboard.Init must have succeeded
// before it is used.
type systemClipboard struct{}

func (systemClipboard) readText() string {
	return string(clipboard.Read(clipboard.FmtText))
}

func (systemClipboard) writeText(s string) {
	clipboard.Write(clipboard.FmtText, []byte(s))
}

// clipboardGuard serializes ownership of the process-wide clipboard. Capture
// and paste both transiently own the clipboard; the internal mutex guarantees
// they can never interleave, including while a delayed restore is pending.
type clipboardGuard struct {
	mu   sync.Mutex
	clip clipboardIO
}

func newClipboardGuard(clip clipboardIO) *clipboardGuard {
	return &clipboardGuard{clip: clip}
}

// Acquire snapshots the current clipboard content and takes exclusive
// ownership until the returned lease is released.
func (g *clipboardGuard) Acquire() *clipboardLease {
	g.mu.Lock()
	return &clipboardLease{g: g, saved: g.clip.readText()}
}

// clipboardLease is one scoped acquisition of the clipboard. Exactly one of
// Release or ReleaseAfter resolves it; later calls are no-ops.
type clipboardLease struct {
	g         *clipboardGuard
	saved     string
	lastWrite string
	wrote     bool
	once      sync.Once
}

// Baseline is the clipboard content captured at acquisition.
func (l *clipboardLease) Baseline() string { return l.saved }

func (l *clipboardLease) Read() string { return l.g.clip.readText() }

func (l *clipboardLease) Write(text string) {
	l.g.clip.writeText(text)
	l.lastWrite = text
	l.wrote = true
}

// Release restores the snapshot and gives up ownership.
func (l *clipboardLease) Release() {
	l.once.Do(func() {
		l.g.clip.writeText(l.saved)
		l.g.mu.Unlock()
	})
}

// ReleaseAfter schedules the restore on a timer. The snapshot is written back
// only if the clipboard still holds the lease's last write, so content the
// user copied in the meantime is never clobbered. Ownership is held until the
// timer fires, which keeps other clipboard operations from racing the
// pending restore.
func (l *clipboardLease) ReleaseAfter(d time.Duration) {
	l.once.Do(func() {
		time.AfterFunc(d, func() {
			if l.wrote && l.g.clip.readText() == l.lastWrite {
				l.g.clip.writeText(l.saved)
			}
			l.g.mu.Unlock()
		})
	})
}
