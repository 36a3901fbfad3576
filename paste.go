package main

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"
)

// pasteApplier injects a chosen edit version into the foreign target window:
// clipboard write, paste chord, then a shift+left walk so the pasted span is
// left selected for further editing. The pre-paste clipboard is restored on a
// delayed timer, and only if the user has not copied something else since.
type pasteApplier struct {
	guard *clipboardGuard
	sim   keySimulator

	activateSettle time.Duration
	pasteSettle    time.Duration
	refocusDelay   time.Duration
	interKey       time.Duration
	restoreAfter   time.Duration
	maxSelectMoves int

	log *slog.Logger
}

func newPasteApplier(guard *clipboardGuard, sim keySimulator, cfg pasteConfig, log *slog.Logger) *pasteApplier {
	return &pasteApplier{
		guard:          guard,
		sim:            sim,
		activateSettle: time.Duration(cfg.ActivateSettleMs) * time.Millisecond,
		pasteSettle:    time.Duration(cfg.PasteSettleMs) * time.Millisecond,
		refocusDelay:   time.Duration(cfg.RefocusDelayMs) * time.Millisecond,
		interKey:       time.Millisecond,
		restoreAfter:   time.Duration(cfg.RestoreAfterS) * time.Second,
		maxSelectMoves: cfg.MaxSelectMoves,
		log:            log,
	}
}

// Apply pushes text into target. On success the clipboard guard stays
// resolved through the delayed restore; on any failure it is released (and
// the clipboard restored) before returning.
func (a *pasteApplier) Apply(target foreignWindow, text string) error {
	if text == "" {
		return fmt.Errorf("nothing to paste")
	}
	lease := a.guard.Acquire()
	delayed := false
	defer func() {
		if !delayed {
			lease.Release()
		}
	}()

	lease.Write(text)

	prev := activeForeignWindow()
	if err := target.Activate(); err != nil {
		return fmt.Errorf("activate target window: %w", err)
	}
	time.Sleep(a.activateSettle)

	if err := a.sim.Paste(); err != nil {
		return fmt.Errorf("paste chord: %w", err)
	}
	time.Sleep(a.pasteSettle)

	// Very large texts would make the selection walk take seconds, so the
	// walk is capped; the tail of a huge paste simply goes unselected.
	moves := utf8.RuneCountInString(text)
	if moves > a.maxSelectMoves {
		moves = a.maxSelectMoves
	}
	if err := a.sim.SelectLeft(moves, a.interKey); err != nil {
		return fmt.Errorf("select pasted span: %w", err)
	}

	time.Sleep(a.refocusDelay)
	if prev != nil {
		if err := prev.Activate(); err != nil {
			a.log.Warn("could not refocus previous window", "error", err)
		}
	}

	delayed = true
	lease.ReleaseAfter(a.restoreAfter)
	a.log.Info("paste applied", "target", target.Title(), "chars", len(text), "selected", moves)
	return nil
}
