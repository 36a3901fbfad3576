package main

import (
	"errors"
	"testing"
	"time"
)

// fakeSim scripts the keystroke surface. onCopy runs for both chord variants
// and stands in for the foreign application reacting to the copy.
type fakeSim struct {
	onCopy  func() error
	onPaste func() error

	copies  int
	pastes  int
	selects []int
}

func (s *fakeSim) CopyChord() error {
	s.copies++
	if s.onCopy != nil {
		return s.onCopy()
	}
	return nil
}

func (s *fakeSim) CopyHold(time.Duration) error {
	s.copies++
	if s.onCopy != nil {
		return s.onCopy()
	}
	return nil
}

func (s *fakeSim) Paste() error {
	s.pastes++
	if s.onPaste != nil {
		return s.onPaste()
	}
	return nil
}

func (s *fakeSim) SelectLeft(moves int, _ time.Duration) error {
	s.selects = append(s.selects, moves)
	return nil
}

func fastCaptureConfig() captureConfig {
	return captureConfig{SettleMs: 0, SlowSettleMs: 0, HoldStepMs: 0}
}

func TestCaptureReturnsChangedClipboard(t *testing.T) {
	clip := &fakeClipboard{content: "old clipboard"}
	sim := &fakeSim{onCopy: func() error {
		clip.writeText("the selection")
		return nil
	}}
	c := newSelectionCapturer(newClipboardGuard(clip), sim, fastCaptureConfig(), nopLogger())

	text, ok := c.Capture()
	if !ok || text != "the selection" {
		t.Fatalf("Capture = %q, %v", text, ok)
	}
	if sim.copies != 1 {
		t.Fatalf("copies = %d, want first strategy to suffice", sim.copies)
	}
	if clip.readText() != "old clipboard" {
		t.Fatalf("clipboard = %q, want baseline restored", clip.readText())
	}
}

func TestCaptureNothingSelected(t *testing.T) {
	clip := &fakeClipboard{content: "unchanged"}
	sim := &fakeSim{}
	c := newSelectionCapturer(newClipboardGuard(clip), sim, fastCaptureConfig(), nopLogger())

	text, ok := c.Capture()
	if ok || text != "" {
		t.Fatalf("Capture = %q, %v, want empty miss", text, ok)
	}
	if sim.copies != 3 {
		t.Fatalf("copies = %d, want all strategies tried", sim.copies)
	}
	if clip.readText() != "unchanged" {
		t.Fatalf("clipboard = %q, want baseline restored", clip.readText())
	}
}

func TestCaptureEmptyBaselineNeedsNonEmptyResult(t *testing.T) {
	// An empty clipboard that stays empty is a miss, not an empty capture.
	clip := &fakeClipboard{content: ""}
	c := newSelectionCapturer(newClipboardGuard(clip), &fakeSim{}, fastCaptureConfig(), nopLogger())

	if _, ok := c.Capture(); ok {
		t.Fatal("unchanged empty clipboard must not count as a capture")
	}
}

func TestCaptureStrategyErrorFallsThrough(t *testing.T) {
	clip := &fakeClipboard{content: "base"}
	calls := 0
	sim := &fakeSim{onCopy: func() error {
		calls++
		if calls == 1 {
			return errors.New("injection blocked")
		}
		clip.writeText("recovered")
		return nil
	}}
	c := newSelectionCapturer(newClipboardGuard(clip), sim, fastCaptureConfig(), nopLogger())

	text, ok := c.Capture()
	if !ok || text != "recovered" {
		t.Fatalf("Capture = %q, %v, want later strategy to recover", text, ok)
	}
	if clip.readText() != "base" {
		t.Fatalf("clipboard = %q, want baseline restored", clip.readText())
	}
}

func TestCaptureIsRepeatable(t *testing.T) {
	clip := &fakeClipboard{content: "base"}
	c := newSelectionCapturer(newClipboardGuard(clip), &fakeSim{}, fastCaptureConfig(), nopLogger())

	for i := 0; i < 3; i++ {
		if _, ok := c.Capture(); ok {
			t.Fatal("unexpected capture")
		}
	}
	if clip.readText() != "base" {
		t.Fatalf("clipboard = %q after repeated misses", clip.readText())
	}
}
