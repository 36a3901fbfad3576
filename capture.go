package main

import (
	"log/slog"
	"time"
)

// capturedSelection is the text lifted out of the foreign application,
// immutable input to the first turn of a session.
type capturedSelection struct {
	text       string
	capturedAt time.Time
}

// copyStrategy is one way of coaxing a foreign application into copying its
// selection. No platform exposes a "what is selected" query, so the only
// portable signal is a clipboard change against a known baseline; the
// strategies differ in how the copy chord is delivered and how long the
// application gets to propagate the result.
type copyStrategy struct {
	name   string
	settle time.Duration
	run    func(sim keySimulator) error
}

func defaultCopyStrategies(cfg captureConfig) []copyStrategy {
	settle := time.Duration(cfg.SettleMs) * time.Millisecond
	return []copyStrategy{
		{
			name:   "chord",
			settle: settle,
			run:    func(sim keySimulator) error { return sim.CopyChord() },
		},
		{
			name:   "hold",
			settle: settle,
			run: func(sim keySimulator) error {
				return sim.CopyHold(time.Duration(cfg.HoldStepMs) * time.Millisecond)
			},
		},
		{
			// Electron-style apps (Teams and friends) process input slowly
			// enough that the first two attempts read a stale clipboard.
			name:   "chord-slow",
			settle: settle + time.Duration(cfg.SlowSettleMs)*time.Millisecond,
			run:    func(sim keySimulator) error { return sim.CopyChord() },
		},
	}
}

type selectionCapturer struct {
	guard      *clipboardGuard
	sim        keySimulator
	strategies []copyStrategy
	log        *slog.Logger
}

func newSelectionCapturer(guard *clipboardGuard, sim keySimulator, cfg captureConfig, log *slog.Logger) *selectionCapturer {
	return &selectionCapturer{
		guard:      guard,
		sim:        sim,
		strategies: defaultCopyStrategies(cfg),
		log:        log,
	}
}

// Capture tries each strategy in order and returns the first clipboard
// content that is non-empty and differs from the pre-capture baseline.
// ok is false when no strategy produced a change ("nothing selected", as
// distinct from an empty-string clipboard). The baseline is restored on
// every path, including a strategy failing mid-flight.
func (c *selectionCapturer) Capture() (text string, ok bool) {
	lease := c.guard.Acquire()
	defer lease.Release()

	baseline := lease.Baseline()
	for _, st := range c.strategies {
		if err := st.run(c.sim); err != nil {
			c.log.Warn("copy strategy failed", "strategy", st.name, "error", err)
			continue
		}
		time.Sleep(st.settle)
		got := lease.Read()
		if got != "" && got != baseline {
			c.log.Info("selection captured", "strategy", st.name, "chars", len(got))
			return got, true
		}
		c.log.Debug("copy strategy produced no clipboard change", "strategy", st.name)
	}
	return "", false
}
