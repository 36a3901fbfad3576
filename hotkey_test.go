package main

import (
	"testing"
	"time"
)

func TestDebouncerCollapsesBurst(t *testing.T) {
	d := newDebouncer(500 * time.Millisecond)
	base := time.Now()
	if !d.Allow(base) {
		t.Fatal("first trigger must pass")
	}
	if d.Allow(base.Add(100 * time.Millisecond)) {
		t.Fatal("trigger inside the window must be dropped")
	}
	if d.Allow(base.Add(499 * time.Millisecond)) {
		t.Fatal("trigger at window edge must be dropped")
	}
	if !d.Allow(base.Add(500 * time.Millisecond)) {
		t.Fatal("trigger after the window must pass")
	}
	// The passing trigger starts a new window.
	if d.Allow(base.Add(600 * time.Millisecond)) {
		t.Fatal("trigger inside the fresh window must be dropped")
	}
}

func TestParseBinding(t *testing.T) {
	mods, key, err := parseBinding("alt+shift+s")
	if err != nil {
		t.Fatalf("parseBinding: %v", err)
	}
	if len(mods) != 2 {
		t.Fatalf("mods = %v, want 2 modifiers", mods)
	}
	if key != bindingKeys["s"] {
		t.Fatalf("key = %v, want s", key)
	}

	if _, _, err := parseBinding("ctrl+f5"); err != nil {
		t.Fatalf("ctrl+f5 should parse: %v", err)
	}
	if _, _, err := parseBinding("Alt+Shift+Space"); err != nil {
		t.Fatalf("case and spacing should be tolerated: %v", err)
	}
}

func TestParseBindingRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"", "s", "hyper+s", "alt+unknownkey", "alt+"} {
		if _, _, err := parseBinding(bad); err == nil {
			t.Errorf("parseBinding(%q) should fail", bad)
		}
	}
}
