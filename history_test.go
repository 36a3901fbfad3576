package main

import "testing"

func TestHistoryOriginalIsFloor(t *testing.T) {
	h := newEditHistory("original")
	if h.Current() != "original" {
		t.Fatalf("Current = %q, want original", h.Current())
	}
	if h.CanUndo() {
		t.Fatal("fresh history should not be undoable")
	}
	if got := h.Pop(); got != "original" {
		t.Fatalf("Pop on floor = %q, want original", got)
	}
	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
}

func TestHistoryPushPop(t *testing.T) {
	h := newEditHistory("v0")
	if !h.Push("v1") {
		t.Fatal("Push v1 should grow")
	}
	if !h.Push("v2") {
		t.Fatal("Push v2 should grow")
	}
	if h.Len() != 3 || h.Current() != "v2" {
		t.Fatalf("Len=%d Current=%q", h.Len(), h.Current())
	}
	if got := h.Pop(); got != "v1" {
		t.Fatalf("Pop = %q, want v1", got)
	}
	if got := h.Pop(); got != "v0" {
		t.Fatalf("Pop = %q, want v0", got)
	}
	if h.CanUndo() {
		t.Fatal("back at floor, CanUndo should be false")
	}
}

func TestHistoryDuplicatePushIgnored(t *testing.T) {
	h := newEditHistory("same")
	if h.Push("same") {
		t.Fatal("pushing the current top should be a no-op")
	}
	h.Push("other")
	if h.Push("other") {
		t.Fatal("pushing the current top should be a no-op")
	}
	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
}
