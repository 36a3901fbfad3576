package main

import "testing"

func TestSessionBeginSingleFlight(t *testing.T) {
	s := newChatSession("s1", capturedSelection{text: "sel"}, nil)
	if !s.begin("first") {
		t.Fatal("first begin should be accepted")
	}
	if s.begin("second") {
		t.Fatal("begin while awaiting must be refused")
	}
	if len(s.turns) != 2 {
		t.Fatalf("turns = %d, refused begin must not append", len(s.turns))
	}
	s.resolve(roleAssistant, "answer")
	if !s.begin("third") {
		t.Fatal("begin should be accepted again after resolve")
	}
}

func TestSessionResolveRemovesPlaceholder(t *testing.T) {
	s := newChatSession("s1", capturedSelection{text: "sel"}, nil)
	s.begin("question")
	if s.statusCount() != 1 {
		t.Fatalf("statusCount = %d", s.statusCount())
	}
	s.resolve(roleError, "boom")
	if s.statusCount() != 0 {
		t.Fatal("placeholder should be gone")
	}
	if got := s.turns[len(s.turns)-1]; got.role != roleError || got.text != "boom" {
		t.Fatalf("last turn = %+v", got)
	}
	// Turn IDs stay unique and ordered across the removal.
	seen := map[int]bool{}
	prev := 0
	for _, turn := range s.turns {
		if seen[turn.id] || turn.id <= prev {
			t.Fatalf("turn ids not strictly increasing: %+v", s.turns)
		}
		seen[turn.id] = true
		prev = turn.id
	}
}

func TestSessionHistorySeededWithSelection(t *testing.T) {
	s := newChatSession("s1", capturedSelection{text: "original"}, nil)
	if s.history.Current() != "original" {
		t.Fatalf("history seeded with %q", s.history.Current())
	}
	if s.history.CanUndo() {
		t.Fatal("fresh session has nothing to undo")
	}
}
