package main

import "time"

type turnRole int

const (
	roleUser turnRole = iota
	roleAssistant
	roleStatus
	roleError
)

func (r turnRole) String() string {
	switch r {
	case roleUser:
		return "user"
	case roleAssistant:
		return "assistant"
	case roleStatus:
		return "status"
	default:
		return "error"
	}
}

type conversationTurn struct {
	id   int
	role turnRole
	text string
}

type pipelineState int

const (
	stateIdle pipelineState = iota
	stateAwaiting
)

// chatSession owns one capture-to-close conversation: the ordered turns, the
// edit history seeded with the original selection, and the pipeline state
// that enforces single-flight. All mutation happens on the presentation
// consumer; background workers only ever report back by message.
type chatSession struct {
	id        string
	selection capturedSelection
	source    foreignWindow

	turns    []conversationTurn
	nextTurn int
	statusID int // pending status placeholder; 0 means none

	history    *editHistory
	state      pipelineState
	firstSent  bool
	pasteReady bool
	openedAt   time.Time
}

func newChatSession(id string, sel capturedSelection, source foreignWindow) *chatSession {
	return &chatSession{
		id:        id,
		selection: sel,
		source:    source,
		nextTurn:  1,
		history:   newEditHistory(sel.text),
		openedAt:  time.Now(),
	}
}

func (s *chatSession) appendTurn(role turnRole, text string) int {
	id := s.nextTurn
	s.nextTurn++
	s.turns = append(s.turns, conversationTurn{id: id, role: role, text: text})
	return id
}

func (s *chatSession) removeTurn(id int) {
	for i, t := range s.turns {
		if t.id == id {
			s.turns = append(s.turns[:i], s.turns[i+1:]...)
			return
		}
	}
}

// begin records a user submission and arms the pipeline. It refuses while a
// request is already in flight; the caller must not dispatch in that case.
func (s *chatSession) begin(userText string) bool {
	if s.state != stateIdle {
		return false
	}
	s.appendTurn(roleUser, userText)
	s.statusID = s.appendTurn(roleStatus, "Thinking…")
	s.state = stateAwaiting
	s.pasteReady = false
	return true
}

// resolve lands a background result: the status placeholder is deleted, the
// reply (or categorized error) becomes a turn, and the pipeline re-arms.
func (s *chatSession) resolve(role turnRole, text string) {
	if s.statusID != 0 {
		s.removeTurn(s.statusID)
		s.statusID = 0
	}
	s.appendTurn(role, text)
	s.state = stateIdle
}

func (s *chatSession) inputEnabled() bool {
	return s.state == stateIdle
}

func (s *chatSession) statusCount() int {
	n := 0
	for _, t := range s.turns {
		if t.role == roleStatus {
			n++
		}
	}
	return n
}
