package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const flashDuration = 1200 * time.Millisecond

// appDeps are the side-effecting collaborators behind the model. Everything
// here is swappable so Update can be driven deterministically in tests.
type appDeps struct {
	provider    conversationProvider
	capture     func() (string, bool)
	paste       func(target foreignWindow, text string) error
	frontWindow func() foreignWindow
}

type runCounters struct {
	captures      int
	emptyCaptures int
	replies       int
	replyErrors   int
	suggestions   int
	pastes        int
	undos         int
}

// appModel is the single-threaded heart of the application. Capture, model
// calls, and paste all run as background commands; every state transition
// happens here, in Update, one message at a time.
type appModel struct {
	cfg  config
	th   theme
	deps appDeps

	width  int
	height int

	session    *chatSession
	captureSeq int
	capturing  bool
	pasting    bool

	input string

	alerts     []systemAlert
	flashText  string
	flashLevel alertSeverity
	flashUntil time.Time

	now      time.Time
	counters runCounters

	events *eventLogger
	log    *slog.Logger

	quitting bool
}

func newAppModel(cfg config, deps appDeps, events *eventLogger, log *slog.Logger) appModel {
	m := appModel{
		cfg:    cfg,
		th:     defaultTheme(),
		deps:   deps,
		alerts: []systemAlert{},
		events: events,
		log:    log,
		now:    time.Now(),
	}
	m.systemAlert(alertInfo, "app.started", "SnipAI started", map[string]any{"hotkey": cfg.Hotkey, "model": cfg.Model})
	return m
}

func (m appModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return t })
}

// hotkeyTriggeredMsg is posted from the hotkey listener goroutine via
// tea.Program.Send.
type hotkeyTriggeredMsg struct{}

type captureDoneMsg struct {
	seq    int
	text   string
	ok     bool
	source foreignWindow
}

type chatReplyMsg struct {
	sessionID     string
	display       string
	suggestion    string
	hasSuggestion bool
	errKind       providerErrorKind
	errDetail     string
}

type pasteDoneMsg struct {
	sessionID string
	action    string // paste|undo
	err       error
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch t := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = t.Width
		m.height = t.Height
		return m, nil

	case time.Time:
		m.now = t
		return m, tickCmd()

	case hotkeyTriggeredMsg:
		return m.onHotkey()

	case captureDoneMsg:
		return m.onCaptureDone(t)

	case chatReplyMsg:
		return m.onChatReply(t)

	case pasteDoneMsg:
		return m.onPasteDone(t)

	case tea.KeyMsg:
		return m.onKey(t)

	default:
		return m, nil
	}
}

func (m appModel) onHotkey() (tea.Model, tea.Cmd) {
	if m.capturing {
		m.systemAlert(alertWarn, "capture.busy", "A capture is already in flight", nil)
		return m, nil
	}
	m.capturing = true
	m.captureSeq++
	seq := m.captureSeq
	m.emitEvent("capture.requested", "hotkey", map[string]any{"seq": seq}, "")

	deps := m.deps
	return m, func() tea.Msg {
		// The foreground window is read before the copy chord goes out, so
		// the session remembers where the selection came from.
		source := deps.frontWindow()
		text, ok := deps.capture()
		return captureDoneMsg{seq: seq, text: text, ok: ok, source: source}
	}
}

func (m appModel) onCaptureDone(t captureDoneMsg) (tea.Model, tea.Cmd) {
	if t.seq != m.captureSeq {
		return m, nil
	}
	m.capturing = false
	if !t.ok {
		m.counters.emptyCaptures++
		m.systemAlert(alertWarn, "capture.empty", "No text selected", nil)
		m.flash("No text selected in the active window", alertWarn)
		return m, nil
	}

	// A fresh capture always starts a fresh session; an open one is
	// discarded along with any reply still in flight for it.
	if m.session != nil {
		m.emitEvent("session.closed", "ui", map[string]any{"reason": "recapture"}, m.session.id)
	}
	sel := capturedSelection{text: t.text, capturedAt: m.now}
	m.session = newChatSession(newCorrelationID(), sel, t.source)
	m.deps.provider.Reset()
	m.input = ""
	m.counters.captures++
	m.systemAlert(alertInfo, "session.opened", "Selection captured", map[string]any{"chars": len(t.text)})
	m.emitEvent("session.opened", "capture", map[string]any{"chars": len(t.text)}, m.session.id)
	return m, nil
}

func (m appModel) onChatReply(t chatReplyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || m.session.id != t.sessionID {
		// The session this reply belongs to is gone; drop it on the floor.
		m.emitEvent("chat.reply.stale", "system", map[string]any{"for": t.sessionID}, t.sessionID)
		return m, nil
	}
	if t.errKind != provErrNone {
		m.counters.replyErrors++
		m.session.resolve(roleError, t.errKind.title()+": "+t.errKind.hint())
		m.systemAlert(alertError, "chat.failed", "Chat request failed", map[string]any{"kind": t.errKind.title(), "error": t.errDetail})
		return m, nil
	}
	m.counters.replies++
	m.session.resolve(roleAssistant, t.display)
	m.emitEvent("chat.reply", "system", map[string]any{"chars": len(t.display), "suggestion": t.hasSuggestion}, t.sessionID)
	if t.hasSuggestion && m.session.history.Push(t.suggestion) {
		m.session.pasteReady = true
		m.counters.suggestions++
		m.flash("Suggestion ready: ctrl+p pastes it back", alertInfo)
	}
	return m, nil
}

func (m appModel) onPasteDone(t pasteDoneMsg) (tea.Model, tea.Cmd) {
	m.pasting = false
	if m.session == nil || m.session.id != t.sessionID {
		return m, nil
	}
	if t.err != nil {
		m.systemAlert(alertError, "paste.failed", "Paste failed", map[string]any{"action": t.action, "error": t.err.Error()})
		m.flash("Paste failed: "+t.err.Error(), alertError)
		return m, nil
	}
	m.counters.pastes++
	m.emitEvent("paste.applied", "paste", map[string]any{"action": t.action}, t.sessionID)
	if t.action == "undo" {
		m.flash("Undone ✓", alertInfo)
	} else {
		m.flash("Pasted ✓", alertInfo)
	}
	return m, nil
}

func (m appModel) onKey(t tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch t.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		if m.session != nil {
			m.emitEvent("session.closed", "ui", map[string]any{"reason": "esc"}, m.session.id)
			m.session = nil
			m.input = ""
			m.flash("Session closed", alertInfo)
		}
		return m, nil
	case tea.KeyCtrlP:
		return m.applyCurrent()
	case tea.KeyCtrlZ:
		return m.undo()
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyBackspace:
		if m.input != "" {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(t.Runes)
		return m, nil
	default:
		return m, nil
	}
}

func (m appModel) submitInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input)
	if text == "" {
		return m, nil
	}
	if m.session == nil {
		m.flash("No active session; press the hotkey over a selection first", alertWarn)
		return m, nil
	}
	if !m.session.inputEnabled() {
		// Single flight: the submission is refused outright, nothing is
		// queued and no user turn is recorded.
		m.systemAlert(alertWarn, "chat.busy", "A chat request is already in flight", nil)
		m.flash("Still thinking, hang on", alertWarn)
		return m, nil
	}

	m.session.begin(text)
	first := !m.session.firstSent
	var prompt string
	if first {
		prompt = initialPrompt(m.session.selection.text, text)
		m.session.firstSent = true
	} else {
		prompt = followUpPrompt(text)
	}
	m.input = ""
	m.emitEvent("chat.sent", "ui", map[string]any{"chars": len(text), "first": first}, m.session.id)

	sid := m.session.id
	deps := m.deps
	log := m.log
	return m, func() tea.Msg {
		reply, err := deps.provider.Respond(context.Background(), prompt)
		if err != nil {
			return chatReplyMsg{sessionID: sid, errKind: classifyProviderError(err), errDetail: err.Error()}
		}
		display, suggestion, ok := parseReply(reply, log)
		return chatReplyMsg{sessionID: sid, display: display, suggestion: suggestion, hasSuggestion: ok}
	}
}

func (m appModel) applyCurrent() (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}
	if !m.session.history.CanUndo() {
		m.flash("No suggestion to paste yet", alertWarn)
		return m, nil
	}
	if m.pasting {
		m.systemAlert(alertWarn, "paste.busy", "A paste is already in flight", nil)
		return m, nil
	}
	return m.dispatchPaste("paste", m.session.history.Current())
}

// undo pops the newest version and pastes the one underneath, so the target
// window always reflects the history top.
func (m appModel) undo() (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}
	if !m.session.history.CanUndo() {
		m.flash("Nothing to undo", alertWarn)
		return m, nil
	}
	if m.pasting {
		m.systemAlert(alertWarn, "paste.busy", "A paste is already in flight", nil)
		return m, nil
	}
	text := m.session.history.Pop()
	m.counters.undos++
	m.emitEvent("history.undo", "ui", map[string]any{"depth": m.session.history.Len()}, m.session.id)
	return m.dispatchPaste("undo", text)
}

func (m appModel) dispatchPaste(action string, text string) (tea.Model, tea.Cmd) {
	m.pasting = true
	sid := m.session.id
	target := m.session.source
	deps := m.deps
	return m, func() tea.Msg {
		return pasteDoneMsg{sessionID: sid, action: action, err: deps.paste(target, text)}
	}
}

func (m *appModel) flash(text string, level alertSeverity) {
	m.flashText = text
	m.flashLevel = level
	m.flashUntil = time.Now().Add(flashDuration)
}

func (m appModel) flashVisible() bool {
	return m.flashText != "" && m.now.Before(m.flashUntil)
}

func (m appModel) emitEvent(eventType string, source string, payload any, correlationID string) {
	if m.events == nil {
		return
	}
	m.events.Append(source, eventType, payload, correlationID)
}

func (m *appModel) systemAlert(sev alertSeverity, code string, message string, context map[string]any) {
	cid := newCorrelationID()
	a := systemAlert{
		At:            time.Now().UTC().Format(time.RFC3339Nano),
		Severity:      sev,
		Code:          code,
		Message:       message,
		Context:       context,
		CorrelationID: cid,
	}
	m.alerts = append(m.alerts, a)
	if len(m.alerts) > 50 {
		m.alerts = m.alerts[len(m.alerts)-50:]
	}
	m.emitEvent("system.alert", "system", map[string]any{
		"severity":       string(sev),
		"code":           code,
		"message":        message,
		"context":        context,
		"correlation_id": cid,
	}, cid)
}
