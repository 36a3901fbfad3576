package main

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	suggestionPreviewChars = 60
	diffPreviewMaxLines    = 6
	contextPanelMaxLines   = 4
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.width
	if w <= 0 {
		w = 80
	}
	if w < 20 {
		return m.th.Muted.Render("terminal too small")
	}

	var lines []string
	lines = append(lines, m.th.Header.Render("SNIPAI"), "")

	if m.session == nil {
		lines = append(lines, m.renderIdle()...)
	} else {
		lines = append(lines, m.renderSession(w)...)
	}

	if m.flashVisible() {
		style := m.th.Status
		switch m.flashLevel {
		case alertWarn:
			style = m.th.Alert
		case alertError:
			style = m.th.Error
		}
		lines = append(lines, "", style.Render(m.flashText))
	}

	frame := m.th.Frame
	if w >= 4 {
		frame = frame.Width(w - 2)
	}
	return frame.Render(strings.Join(lines, "\n"))
}

func (m appModel) renderIdle() []string {
	lines := []string{
		fmt.Sprintf("Select text in any application and press %s.", m.th.Accent.Render(m.cfg.Hotkey)),
		"",
	}
	if m.capturing {
		lines = append(lines, m.th.Status.Render("Capturing selection…"))
	} else {
		lines = append(lines, m.th.Muted.Render("[esc] Close session    [ctrl+c] Quit"))
	}
	return lines
}

func (m appModel) renderSession(width int) []string {
	s := m.session
	var lines []string

	// Context panel: where the selection came from and its first few lines.
	title := "unknown window"
	if s.source != nil && strings.TrimSpace(s.source.Title()) != "" {
		title = s.source.Title()
	}
	lines = append(lines, m.th.Muted.Render("── Selection from "+title+" "+strings.Repeat("─", max(0, width-24-len(title)))))
	ctx := strings.Split(s.selection.text, "\n")
	shown := ctx
	if len(shown) > contextPanelMaxLines {
		shown = shown[:contextPanelMaxLines]
	}
	for _, line := range shown {
		lines = append(lines, m.th.Status.Render("  "+truncateRunes(line, width-6)))
	}
	if len(ctx) > contextPanelMaxLines {
		lines = append(lines, m.th.Muted.Render(fmt.Sprintf("  … %d more lines", len(ctx)-contextPanelMaxLines)))
	}
	lines = append(lines, "")

	for _, t := range s.turns {
		switch t.role {
		case roleUser:
			lines = append(lines, m.th.User.Render("You: ")+t.text)
		case roleAssistant:
			lines = append(lines, m.th.Assistant.Render("AI: ")+strings.TrimRight(t.text, "\n"))
		case roleError:
			lines = append(lines, m.th.Error.Render(t.text))
		case roleStatus:
			lines = append(lines, m.th.Status.Render(t.text))
		}
	}

	if s.history.CanUndo() {
		lines = append(lines, "")
		lines = append(lines, m.renderAffordance(width)...)
	}

	lines = append(lines, "", m.renderInput())
	lines = append(lines, m.th.Muted.Render("[enter] Send    [ctrl+p] Paste    [ctrl+z] Undo    [esc] Close"))
	return lines
}

// renderAffordance shows the pending suggestion: a one-line preview plus a
// short diff against the version it would replace.
func (m appModel) renderAffordance(width int) []string {
	s := m.session
	current := s.history.Current()
	preview := truncateRunes(oneLine(current), suggestionPreviewChars)

	lines := []string{
		m.th.Accent.Render("Suggestion ") + m.th.Muted.Render(fmt.Sprintf("(version %d)", s.history.Len())) + " " + preview,
	}

	prev := s.selection.text
	if s.history.Len() > 2 {
		// Diff against the version directly underneath, not the original.
		prev = s.history.versions[s.history.Len()-2]
	}
	for _, d := range diffPreviewLines(prev, current, diffPreviewMaxLines) {
		line := truncateRunes(d, width-6)
		switch {
		case strings.HasPrefix(d, "+ "):
			lines = append(lines, m.th.DiffAdd.Render(line))
		case strings.HasPrefix(d, "- "):
			lines = append(lines, m.th.DiffDel.Render(line))
		default:
			lines = append(lines, m.th.Muted.Render(line))
		}
	}
	return lines
}

func (m appModel) renderInput() string {
	prompt := m.th.Accent.Render("> ")
	if m.session != nil && !m.session.inputEnabled() {
		return prompt + m.th.Muted.Render(m.input+"  (waiting for reply)")
	}
	return prompt + m.th.Input.Render(m.input) + m.th.Accent.Render("▌")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, n int) string {
	if n <= 1 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
