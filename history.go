package main

// editHistory is the undo stack of suggested-edit versions for one session.
// Index 0 is always the untouched original selection and is never discarded.
type editHistory struct {
	versions []string
}

func newEditHistory(original string) *editHistory {
	return &editHistory{versions: []string{original}}
}

// Current returns the newest version.
func (h *editHistory) Current() string {
	return h.versions[len(h.versions)-1]
}

// Push appends a new version unless it equals the current top.
// Reports whether the history grew.
func (h *editHistory) Push(edit string) bool {
	if edit == h.Current() {
		return false
	}
	h.versions = append(h.versions, edit)
	return true
}

// Pop discards the top version and returns the new top. Popping when only
// the original remains is a no-op.
func (h *editHistory) Pop() string {
	if len(h.versions) > 1 {
		h.versions = h.versions[:len(h.versions)-1]
	}
	return h.Current()
}

func (h *editHistory) CanUndo() bool {
	return len(h.versions) > 1
}

func (h *editHistory) Len() int {
	return len(h.versions)
}
