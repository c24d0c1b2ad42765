package terminal

// History is the recall list for previously submitted commands.
// The cursor is -1 when no entry is being recalled.
type History struct {
	entries []string
	cursor  int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Add appends a command and resets the cursor.
func (h *History) Add(cmd string) {
	h.entries = append(h.entries, cmd)
	h.cursor = -1
}

// Up moves toward older entries, stopping at the oldest. It returns the
// recalled entry, or ok=false if there is nothing to recall.
func (h *History) Up() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == -1 {
		h.cursor = len(h.entries) - 1
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Down moves toward newer entries. Moving past the newest entry clears
// the buffer and resets the cursor. ok=false means nothing changed.
func (h *History) Down() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", true
	}
	return h.entries[h.cursor], true
}

// Entries returns a copy of all recorded commands, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
