// Package tui provides the Bubble Tea demo for the rewind engine: an
// interactive, undoable JSON document driven by a small command line.
package tui

// Recall is a ring buffer for typed command lines with cursor-based
// navigation on the arrow keys.
type Recall struct {
	entries []string
	max     int
	cursor  int // -1 = not navigating, otherwise an index into entries
}

// NewRecall creates a recall buffer with the given maximum size.
func NewRecall(max int) *Recall {
	if max <= 0 {
		max = 100
	}
	return &Recall{
		entries: make([]string, 0, max),
		max:     max,
		cursor:  -1,
	}
}

// Push appends a line. Consecutive duplicates are skipped.
func (r *Recall) Push(line string) {
	if len(r.entries) > 0 && r.entries[len(r.entries)-1] == line {
		return
	}
	r.entries = append(r.entries, line)
	if len(r.entries) > r.max {
		r.entries = r.entries[1:]
	}
}

// Prev returns the previous (older) line, or ("", false) when empty.
func (r *Recall) Prev() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	if r.cursor == -1 {
		r.cursor = len(r.entries) - 1
	} else if r.cursor > 0 {
		r.cursor--
	}
	return r.entries[r.cursor], true
}

// Next returns the next (newer) line. Past the most recent entry it
// returns ("", false), meaning fresh input.
func (r *Recall) Next() (string, bool) {
	if r.cursor == -1 {
		return "", false
	}
	r.cursor++
	if r.cursor >= len(r.entries) {
		r.cursor = -1
		return "", false
	}
	return r.entries[r.cursor], true
}

// ResetCursor returns navigation to the "not navigating" state.
func (r *Recall) ResetCursor() {
	r.cursor = -1
}
