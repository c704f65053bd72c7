package rewind

import "time"

// BeginGroup starts a registration group. Entries registered while the
// group is open are buffered instead of pushed, and collapse into a single
// replay unit when EndGroup runs. Nested BeginGroup calls are ignored.
func (h *History[C]) BeginGroup() {
	if h.grouping {
		return
	}
	h.grouping = true
	h.groupCmds = nil
}

// EndGroup closes the group and pushes the buffered registrations as one
// entry onto the stack the next-target flag currently selects. An empty
// group pushes nothing.
func (h *History[C]) EndGroup() {
	if !h.grouping {
		return
	}
	h.grouping = false

	buffered := h.groupCmds
	h.groupCmds = nil

	if len(buffered) == 0 {
		return
	}
	if len(buffered) == 1 {
		// Single registration doesn't need a wrapper.
		h.push(buffered[0])
		return
	}

	h.push(&entry[C]{
		command:    h.compound(buffered),
		registered: time.Now(),
	})
}

// CancelGroup discards the open group without recording anything.
// Note: mutations already performed by the caller are not rolled back.
func (h *History[C]) CancelGroup() {
	h.grouping = false
	h.groupCmds = nil
}

// IsGrouping returns true while a group is open.
func (h *History[C]) IsGrouping() bool {
	return h.grouping
}

// compound builds a command that replays the buffered entries in reverse
// order inside a fresh group, so their own nested registrations collapse
// back into a single entry on the opposite stack.
func (h *History[C]) compound(entries []*entry[C]) CommandFunc[C] {
	return func(ctx C, _ ...any) error {
		h.BeginGroup()
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			if err := e.command(ctx, e.args...); err != nil {
				h.CancelGroup()
				return err
			}
		}
		h.EndGroup()
		return nil
	}
}

// GroupScope provides a convenient way to group registrations using defer.
// Usage:
//
//	func batchEdit(h *rewind.History[*Doc], doc *Doc) {
//	    defer h.GroupScope().End()
//	    // ... multiple mutations, each registering its inverse ...
//	}
type GroupScope[C any] struct {
	history *History[C]
	active  bool
}

// GroupScope opens a group and returns a handle that closes it.
func (h *History[C]) GroupScope() *GroupScope[C] {
	h.BeginGroup()
	return &GroupScope[C]{
		history: h,
		active:  true,
	}
}

// End closes the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope[C]) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}

// Cancel discards the group scope without recording anything.
func (g *GroupScope[C]) Cancel() {
	if g.active {
		g.history.CancelGroup()
		g.active = false
	}
}

// Transaction runs fn within a registration group. If fn returns an
// error, the group is cancelled; otherwise it is closed normally.
func (h *History[C]) Transaction(fn func() error) error {
	h.BeginGroup()

	err := fn()
	if err != nil {
		h.CancelGroup()
		return err
	}

	h.EndGroup()
	return nil
}

// Checkpoint marks a point in history that can be returned to.
type Checkpoint struct {
	undoDepth int
}

// CreateCheckpoint captures the current undo depth.
func (h *History[C]) CreateCheckpoint() Checkpoint {
	return Checkpoint{undoDepth: len(h.undo)}
}

// UndoToCheckpoint replays undo entries until the stack is back at the
// checkpoint's depth. It stops without error if a replay makes no
// progress, which happens when the undo stack sits at full capacity and
// replay is refused.
func (h *History[C]) UndoToCheckpoint(cp Checkpoint) error {
	for len(h.undo) > cp.undoDepth {
		before := len(h.undo)
		if err := h.Undo(1); err != nil {
			return err
		}
		if len(h.undo) >= before {
			return nil
		}
	}
	return nil
}
