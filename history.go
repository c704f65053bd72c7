package rewind

import "time"

// DefaultCapacity bounds each stack when New is given a non-positive
// capacity.
const DefaultCapacity = 10

// History is a bounded two-stack undo/redo engine bound to a single
// context value. The zero value is not usable; construct with New.
//
// History is not goroutine-safe. See the package documentation for the
// concurrency model.
type History[C any] struct {
	ctx      C
	capacity int

	undo []*entry[C]
	redo []*entry[C]

	// next selects the stack the next Register call writes to. Undo and
	// Redo point it at the opposite stack before invoking each popped
	// command; Register points it back at undo after every append.
	next Target

	// Grouping state
	grouping  bool
	groupCmds []*entry[C]
}

// New creates a history engine bound to ctx. Every replayed command is
// invoked against ctx, which the engine itself never mutates. A capacity
// of zero or less selects DefaultCapacity.
func New[C any](ctx C, capacity int) *History[C] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History[C]{
		ctx:      ctx,
		capacity: capacity,
	}
}

// Register records cmd and its arguments as the inverse of a mutation the
// caller has just performed. The entry is appended to whichever stack the
// next-target flag currently selects; the flag then points back at undo.
// Register never invokes cmd. Returns the engine for chaining.
func (h *History[C]) Register(cmd CommandFunc[C], args ...any) *History[C] {
	e := &entry[C]{
		command:    cmd,
		args:       args,
		registered: time.Now(),
	}

	if h.grouping {
		h.groupCmds = append(h.groupCmds, e)
		return h
	}

	h.push(e)
	return h
}

// push appends e to the stack the next-target flag selects, evicting the
// oldest entry first when that stack is full, then resets the flag.
func (h *History[C]) push(e *entry[C]) {
	stack := &h.undo
	if h.next == TargetRedo {
		stack = &h.redo
	}

	if len(*stack) >= h.capacity {
		*stack = (*stack)[1:]
	}
	*stack = append(*stack, e)

	h.next = TargetUndo
}

// Undo replays up to levels entries from the undo stack, most recent
// first. Levels beyond the stack length clamp silently; levels below one
// replay nothing. Each popped command is invoked against the bound context
// with the next-target flag pointing at redo, so one nested Register per
// replayed entry lands on the redo stack.
//
// The first command error stops the replay and propagates; entries popped
// before the failure stay consumed. The engine raises no errors of its
// own.
func (h *History[C]) Undo(levels int) error {
	return h.replay(levels, &h.undo, TargetRedo)
}

// Redo replays up to levels entries from the redo stack, most recent
// first, with the next-target flag pointing at undo. Symmetric to Undo in
// every other respect.
func (h *History[C]) Redo(levels int) error {
	return h.replay(levels, &h.redo, TargetUndo)
}

// replay pops up to levels entries from source and invokes each against
// the bound context. The flag is re-pointed at opposite before every
// invocation because a nested Register resets it to undo.
func (h *History[C]) replay(levels int, source *[]*entry[C], opposite Target) error {
	// A source stack sitting at its capacity bound disables replay for
	// that direction outright instead of clamping. Long-standing quirk,
	// kept as-is; see TestUndoRefusedAtFullCapacity.
	if len(*source) >= h.capacity {
		return nil
	}

	if levels > len(*source) {
		levels = len(*source)
	}

	for i := 0; i < levels; i++ {
		e := (*source)[len(*source)-1]
		*source = (*source)[:len(*source)-1]

		h.next = opposite
		if err := e.command(h.ctx, e.args...); err != nil {
			return err
		}
	}
	return nil
}

// CanUndo returns true if the undo stack holds at least one entry.
func (h *History[C]) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if the redo stack holds at least one entry.
func (h *History[C]) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoCount returns the number of entries on the undo stack.
func (h *History[C]) UndoCount() int {
	return len(h.undo)
}

// RedoCount returns the number of entries on the redo stack.
func (h *History[C]) RedoCount() int {
	return len(h.redo)
}

// Capacity returns the per-stack entry bound fixed at construction.
func (h *History[C]) Capacity() int {
	return h.capacity
}

// Clear discards all recorded entries and any open group, and points the
// next-target flag back at undo.
func (h *History[C]) Clear() {
	h.undo = nil
	h.redo = nil
	h.next = TargetUndo
	h.grouping = false
	h.groupCmds = nil
}

// PeekUndo returns info about the entry the next Undo would replay,
// without removing it.
func (h *History[C]) PeekUndo() (EntryInfo, bool) {
	if len(h.undo) == 0 {
		return EntryInfo{}, false
	}
	return h.undo[len(h.undo)-1].info(), true
}

// PeekRedo returns info about the entry the next Redo would replay,
// without removing it.
func (h *History[C]) PeekRedo() (EntryInfo, bool) {
	if len(h.redo) == 0 {
		return EntryInfo{}, false
	}
	return h.redo[len(h.redo)-1].info(), true
}

// UndoInfo returns read-only info for every undo entry, oldest first.
func (h *History[C]) UndoInfo() []EntryInfo {
	return stackInfo(h.undo)
}

// RedoInfo returns read-only info for every redo entry, oldest first.
func (h *History[C]) RedoInfo() []EntryInfo {
	return stackInfo(h.redo)
}

func stackInfo[C any](stack []*entry[C]) []EntryInfo {
	result := make([]EntryInfo, len(stack))
	for i, e := range stack {
		result[i] = e.info()
	}
	return result
}
