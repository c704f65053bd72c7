package rewind

import "time"

// Target selects which stack the next Register call appends to.
type Target int

const (
	// TargetUndo directs the next registered entry to the undo stack.
	TargetUndo Target = iota
	// TargetRedo directs the next registered entry to the redo stack.
	TargetRedo
)

// String returns the stack name the target selects.
func (t Target) String() string {
	if t == TargetRedo {
		return "redo"
	}
	return "undo"
}

// CommandFunc is a caller-supplied inverse operation. It is invoked with
// the context bound at construction as receiver and the argument list
// captured by Register. The engine replays arguments verbatim and never
// inspects them; a returned error propagates unmodified to the caller of
// Undo or Redo.
type CommandFunc[C any] func(ctx C, args ...any) error

// entry pairs a command with its captured arguments.
// Immutable once created; owned by whichever stack holds it until popped
// and discarded after invocation.
type entry[C any] struct {
	command    CommandFunc[C]
	args       []any
	registered time.Time
}

// EntryInfo provides read-only information about a recorded entry.
type EntryInfo struct {
	Registered time.Time // when Register captured the entry
	Arity      int       // number of captured arguments
}

func (e *entry[C]) info() EntryInfo {
	return EntryInfo{Registered: e.registered, Arity: len(e.args)}
}
