// Package rewind provides a bounded undo/redo engine over caller-supplied
// inverse operations.
//
// The engine tracks nothing about what changed. Instead, callers invoke
// Register inside the body of a mutating operation, handing the engine a
// command (a function) plus the arguments needed to reverse the mutation.
// Key concepts:
//
// # Entries
//
// Each Register call records one entry: the command and its captured
// argument list. Entries are immutable and are consumed when popped during
// replay; the engine never re-enqueues them itself.
//
// # Two stacks and the next-target flag
//
// The engine owns two bounded stacks, undo and redo. A two-state flag
// selects which stack the next Register call appends to. Undo and Redo
// point the flag at the opposite stack before invoking each popped command,
// so a command that re-registers its own inverse during replay lands where
// a later reversal can find it:
//
//	h := rewind.New(doc, 10)
//
//	// Inside a mutating operation:
//	h.Register(restoreTitle, oldTitle)
//
//	// Later:
//	h.Undo(1) // invokes restoreTitle(doc, oldTitle)
//	h.Redo(1)
//
// # Grouping
//
// Multiple registrations can be collapsed into a single replay unit:
//
//	h.BeginGroup()
//	// ... several mutations, each registering its inverse ...
//	h.EndGroup()
//
// One Undo now reverses the whole batch, and one Redo reapplies it.
//
// # Concurrency
//
// The engine is fully synchronous and not goroutine-safe. It assumes
// exclusive access from one logical thread of control; the only supported
// reentrant form is a replayed command calling Register on the same engine.
package rewind
