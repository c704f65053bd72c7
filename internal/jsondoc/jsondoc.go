// Package jsondoc provides an undoable JSON document backed by a rewind
// history engine. Every mutation registers its own inverse at the moment
// it happens, so undo and redo round-trip without the document keeping
// any change log of its own.
package jsondoc

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/rewind"
)

// ErrInvalidJSON is returned when the initial payload is not valid JSON.
var ErrInvalidJSON = errors.New("jsondoc: invalid JSON")

// Document is a JSON payload with bounded undo/redo over path mutations.
// Not goroutine-safe; see the rewind package for the concurrency model.
type Document struct {
	raw  string
	hist *rewind.History[*Document]
}

// New creates a document from raw JSON. An empty payload starts as "{}".
// Capacity bounds the undo and redo stacks; zero or less selects the
// rewind default.
func New(raw string, capacity int) (*Document, error) {
	if raw == "" {
		raw = "{}"
	}
	if !gjson.Valid(raw) {
		return nil, ErrInvalidJSON
	}

	d := &Document{raw: raw}
	d.hist = rewind.New(d, capacity)
	return d, nil
}

// History exposes the document's history engine.
func (d *Document) History() *rewind.History[*Document] {
	return d.hist
}

// Raw returns the current JSON payload.
func (d *Document) Raw() string {
	return d.raw
}

// Pretty returns the payload formatted for display.
func (d *Document) Pretty() string {
	return gjson.Get(d.raw, "@pretty").String()
}

// Get reads the value at a gjson path.
func (d *Document) Get(path string) gjson.Result {
	return gjson.Get(d.raw, path)
}

// Set writes value at path, registering the inverse operation: restoring
// the prior value if one existed, deleting the path otherwise.
func (d *Document) Set(path string, value any) error {
	old := gjson.Get(d.raw, path)

	next, err := sjson.Set(d.raw, path, value)
	if err != nil {
		return fmt.Errorf("jsondoc: set %s: %w", path, err)
	}

	if old.Exists() {
		d.hist.Register(applySet, path, old.Value())
	} else {
		d.hist.Register(applyDelete, path)
	}
	d.raw = next
	return nil
}

// Delete removes the value at path. Deleting a missing path is a no-op
// and records nothing.
func (d *Document) Delete(path string) error {
	old := gjson.Get(d.raw, path)
	if !old.Exists() {
		return nil
	}

	next, err := sjson.Delete(d.raw, path)
	if err != nil {
		return fmt.Errorf("jsondoc: delete %s: %w", path, err)
	}

	d.hist.Register(applySet, path, old.Value())
	d.raw = next
	return nil
}

// Undo replays up to levels recorded inverses.
func (d *Document) Undo(levels int) error {
	return d.hist.Undo(levels)
}

// Redo reapplies up to levels undone mutations.
func (d *Document) Redo(levels int) error {
	return d.hist.Redo(levels)
}

// applySet and applyDelete replay through the public mutators, so each
// replay registers its own inverse on the opposite stack.

func applySet(d *Document, args ...any) error {
	path, ok := args[0].(string)
	if !ok {
		return fmt.Errorf("jsondoc: replay set: path is %T", args[0])
	}
	return d.Set(path, args[1])
}

func applyDelete(d *Document, args ...any) error {
	path, ok := args[0].(string)
	if !ok {
		return fmt.Errorf("jsondoc: replay delete: path is %T", args[0])
	}
	return d.Delete(path)
}
