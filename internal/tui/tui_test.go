package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rewind/internal/jsondoc"
)

func newDoc(t *testing.T, raw string, capacity int) *jsondoc.Document {
	t.Helper()
	doc, err := jsondoc.New(raw, capacity)
	require.NoError(t, err)
	return doc
}

func TestRunCommandSetGetDel(t *testing.T) {
	doc := newDoc(t, `{}`, 10)

	out, err := runCommand(doc, `set user.name "ed"`)
	require.NoError(t, err)
	assert.Equal(t, "set user.name", out)
	assert.Equal(t, "ed", doc.Get("user.name").String())

	out, err = runCommand(doc, "get user.name")
	require.NoError(t, err)
	assert.Equal(t, `user.name = "ed"`, out)

	_, err = runCommand(doc, "del user.name")
	require.NoError(t, err)
	assert.False(t, doc.Get("user.name").Exists())
}

func TestRunCommandUndoRedo(t *testing.T) {
	doc := newDoc(t, `{"n":1}`, 10)

	_, err := runCommand(doc, "set n 2")
	require.NoError(t, err)

	out, err := runCommand(doc, "undo")
	require.NoError(t, err)
	assert.Equal(t, "undid 1 change(s)", out)
	assert.Equal(t, int64(1), doc.Get("n").Int())

	out, err = runCommand(doc, "redo")
	require.NoError(t, err)
	assert.Equal(t, "redid 1 change(s)", out)
	assert.Equal(t, int64(2), doc.Get("n").Int())
}

func TestRunCommandUndoClampsReported(t *testing.T) {
	doc := newDoc(t, `{}`, 10)
	_, err := runCommand(doc, "set a 1")
	require.NoError(t, err)
	_, err = runCommand(doc, "set b 2")
	require.NoError(t, err)

	out, err := runCommand(doc, "undo 5")
	require.NoError(t, err)
	assert.Equal(t, "undid 2 change(s)", out)
}

func TestRunCommandUndoAtFullCapacity(t *testing.T) {
	doc := newDoc(t, `{}`, 2)
	_, err := runCommand(doc, "set a 1")
	require.NoError(t, err)
	_, err = runCommand(doc, "set b 2")
	require.NoError(t, err)

	out, err := runCommand(doc, "undo")
	require.NoError(t, err)
	assert.Contains(t, out, "history full")
	assert.Equal(t, int64(1), doc.Get("a").Int())
}

func TestRunCommandErrors(t *testing.T) {
	doc := newDoc(t, `{}`, 10)

	_, err := runCommand(doc, "warp 9")
	assert.Error(t, err)

	_, err = runCommand(doc, "set onlypath")
	assert.Error(t, err)

	_, err = runCommand(doc, "undo zero")
	assert.Error(t, err)
}

func TestRunCommandHistoryAndClear(t *testing.T) {
	doc := newDoc(t, `{}`, 5)
	_, err := runCommand(doc, "set a 1")
	require.NoError(t, err)

	out, err := runCommand(doc, "history")
	require.NoError(t, err)
	assert.Equal(t, "undo: 1, redo: 0, capacity: 5", out)

	_, err = runCommand(doc, "clear")
	require.NoError(t, err)
	assert.False(t, doc.History().CanUndo())
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"5", float64(5)},
		{"true", true},
		{`"quoted"`, "quoted"},
		{"plain", "plain"},
		{"null", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseValue(tt.in), "input %q", tt.in)
	}
}

func TestRecallNavigation(t *testing.T) {
	r := NewRecall(3)

	if _, ok := r.Prev(); ok {
		t.Fatal("empty recall should report false")
	}

	r.Push("one")
	r.Push("two")
	r.Push("two") // consecutive duplicate skipped
	r.Push("three")

	line, ok := r.Prev()
	require.True(t, ok)
	assert.Equal(t, "three", line)

	line, _ = r.Prev()
	assert.Equal(t, "two", line)

	line, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, "three", line)

	_, ok = r.Next()
	assert.False(t, ok, "past the newest entry means fresh input")
}

func TestRecallEvictsOldest(t *testing.T) {
	r := NewRecall(2)
	r.Push("a")
	r.Push("b")
	r.Push("c")

	line, _ := r.Prev()
	assert.Equal(t, "c", line)
	line, _ = r.Prev()
	assert.Equal(t, "b", line)
	line, _ = r.Prev()
	assert.Equal(t, "b", line, "oldest entry evicted; Prev stays at the floor")
}
