package jsondoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rewind/internal/jsondoc"
)

func TestNewValidatesJSON(t *testing.T) {
	_, err := jsondoc.New("{not json", 10)
	require.ErrorIs(t, err, jsondoc.ErrInvalidJSON)

	doc, err := jsondoc.New("", 10)
	require.NoError(t, err)
	assert.Equal(t, "{}", doc.Raw())
}

func TestSetAndGet(t *testing.T) {
	doc, err := jsondoc.New(`{"name":"ed"}`, 10)
	require.NoError(t, err)

	require.NoError(t, doc.Set("name", "nadia"))
	require.NoError(t, doc.Set("stats.saves", 3))

	assert.Equal(t, "nadia", doc.Get("name").String())
	assert.Equal(t, int64(3), doc.Get("stats.saves").Int())
	assert.Equal(t, 2, doc.History().UndoCount())
}

func TestUndoRestoresPriorValue(t *testing.T) {
	doc, err := jsondoc.New(`{"name":"ed"}`, 10)
	require.NoError(t, err)

	require.NoError(t, doc.Set("name", "nadia"))
	require.NoError(t, doc.Undo(1))

	assert.Equal(t, "ed", doc.Get("name").String())
	assert.Equal(t, 0, doc.History().UndoCount())
	assert.Equal(t, 1, doc.History().RedoCount())
}

func TestUndoRemovesFreshKey(t *testing.T) {
	doc, err := jsondoc.New(`{}`, 10)
	require.NoError(t, err)

	require.NoError(t, doc.Set("color", "blue"))
	require.NoError(t, doc.Undo(1))

	assert.False(t, doc.Get("color").Exists())
}

func TestRedoRoundTrip(t *testing.T) {
	doc, err := jsondoc.New(`{"n":1}`, 10)
	require.NoError(t, err)

	require.NoError(t, doc.Set("n", 2))
	require.NoError(t, doc.Undo(1))
	require.NoError(t, doc.Redo(1))

	assert.Equal(t, int64(2), doc.Get("n").Int())
	assert.True(t, doc.History().CanUndo())
	assert.False(t, doc.History().CanRedo())
}

func TestDeleteIsUndoable(t *testing.T) {
	doc, err := jsondoc.New(`{"a":{"b":[1,2,3]}}`, 10)
	require.NoError(t, err)

	require.NoError(t, doc.Delete("a.b"))
	assert.False(t, doc.Get("a.b").Exists())

	require.NoError(t, doc.Undo(1))
	assert.Equal(t, int64(2), doc.Get("a.b.1").Int())

	require.NoError(t, doc.Redo(1))
	assert.False(t, doc.Get("a.b").Exists())
}

func TestDeleteMissingPathRecordsNothing(t *testing.T) {
	doc, err := jsondoc.New(`{}`, 10)
	require.NoError(t, err)

	require.NoError(t, doc.Delete("ghost"))
	assert.Equal(t, 0, doc.History().UndoCount())
}

func TestMultiLevelUndo(t *testing.T) {
	doc, err := jsondoc.New(`{}`, 10)
	require.NoError(t, err)

	require.NoError(t, doc.Set("step", 1))
	require.NoError(t, doc.Set("step", 2))
	require.NoError(t, doc.Set("step", 3))

	require.NoError(t, doc.Undo(2))
	assert.Equal(t, int64(1), doc.Get("step").Int())

	require.NoError(t, doc.Redo(2))
	assert.Equal(t, int64(3), doc.Get("step").Int())
}

func TestGroupedMutationsUndoTogether(t *testing.T) {
	doc, err := jsondoc.New(`{"x":0,"y":0}`, 10)
	require.NoError(t, err)

	err = doc.History().Transaction(func() error {
		if err := doc.Set("x", 5); err != nil {
			return err
		}
		return doc.Set("y", 7)
	})
	require.NoError(t, err)
	require.Equal(t, 1, doc.History().UndoCount())

	require.NoError(t, doc.Undo(1))
	assert.Equal(t, int64(0), doc.Get("x").Int())
	assert.Equal(t, int64(0), doc.Get("y").Int())

	require.NoError(t, doc.Redo(1))
	assert.Equal(t, int64(5), doc.Get("x").Int())
	assert.Equal(t, int64(7), doc.Get("y").Int())
}

func TestPrettyFormats(t *testing.T) {
	doc, err := jsondoc.New(`{"a":1}`, 10)
	require.NoError(t, err)
	assert.Contains(t, doc.Pretty(), "\"a\": 1")
}
