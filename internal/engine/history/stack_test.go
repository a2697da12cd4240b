package history

import (
	"testing"

	"github.com/dshills/textkit/internal/engine/buffer"
	"github.com/dshills/textkit/internal/engine/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(text string, col uint32) Snapshot {
	pos := cursor.Position{Row: 0, Col: col}
	return Snapshot{Text: text, Selection: cursor.NewCursorSelection(pos)}
}

func TestPushUndoRedo(t *testing.T) {
	h := New(10)
	b := buffer.NewFromString("hello")

	h.Push(snap("hello", 0))
	b.SetText("hello world")

	sel, err := h.Undo(b, snap("hello world", 11))
	require.NoError(t, err)
	assert.Equal(t, "hello", b.Text())
	assert.Equal(t, uint32(0), sel.Head.Col)

	sel, err = h.Redo(b, snap("hello", 0))
	require.NoError(t, err)
	assert.Equal(t, "hello world", b.Text())
	assert.Equal(t, uint32(11), sel.Head.Col)
}

func TestUndoEmptyStackErrors(t *testing.T) {
	h := New(10)
	b := buffer.New()
	_, err := h.Undo(b, snap("", 0))
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestRedoEmptyStackErrors(t *testing.T) {
	h := New(10)
	b := buffer.New()
	_, err := h.Redo(b, snap("", 0))
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestPushClearsRedoStack(t *testing.T) {
	h := New(10)
	b := buffer.NewFromString("a")
	h.Push(snap("a", 0))
	b.SetText("ab")
	_, err := h.Undo(b, snap("ab", 0))
	require.NoError(t, err)
	assert.True(t, h.CanRedo())

	h.Push(snap("a", 0))
	assert.False(t, h.CanRedo())
}

func TestMaxEntriesBound(t *testing.T) {
	h := New(2)
	b := buffer.New()
	h.Push(snap("1", 0))
	h.Push(snap("2", 0))
	h.Push(snap("3", 0))
	assert.Equal(t, 2, h.UndoCount())

	_ = b
}

func TestClear(t *testing.T) {
	h := New(10)
	h.Push(snap("a", 0))
	h.Clear()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
