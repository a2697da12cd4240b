package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/textkit/internal/engine/buffer"
	"github.com/dshills/textkit/internal/engine/cursor"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// defaultMaxEntries bounds the undo stack, mirroring the original editor's
// MAX_UNDO_STACK_SIZE.
const defaultMaxEntries = 100

// Snapshot captures a buffer's full text plus its selection at the moment
// an edit was pushed, the unit that undo and redo restore.
type Snapshot struct {
	Text      string
	Selection cursor.Selection
}

type entry struct {
	snapshot  Snapshot
	timestamp time.Time
}

// History manages undo/redo snapshot stacks for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []entry
	redoStack []entry

	maxEntries int
}

// New creates a history manager bounded to maxEntries snapshots. A
// non-positive value falls back to defaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Push records the given snapshot as the state to return to on the next
// Undo, and clears the redo stack. The dispatcher calls it after an edit
// has been applied, with the snapshot it took before the edit, and only
// when the edit changed the text.
func (h *History) Push(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = append(h.undoStack, entry{snapshot: s, timestamp: time.Now()})
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo pops the most recent snapshot, applies it to buf, pushes the
// pre-undo state onto the redo stack, and returns the selection to restore.
func (h *History) Undo(buf *buffer.Buffer, current Snapshot) (cursor.Selection, error) {
	h.mu.Lock()
	if len(h.undoStack) == 0 {
		h.mu.Unlock()
		return cursor.Selection{}, ErrNothingToUndo
	}
	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, entry{snapshot: current, timestamp: time.Now()})
	h.mu.Unlock()

	buf.SetText(e.snapshot.Text)
	return e.snapshot.Selection, nil
}

// Redo pops the most recently undone snapshot, applies it to buf, pushes
// the pre-redo state back onto the undo stack, and returns the selection to
// restore.
func (h *History) Redo(buf *buffer.Buffer, current Snapshot) (cursor.Selection, error) {
	h.mu.Lock()
	if len(h.redoStack) == 0 {
		h.mu.Unlock()
		return cursor.Selection{}, ErrNothingToRedo
	}
	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, entry{snapshot: current, timestamp: time.Now()})
	h.mu.Unlock()

	buf.SetText(e.snapshot.Text)
	return e.snapshot.Selection, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undoStack = nil
	h.redoStack = nil
}

// SetMaxEntries changes the maximum number of undo entries. If the current
// stack is larger, the oldest entries are discarded.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = defaultMaxEntries
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.maxEntries = max
	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
