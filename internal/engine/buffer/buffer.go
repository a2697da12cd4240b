package buffer

import (
	"errors"
	"strings"
	"sync"

	"github.com/dshills/textkit/internal/engine/rope"
)

// Errors returned by Text Model operations. Per spec, these surface only to
// direct callers; the dispatcher validates and clamps before ever reaching
// here, so a CD-mediated call never observes them.
var (
	ErrOutOfRange   = errors.New("buffer: position out of range")
	ErrRangeInvalid = errors.New("buffer: invalid range")
)

// Buffer is the Text Model (TM): a non-empty ordered sequence of logical
// lines, stored internally as a single rope with '\n' row separators (never
// exposed as such -- every public method addresses content by row/col).
// All methods are thread-safe.
type Buffer struct {
	mu   sync.RWMutex
	rope rope.Rope
}

// New creates an empty buffer: one empty line.
func New() *Buffer {
	return &Buffer{rope: rope.New()}
}

// NewFromString creates a buffer from initial content. Any CRLF or CR line
// endings are normalized to LF; the Text Model never stores them.
func NewFromString(s string) *Buffer {
	return &Buffer{rope: rope.FromString(normalizeLineEndings(s))}
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// Text returns the full buffer content as a single string with '\n' row
// separators.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.String()
}

// TotalLines returns the number of logical lines. Always >= 1.
func (b *Buffer) TotalLines() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineCount()
}

// LineText returns the text of a row, without any line terminator.
func (b *Buffer) LineText(row uint32) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineText(row)
}

// Columns returns the number of grapheme-cluster columns in a row.
func (b *Buffer) Columns(row uint32) uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return columnCount(b.rope.LineText(row))
}

// Clamp returns p clamped into the valid buffer range.
func (b *Buffer) Clamp(p Position) Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.clampLocked(p)
}

func (b *Buffer) clampLocked(p Position) Position {
	lastRow := b.rope.LineCount() - 1
	if p.Row > lastRow {
		p.Row = lastRow
	}
	maxCol := columnCount(b.rope.LineText(p.Row))
	if p.Col > maxCol {
		p.Col = maxCol
	}
	return p
}

// positionToOffsetLocked converts a Position to a byte offset, clamping row/col
// into range first. Caller must hold at least a read lock.
func (b *Buffer) positionToOffsetLocked(p Position) ByteOffset {
	p = b.clampLocked(p)
	lineStart := b.rope.LineStartOffset(p.Row)
	line := b.rope.LineText(p.Row)
	return ByteOffset(lineStart) + ByteOffset(columnToByte(line, p.Col))
}

// offsetToPositionLocked converts a byte offset to a Position. Caller must
// hold at least a read lock.
func (b *Buffer) offsetToPositionLocked(off ByteOffset) Position {
	pt := b.rope.OffsetToPoint(rope.ByteOffset(off))
	lineStart := b.rope.LineStartOffset(pt.Line)
	line := b.rope.LineText(pt.Line)
	byteCol := int(rope.ByteOffset(off) - lineStart)
	return Position{Row: pt.Line, Col: byteToColumn(line, byteCol)}
}

// PositionToOffset exposes positionToOffsetLocked for callers (search,
// cursor) that need a byte offset for rope-level operations such as slicing.
func (b *Buffer) PositionToOffset(p Position) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.positionToOffsetLocked(p)
}

// OffsetToPosition is the inverse of PositionToOffset.
func (b *Buffer) OffsetToPosition(off ByteOffset) Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.offsetToPositionLocked(off)
}

// GetText returns the text in [start, end), normalized so the lower
// position is always used as the range start regardless of argument order.
func (b *Buffer) GetText(start, end Position) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if end.Before(start) {
		start, end = end, start
	}
	s := b.positionToOffsetLocked(start)
	e := b.positionToOffsetLocked(end)
	return b.rope.Slice(rope.ByteOffset(s), rope.ByteOffset(e))
}

// InsertText splices s (which may contain '\n') at pos. Returns the
// position immediately after the inserted text.
func (b *Buffer) InsertText(pos Position, s string) (Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	off := b.positionToOffsetLocked(pos)
	s = normalizeLineEndings(s)
	b.rope = b.rope.Insert(rope.ByteOffset(off), s)

	return b.offsetToPositionLocked(off + ByteOffset(len(s))), nil
}

// DeleteRange removes the inclusive-exclusive range [start, end), joining
// partial lines when the range spans rows.
func (b *Buffer) DeleteRange(start, end Position) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if end.Before(start) {
		start, end = end, start
	}
	s := b.positionToOffsetLocked(start)
	e := b.positionToOffsetLocked(end)
	if s == e {
		return nil
	}
	b.rope = b.rope.Delete(rope.ByteOffset(s), rope.ByteOffset(e))
	return nil
}

// DeleteLine removes row entirely, including its trailing newline. If row is
// the only line in the buffer, its content is cleared instead so the
// non-emptiness invariant holds.
func (b *Buffer) DeleteLine(row uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	lineCount := b.rope.LineCount()
	if row >= lineCount {
		return ErrOutOfRange
	}

	if lineCount == 1 {
		start := b.rope.LineStartOffset(row)
		end := b.rope.LineEndOffset(row)
		b.rope = b.rope.Delete(start, end)
		return nil
	}

	start := b.rope.LineStartOffset(row)
	var end rope.ByteOffset
	if row == lineCount-1 {
		// Last line: also consume the newline before it.
		if start > 0 {
			start = start - 1
		}
		end = b.rope.Len()
	} else {
		end = b.rope.LineStartOffset(row + 1)
	}
	b.rope = b.rope.Delete(start, end)
	return nil
}

// SplitLine splices a newline at pos; equivalent to InsertText(pos, "\n").
func (b *Buffer) SplitLine(pos Position) (Position, error) {
	return b.InsertText(pos, "\n")
}

// SetText replaces the entire buffer content. Used by undo/redo restoration
// and whole-buffer import.
func (b *Buffer) SetText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rope = rope.FromString(normalizeLineEndings(s))
}

// Lines returns the buffer content split into logical lines, none of which
// contain a line terminator. The undo/redo snapshot uses Text, not Lines.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := b.rope.LineCount()
	out := make([]string, n)
	for i := uint32(0); i < n; i++ {
		out[i] = b.rope.LineText(i)
	}
	return out
}
