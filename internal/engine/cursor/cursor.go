package cursor

import (
	"fmt"

	"github.com/dshills/textkit/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Cursor represents an insertion point in the buffer, plus the desired
// visual column ("sticky column") used so that repeated up/down motion
// through short lines remembers where the caret logically wants to be.
// Cursor is an immutable value type.
type Cursor struct {
	pos        Position
	desiredCol int32 // -1 means "no hint, use pos.Col"
}

// NewCursor creates a cursor at the given position with no sticky-column hint.
func NewCursor(pos Position) Cursor {
	return Cursor{pos: pos, desiredCol: -1}
}

// Pos returns the cursor's buffer position.
func (c Cursor) Pos() Position {
	return c.pos
}

// DesiredCol returns the sticky visual column used by vertical motion, or
// -1 if none has been set (meaning the current column is authoritative).
func (c Cursor) DesiredCol() int32 {
	return c.desiredCol
}

// MoveTo returns a new cursor at pos, clearing any sticky-column hint.
func (c Cursor) MoveTo(pos Position) Cursor {
	return Cursor{pos: pos, desiredCol: -1}
}

// MoveToKeepHint returns a new cursor at pos, preserving the sticky column.
// Used by vertical motion so repeated Up/Down keeps aiming at the same
// visual column even as it passes through shorter lines.
func (c Cursor) MoveToKeepHint(pos Position, desiredCol int32) Cursor {
	return Cursor{pos: pos, desiredCol: desiredCol}
}

// WithHint returns a copy of c with its sticky column set explicitly.
func (c Cursor) WithHint(col int32) Cursor {
	return Cursor{pos: c.pos, desiredCol: col}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor%s", c.pos)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.pos == other.pos
}

// Before returns true if c is before other.
func (c Cursor) Before(other Cursor) bool {
	return c.pos.Before(other.pos)
}

// After returns true if c is after other.
func (c Cursor) After(other Cursor) bool {
	return c.pos.After(other.pos)
}

// ToSelection converts this cursor to a selection with no extent.
func (c Cursor) ToSelection() Selection {
	return Selection{Anchor: c.pos, Head: c.pos}
}
