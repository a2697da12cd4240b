package buffer

import "fmt"

// ByteOffset is a byte position into the buffer's underlying rope storage.
// It never crosses the package boundary as a result of user input; see
// grapheme.go for the column<->byte conversion helpers.
type ByteOffset = int64

// Position is a (row, column) pair identifying an insertion point or a
// grapheme-cluster boundary. Both fields are 0-indexed; Col == Columns(Row)
// denotes the end-of-line insertion point.
type Position struct {
	Row uint32
	Col uint32
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other in
// (row, col) lexicographic order.
func (p Position) Compare(other Position) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the origin position (0,0).
func (p Position) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

// PositionRange represents a range using (row, col) positions, normalized so
// Start <= End in lexicographic order is the caller's responsibility.
type PositionRange struct {
	Start Position
	End   Position
}

// IsEmpty returns true if start equals end.
func (r PositionRange) IsEmpty() bool {
	return r.Start.Compare(r.End) == 0
}

// IsSingleLine returns true if the range spans only one row.
func (r PositionRange) IsSingleLine() bool {
	return r.Start.Row == r.End.Row
}
