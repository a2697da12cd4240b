package cursor

import "github.com/dshills/textkit/internal/engine/buffer"

// MoveLeft moves one grapheme cluster left, wrapping to the end of the
// previous line at a line boundary.
func MoveLeft(b *buffer.Buffer, c Cursor) Cursor {
	p := c.Pos()
	if p.Col > 0 {
		return c.MoveTo(Position{Row: p.Row, Col: p.Col - 1})
	}
	if p.Row > 0 {
		prevRow := p.Row - 1
		return c.MoveTo(Position{Row: prevRow, Col: b.Columns(prevRow)})
	}
	return c
}

// MoveRight moves one grapheme cluster right, wrapping to the start of the
// next line at a line boundary.
func MoveRight(b *buffer.Buffer, c Cursor) Cursor {
	p := c.Pos()
	if p.Col < b.Columns(p.Row) {
		return c.MoveTo(Position{Row: p.Row, Col: p.Col + 1})
	}
	if p.Row+1 < b.TotalLines() {
		return c.MoveTo(Position{Row: p.Row + 1, Col: 0})
	}
	return c
}

// MoveUp moves one row up, preserving the sticky desired column across
// shorter intervening lines.
func MoveUp(b *buffer.Buffer, c Cursor) Cursor {
	p := c.Pos()
	if p.Row == 0 {
		return c
	}
	targetCol := effectiveDesiredCol(c)
	newRow := p.Row - 1
	col := clampCol(targetCol, b.Columns(newRow))
	return c.MoveToKeepHint(Position{Row: newRow, Col: col}, targetCol)
}

// MoveDown moves one row down, preserving the sticky desired column across
// shorter intervening lines.
func MoveDown(b *buffer.Buffer, c Cursor) Cursor {
	p := c.Pos()
	if p.Row+1 >= b.TotalLines() {
		return c
	}
	targetCol := effectiveDesiredCol(c)
	newRow := p.Row + 1
	col := clampCol(targetCol, b.Columns(newRow))
	return c.MoveToKeepHint(Position{Row: newRow, Col: col}, targetCol)
}

// MoveHome moves to the start of the current row.
func MoveHome(_ *buffer.Buffer, c Cursor) Cursor {
	p := c.Pos()
	return c.MoveTo(Position{Row: p.Row, Col: 0})
}

// MoveEnd moves to the end of the current row.
func MoveEnd(b *buffer.Buffer, c Cursor) Cursor {
	p := c.Pos()
	return c.MoveTo(Position{Row: p.Row, Col: b.Columns(p.Row)})
}

// MoveDocumentStart moves to (0, 0).
func MoveDocumentStart(_ *buffer.Buffer, c Cursor) Cursor {
	return c.MoveTo(Position{Row: 0, Col: 0})
}

// MoveDocumentEnd moves to the end of the last row.
func MoveDocumentEnd(b *buffer.Buffer, c Cursor) Cursor {
	last := b.TotalLines() - 1
	return c.MoveTo(Position{Row: last, Col: b.Columns(last)})
}

// MovePageUp moves up by pageSize rows, clamping at row 0, preserving the
// sticky column the same way MoveUp does.
func MovePageUp(b *buffer.Buffer, c Cursor, pageSize uint32) Cursor {
	p := c.Pos()
	targetCol := effectiveDesiredCol(c)
	var newRow uint32
	if p.Row > pageSize {
		newRow = p.Row - pageSize
	}
	col := clampCol(targetCol, b.Columns(newRow))
	return c.MoveToKeepHint(Position{Row: newRow, Col: col}, targetCol)
}

// MovePageDown moves down by pageSize rows, clamping at the last row.
func MovePageDown(b *buffer.Buffer, c Cursor, pageSize uint32) Cursor {
	p := c.Pos()
	targetCol := effectiveDesiredCol(c)
	last := b.TotalLines() - 1
	newRow := p.Row + pageSize
	if newRow > last {
		newRow = last
	}
	col := clampCol(targetCol, b.Columns(newRow))
	return c.MoveToKeepHint(Position{Row: newRow, Col: col}, targetCol)
}

func effectiveDesiredCol(c Cursor) int32 {
	if c.DesiredCol() >= 0 {
		return c.DesiredCol()
	}
	return int32(c.Pos().Col)
}

func clampCol(desired int32, lineCols uint32) uint32 {
	if desired < 0 {
		return 0
	}
	if uint32(desired) > lineCols {
		return lineCols
	}
	return uint32(desired)
}
