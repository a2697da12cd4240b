package cursor

import (
	"github.com/dshills/textkit/internal/engine/buffer"
	"github.com/dshills/textkit/internal/engine/layout"
)

// ShapeRowFn shapes one buffer row. Visual motion takes this as a
// parameter rather than a layout.Shaper directly so package cursor never
// has to import a concrete adapter or hold tab-width configuration itself.
type ShapeRowFn func(row uint32) layout.ShapedLine

// VisualLeft steps one cluster left through the shaped line's
// MoveVisually (the Layout Contract's move_visually), wrapping to the end
// of the previous line like MoveLeft when already at the start of the
// current line. MoveVisually steps in logical column order, so the result
// matches MoveLeft for every Shaper, bidi-aware or not.
func VisualLeft(b *buffer.Buffer, c Cursor, shapeRow ShapeRowFn) Cursor {
	p := c.Pos()
	shaped := shapeRow(p.Row)
	newCol := shaped.MoveVisually(p.Col, -1)
	if newCol == p.Col {
		return MoveLeft(b, c)
	}
	return c.MoveTo(Position{Row: p.Row, Col: newCol})
}

// VisualRight is the mirror of VisualLeft.
func VisualRight(b *buffer.Buffer, c Cursor, shapeRow ShapeRowFn) Cursor {
	p := c.Pos()
	shaped := shapeRow(p.Row)
	newCol := shaped.MoveVisually(p.Col, 1)
	if newCol == p.Col {
		return MoveRight(b, c)
	}
	return c.MoveTo(Position{Row: p.Row, Col: newCol})
}

// VisualUp moves to the previous row, preserving the sticky desired
// column by re-deriving the target column through the Shaper's
// x_to_column on the new row's visual x, rather than a raw column clamp.
// The two only diverge once a Shaper reports variable cluster widths
// (tabs, wide glyphs); for the monospace default this matches MoveUp.
func VisualUp(b *buffer.Buffer, c Cursor, shapeRow ShapeRowFn) Cursor {
	return visualVertical(b, c, shapeRow, -1)
}

// VisualDown is the mirror of VisualUp.
func VisualDown(b *buffer.Buffer, c Cursor, shapeRow ShapeRowFn) Cursor {
	return visualVertical(b, c, shapeRow, 1)
}

func visualVertical(b *buffer.Buffer, c Cursor, shapeRow ShapeRowFn, dir int) Cursor {
	p := c.Pos()
	if dir < 0 && p.Row == 0 {
		return c
	}
	if dir > 0 && p.Row+1 >= b.TotalLines() {
		return c
	}

	desiredCol := effectiveDesiredCol(c)
	desiredX := shapeRow(p.Row).VisualColumn(clampCol(desiredCol, b.Columns(p.Row)))

	newRow := p.Row - 1
	if dir > 0 {
		newRow = p.Row + 1
	}
	col, _ := shapeRow(newRow).XToColumn(desiredX)
	if lineCols := b.Columns(newRow); col > lineCols {
		col = lineCols
	}
	return c.MoveToKeepHint(Position{Row: newRow, Col: col}, desiredCol)
}
