package cursor

import (
	"testing"

	"github.com/dshills/textkit/internal/engine/buffer"
	"github.com/dshills/textkit/internal/engine/layout"
	"github.com/stretchr/testify/assert"
)

// identityShaper shapes every row as one visual column per grapheme
// cluster, the monospace-with-tabWidth-1 case, letting these tests
// exercise VisualLeft/Right/Up/Down without pulling in package adapter.
func identityShaper(b *buffer.Buffer) func(row uint32) layout.ShapedLine {
	return func(row uint32) layout.ShapedLine {
		n := b.Columns(row)
		cols := make([]uint32, n+1)
		for i := range cols {
			cols[i] = uint32(i)
		}
		return layout.NewShapedLine(layout.ShapeMetric{Width: n}, cols, cols)
	}
}

func TestVisualLeftRightMatchLogicalOnMonospace(t *testing.T) {
	b := buffer.NewFromString("ab\ncd")
	shapeRow := identityShaper(b)
	c := NewCursor(Position{Row: 1, Col: 0})

	c = VisualLeft(b, c, shapeRow)
	assert.Equal(t, Position{Row: 0, Col: 2}, c.Pos())

	c = VisualRight(b, c, shapeRow)
	assert.Equal(t, Position{Row: 1, Col: 0}, c.Pos())
}

func TestVisualLeftAtDocumentStartIsNoop(t *testing.T) {
	b := buffer.NewFromString("ab")
	shapeRow := identityShaper(b)
	c := NewCursor(Position{Row: 0, Col: 0})
	c = VisualLeft(b, c, shapeRow)
	assert.Equal(t, Position{Row: 0, Col: 0}, c.Pos())
}

func TestVisualUpDownPreservesDesiredColumn(t *testing.T) {
	b := buffer.NewFromString("longline\nhi\nlongline")
	shapeRow := identityShaper(b)
	c := NewCursor(Position{Row: 0, Col: 7})

	c = VisualDown(b, c, shapeRow)
	assert.Equal(t, Position{Row: 1, Col: 2}, c.Pos())

	c = VisualDown(b, c, shapeRow)
	assert.Equal(t, Position{Row: 2, Col: 7}, c.Pos())
}

func TestVisualUpAtFirstRowIsNoop(t *testing.T) {
	b := buffer.NewFromString("abc")
	shapeRow := identityShaper(b)
	c := NewCursor(Position{Row: 0, Col: 1})
	c = VisualUp(b, c, shapeRow)
	assert.Equal(t, Position{Row: 0, Col: 1}, c.Pos())
}
