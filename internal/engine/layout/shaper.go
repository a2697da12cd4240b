package layout

// Shaper is the External Adapter capability a host provides to tell THE
// CORE how wide each grapheme cluster renders. Without one, column-accurate
// visual motion and hit-testing cannot account for tabs or wide (e.g. CJK)
// characters; a host that doesn't care can install the monospace default in
// package adapter.
type Shaper interface {
	// ShapeLine computes the visual layout of line, a single buffer row
	// with no line terminator, using the given tab width (columns per
	// tab stop).
	ShapeLine(line string, tabWidth uint32) ShapedLine
}

// ShapeMetric summarizes a shaped line's horizontal geometry: its total
// visual width and whether any tab or double-width cluster was present.
type ShapeMetric struct {
	Width   uint32 // total visual columns occupied
	HasTabs bool
	HasWide bool
}

// ShapedLine is the result of shaping one buffer line: a bidirectional
// mapping between buffer columns (grapheme-cluster indices) and visual
// columns (terminal cells), used for caret placement, mouse hit-testing,
// and visual-order caret motion.
type ShapedLine struct {
	Metric ShapeMetric

	// visualToBuffer[v] is the buffer column occupying visual column v.
	visualToBuffer []uint32
	// bufferToVisual[c] is the visual column where buffer column c starts.
	bufferToVisual []uint32
}

// NewShapedLine builds a ShapedLine from precomputed column maps. Used by
// Shaper implementations; callers outside package adapter normally only
// consume the result.
func NewShapedLine(metric ShapeMetric, visualToBuffer, bufferToVisual []uint32) ShapedLine {
	return ShapedLine{Metric: metric, visualToBuffer: visualToBuffer, bufferToVisual: bufferToVisual}
}

// VisualColumn converts a buffer column to its visual column (the
// Shaper capability's visual_width). A column beyond the line's content
// extrapolates from the last known mapping.
func (l ShapedLine) VisualColumn(bufCol uint32) uint32 {
	if len(l.bufferToVisual) == 0 {
		return bufCol
	}
	if int(bufCol) >= len(l.bufferToVisual) {
		last := l.bufferToVisual[len(l.bufferToVisual)-1]
		return last + bufCol - uint32(len(l.bufferToVisual)) + 1
	}
	return l.bufferToVisual[bufCol]
}

// BufferColumn converts a visual column to the buffer column it falls on,
// with no leading/trailing-edge disambiguation. A column beyond the
// shaped width extrapolates.
func (l ShapedLine) BufferColumn(visCol uint32) uint32 {
	if len(l.visualToBuffer) == 0 {
		return visCol
	}
	if int(visCol) >= len(l.visualToBuffer) {
		last := l.visualToBuffer[len(l.visualToBuffer)-1]
		return last + visCol - uint32(len(l.visualToBuffer)) + 1
	}
	return l.visualToBuffer[visCol]
}

// XToColumn is the Shaper capability's x_to_column: it returns the buffer
// column visCol falls within, plus a trailing flag (0 or 1) reporting
// whether visCol sits in the first or second half of that column's cell.
// A click landing on the trailing half of a cluster should place the
// caret after it, not before — the caller (Geometry.HitTestColumn) adds
// the flag onto the returned column to get the final caret column.
func (l ShapedLine) XToColumn(visCol uint32) (col uint32, trailing uint8) {
	col = l.BufferColumn(visCol)
	start := l.VisualColumn(col)
	width := l.VisualColumn(col+1) - start
	if width == 0 {
		return col, 0
	}
	if visCol-start >= (width+1)/2 {
		return col, 1
	}
	return col, 0
}

// MoveVisually steps col by one cluster, clamped to the range 0 through
// len(bufferToVisual)-1. It steps in logical column order and reads only
// the length of bufferToVisual, not the contents of either table, so a
// reordering that a bidi-aware Shaper encodes in visualToBuffer or
// bufferToVisual does not change the result. For plain LTR text, where
// visual order equals logical order (the monospace default), the logical
// step is also the visual one.
func (l ShapedLine) MoveVisually(col uint32, direction int) uint32 {
	numCols := len(l.bufferToVisual)
	if numCols == 0 {
		return col
	}
	lastCol := uint32(numCols - 1)
	if direction < 0 {
		if col == 0 {
			return col
		}
		return col - 1
	}
	if col >= lastCol {
		return col
	}
	return col + 1
}

// Width returns the line's total visual width in columns.
func (l ShapedLine) Width() uint32 {
	return l.Metric.Width
}

// HitTest returns the buffer column nearest to visual column x, ignoring
// the leading/trailing-edge distinction XToColumn makes. Kept for callers
// that only need a column, not full hit-test semantics.
func (l ShapedLine) HitTest(x uint32) uint32 {
	return l.BufferColumn(x)
}
