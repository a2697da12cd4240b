package layout

// LineMetric is one line's vertical band within a paint cycle: its top
// offset and total height, in whatever unit the host's Shaper reports
// (pixels for a GUI host, cells for a terminal host).
type LineMetric struct {
	YTop   float64
	Height float64
}

// FontMetrics carries the measured heights a host's text and gutter
// renderers report for one line, combined by UnifiedLineHeight into that
// line's band height.
type FontMetrics struct {
	TextHeight   float64
	GutterHeight float64
	GlyphHeight  float64
}

// UnifiedLineHeight computes a line's band height from the tallest of its
// text, gutter, and glyph measurements plus the configured paragraph
// spacing. This is the single formula layout, painting, and hit-testing
// must all share — computing height differently in any one of them would
// desynchronize bands from what was actually painted.
func UnifiedLineHeight(m FontMetrics, paragraphSpacing float64) float64 {
	h := m.TextHeight
	if m.GutterHeight > h {
		h = m.GutterHeight
	}
	if m.GlyphHeight > h {
		h = m.GlyphHeight
	}
	if paragraphSpacing < 0 {
		paragraphSpacing = 0
	}
	return h + paragraphSpacing
}

// Geometry is the engine's per-paint-cycle layout: a vertical band for
// every buffer line, plus the horizontal/vertical origins and scroll
// offset a renderer applies uniformly to map bands into viewport
// coordinates.
type Geometry struct {
	Lines []LineMetric

	// TextLeftOffset is the gutter width plus left margin; TopOffset is
	// the top margin. Both are added to every x/y a renderer paints at.
	TextLeftOffset float64
	TopOffset      float64

	// ScrollOffset is in the same units as YTop and is subtracted
	// uniformly from every band's YTop when mapping to viewport space.
	ScrollOffset float64

	// AverageCharWidth is the sampled width of one character cell, used
	// to synthesize tab stop widths identically for painting and
	// hit-testing (spec's tab_width_spaces * average_char_width).
	AverageCharWidth float64
}

// NewGeometry lays out lineCount lines of uniform height (one FontMetrics
// applies to every line). A host whose lines have varying glyph heights
// builds Geometry by hand instead, one LineMetric per row.
func NewGeometry(lineCount uint32, metrics FontMetrics, paragraphSpacing, textLeftOffset, topOffset, scrollOffset, averageCharWidth float64) Geometry {
	height := UnifiedLineHeight(metrics, paragraphSpacing)
	lines := make([]LineMetric, lineCount)
	y := topOffset
	for i := range lines {
		lines[i] = LineMetric{YTop: y, Height: height}
		y += height
	}
	return Geometry{
		Lines:            lines,
		TextLeftOffset:   textLeftOffset,
		TopOffset:        topOffset,
		ScrollOffset:     scrollOffset,
		AverageCharWidth: averageCharWidth,
	}
}

// TabStopWidth returns the pixel (or cell) width of one configured tab
// stop — the single calculation painting and hit-testing must share so a
// tab is never measured differently between the two.
func (g Geometry) TabStopWidth(tabWidthSpaces uint32) float64 {
	return float64(tabWidthSpaces) * g.AverageCharWidth
}

// ViewportY returns row's y_top with ScrollOffset applied, the coordinate
// a renderer actually paints at. Rows beyond the last line clamp to the
// last band.
func (g Geometry) ViewportY(row uint32) float64 {
	if len(g.Lines) == 0 {
		return g.TopOffset - g.ScrollOffset
	}
	if int(row) >= len(g.Lines) {
		row = uint32(len(g.Lines) - 1)
	}
	return g.Lines[row].YTop - g.ScrollOffset
}

// HitTestRow returns the buffer row whose band contains viewport y,
// clamping to the first row when y is above every band and the last row
// when y is below every band. When no bands exist (a fresh engine with
// no paint cycle yet run), row 0 is returned.
func (g Geometry) HitTestRow(y float64) uint32 {
	if len(g.Lines) == 0 {
		return 0
	}
	for i, lm := range g.Lines {
		top := lm.YTop - g.ScrollOffset
		if y >= top && y < top+lm.Height {
			return uint32(i)
		}
	}
	if y < g.Lines[0].YTop-g.ScrollOffset {
		return 0
	}
	return uint32(len(g.Lines) - 1)
}

// HitTestColumn converts a viewport x on the row shaped as shaped into a
// buffer column: it subtracts TextLeftOffset, calls the Shaper's
// x_to_column through ShapedLine.XToColumn, and applies the trailing flag
// to pick the leading or trailing edge of the hit cluster.
func (g Geometry) HitTestColumn(shaped ShapedLine, x float64) uint32 {
	localX := x - g.TextLeftOffset
	if localX < 0 {
		localX = 0
	}
	col, trailing := shaped.XToColumn(uint32(localX))
	if trailing > 0 {
		col++
	}
	return col
}

// CaretX returns the viewport x coordinate of the caret at buffer column
// col on a line shaped as shaped.
func (g Geometry) CaretX(shaped ShapedLine, col uint32) float64 {
	return g.TextLeftOffset + float64(shaped.VisualColumn(col))
}

// CaretY returns the viewport y coordinate and band height of the caret
// on row, with ScrollOffset applied.
func (g Geometry) CaretY(row uint32) (y, height float64) {
	if len(g.Lines) == 0 {
		return g.TopOffset - g.ScrollOffset, 0
	}
	if int(row) >= len(g.Lines) {
		row = uint32(len(g.Lines) - 1)
	}
	lm := g.Lines[row]
	return lm.YTop - g.ScrollOffset, lm.Height
}
