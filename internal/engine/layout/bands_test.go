package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedLineHeightTakesTallestPlusSpacing(t *testing.T) {
	h := UnifiedLineHeight(FontMetrics{TextHeight: 14, GutterHeight: 12, GlyphHeight: 18}, 2)
	assert.Equal(t, 20.0, h)
}

func TestUnifiedLineHeightClampsNegativeSpacing(t *testing.T) {
	h := UnifiedLineHeight(FontMetrics{TextHeight: 10}, -5)
	assert.Equal(t, 10.0, h)
}

func TestNewGeometryStacksUniformBands(t *testing.T) {
	g := NewGeometry(3, FontMetrics{TextHeight: 10}, 0, 40, 5, 0, 8)
	assert.Equal(t, 5.0, g.Lines[0].YTop)
	assert.Equal(t, 15.0, g.Lines[1].YTop)
	assert.Equal(t, 25.0, g.Lines[2].YTop)
	assert.Equal(t, 10.0, g.Lines[0].Height)
}

func TestGeometryViewportYAppliesScrollOffset(t *testing.T) {
	g := NewGeometry(2, FontMetrics{TextHeight: 10}, 0, 0, 0, 10, 8)
	assert.Equal(t, -10.0, g.ViewportY(0))
	assert.Equal(t, 0.0, g.ViewportY(1))
}

func TestGeometryHitTestRowFindsContainingBand(t *testing.T) {
	g := NewGeometry(3, FontMetrics{TextHeight: 10}, 0, 0, 0, 0, 8)
	assert.Equal(t, uint32(0), g.HitTestRow(5))
	assert.Equal(t, uint32(1), g.HitTestRow(15))
	assert.Equal(t, uint32(2), g.HitTestRow(25))
}

func TestGeometryHitTestRowClampsOutOfRange(t *testing.T) {
	g := NewGeometry(2, FontMetrics{TextHeight: 10}, 0, 0, 0, 0, 8)
	assert.Equal(t, uint32(0), g.HitTestRow(-5))
	assert.Equal(t, uint32(1), g.HitTestRow(999))
}

func TestGeometryHitTestRowOnEmptyBandsReturnsZero(t *testing.T) {
	g := Geometry{}
	assert.Equal(t, uint32(0), g.HitTestRow(123))
}

func TestGeometryTabStopWidth(t *testing.T) {
	g := NewGeometry(1, FontMetrics{TextHeight: 10}, 0, 0, 0, 0, 8)
	assert.Equal(t, 32.0, g.TabStopWidth(4))
}

func TestGeometryHitTestColumnAppliesTrailingFlag(t *testing.T) {
	shaped := NewShapedLine(ShapeMetric{Width: 2, HasWide: true}, []uint32{0, 0}, []uint32{0, 2})
	g := Geometry{TextLeftOffset: 10}
	// x=11 is local x=1, the trailing half of the wide cluster at col 0.
	assert.Equal(t, uint32(1), g.HitTestColumn(shaped, 11))
}

func TestGeometryCaretXAppliesTextLeftOffset(t *testing.T) {
	shaped := NewShapedLine(ShapeMetric{Width: 3}, []uint32{0, 1, 2}, []uint32{0, 1, 2})
	g := Geometry{TextLeftOffset: 10}
	assert.Equal(t, 12.0, g.CaretX(shaped, 2))
}

func TestGeometryCaretYAppliesScrollOffset(t *testing.T) {
	g := NewGeometry(2, FontMetrics{TextHeight: 10}, 0, 0, 0, 5, 8)
	y, height := g.CaretY(1)
	assert.Equal(t, 5.0, y)
	assert.Equal(t, 10.0, height)
}
