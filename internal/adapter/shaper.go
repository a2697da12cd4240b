package adapter

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textkit/internal/engine/buffer"
	"github.com/dshills/textkit/internal/engine/layout"
)

// MonospaceShaper is the default Shaper: every grapheme cluster occupies
// go-runewidth's reported display width (1 for ASCII, 2 for wide CJK and
// most emoji), and tabs expand to the next tab stop.
type MonospaceShaper struct{}

// NewMonospaceShaper creates a MonospaceShaper.
func NewMonospaceShaper() *MonospaceShaper {
	return &MonospaceShaper{}
}

// ShapeLine implements layout.Shaper.
func (MonospaceShaper) ShapeLine(line string, tabWidth uint32) layout.ShapedLine {
	if tabWidth == 0 {
		tabWidth = 1
	}

	clusters := buffer.Segments(line)
	bufferToVisual := make([]uint32, 0, len(clusters)+1)
	visualToBuffer := make([]uint32, 0, len(clusters)+1)

	var visCol uint32
	var hasTabs, hasWide bool

	for bufCol, cluster := range clusters {
		bufferToVisual = append(bufferToVisual, visCol)

		if cluster == "\t" {
			hasTabs = true
			stop := tabWidth - (visCol % tabWidth)
			for i := uint32(0); i < stop; i++ {
				visualToBuffer = append(visualToBuffer, uint32(bufCol))
				visCol++
			}
			continue
		}

		w := runewidth.StringWidth(cluster)
		if w == 2 {
			hasWide = true
		}
		if w == 0 {
			w = 1 // every cluster occupies at least one cell for hit-testing
		}
		for i := 0; i < w; i++ {
			visualToBuffer = append(visualToBuffer, uint32(bufCol))
			visCol++
		}
	}
	// Sentinel entry for the end-of-line insertion point.
	bufferToVisual = append(bufferToVisual, visCol)

	return layout.NewShapedLine(
		layout.ShapeMetric{Width: visCol, HasTabs: hasTabs, HasWide: hasWide},
		visualToBuffer,
		bufferToVisual,
	)
}
