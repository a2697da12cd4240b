package textkit

import (
	"github.com/dshills/textkit/internal/adapter"
	"github.com/dshills/textkit/internal/dispatcher"
	"github.com/dshills/textkit/internal/engine/buffer"
	"github.com/dshills/textkit/internal/engine/cursor"
	"github.com/dshills/textkit/internal/engine/layout"
	"github.com/dshills/textkit/internal/engine/search"
)

// Re-exported types, following keystorm's internal/engine/engine.go facade
// convention of aliasing subsystem types at the package a host actually
// imports, rather than making callers reach into internal packages.
type (
	// Position is a (row, grapheme-cluster column) location in the buffer.
	Position = buffer.Position

	// PositionRange is a half-open [Start, End) span of Positions.
	PositionRange = buffer.PositionRange

	// Selection is an anchored caret range; Anchor == Head means no
	// selected text.
	Selection = cursor.Selection

	// EditorAction is a semantic, toolkit-free editor verb.
	EditorAction = dispatcher.EditorAction

	// CommandParams is the tagged-union parameter payload an EditorAction
	// may require.
	CommandParams = dispatcher.CommandParams

	// ErrorKind classifies a CommandError.
	ErrorKind = dispatcher.ErrorKind

	// CommandError is the structured error Execute returns.
	CommandError = dispatcher.CommandError

	// Config is the closed set of recognized engine configuration options.
	Config = dispatcher.Config

	// Match describes one located search occurrence.
	Match = search.Match

	// ShapedLine is a measured line's buffer-column/visual-column mapping.
	ShapedLine = layout.ShapedLine

	// ShapeMetric summarizes a shaped line's horizontal geometry: its
	// total visual width and whether it contains tabs or wide clusters.
	ShapeMetric = layout.ShapeMetric

	// LineMetric is one line's vertical paint band (top offset and
	// height) within a Geometry.
	LineMetric = layout.LineMetric

	// FontMetrics carries a host's measured text/gutter/glyph heights
	// for one line, combined by UnifiedLineHeight into a band height.
	FontMetrics = layout.FontMetrics

	// Geometry is a paint cycle's per-line vertical layout plus the
	// offsets and scroll position needed to map it into viewport space.
	Geometry = layout.Geometry

	// Shaper measures a line of text into visual columns.
	Shaper = layout.Shaper

	// RedrawSink is notified after a command changes what the view must
	// display.
	RedrawSink = adapter.RedrawSink

	// ClipboardAdapter is the external clipboard capability.
	ClipboardAdapter = adapter.ClipboardAdapter

	// FileIOAdapter is the external filesystem capability.
	FileIOAdapter = adapter.FileIOAdapter
)

// Re-exported EditorAction values.
const (
	MoveLeft          = dispatcher.MoveLeft
	MoveRight         = dispatcher.MoveRight
	MoveUp            = dispatcher.MoveUp
	MoveDown          = dispatcher.MoveDown
	MoveHome          = dispatcher.MoveHome
	MoveEnd           = dispatcher.MoveEnd
	MoveDocumentStart = dispatcher.MoveDocumentStart
	MoveDocumentEnd   = dispatcher.MoveDocumentEnd
	MovePageUp        = dispatcher.MovePageUp
	MovePageDown      = dispatcher.MovePageDown
	MoveWordLeft      = dispatcher.MoveWordLeft
	MoveWordRight     = dispatcher.MoveWordRight

	VisualLeft  = dispatcher.VisualLeft
	VisualRight = dispatcher.VisualRight
	VisualUp    = dispatcher.VisualUp
	VisualDown  = dispatcher.VisualDown

	SelectLeft      = dispatcher.SelectLeft
	SelectRight     = dispatcher.SelectRight
	SelectUp        = dispatcher.SelectUp
	SelectDown      = dispatcher.SelectDown
	SelectWordLeft  = dispatcher.SelectWordLeft
	SelectWordRight = dispatcher.SelectWordRight
	SelectAll       = dispatcher.SelectAll
	ClearSelection  = dispatcher.ClearSelection

	InsertText    = dispatcher.InsertText
	InsertNewline = dispatcher.InsertNewline
	Backspace     = dispatcher.Backspace
	Delete        = dispatcher.Delete
	Indent        = dispatcher.Indent
	Unindent      = dispatcher.Unindent
	DuplicateLine = dispatcher.DuplicateLine
	DeleteLine    = dispatcher.DeleteLine

	Copy  = dispatcher.Copy
	Cut   = dispatcher.Cut
	Paste = dispatcher.Paste

	Undo = dispatcher.Undo
	Redo = dispatcher.Redo

	OpenFile = dispatcher.OpenFile
	SaveFile = dispatcher.SaveFile
	SaveAs   = dispatcher.SaveAs
	NewFile  = dispatcher.NewFile

	FindNext   = dispatcher.FindNext
	FindPrev   = dispatcher.FindPrev
	Replace    = dispatcher.Replace
	ReplaceAll = dispatcher.ReplaceAll

	AddCursor = dispatcher.AddCursor
)

// Re-exported CommandError kinds.
const (
	InvalidState      = dispatcher.InvalidState
	InvalidParameters = dispatcher.InvalidParameters
	BufferError       = dispatcher.BufferError
	ClipboardError    = dispatcher.ClipboardError
	FileError         = dispatcher.FileError
)

// Re-exported CommandParams constructors.
var (
	NoParams       = dispatcher.NoParams
	PageLinesParams = dispatcher.PageLinesParams
	TextParams     = dispatcher.TextParams
	PositionParams = dispatcher.PositionParams
	FilePathParams = dispatcher.FilePathParams
	QueryParams    = dispatcher.QueryParams
	ReplaceParams  = dispatcher.ReplaceParams
)

// DefaultConfig returns the configuration a new Engine starts with.
func DefaultConfig() Config {
	return dispatcher.DefaultConfig()
}

// NewGeometry lays out lineCount lines of uniform height, one FontMetrics
// applying to every line.
func NewGeometry(lineCount uint32, metrics FontMetrics, paragraphSpacing, textLeftOffset, topOffset, scrollOffset, averageCharWidth float64) Geometry {
	return layout.NewGeometry(lineCount, metrics, paragraphSpacing, textLeftOffset, topOffset, scrollOffset, averageCharWidth)
}
