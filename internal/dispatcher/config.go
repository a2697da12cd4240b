package dispatcher

// Default configuration values, mirroring the constants the Rust original
// hardcodes inline (25-line pages, 100-entry undo stack) and keystorm's own
// DefaultTabWidth/DefaultMaxUndoEntries pattern in internal/engine/options.go.
const (
	DefaultTabWidth       = 4
	DefaultParagraphSpace = 0.0
	DefaultUndoStackCap   = 100
	DefaultPageSize       = 25
)

// Config holds the closed set of recognized configuration options from
// spec section 6. Only TabWidthSpaces and ParagraphSpacing are consumed
// outside this package (TabWidthSpaces by the layout Shaper via
// Engine.ShapeLine, ParagraphSpacing by Engine.Geometry); the rest govern
// dispatcher behavior directly.
type Config struct {
	TabWidthSpaces            uint32
	ParagraphSpacing          float64
	UndoStackCap              int
	AutoIndentEnabled         bool
	SelectionReplacesOnTyping bool
	DesiredXVerticalMotion    bool
	WordBreakChars            string
}

// DefaultConfig returns the configuration new dispatchers start with.
func DefaultConfig() Config {
	return Config{
		TabWidthSpaces:            DefaultTabWidth,
		ParagraphSpacing:          DefaultParagraphSpace,
		UndoStackCap:              DefaultUndoStackCap,
		AutoIndentEnabled:         true,
		SelectionReplacesOnTyping: true,
		DesiredXVerticalMotion:    true,
		WordBreakChars:            "",
	}
}
