package textkit

import "github.com/rs/zerolog"

// Option configures an Engine during construction, mirroring keystorm's
// internal/engine/options.go functional-options pattern.
type Option func(*Engine)

// WithContent sets the initial content of the engine. Ignored by
// NewFromString and NewFromReader, which take content as an explicit
// argument.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithTabWidth sets the tab stop width in column units. Values below 1 are
// ignored.
func WithTabWidth(width uint32) Option {
	return func(e *Engine) {
		if width >= 1 {
			e.pendingConfig.TabWidthSpaces = width
		}
	}
}

// WithParagraphSpacing sets the additive pixel spacing per line band.
func WithParagraphSpacing(spacing float64) Option {
	return func(e *Engine) {
		if spacing >= 0 {
			e.pendingConfig.ParagraphSpacing = spacing
		}
	}
}

// WithUndoStackCap sets the maximum number of undo snapshots retained.
// Values below 1 are ignored.
func WithUndoStackCap(cap int) Option {
	return func(e *Engine) {
		if cap >= 1 {
			e.pendingConfig.UndoStackCap = cap
		}
	}
}

// WithAutoIndent toggles whether Enter copies the current line's leading
// whitespace into the new line.
func WithAutoIndent(enabled bool) Option {
	return func(e *Engine) {
		e.pendingConfig.AutoIndentEnabled = enabled
	}
}

// WithSelectionReplacesOnTyping toggles the "typing replaces selection"
// rule.
func WithSelectionReplacesOnTyping(enabled bool) Option {
	return func(e *Engine) {
		e.pendingConfig.SelectionReplacesOnTyping = enabled
	}
}

// WithDesiredXVerticalMotion toggles the visual-column memory on Up/Down.
func WithDesiredXVerticalMotion(enabled bool) Option {
	return func(e *Engine) {
		e.pendingConfig.DesiredXVerticalMotion = enabled
	}
}

// WithWordBreakChars sets the explicit character set defining word
// boundaries for word motion and selection. An empty set (the default)
// falls back to Unicode whitespace/punctuation/symbols, treating '_' as a
// word character.
func WithWordBreakChars(chars string) Option {
	return func(e *Engine) {
		e.pendingConfig.WordBreakChars = chars
	}
}

// WithLogger wires a zerolog.Logger for per-command debug events. The zero
// value keeps the engine silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.pendingLogger = logger
	}
}

// WithShaper wires the Layout Contract capability used by ShapeLine in
// place of the default monospace shaper.
func WithShaper(shaper Shaper) Option {
	return func(e *Engine) {
		e.shaper = shaper
	}
}

// WithRedrawSink wires the adapter notified after a command changes state
// the view must reflect.
func WithRedrawSink(sink RedrawSink) Option {
	return func(e *Engine) {
		e.pendingRedrawSink = sink
	}
}

// WithClipboard wires the adapter used by Copy/Cut/Paste.
func WithClipboard(c ClipboardAdapter) Option {
	return func(e *Engine) {
		e.pendingClipboard = c
	}
}

// WithFileIO wires the adapter used by OpenFile/SaveFile/SaveAs.
func WithFileIO(f FileIOAdapter) Option {
	return func(e *Engine) {
		e.pendingFileIO = f
	}
}
