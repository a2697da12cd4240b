package textkit

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/textkit/internal/adapter"
	"github.com/dshills/textkit/internal/dispatcher"
	"github.com/dshills/textkit/internal/engine/buffer"
	"github.com/dshills/textkit/internal/engine/layout"
	"github.com/dshills/textkit/internal/engine/search"
)

// QueuedCommand is an (EditorAction, CommandParams) pair submitted from a
// goroutine other than the engine's owning one. It is applied via Execute
// when the owning goroutine calls Drain.
type QueuedCommand struct {
	Action EditorAction
	Params CommandParams
}

// Engine is the public facade: it wires the Text Model, Cursor & Selection,
// Undo/Redo, Search, and Layout Contract subsystems behind the Command
// Dispatcher and the four External Adapter capabilities.
type Engine struct {
	buf        *buffer.Buffer
	dispatcher *dispatcher.Dispatcher

	shaperMu sync.RWMutex
	shaper   Shaper

	queue chan QueuedCommand

	diagMu sync.RWMutex
	diags  []Diagnostic

	// Set by Options before the buffer and dispatcher are constructed.
	initContent       string
	pendingConfig     Config
	pendingLogger     zerolog.Logger
	pendingRedrawSink RedrawSink
	pendingClipboard  ClipboardAdapter
	pendingFileIO     FileIOAdapter
}

// New creates an Engine with a single empty line, applying any Options.
func New(opts ...Option) *Engine {
	return newEngine("", false, opts...)
}

// NewFromReader creates an Engine whose initial content is read in full
// from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newEngine(string(data), true, opts...), nil
}

// NewFromString creates an Engine with the given initial content.
func NewFromString(content string, opts ...Option) *Engine {
	return newEngine(content, true, opts...)
}

// newEngine applies Options to a not-yet-backed Engine first (so
// WithContent and config options can take effect), then constructs the
// buffer and dispatcher from the result. explicitContent, when hasExplicit
// is true, overrides whatever WithContent set (NewFromString/NewFromReader
// take precedence over an Option).
func newEngine(explicitContent string, hasExplicit bool, opts ...Option) *Engine {
	e := &Engine{
		pendingConfig: dispatcher.DefaultConfig(),
		pendingLogger: zerolog.Nop(),
		shaper:        adapter.NewMonospaceShaper(),
		queue:         make(chan QueuedCommand, 64),
	}
	for _, opt := range opts {
		opt(e)
	}

	content := e.initContent
	if hasExplicit {
		content = explicitContent
	}

	e.buf = buffer.NewFromString(content)
	e.dispatcher = dispatcher.New(e.buf)
	e.dispatcher.SetConfig(e.pendingConfig)
	e.dispatcher.SetLogger(e.pendingLogger)
	if e.pendingRedrawSink != nil {
		e.dispatcher.SetRedrawSink(e.pendingRedrawSink)
	}
	if e.pendingClipboard != nil {
		e.dispatcher.SetClipboard(e.pendingClipboard)
	}
	if e.pendingFileIO != nil {
		e.dispatcher.SetFileIO(e.pendingFileIO)
	}
	e.dispatcher.SetShaper(e.shaper)
	return e
}

// Execute is the engine's single inbound API: it validates, applies
// selection policy, mutates state, clamps, and signals redraw for one
// EditorAction. Only the owning goroutine may call this.
func (e *Engine) Execute(action EditorAction, params CommandParams) error {
	return e.dispatcher.Execute(action, params)
}

// SubmitTextInput is a convenience for InsertText of runs that may contain
// embedded newlines (e.g. a pasted or IME-composed multi-line string).
func (e *Engine) SubmitTextInput(text string) error {
	return e.Execute(InsertText, TextParams(text))
}

// ChannelSender returns a handle other goroutines use to enqueue commands
// for later application on the owning goroutine via Drain.
func (e *Engine) ChannelSender() chan<- QueuedCommand {
	return e.queue
}

// Drain applies every command currently queued via ChannelSender, in FIFO
// order, stopping at the first error. Call this from the owning goroutine
// at points between local Execute calls (e.g. once per event-loop tick).
func (e *Engine) Drain() error {
	for {
		select {
		case cmd := <-e.queue:
			if err := e.Execute(cmd.Action, cmd.Params); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// SetRedrawSink wires the adapter notified after a command changes state
// the view must reflect.
func (e *Engine) SetRedrawSink(sink RedrawSink) {
	e.dispatcher.SetRedrawSink(sink)
}

// SetClipboard wires the adapter used by Copy/Cut/Paste.
func (e *Engine) SetClipboard(c ClipboardAdapter) {
	e.dispatcher.SetClipboard(c)
}

// SetFileIO wires the adapter used by OpenFile/SaveFile/SaveAs.
func (e *Engine) SetFileIO(f FileIOAdapter) {
	e.dispatcher.SetFileIO(f)
}

// SetShaper wires the Layout Contract capability used by ShapeLine.
// SetShaper also wires the same Shaper into the Command Dispatcher, which
// consults it for bidi-aware visual motion (VisualLeft/Right/Up/Down).
func (e *Engine) SetShaper(s Shaper) {
	e.shaperMu.Lock()
	e.shaper = s
	e.shaperMu.Unlock()
	e.dispatcher.SetShaper(s)
}

// SetConfig replaces the recognized configuration options.
func (e *Engine) SetConfig(cfg Config) {
	e.dispatcher.SetConfig(cfg)
}

// SetLogger wires a zerolog.Logger for per-command debug events. Silent by
// default.
func (e *Engine) SetLogger(logger zerolog.Logger) {
	e.dispatcher.SetLogger(logger)
}

// ShapeLine measures line into visual columns using the currently wired
// Shaper and the configured tab width.
func (e *Engine) ShapeLine(line string) ShapedLine {
	e.shaperMu.RLock()
	s := e.shaper
	e.shaperMu.RUnlock()
	return s.ShapeLine(line, e.dispatcher.Config().TabWidthSpaces)
}

// Geometry lays out one vertical band per buffer line using metrics,
// textLeftOffset, topOffset, scrollOffset, and averageCharWidth, with the
// configured ParagraphSpacing added into every band's height. Hosts call
// this once per paint cycle and reuse the result for both painting and
// HitTestRow/HitTestColumn hit-testing, per the Layout Contract's
// requirement that the two never diverge.
func (e *Engine) Geometry(metrics FontMetrics, textLeftOffset, topOffset, scrollOffset, averageCharWidth float64) Geometry {
	cfg := e.dispatcher.Config()
	return layout.NewGeometry(e.buf.TotalLines(), metrics, cfg.ParagraphSpacing, textLeftOffset, topOffset, scrollOffset, averageCharWidth)
}

// --- Query surface: read-only introspection, safe to call at any time from
// the owning goroutine. ---

// LineCount returns the number of logical lines.
func (e *Engine) LineCount() uint32 {
	return e.buf.TotalLines()
}

// LineText returns the text of row, without any line terminator.
func (e *Engine) LineText(row uint32) string {
	return e.buf.LineText(row)
}

// Text returns the full buffer content with '\n' row separators.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// Cursor returns the primary caret's current position.
func (e *Engine) Cursor() Position {
	return e.dispatcher.Cursor().Pos()
}

// Selection returns the current selection bounds. A cursor with no
// selected text is a zero-extent Selection.
func (e *Engine) Selection() Selection {
	return e.dispatcher.Selection()
}

// HasSelection reports whether a non-empty selection is active.
func (e *Engine) HasSelection() bool {
	return e.dispatcher.HasSelection()
}

// CanUndo reports whether Execute(Undo, ...) would succeed.
func (e *Engine) CanUndo() bool {
	return e.dispatcher.CanUndo()
}

// CanRedo reports whether Execute(Redo, ...) would succeed.
func (e *Engine) CanRedo() bool {
	return e.dispatcher.CanRedo()
}

// FindAll returns every match of pattern in the buffer, in document order.
// An empty pattern returns no matches.
func (e *Engine) FindAll(pattern string, caseSensitive bool) ([]Match, error) {
	if pattern == "" {
		return nil, nil
	}
	q, err := search.Compile(pattern, caseSensitive, false)
	if err != nil {
		return nil, err
	}
	return search.FindAll(e.buf, q), nil
}

// MatchingBracket returns the position of the bracket matching the one
// immediately before pos, if any.
func (e *Engine) MatchingBracket(pos Position) (Position, bool) {
	return search.MatchingBracket(e.buf, pos)
}

// ExtraCursors returns the positions added via AddCursor, for a host that
// renders secondary carets.
func (e *Engine) ExtraCursors() []Position {
	return e.dispatcher.ExtraCursors()
}
