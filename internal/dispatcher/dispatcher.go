package dispatcher

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/textkit/internal/adapter"
	"github.com/dshills/textkit/internal/engine/buffer"
	"github.com/dshills/textkit/internal/engine/cursor"
	"github.com/dshills/textkit/internal/engine/history"
	"github.com/dshills/textkit/internal/engine/layout"
)

const defaultMaxCommandHistory = 200

// Dispatcher is the single entry point for semantic editor actions. It owns
// the buffer, cursor/selection, and undo/redo state and is the only code
// path that mutates them; everything reaches the buffer through Execute.
//
// Dispatcher's exported methods serialize on an internal mutex, so each
// call is atomic with respect to the others. The facade additionally routes
// cross-goroutine submission through its queued-command channel, which
// drains into Execute on the owning goroutine.
type Dispatcher struct {
	mu sync.Mutex

	buf    *buffer.Buffer
	cur    cursor.Cursor
	anchor *cursor.Position // nil when there is no active selection

	hist   *history.History
	config Config

	redraw    adapter.RedrawSink
	clipboard adapter.ClipboardAdapter
	fileio    adapter.FileIOAdapter
	shaper    layout.Shaper // consulted only by VisualLeft/Right/Up/Down

	extraCursors []cursor.Position

	cmdHistory    []commandRecord
	maxCmdHistory int

	logger zerolog.Logger
}

type commandRecord struct {
	Action EditorAction
	Params CommandParams
	Err    error
}

// New creates a Dispatcher over buf, starting with no selection and default
// configuration. Adapters default to no-ops until wired with the Set*
// methods; a facade typically wires its real adapters immediately after
// construction.
func New(buf *buffer.Buffer) *Dispatcher {
	return &Dispatcher{
		buf:           buf,
		cur:           cursor.NewCursor(buffer.Position{}),
		hist:          history.New(DefaultUndoStackCap),
		config:        DefaultConfig(),
		redraw:        noopRedrawSink{},
		clipboard:     noopClipboard{},
		fileio:        noopFileIO{},
		maxCmdHistory: defaultMaxCommandHistory,
		logger:        zerolog.Nop(),
	}
}

// SetRedrawSink wires the adapter notified after a command changes state the
// view must reflect.
func (d *Dispatcher) SetRedrawSink(sink adapter.RedrawSink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if sink == nil {
		sink = noopRedrawSink{}
	}
	d.redraw = sink
}

// SetClipboard wires the adapter used by Copy/Cut/Paste.
func (d *Dispatcher) SetClipboard(c adapter.ClipboardAdapter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c == nil {
		c = noopClipboard{}
	}
	d.clipboard = c
}

// SetFileIO wires the adapter used by OpenFile/SaveFile/SaveAs.
func (d *Dispatcher) SetFileIO(f adapter.FileIOAdapter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if f == nil {
		f = noopFileIO{}
	}
	d.fileio = f
}

// SetShaper wires the Shaper consulted by VisualLeft/VisualRight/VisualUp/
// VisualDown. Until wired, visual motion degrades to its logical-order
// equivalent (see shapeRowLocked).
func (d *Dispatcher) SetShaper(s layout.Shaper) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shaper = s
}

// shapeRowLocked shapes row for the visual-motion ops. With no Shaper wired,
// it synthesizes an identity shape (one visual column per buffer column),
// which makes visual motion behave exactly like logical motion.
func (d *Dispatcher) shapeRowLocked(row uint32) layout.ShapedLine {
	if d.shaper != nil {
		return d.shaper.ShapeLine(d.buf.LineText(row), d.config.TabWidthSpaces)
	}
	n := d.buf.Columns(row)
	cols := make([]uint32, n+1)
	for i := range cols {
		cols[i] = uint32(i)
	}
	return layout.NewShapedLine(layout.ShapeMetric{Width: n}, cols, cols)
}

// SetConfig replaces the recognized configuration options. UndoStackCap
// takes effect immediately on the history stack.
func (d *Dispatcher) SetConfig(cfg Config) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.config = cfg
	if cfg.UndoStackCap > 0 {
		d.hist.SetMaxEntries(cfg.UndoStackCap)
	}
}

// Config returns the current configuration.
func (d *Dispatcher) Config() Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.config
}

// SetLogger wires a zerolog.Logger for per-command debug events. The zero
// value (zerolog.Nop()) keeps the dispatcher silent, matching the Rust
// original's debug_mode boolean collapsed into "is the logger enabled".
func (d *Dispatcher) SetLogger(logger zerolog.Logger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger = logger
}

// Buffer returns the underlying text buffer for read-only introspection
// (the facade's query surface reads through this).
func (d *Dispatcher) Buffer() *buffer.Buffer {
	return d.buf
}

// Cursor returns the current primary cursor.
func (d *Dispatcher) Cursor() cursor.Cursor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cur
}

// Selection returns the current selection. A cursor with no selected text
// is represented as a zero-extent Selection (Anchor == Head).
func (d *Dispatcher) Selection() cursor.Selection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selectionLocked()
}

// HasSelection reports whether a non-empty selection is active.
func (d *Dispatcher) HasSelection() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.anchor != nil
}

// CanUndo reports whether Undo would succeed.
func (d *Dispatcher) CanUndo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hist.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (d *Dispatcher) CanRedo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hist.CanRedo()
}

// CommandHistory returns a copy of the bounded debug command log.
func (d *Dispatcher) CommandHistory() []commandRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]commandRecord, len(d.cmdHistory))
	copy(out, d.cmdHistory)
	return out
}

func (d *Dispatcher) selectionLocked() cursor.Selection {
	if d.anchor == nil {
		return cursor.NewCursorSelection(d.cur.Pos())
	}
	return cursor.NewSelection(*d.anchor, d.cur.Pos())
}

func (d *Dispatcher) setCursor(c cursor.Cursor) {
	d.cur = c
}

func (d *Dispatcher) setSelection(sel cursor.Selection) {
	if sel.IsEmpty() {
		d.cur = d.cur.MoveTo(sel.Head)
		d.anchor = nil
		return
	}
	anchor := sel.Anchor
	d.anchor = &anchor
	d.cur = d.cur.MoveTo(sel.Head)
}

func (d *Dispatcher) clearSelection() {
	d.anchor = nil
}

func (d *Dispatcher) snapshot() history.Snapshot {
	return history.Snapshot{Text: d.buf.Text(), Selection: d.selectionLocked()}
}

func (d *Dispatcher) clampLocked() {
	d.cur = d.cur.MoveToKeepHint(d.buf.Clamp(d.cur.Pos()), d.cur.DesiredCol())
	if d.anchor != nil {
		clamped := d.buf.Clamp(*d.anchor)
		d.anchor = &clamped
	}
}

// noop adapter implementations so a freshly constructed Dispatcher is
// always safe to Execute against before a host wires real adapters in.

type noopRedrawSink struct{}

func (noopRedrawSink) NotifyLines(rows []uint32) {}
func (noopRedrawSink) NotifyFull()               {}

type noopClipboard struct{}

func (noopClipboard) SetText(string) error    { return nil }
func (noopClipboard) Text() (string, error)   { return "", nil }

type noopFileIO struct{}

func (noopFileIO) ReadFile(string) (string, error) { return "", nil }
func (noopFileIO) WriteFile(string, string) error  { return nil }
func (noopFileIO) Exists(string) bool              { return false }
