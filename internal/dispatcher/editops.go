package dispatcher

import (
	"errors"
	"strings"

	"github.com/dshills/textkit/internal/engine/buffer"
	"github.com/dshills/textkit/internal/engine/cursor"
	"github.com/dshills/textkit/internal/engine/search"
)

// performLocked executes action, assuming validation and selection-clearing
// have already happened. The caller holds d.mu.
func (d *Dispatcher) performLocked(action EditorAction, params CommandParams) *CommandError {
	switch action {
	// --- Navigation ---
	case MoveLeft:
		d.setCursor(cursor.MoveLeft(d.buf, d.cur))
	case MoveRight:
		d.setCursor(cursor.MoveRight(d.buf, d.cur))
	case MoveUp:
		d.setCursor(d.verticalMove(cursor.MoveUp))
	case MoveDown:
		d.setCursor(d.verticalMove(cursor.MoveDown))
	case MoveHome:
		d.setCursor(cursor.MoveHome(d.buf, d.cur))
	case MoveEnd:
		d.setCursor(cursor.MoveEnd(d.buf, d.cur))
	case MoveDocumentStart:
		d.setCursor(cursor.MoveDocumentStart(d.buf, d.cur))
	case MoveDocumentEnd:
		d.setCursor(cursor.MoveDocumentEnd(d.buf, d.cur))
	case MovePageUp:
		d.setCursor(cursor.MovePageUp(d.buf, d.cur, d.pageSize(params)))
	case MovePageDown:
		d.setCursor(cursor.MovePageDown(d.buf, d.cur, d.pageSize(params)))
	case MoveWordLeft:
		d.setCursor(cursor.MoveWordLeft(d.buf, d.cur, d.config.WordBreakChars))
	case MoveWordRight:
		d.setCursor(cursor.MoveWordRight(d.buf, d.cur, d.config.WordBreakChars))
	case VisualLeft:
		d.setCursor(cursor.VisualLeft(d.buf, d.cur, d.shapeRowLocked))
	case VisualRight:
		d.setCursor(cursor.VisualRight(d.buf, d.cur, d.shapeRowLocked))
	case VisualUp:
		d.setCursor(cursor.VisualUp(d.buf, d.cur, d.shapeRowLocked))
	case VisualDown:
		d.setCursor(cursor.VisualDown(d.buf, d.cur, d.shapeRowLocked))

	// --- Selection ---
	case SelectLeft:
		d.setSelection(cursor.SelectTo(d.selectionLocked(), cursor.MoveLeft(d.buf, d.cur).Pos()))
	case SelectRight:
		d.setSelection(cursor.SelectTo(d.selectionLocked(), cursor.MoveRight(d.buf, d.cur).Pos()))
	case SelectUp:
		d.setSelection(cursor.SelectTo(d.selectionLocked(), d.verticalMove(cursor.MoveUp).Pos()))
	case SelectDown:
		d.setSelection(cursor.SelectTo(d.selectionLocked(), d.verticalMove(cursor.MoveDown).Pos()))
	case SelectWordLeft:
		d.setSelection(cursor.SelectWordLeft(d.buf, d.selectionLocked(), d.config.WordBreakChars))
	case SelectWordRight:
		d.setSelection(cursor.SelectWordRight(d.buf, d.selectionLocked(), d.config.WordBreakChars))
	case SelectAll:
		d.setSelection(cursor.SelectAll(d.buf))
	case ClearSelection:
		d.clearSelection()

	// --- Editing ---
	case InsertText:
		return d.doInsertText(params.Text)
	case InsertNewline:
		return d.doInsertNewline()
	case Backspace:
		return d.doBackspace()
	case Delete:
		return d.doDelete()
	case Indent:
		return d.doIndent()
	case Unindent:
		return d.doUnindent()
	case DuplicateLine:
		return d.doDuplicateLine()
	case DeleteLine:
		return d.doDeleteLine()

	// --- Clipboard ---
	case Copy:
		return d.doCopy()
	case Cut:
		return d.doCut()
	case Paste:
		return d.doPaste()

	// --- History ---
	case Undo:
		return d.doUndo()
	case Redo:
		return d.doRedo()

	// --- File ---
	case OpenFile:
		return d.doOpenFile(params.FilePath)
	case SaveFile:
		return d.doSaveFile(params.FilePath)
	case SaveAs:
		return d.doSaveFile(params.FilePath)
	case NewFile:
		d.buf.SetText("")
		d.setCursor(cursor.NewCursor(buffer.Position{}))
		d.clearSelection()
		d.hist.Clear()

	// --- Search ---
	case FindNext:
		return d.doFind(params.Query, true)
	case FindPrev:
		return d.doFind(params.Query, false)
	case Replace:
		return d.doReplace(params.Query, params.Replace)
	case ReplaceAll:
		return d.doReplaceAll(params.Query, params.Replace)

	// --- Multi-cursor ---
	case AddCursor:
		return d.doAddCursor(params.Row, params.Col)

	default:
		return newError(InvalidState, "action not implemented: "+action.String())
	}
	return nil
}

// verticalMove applies a vertical motion function honoring the
// desired-x-vertical-motion config toggle: when disabled, the sticky column
// hint is never set, so Up/Down always snaps to the clamped column instead
// of remembering a wider one from an earlier longer line.
func (d *Dispatcher) verticalMove(move func(*buffer.Buffer, cursor.Cursor) cursor.Cursor) cursor.Cursor {
	if d.config.DesiredXVerticalMotion {
		return move(d.buf, d.cur)
	}
	return move(d.buf, d.cur.WithHint(-1)).WithHint(-1)
}

func (d *Dispatcher) doInsertText(text string) *CommandError {
	pos := d.replaceSelectionIfAny()
	end, err := d.buf.InsertText(pos, text)
	if err != nil {
		return wrapError(BufferError, "insert failed", err)
	}
	d.setCursor(cursor.NewCursor(end))
	return nil
}

func (d *Dispatcher) doInsertNewline() *CommandError {
	pos := d.replaceSelectionIfAny()
	indent := ""
	if d.config.AutoIndentEnabled {
		indent = leadingWhitespace(d.buf.LineText(pos.Row))
	}
	end, err := d.buf.InsertText(pos, "\n"+indent)
	if err != nil {
		return wrapError(BufferError, "insert newline failed", err)
	}
	d.setCursor(cursor.NewCursor(end))
	return nil
}

// leadingWhitespace returns the run of leading spaces/tabs on line, copied
// into a freshly split line when auto-indent is enabled (rusteditorkit's
// indent.rs behavior).
func leadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

func (d *Dispatcher) doBackspace() *CommandError {
	if d.HasSelectionLocked() {
		pos, err := cursor.DeleteSelection(d.buf, d.selectionLocked())
		if err != nil {
			return wrapError(BufferError, "delete selection failed", err)
		}
		d.setCursor(cursor.NewCursor(pos))
		return nil
	}
	pos := d.cur.Pos()
	if pos.Row == 0 && pos.Col == 0 {
		return nil // no-op per spec §8 boundary behavior
	}
	prev := cursor.MoveLeft(d.buf, d.cur).Pos()
	if err := d.buf.DeleteRange(prev, pos); err != nil {
		return wrapError(BufferError, "backspace failed", err)
	}
	d.setCursor(cursor.NewCursor(prev))
	return nil
}

func (d *Dispatcher) doDelete() *CommandError {
	if d.HasSelectionLocked() {
		pos, err := cursor.DeleteSelection(d.buf, d.selectionLocked())
		if err != nil {
			return wrapError(BufferError, "delete selection failed", err)
		}
		d.setCursor(cursor.NewCursor(pos))
		return nil
	}
	pos := d.cur.Pos()
	next := cursor.MoveRight(d.buf, d.cur).Pos()
	if next == pos {
		return nil // no-op: end of last line
	}
	if err := d.buf.DeleteRange(pos, next); err != nil {
		return wrapError(BufferError, "delete failed", err)
	}
	d.setCursor(cursor.NewCursor(pos))
	return nil
}

// HasSelectionLocked is HasSelection without acquiring the mutex again,
// for use by op implementations that already hold it.
func (d *Dispatcher) HasSelectionLocked() bool {
	return d.anchor != nil
}

func (d *Dispatcher) replaceSelectionIfAny() buffer.Position {
	if d.config.SelectionReplacesOnTyping && d.HasSelectionLocked() {
		pos, err := cursor.DeleteSelection(d.buf, d.selectionLocked())
		if err == nil {
			d.setCursor(cursor.NewCursor(pos))
			return pos
		}
	}
	d.clearSelection()
	return d.cur.Pos()
}

func (d *Dispatcher) doIndent() *CommandError {
	unit := strings.Repeat(" ", int(d.config.TabWidthSpaces))
	start, end := d.selectedRowRange()
	for row := start; row <= end; row++ {
		if err := cursor.IndentLine(d.buf, row, unit); err != nil {
			return wrapError(BufferError, "indent failed", err)
		}
	}
	return nil
}

func (d *Dispatcher) doUnindent() *CommandError {
	unit := strings.Repeat(" ", int(d.config.TabWidthSpaces))
	start, end := d.selectedRowRange()
	for row := start; row <= end; row++ {
		if _, err := cursor.UnindentLine(d.buf, row, unit); err != nil {
			return wrapError(BufferError, "unindent failed", err)
		}
	}
	return nil
}

func (d *Dispatcher) selectedRowRange() (uint32, uint32) {
	sel := d.selectionLocked()
	return sel.Start().Row, sel.End().Row
}

func (d *Dispatcher) doDuplicateLine() *CommandError {
	row := d.cur.Pos().Row
	line := d.buf.LineText(row)
	lineEnd := buffer.Position{Row: row, Col: d.buf.Columns(row)}
	if _, err := d.buf.InsertText(lineEnd, "\n"+line); err != nil {
		return wrapError(BufferError, "duplicate line failed", err)
	}
	d.setCursor(cursor.NewCursor(buffer.Position{Row: row + 1, Col: d.cur.Pos().Col}))
	return nil
}

func (d *Dispatcher) doDeleteLine() *CommandError {
	row := d.cur.Pos().Row
	if err := d.buf.DeleteLine(row); err != nil {
		return wrapError(BufferError, "delete line failed", err)
	}
	d.setCursor(cursor.NewCursor(buffer.Position{Row: row, Col: 0}))
	return nil
}

func (d *Dispatcher) doCopy() *CommandError {
	sel := d.selectionLocked()
	if sel.IsEmpty() {
		return nil
	}
	text := d.buf.GetText(sel.Start(), sel.End())
	if err := d.clipboard.SetText(text); err != nil {
		return wrapError(ClipboardError, "copy failed", err)
	}
	return nil
}

func (d *Dispatcher) doCut() *CommandError {
	sel := d.selectionLocked()
	if sel.IsEmpty() {
		return nil
	}
	text := d.buf.GetText(sel.Start(), sel.End())
	if err := d.clipboard.SetText(text); err != nil {
		return wrapError(ClipboardError, "cut failed", err)
	}
	pos, err := cursor.DeleteSelection(d.buf, sel)
	if err != nil {
		return wrapError(BufferError, "cut failed", err)
	}
	d.setCursor(cursor.NewCursor(pos))
	return nil
}

func (d *Dispatcher) doPaste() *CommandError {
	text, err := d.clipboard.Text()
	if err != nil {
		return wrapError(ClipboardError, "paste failed", err)
	}
	if text == "" {
		return nil // no-op, no undo entry, per spec §8 boundary behavior
	}
	return d.doInsertText(text)
}

func (d *Dispatcher) doUndo() *CommandError {
	sel, err := d.hist.Undo(d.buf, d.snapshot())
	if err != nil {
		return wrapError(InvalidState, "nothing to undo", err)
	}
	d.setSelection(sel)
	return nil
}

func (d *Dispatcher) doRedo() *CommandError {
	sel, err := d.hist.Redo(d.buf, d.snapshot())
	if err != nil {
		return wrapError(InvalidState, "nothing to redo", err)
	}
	d.setSelection(sel)
	return nil
}

func (d *Dispatcher) doOpenFile(path string) *CommandError {
	content, err := d.fileio.ReadFile(path)
	if err != nil {
		// OpenFile leaves the buffer unchanged on failure (spec §7).
		return wrapError(FileError, "open failed", err)
	}
	d.buf.SetText(content)
	d.setCursor(cursor.NewCursor(buffer.Position{}))
	d.clearSelection()
	d.hist.Clear()
	return nil
}

func (d *Dispatcher) doSaveFile(path string) *CommandError {
	if err := d.fileio.WriteFile(path, d.buf.Text()); err != nil {
		return wrapError(FileError, "save failed", err)
	}
	return nil
}

func (d *Dispatcher) doFind(query string, forward bool) *CommandError {
	if query == "" {
		return nil // empty query returns no match, no state change (spec §8)
	}
	q, err := search.Compile(query, true, false)
	if err != nil {
		return wrapError(InvalidParameters, "invalid search pattern", err)
	}
	var m search.Match
	if forward {
		m, err = search.FindNext(d.buf, q, d.cur.Pos())
	} else {
		m, err = search.FindPrevious(d.buf, q, d.cur.Pos())
	}
	if err != nil {
		if errors.Is(err, search.ErrNoMatch) {
			return nil
		}
		return wrapError(BufferError, "search failed", err)
	}
	d.setSelection(cursor.NewSelection(m.End, m.Start))
	return nil
}

func (d *Dispatcher) doReplace(query, replacement string) *CommandError {
	if query == "" {
		return nil
	}
	q, err := search.Compile(query, true, false)
	if err != nil {
		return wrapError(InvalidParameters, "invalid search pattern", err)
	}
	pos, err := search.ReplaceNext(d.buf, q, d.cur.Pos(), replacement)
	if err != nil {
		if errors.Is(err, search.ErrNoMatch) {
			return nil
		}
		return wrapError(BufferError, "replace failed", err)
	}
	d.setCursor(cursor.NewCursor(pos))
	return nil
}

func (d *Dispatcher) doReplaceAll(query, replacement string) *CommandError {
	if query == "" {
		return nil // empty query to replace_all replaces nothing (spec §8)
	}
	q, err := search.Compile(query, true, false)
	if err != nil {
		return wrapError(InvalidParameters, "invalid search pattern", err)
	}
	search.ReplaceAll(d.buf, q, replacement)
	return nil
}

func (d *Dispatcher) doAddCursor(row, col uint32) *CommandError {
	if row >= d.buf.TotalLines() || col > d.buf.Columns(row) {
		return newError(InvalidParameters, "cursor position out of bounds")
	}
	d.extraCursors = append(d.extraCursors, buffer.Position{Row: row, Col: col})
	return nil
}

// ExtraCursors returns the positions added via AddCursor, for a host that
// wants to render secondary carets. THE CORE does not route editing
// operations through them; multi-cursor editing is explicitly optional
// per spec §4.6.
func (d *Dispatcher) ExtraCursors() []cursor.Position {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]cursor.Position, len(d.extraCursors))
	copy(out, d.extraCursors)
	return out
}
