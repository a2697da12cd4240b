package dispatcher

// Execute is the single entry point for semantic editor actions, following
// the Rust original's eight-step execution discipline (corelogic/dispatcher.rs):
//
//  1. Validate buffer invariants.
//  2. Validate CommandParams shape for the action.
//  3. Apply the selection-clearing policy before mutation.
//  4. Push an undo snapshot if the action is undo-eligible.
//  5. Perform the operation.
//  6. Clamp cursor/selection into bounds.
//  7. Signal the redraw sink exactly once, if the action requests it.
//  8. Append (action, params) to the bounded command history.
func (d *Dispatcher) Execute(action EditorAction, params CommandParams) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.executeLocked(action, params)
	d.recordLocked(action, params, err)
	d.logLocked(action, params, err)
	return err
}

func (d *Dispatcher) executeLocked(action EditorAction, params CommandParams) error {
	if err := d.validateBufferLocked(); err != nil {
		return err
	}
	if err := validateParams(action, params); err != nil {
		return err
	}

	if shouldClearSelectionForAction(action) {
		d.clearSelection()
	}

	if isUndoEligible(action) {
		before := d.snapshot()
		if err := d.performLocked(action, params); err != nil {
			return err
		}
		// Paste of empty text and other genuine no-ops must not leave a
		// dead entry on the undo stack (spec §8 boundary behavior).
		if before.Text != d.buf.Text() {
			d.hist.Push(before)
		}
	} else {
		if err := d.performLocked(action, params); err != nil {
			return err
		}
	}

	d.clampLocked()

	if shouldRedrawAfter(action) {
		d.redraw.NotifyFull()
	}

	return nil
}

func (d *Dispatcher) validateBufferLocked() *CommandError {
	if d.buf.TotalLines() == 0 {
		return newError(InvalidState, "buffer has no lines")
	}
	row := d.cur.Pos().Row
	if row >= d.buf.TotalLines() {
		return newError(InvalidState, "cursor row out of bounds")
	}
	if d.cur.Pos().Col > d.buf.Columns(row) {
		return newError(InvalidState, "cursor column out of bounds")
	}
	return nil
}

func (d *Dispatcher) recordLocked(action EditorAction, params CommandParams, err error) {
	d.cmdHistory = append(d.cmdHistory, commandRecord{Action: action, Params: params, Err: err})
	if len(d.cmdHistory) > d.maxCmdHistory {
		d.cmdHistory = d.cmdHistory[len(d.cmdHistory)-d.maxCmdHistory:]
	}
}

func (d *Dispatcher) logLocked(action EditorAction, params CommandParams, err error) {
	event := d.logger.Debug().Str("action", action.String()).Int("params_kind", int(params.Kind))
	if err != nil {
		event.Err(err).Msg("command failed")
		return
	}
	event.Msg("command executed")
}

// shouldClearSelectionForAction mirrors should_clear_selection_for_action in
// the Rust original exactly, including which actions are left false because
// they manage the selection themselves inside their own op.
func shouldClearSelectionForAction(action EditorAction) bool {
	switch action {
	case MoveLeft, MoveRight, MoveUp, MoveDown, MoveHome, MoveEnd,
		MoveDocumentStart, MoveDocumentEnd, MovePageUp, MovePageDown,
		MoveWordLeft, MoveWordRight,
		VisualLeft, VisualRight, VisualUp, VisualDown:
		return true
	case ClearSelection:
		return true
	case FindNext, FindPrev, Replace:
		return true
	default:
		return false
	}
}

// shouldRedrawAfter mirrors should_redraw_after_command.
func shouldRedrawAfter(action EditorAction) bool {
	switch action {
	case MoveLeft, MoveRight, MoveUp, MoveDown, MoveHome, MoveEnd,
		MoveDocumentStart, MoveDocumentEnd, MovePageUp, MovePageDown,
		MoveWordLeft, MoveWordRight,
		VisualLeft, VisualRight, VisualUp, VisualDown,
		SelectLeft, SelectRight, SelectUp, SelectDown, SelectWordLeft, SelectWordRight,
		SelectAll, ClearSelection:
		return true
	case InsertText, InsertNewline, Backspace, Delete, Indent, Unindent,
		DuplicateLine, DeleteLine, Cut, Paste:
		return true
	case Undo, Redo:
		return true
	case OpenFile, NewFile:
		return true
	case FindNext, FindPrev, Replace, ReplaceAll:
		return true
	case AddCursor:
		return true
	case Copy, SaveFile, SaveAs:
		return false
	default:
		return false
	}
}

// isUndoEligible reports whether action mutates buffer content in a way
// that should be captured on the undo stack (spec §4.3). Navigation,
// selection, clipboard reads/writes that don't touch content, and history
// itself are excluded. OpenFile and NewFile are whole-buffer replacements
// that clear undo/redo history entirely (see doOpenFile and the NewFile case
// of performLocked) rather than push an entry onto it, so they are excluded
// here too.
func isUndoEligible(action EditorAction) bool {
	switch action {
	case InsertText, InsertNewline, Backspace, Delete, Indent, Unindent,
		DuplicateLine, DeleteLine, Cut, Paste, Replace, ReplaceAll:
		return true
	default:
		return false
	}
}

func validateParams(action EditorAction, params CommandParams) *CommandError {
	want := func(kind ParamsKind) *CommandError {
		if params.Kind != kind {
			return newError(InvalidParameters, "action "+action.String()+" requires a different parameter shape")
		}
		return nil
	}

	switch action {
	case InsertText:
		return want(ParamsText)
	case AddCursor:
		return want(ParamsPosition)
	case OpenFile, SaveFile, SaveAs:
		return want(ParamsFilePath)
	case FindNext, FindPrev:
		return want(ParamsQuery)
	case Replace, ReplaceAll:
		return want(ParamsReplace)
	case MovePageUp, MovePageDown:
		if params.Kind != ParamsNone && params.Kind != ParamsPageLines {
			return newError(InvalidParameters, "PageUp/PageDown requires PageLines or None")
		}
		return nil
	default:
		return nil
	}
}

func (d *Dispatcher) pageSize(params CommandParams) uint32 {
	if params.Kind == ParamsPageLines && params.PageLines > 0 {
		return params.PageLines
	}
	return DefaultPageSize
}
