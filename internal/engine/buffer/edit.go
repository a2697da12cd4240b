package buffer

import "fmt"

// Edit represents a single text-model mutation expressed in Position
// coordinates, the form the dispatcher and history record rather than raw
// byte ranges.
type Edit struct {
	Range   PositionRange
	NewText string
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(pos Position, text string) Edit {
	return Edit{Range: PositionRange{Start: pos, End: pos}, NewText: text}
}

// NewDelete creates an Edit that deletes [start, end).
func NewDelete(start, end Position) Edit {
	return Edit{Range: PositionRange{Start: start, End: end}, NewText: ""}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%s, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete(%s-%s)", e.Range.Start, e.Range.End)
	}
	return fmt.Sprintf("Replace(%s-%s, %q)", e.Range.Start, e.Range.End, e.NewText)
}

// IsInsert returns true if this is a pure insertion (empty range, non-empty text).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (non-empty range, no replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// IsNoOp returns true if this edit changes nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// EditResult reports the outcome of applying an Edit: the position the
// caret should move to and the text that was removed, if any, so a caller
// building an undo record has what it needs without re-reading the buffer.
type EditResult struct {
	End     Position
	OldText string
}

// Apply performs e against b and returns the resulting caret position plus
// the text that was replaced.
func Apply(b *Buffer, e Edit) (EditResult, error) {
	old := b.GetText(e.Range.Start, e.Range.End)
	if !e.Range.IsEmpty() {
		if err := b.DeleteRange(e.Range.Start, e.Range.End); err != nil {
			return EditResult{}, err
		}
	}
	end := e.Range.Start
	if e.NewText != "" {
		var err error
		end, err = b.InsertText(e.Range.Start, e.NewText)
		if err != nil {
			return EditResult{}, err
		}
	}
	return EditResult{End: end, OldText: old}, nil
}
