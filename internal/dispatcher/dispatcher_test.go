package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/textkit/internal/adapter"
	"github.com/dshills/textkit/internal/engine/buffer"
)

func newTestDispatcher(content string) *Dispatcher {
	return New(buffer.NewFromString(content))
}

func TestInsertTextMovesCursor(t *testing.T) {
	d := newTestDispatcher("")
	require.NoError(t, d.Execute(InsertText, TextParams("ab")))
	assert.Equal(t, "ab", d.Buffer().Text())
	assert.Equal(t, buffer.Position{Row: 0, Col: 2}, d.Cursor().Pos())
}

func TestInsertNewlineThenInsertText(t *testing.T) {
	d := newTestDispatcher("")
	require.NoError(t, d.Execute(InsertText, TextParams("ab")))
	require.NoError(t, d.Execute(InsertNewline, NoParams()))
	require.NoError(t, d.Execute(InsertText, TextParams("c")))

	assert.Equal(t, "ab\nc", d.Buffer().Text())
	assert.Equal(t, buffer.Position{Row: 1, Col: 1}, d.Cursor().Pos())
	assert.False(t, d.HasSelection())
}

func TestTypingReplacesSelection(t *testing.T) {
	d := newTestDispatcher("hello world")
	require.NoError(t, d.Execute(SelectRight, NoParams()))
	for i := 0; i < 4; i++ {
		require.NoError(t, d.Execute(SelectRight, NoParams()))
	}
	require.NoError(t, d.Execute(InsertText, TextParams("HELLO")))
	assert.Equal(t, "HELLO world", d.Buffer().Text())
}

func TestBackspaceAtOriginIsNoOp(t *testing.T) {
	d := newTestDispatcher("abc")
	err := d.Execute(Backspace, NoParams())
	require.NoError(t, err)
	assert.Equal(t, "abc", d.Buffer().Text())
	assert.False(t, d.CanUndo())
}

func TestDeleteAtEndOfLastLineIsNoOp(t *testing.T) {
	d := newTestDispatcher("abc")
	for i := 0; i < 3; i++ {
		require.NoError(t, d.Execute(MoveRight, NoParams()))
	}
	require.NoError(t, d.Execute(Delete, NoParams()))
	assert.Equal(t, "abc", d.Buffer().Text())
	assert.False(t, d.CanUndo())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	d := newTestDispatcher("abc")
	require.NoError(t, d.Execute(InsertText, TextParams("X")))
	inserted := d.Buffer().Text()
	require.NoError(t, d.Execute(Undo, NoParams()))
	assert.Equal(t, "abc", d.Buffer().Text())
	require.NoError(t, d.Execute(Redo, NoParams()))
	assert.Equal(t, inserted, d.Buffer().Text())
}

func TestUndoOnEmptyStackReturnsInvalidState(t *testing.T) {
	d := newTestDispatcher("abc")
	err := d.Execute(Undo, NoParams())
	require.Error(t, err)
	cerr, ok := err.(*CommandError)
	require.True(t, ok)
	assert.Equal(t, InvalidState, cerr.Kind)
}

func TestMoveClearsSelection(t *testing.T) {
	d := newTestDispatcher("abcdef")
	require.NoError(t, d.Execute(SelectRight, NoParams()))
	require.True(t, d.HasSelection())
	require.NoError(t, d.Execute(MoveRight, NoParams()))
	assert.False(t, d.HasSelection())
}

func TestSelectAllThenCopy(t *testing.T) {
	d := newTestDispatcher("abc")
	clip := &fakeClipboard{}
	d.SetClipboard(clip)
	require.NoError(t, d.Execute(SelectAll, NoParams()))
	require.NoError(t, d.Execute(Copy, NoParams()))
	assert.Equal(t, "abc", clip.text)
	assert.True(t, d.HasSelection(), "copy preserves the selection")
}

func TestCutRemovesSelectionAndWritesClipboard(t *testing.T) {
	d := newTestDispatcher("abcdef")
	clip := &fakeClipboard{}
	d.SetClipboard(clip)
	for i := 0; i < 3; i++ {
		require.NoError(t, d.Execute(SelectRight, NoParams()))
	}
	require.NoError(t, d.Execute(Cut, NoParams()))
	assert.Equal(t, "abc", clip.text)
	assert.Equal(t, "def", d.Buffer().Text())
}

func TestPasteInsertsClipboardText(t *testing.T) {
	d := newTestDispatcher("")
	clip := &fakeClipboard{text: "pasted"}
	d.SetClipboard(clip)
	require.NoError(t, d.Execute(Paste, NoParams()))
	assert.Equal(t, "pasted", d.Buffer().Text())
}

func TestPasteEmptyClipboardIsNoOp(t *testing.T) {
	d := newTestDispatcher("abc")
	d.SetClipboard(&fakeClipboard{text: ""})
	require.NoError(t, d.Execute(Paste, NoParams()))
	assert.Equal(t, "abc", d.Buffer().Text())
	assert.False(t, d.CanUndo())
}

func TestInsertTextRequiresTextParams(t *testing.T) {
	d := newTestDispatcher("")
	err := d.Execute(InsertText, NoParams())
	require.Error(t, err)
	cerr, ok := err.(*CommandError)
	require.True(t, ok)
	assert.Equal(t, InvalidParameters, cerr.Kind)
}

func TestDuplicateLinePlacesCursorBelow(t *testing.T) {
	d := newTestDispatcher("abc\ndef")
	require.NoError(t, d.Execute(MoveRight, NoParams()))
	require.NoError(t, d.Execute(DuplicateLine, NoParams()))
	assert.Equal(t, "abc\nabc\ndef", d.Buffer().Text())
	assert.Equal(t, buffer.Position{Row: 1, Col: 1}, d.Cursor().Pos())
}

func TestDeleteLineRemovesRow(t *testing.T) {
	d := newTestDispatcher("abc\ndef\nghi")
	require.NoError(t, d.Execute(MoveDown, NoParams()))
	require.NoError(t, d.Execute(DeleteLine, NoParams()))
	assert.Equal(t, "abc\nghi", d.Buffer().Text())
}

func TestAutoIndentCopiesLeadingWhitespace(t *testing.T) {
	d := newTestDispatcher("  abc")
	require.NoError(t, d.Execute(MoveEnd, NoParams()))
	require.NoError(t, d.Execute(InsertNewline, NoParams()))
	require.NoError(t, d.Execute(InsertText, TextParams("def")))
	assert.Equal(t, "  abc\n  def", d.Buffer().Text())
}

func TestAutoIndentDisabled(t *testing.T) {
	d := newTestDispatcher("  abc")
	cfg := DefaultConfig()
	cfg.AutoIndentEnabled = false
	d.SetConfig(cfg)
	require.NoError(t, d.Execute(MoveEnd, NoParams()))
	require.NoError(t, d.Execute(InsertNewline, NoParams()))
	assert.Equal(t, "  abc\n", d.Buffer().Text())
}

func TestFindNextSelectsMatch(t *testing.T) {
	d := newTestDispatcher("the quick fox, the lazy dog")
	require.NoError(t, d.Execute(FindNext, QueryParams("the")))
	assert.Equal(t, buffer.Position{Row: 0, Col: 15}, d.Cursor().Pos())
	assert.True(t, d.HasSelection())
}

func TestFindNextEmptyQueryIsNoOp(t *testing.T) {
	d := newTestDispatcher("abc")
	require.NoError(t, d.Execute(FindNext, QueryParams("")))
	assert.False(t, d.HasSelection())
}

func TestReplaceAllReplacesEveryMatch(t *testing.T) {
	d := newTestDispatcher("foo bar foo")
	require.NoError(t, d.Execute(ReplaceAll, ReplaceParams("foo", "baz")))
	assert.Equal(t, "baz bar baz", d.Buffer().Text())
}

func TestIndentUnindentCurrentLine(t *testing.T) {
	d := newTestDispatcher("abc")
	cfg := DefaultConfig()
	cfg.TabWidthSpaces = 2
	d.SetConfig(cfg)
	require.NoError(t, d.Execute(Indent, NoParams()))
	assert.Equal(t, "  abc", d.Buffer().Text())
	require.NoError(t, d.Execute(Unindent, NoParams()))
	assert.Equal(t, "abc", d.Buffer().Text())
}

func TestOpenFileReplacesBufferAndClearsHistory(t *testing.T) {
	d := newTestDispatcher("old")
	require.NoError(t, d.Execute(InsertText, TextParams("X")))
	fio := &fakeFileIO{files: map[string]string{"/a.txt": "loaded content"}}
	d.SetFileIO(fio)
	require.NoError(t, d.Execute(OpenFile, FilePathParams("/a.txt")))
	assert.Equal(t, "loaded content", d.Buffer().Text())
	assert.False(t, d.CanUndo())
}

func TestSaveFileWritesCurrentContent(t *testing.T) {
	d := newTestDispatcher("save me")
	fio := &fakeFileIO{files: map[string]string{}}
	d.SetFileIO(fio)
	require.NoError(t, d.Execute(SaveFile, FilePathParams("/out.txt")))
	assert.Equal(t, "save me", fio.files["/out.txt"])
}

func TestAddCursorOutOfBoundsIsInvalidParameters(t *testing.T) {
	d := newTestDispatcher("abc")
	err := d.Execute(AddCursor, PositionParams(5, 0))
	require.Error(t, err)
	cerr, ok := err.(*CommandError)
	require.True(t, ok)
	assert.Equal(t, InvalidParameters, cerr.Kind)
}

func TestRedrawSinkSignaledOnMutation(t *testing.T) {
	d := newTestDispatcher("abc")
	sink := adapter.NewChannelRedrawSink(4)
	d.SetRedrawSink(sink)
	require.NoError(t, d.Execute(InsertText, TextParams("X")))
	select {
	case ev := <-sink.Events():
		assert.True(t, ev.Full)
	default:
		t.Fatal("expected a redraw notification")
	}
}

type fakeClipboard struct {
	text string
}

func (f *fakeClipboard) SetText(text string) error {
	f.text = text
	return nil
}

func (f *fakeClipboard) Text() (string, error) {
	return f.text, nil
}

type fakeFileIO struct {
	files map[string]string
}

func (f *fakeFileIO) ReadFile(path string) (string, error) {
	content, ok := f.files[path]
	if !ok {
		return "", assert.AnError
	}
	return content, nil
}

func (f *fakeFileIO) WriteFile(path, content string) error {
	f.files[path] = content
	return nil
}

func (f *fakeFileIO) Exists(path string) bool {
	_, ok := f.files[path]
	return ok
}

func TestVisualMotionDegradesToLogicalWithoutShaper(t *testing.T) {
	d := newTestDispatcher("ab\ncd")
	require.NoError(t, d.Execute(MoveDocumentEnd, NoParams()))
	require.NoError(t, d.Execute(VisualLeft, NoParams()))
	assert.Equal(t, buffer.Position{Row: 1, Col: 1}, d.Cursor().Pos())
}

func TestVisualMotionUsesWiredShaper(t *testing.T) {
	d := newTestDispatcher("a\tb")
	d.SetShaper(adapter.NewMonospaceShaper())
	require.NoError(t, d.Execute(VisualRight, NoParams()))
	require.NoError(t, d.Execute(VisualRight, NoParams()))
	assert.Equal(t, buffer.Position{Row: 0, Col: 2}, d.Cursor().Pos())
}

func TestVisualUpDownClearSelectionAndRedraw(t *testing.T) {
	d := newTestDispatcher("longline\nhi")
	sink := adapter.NewChannelRedrawSink(4)
	d.SetRedrawSink(sink)
	require.NoError(t, d.Execute(SelectRight, NoParams()))
	require.True(t, d.HasSelection())

	require.NoError(t, d.Execute(VisualDown, NoParams()))
	assert.False(t, d.HasSelection())
	select {
	case <-sink.Events():
	default:
		t.Fatal("expected a redraw notification")
	}
}
