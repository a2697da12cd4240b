package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New()
	assert.Equal(t, uint32(1), b.TotalLines())
	assert.Equal(t, "", b.Text())
}

func TestNewFromString(t *testing.T) {
	b := NewFromString("hello\nworld")
	assert.Equal(t, uint32(2), b.TotalLines())
	assert.Equal(t, "hello", b.LineText(0))
	assert.Equal(t, "world", b.LineText(1))
}

func TestNewFromStringNormalizesLineEndings(t *testing.T) {
	b := NewFromString("a\r\nb\rc")
	assert.Equal(t, "a\nb\nc", b.Text())
	assert.Equal(t, uint32(3), b.TotalLines())
}

func TestInsertTextWithinLine(t *testing.T) {
	b := NewFromString("hello world")
	end, err := b.InsertText(Position{Row: 0, Col: 5}, ",")
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 0, Col: 6}, end)
	assert.Equal(t, "hello, world", b.Text())
}

func TestInsertTextSplitsLine(t *testing.T) {
	b := NewFromString("helloworld")
	end, err := b.InsertText(Position{Row: 0, Col: 5}, "\n")
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 1, Col: 0}, end)
	assert.Equal(t, uint32(2), b.TotalLines())
	assert.Equal(t, "hello", b.LineText(0))
	assert.Equal(t, "world", b.LineText(1))
}

func TestDeleteRangeSingleLine(t *testing.T) {
	b := NewFromString("hello world")
	err := b.DeleteRange(Position{Row: 0, Col: 5}, Position{Row: 0, Col: 11})
	require.NoError(t, err)
	assert.Equal(t, "hello", b.Text())
}

func TestDeleteRangeAcrossLinesJoins(t *testing.T) {
	b := NewFromString("hello\nworld")
	err := b.DeleteRange(Position{Row: 0, Col: 5}, Position{Row: 1, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), b.TotalLines())
	assert.Equal(t, "helloworld", b.Text())
}

func TestDeleteRangeNormalizesReversedArgs(t *testing.T) {
	b := NewFromString("hello world")
	err := b.DeleteRange(Position{Row: 0, Col: 11}, Position{Row: 0, Col: 5})
	require.NoError(t, err)
	assert.Equal(t, "hello", b.Text())
}

func TestDeleteLineMiddle(t *testing.T) {
	b := NewFromString("a\nb\nc")
	err := b.DeleteLine(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), b.TotalLines())
	assert.Equal(t, "a", b.LineText(0))
	assert.Equal(t, "c", b.LineText(1))
}

func TestDeleteLineLast(t *testing.T) {
	b := NewFromString("a\nb\nc")
	err := b.DeleteLine(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), b.TotalLines())
	assert.Equal(t, "a", b.LineText(0))
	assert.Equal(t, "b", b.LineText(1))
}

func TestDeleteLineOnlyLineClearsInsteadOfRemoving(t *testing.T) {
	b := NewFromString("only")
	err := b.DeleteLine(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), b.TotalLines())
	assert.Equal(t, "", b.LineText(0))
}

func TestDeleteLineOutOfRange(t *testing.T) {
	b := NewFromString("a")
	err := b.DeleteLine(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSplitLine(t *testing.T) {
	b := NewFromString("abcdef")
	end, err := b.SplitLine(Position{Row: 0, Col: 3})
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 1, Col: 0}, end)
	assert.Equal(t, "abc", b.LineText(0))
	assert.Equal(t, "def", b.LineText(1))
}

func TestGetText(t *testing.T) {
	b := NewFromString("hello\nworld")
	assert.Equal(t, "llo\nwo", b.GetText(Position{Row: 0, Col: 2}, Position{Row: 1, Col: 2}))
}

func TestClampClampsRowAndCol(t *testing.T) {
	b := NewFromString("ab\ncd")
	assert.Equal(t, Position{Row: 1, Col: 2}, b.Clamp(Position{Row: 5, Col: 5}))
	assert.Equal(t, Position{Row: 0, Col: 2}, b.Clamp(Position{Row: 0, Col: 99}))
}

func TestColumnsCountsGraphemeClustersNotBytes(t *testing.T) {
	// "e" followed by a combining acute accent (U+0301) is one grapheme
	// cluster, two code points, three bytes.
	line := "a" + "e\u0301" + "b"
	b := NewFromString(line)
	assert.Equal(t, uint32(3), b.Columns(0))
	assert.Less(t, uint32(3), uint32(len(line)))
}

func TestPositionToOffsetRoundTrip(t *testing.T) {
	b := NewFromString("hello\nworld")
	for _, p := range []Position{{0, 0}, {0, 3}, {1, 0}, {1, 5}} {
		off := b.PositionToOffset(p)
		got := b.OffsetToPosition(off)
		assert.Equal(t, p, got)
	}
}

func TestSetTextReplacesContent(t *testing.T) {
	b := NewFromString("old content")
	b.SetText("new\ncontent")
	assert.Equal(t, uint32(2), b.TotalLines())
	assert.Equal(t, "new", b.LineText(0))
}

func TestLines(t *testing.T) {
	b := NewFromString("a\nb\nc")
	assert.Equal(t, []string{"a", "b", "c"}, b.Lines())
}

func TestApplyInsert(t *testing.T) {
	b := NewFromString("hello world")
	res, err := Apply(b, NewInsert(Position{Row: 0, Col: 5}, ","))
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 0, Col: 6}, res.End)
	assert.Equal(t, "", res.OldText)
	assert.Equal(t, "hello, world", b.Text())
}

func TestApplyDelete(t *testing.T) {
	b := NewFromString("hello world")
	res, err := Apply(b, NewDelete(Position{Row: 0, Col: 5}, Position{Row: 0, Col: 11}))
	require.NoError(t, err)
	assert.Equal(t, " world", res.OldText)
	assert.Equal(t, "hello", b.Text())
}
