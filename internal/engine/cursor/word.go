package cursor

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/textkit/internal/engine/buffer"
)

// isWordBreak reports whether cluster is a word-break unit using the
// configured break set: if breakChars is non-empty, membership of its first
// rune in that set defines a break; otherwise Unicode whitespace,
// punctuation and symbols break words, except '_', which counts as a word
// character, matching the common editor convention for Ctrl+Arrow motion.
func isWordBreak(cluster string, breakChars string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	if breakChars != "" {
		for _, b := range breakChars {
			if r == b {
				return true
			}
		}
		return false
	}
	if r == '_' {
		return false
	}
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// MoveWordLeft moves to the start of the previous word, skipping any run of
// break clusters first. Grounded on the word_break_chars config knob named
// but left unused by the distilled spec.
func MoveWordLeft(b *buffer.Buffer, c Cursor, breakChars string) Cursor {
	p := wordLeftPos(b, c.Pos(), breakChars)
	return c.MoveTo(p)
}

// SelectWordLeft extends the selection head to the previous word boundary.
func SelectWordLeft(b *buffer.Buffer, s Selection, breakChars string) Selection {
	return s.Extend(wordLeftPos(b, s.Head, breakChars))
}

func wordLeftPos(b *buffer.Buffer, pos Position, breakChars string) Position {
	if pos.Col == 0 {
		if pos.Row == 0 {
			return pos
		}
		prevRow := pos.Row - 1
		return Position{Row: prevRow, Col: b.Columns(prevRow)}
	}

	clusters := buffer.Segments(b.LineText(pos.Row))
	i := int(pos.Col)

	for i > 0 && isWordBreak(clusters[i-1], breakChars) {
		i--
	}
	for i > 0 && !isWordBreak(clusters[i-1], breakChars) {
		i--
	}
	return Position{Row: pos.Row, Col: uint32(i)}
}

// MoveWordRight moves to the start of the next word, skipping the remainder
// of the current word and any following break run.
func MoveWordRight(b *buffer.Buffer, c Cursor, breakChars string) Cursor {
	p := wordRightPos(b, c.Pos(), breakChars)
	return c.MoveTo(p)
}

// SelectWordRight extends the selection head to the next word boundary.
func SelectWordRight(b *buffer.Buffer, s Selection, breakChars string) Selection {
	return s.Extend(wordRightPos(b, s.Head, breakChars))
}

func wordRightPos(b *buffer.Buffer, pos Position, breakChars string) Position {
	lineCols := b.Columns(pos.Row)
	if pos.Col >= lineCols {
		if pos.Row+1 >= b.TotalLines() {
			return pos
		}
		return Position{Row: pos.Row + 1, Col: 0}
	}

	clusters := buffer.Segments(b.LineText(pos.Row))
	i := int(pos.Col)
	n := len(clusters)

	for i < n && !isWordBreak(clusters[i], breakChars) {
		i++
	}
	for i < n && isWordBreak(clusters[i], breakChars) {
		i++
	}
	return Position{Row: pos.Row, Col: uint32(i)}
}
