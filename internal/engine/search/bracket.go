package search

import "github.com/dshills/textkit/internal/engine/buffer"

var bracketPairs = [...][2]rune{{'(', ')'}, {'[', ']'}, {'{', '}'}}

// MatchingBracket looks at the character immediately before pos and, if it
// is an open or close bracket, returns the position of its match. It is a
// pure positional query in the spirit of the find_* operations: it returns
// a position and draws nothing, so it carries none of syntax highlighting's
// scope.
func MatchingBracket(b *buffer.Buffer, pos Position) (Position, bool) {
	if pos.Col == 0 {
		return Position{}, false
	}
	clusters := buffer.Segments(b.LineText(pos.Row))
	if int(pos.Col)-1 >= len(clusters) {
		return Position{}, false
	}
	ch := []rune(clusters[pos.Col-1])
	if len(ch) == 0 {
		return Position{}, false
	}
	r := ch[0]

	for _, pair := range bracketPairs {
		open, close := pair[0], pair[1]
		if r == open {
			return searchForwardForClose(b, pos.Row, pos.Col, open, close)
		}
		if r == close {
			return searchBackwardForOpen(b, pos.Row, pos.Col-1, open, close)
		}
	}
	return Position{}, false
}

func searchForwardForClose(b *buffer.Buffer, row, col uint32, open, close rune) (Position, bool) {
	depth := 1
	totalLines := b.TotalLines()
	for r := row; r < totalLines; r++ {
		clusters := buffer.Segments(b.LineText(r))
		start := uint32(0)
		if r == row {
			start = col
		}
		for i := start; i < uint32(len(clusters)); i++ {
			c := []rune(clusters[i])[0]
			switch c {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					return Position{Row: r, Col: i}, true
				}
			}
		}
	}
	return Position{}, false
}

func searchBackwardForOpen(b *buffer.Buffer, row, endCol uint32, open, close rune) (Position, bool) {
	depth := 1
	for {
		clusters := buffer.Segments(b.LineText(row))
		end := endCol
		if end > uint32(len(clusters)) {
			end = uint32(len(clusters))
		}
		for i := int(end) - 1; i >= 0; i-- {
			c := []rune(clusters[i])[0]
			switch c {
			case close:
				depth++
			case open:
				depth--
				if depth == 0 {
					return Position{Row: row, Col: uint32(i)}, true
				}
			}
		}
		if row == 0 {
			break
		}
		row--
		endCol = uint32(len(buffer.Segments(b.LineText(row))))
	}
	return Position{}, false
}
