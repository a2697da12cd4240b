package search

import (
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/dshills/textkit/internal/engine/buffer"
)

// ErrNoMatch indicates a find operation found no occurrence of the pattern
// anywhere in the buffer.
var ErrNoMatch = errors.New("search: pattern not found")

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Match describes one located occurrence of a search pattern.
type Match struct {
	Start   Position
	End     Position
	Wrapped bool // true if the match required wrapping around buffer ends
}

// Query holds a compiled search pattern and its matching options.
type Query struct {
	Pattern       string
	CaseSensitive bool
	re            *regexp.Regexp
}

// Compile builds a Query from a literal or regex pattern. When literal is
// true, pattern is treated as literal text (regexp.QuoteMeta'd) rather than
// a regular expression.
func Compile(pattern string, caseSensitive, literal bool) (Query, error) {
	if literal {
		pattern = regexp.QuoteMeta(pattern)
	}
	flags := ""
	if !caseSensitive {
		flags = "(?i)"
	}
	re, err := regexp.Compile(flags + pattern)
	if err != nil {
		return Query{}, err
	}
	return Query{Pattern: pattern, CaseSensitive: caseSensitive, re: re}, nil
}

// FindNext returns the first match starting strictly after from, wrapping
// around to the start of the buffer if nothing is found before the end.
func FindNext(b *buffer.Buffer, q Query, from Position) (Match, error) {
	text := b.Text()
	startOff := int(b.PositionToOffset(from)) + 1
	if startOff > len(text) {
		startOff = len(text)
	}

	if loc := q.re.FindStringIndex(text[startOff:]); loc != nil {
		return matchAt(b, startOff+loc[0], startOff+loc[1], false), nil
	}
	if startOff > 0 {
		if loc := q.re.FindStringIndex(text[:startOff]); loc != nil {
			return matchAt(b, loc[0], loc[1], true), nil
		}
	}
	return Match{}, ErrNoMatch
}

// FindPrevious returns the last match lying entirely before from (its end
// at or before from), wrapping around to the last match at or after from
// if nothing is found.
func FindPrevious(b *buffer.Buffer, q Query, from Position) (Match, error) {
	text := b.Text()
	endOff := int(b.PositionToOffset(from))

	if endOff > 0 {
		if matches := q.re.FindAllStringIndex(text[:endOff], -1); len(matches) > 0 {
			m := matches[len(matches)-1]
			return matchAt(b, m[0], m[1], false), nil
		}
	}
	if endOff < len(text) {
		if matches := q.re.FindAllStringIndex(text[endOff:], -1); len(matches) > 0 {
			m := matches[len(matches)-1]
			return matchAt(b, endOff+m[0], endOff+m[1], true), nil
		}
	}
	return Match{}, ErrNoMatch
}

// FindAll returns every match in the buffer, in document order, including
// overlapping matches: after each hit the scan resumes one rune past the
// hit's start rather than past its end (rusteditorkit's find_all advances
// `start = col + 1` for the same reason).
func FindAll(b *buffer.Buffer, q Query) []Match {
	text := b.Text()
	out := []Match{}
	searchFrom := 0
	for searchFrom <= len(text) {
		loc := q.re.FindStringIndex(text[searchFrom:])
		if loc == nil {
			break
		}
		start := searchFrom + loc[0]
		end := searchFrom + loc[1]
		out = append(out, matchAt(b, start, end, false))

		_, width := utf8.DecodeRuneInString(text[start:])
		if width == 0 {
			width = 1
		}
		searchFrom = start + width
	}
	return out
}

func matchAt(b *buffer.Buffer, startByte, endByte int, wrapped bool) Match {
	return Match{
		Start:   b.OffsetToPosition(buffer.ByteOffset(startByte)),
		End:     b.OffsetToPosition(buffer.ByteOffset(endByte)),
		Wrapped: wrapped,
	}
}

// ReplaceNext replaces the first match after from with replacement and
// returns the start position of the replaced match, or ErrNoMatch if none
// was found.
func ReplaceNext(b *buffer.Buffer, q Query, from Position, replacement string) (Position, error) {
	m, err := FindNext(b, q, from)
	if err != nil {
		return Position{}, err
	}
	if _, err := buffer.Apply(b, buffer.Edit{Range: buffer.PositionRange{Start: m.Start, End: m.End}, NewText: replacement}); err != nil {
		return Position{}, err
	}
	return m.Start, nil
}

// ReplaceAll replaces every non-overlapping match in the buffer with
// replacement and returns the number of replacements made, mirroring the
// original's replace_all (built on str::replace, which itself only ever
// considers non-overlapping occurrences). It deliberately does not reuse
// FindAll's overlapping scan: replacing two matches that share bytes would
// corrupt the buffer when applied back-to-front.
func ReplaceAll(b *buffer.Buffer, q Query, replacement string) int {
	matches := findAllNonOverlapping(b, q)
	// Apply back-to-front so earlier matches' byte offsets stay valid.
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		_, _ = buffer.Apply(b, buffer.Edit{
			Range:   buffer.PositionRange{Start: m.Start, End: m.End},
			NewText: replacement,
		})
	}
	return len(matches)
}

func findAllNonOverlapping(b *buffer.Buffer, q Query) []Match {
	text := b.Text()
	locs := q.re.FindAllStringIndex(text, -1)
	out := make([]Match, 0, len(locs))
	for _, loc := range locs {
		out = append(out, matchAt(b, loc[0], loc[1], false))
	}
	return out
}
