package buffer

import "github.com/rivo/uniseg"

// columnToByte walks the extended grapheme cluster boundaries of line and
// returns the byte offset of the col-th cluster boundary. This is the single
// site in the package where a user-facing column is turned into a byte
// index; every other conversion goes through it or byteToColumn.
//
// col beyond the number of clusters in line clamps to len(line).
func columnToByte(line string, col uint32) int {
	if col == 0 || line == "" {
		return 0
	}

	remaining := line
	byteOff := 0
	var n uint32
	for remaining != "" {
		if n == col {
			return byteOff
		}
		clusterLen, rest, _, _ := uniseg.FirstGraphemeClusterInString(remaining, -1)
		byteOff += clusterLen
		remaining = rest
		n++
	}
	return byteOff
}

// byteToColumn walks the extended grapheme cluster boundaries of line and
// returns the column of the first cluster boundary at or after byteOff, so
// an offset inside a cluster maps to the column after that cluster.
func byteToColumn(line string, byteOff int) uint32 {
	if byteOff <= 0 || line == "" {
		return 0
	}

	remaining := line
	pos := 0
	var col uint32
	for remaining != "" {
		if pos >= byteOff {
			return col
		}
		clusterLen, rest, _, _ := uniseg.FirstGraphemeClusterInString(remaining, -1)
		pos += clusterLen
		remaining = rest
		col++
	}
	return col
}

// Segments splits line into its extended grapheme clusters, in column
// order. Callers outside this package that need to reason rune-by-rune
// about column content (e.g. word-boundary classification) use this instead
// of iterating line's runes directly, so their indices stay aligned with
// every other column-addressed API in the engine.
func Segments(line string) []string {
	if line == "" {
		return nil
	}
	out := make([]string, 0, len(line))
	remaining := line
	for remaining != "" {
		clusterLen, rest, _, _ := uniseg.FirstGraphemeClusterInString(remaining, -1)
		out = append(out, remaining[:clusterLen])
		remaining = rest
	}
	return out
}

// columnCount returns the number of extended grapheme clusters in line.
func columnCount(line string) uint32 {
	if line == "" {
		return 0
	}
	var n uint32
	remaining := line
	for remaining != "" {
		_, rest, _, _ := uniseg.FirstGraphemeClusterInString(remaining, -1)
		remaining = rest
		n++
	}
	return n
}
