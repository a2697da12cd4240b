package cursor

import "github.com/dshills/textkit/internal/engine/buffer"

// SelectTo extends s's head to pos without moving the anchor.
func SelectTo(s Selection, pos Position) Selection {
	return s.Extend(pos)
}

// SelectAll returns a selection spanning the whole buffer.
func SelectAll(b *buffer.Buffer) Selection {
	last := b.TotalLines() - 1
	return Selection{
		Anchor: Position{Row: 0, Col: 0},
		Head:   Position{Row: last, Col: b.Columns(last)},
	}
}

// ClearSelection collapses s to its head, discarding the anchor.
func ClearSelection(s Selection) Selection {
	return s.Collapse()
}

// DeleteSelection removes the selected text and returns the collapsed
// cursor position at the deletion point. If s is empty, the buffer is left
// untouched and the current head position is returned.
func DeleteSelection(b *buffer.Buffer, s Selection) (Position, error) {
	if s.IsEmpty() {
		return s.Head, nil
	}
	r := s.Range()
	if err := b.DeleteRange(r.Start, r.End); err != nil {
		return Position{}, err
	}
	return r.Start, nil
}

// IndentLine inserts the given indent unit (e.g. a tab or N spaces) at the
// start of row.
func IndentLine(b *buffer.Buffer, row uint32, unit string) error {
	_, err := b.InsertText(Position{Row: row, Col: 0}, unit)
	return err
}

// UnindentLine removes up to len(unit) leading columns from row if they
// match unit exactly, or otherwise removes whatever leading whitespace is
// present up to that width. Returns the number of columns actually removed.
func UnindentLine(b *buffer.Buffer, row uint32, unit string) (uint32, error) {
	line := b.LineText(row)
	clusters := buffer.Segments(line)
	unitClusters := buffer.Segments(unit)

	n := uint32(0)
	for n < uint32(len(unitClusters)) && n < uint32(len(clusters)) && clusters[n] == unitClusters[n] {
		n++
	}
	if n == 0 {
		// No exact match: strip leading whitespace up to len(unit) columns.
		for n < uint32(len(unitClusters)) && n < uint32(len(clusters)) && isBlank(clusters[n]) {
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	if err := b.DeleteRange(Position{Row: row, Col: 0}, Position{Row: row, Col: n}); err != nil {
		return 0, err
	}
	return n, nil
}

func isBlank(cluster string) bool {
	return cluster == " " || cluster == "\t"
}
