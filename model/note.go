package model

import "strings"

// Columns holds one flag per key column. Its width is the chart's key count.
type Columns = []bool

type PrimaryTag uint8

const (
	TagNone PrimaryTag = iota
	TagSingle
	TagJump
	TagHand
	TagQuad
	TagChord
)

var primaryTagNames = [...]string{
	TagNone:   "None",
	TagSingle: "Single",
	TagJump:   "Jump",
	TagHand:   "Hand",
	TagQuad:   "Quad",
	TagChord:  "Chord",
}

func (t PrimaryTag) String() string {
	if int(t) < len(primaryTagNames) {
		return primaryTagNames[t]
	}
	return "Unknown"
}

// PrimaryTagFor maps a count of simultaneously active columns to its tag.
func PrimaryTagFor(active int) PrimaryTag {
	switch {
	case active <= 0:
		return TagNone
	case active == 1:
		return TagSingle
	case active == 2:
		return TagJump
	case active == 3:
		return TagHand
	case active == 4:
		return TagQuad
	default:
		return TagChord
	}
}

// Note is every key press sharing one timestamp. It is not modified after
// NewNote returns it.
type Note struct {
	Timestamp int        `json:"timestamp"`
	Columns   Columns    `json:"columns"`
	Tag       PrimaryTag `json:"tag"`
}

func NewNote(timestamp int, columns Columns) Note {
	n := Note{Timestamp: timestamp, Columns: columns}
	n.Tag = PrimaryTagFor(n.ActiveCount())
	return n
}

func (n Note) ActiveCount() int {
	var count int
	for _, active := range n.Columns {
		if active {
			count++
		}
	}
	return count
}

// SharesColumn reports whether both notes press at least one common column.
func (n Note) SharesColumn(other Note) bool {
	for i, active := range n.Columns {
		if active && i < len(other.Columns) && other.Columns[i] {
			return true
		}
	}
	return false
}

// String renders the note as a row, O for pressed and X for idle columns.
func (n Note) String() string {
	var b strings.Builder
	b.Grow(len(n.Columns))
	for _, active := range n.Columns {
		if active {
			b.WriteByte('O')
		} else {
			b.WriteByte('X')
		}
	}
	return b.String()
}
