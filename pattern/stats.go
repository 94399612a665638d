package pattern

import "github.com/jsphweid/patterndex/model"

// TagCounts is how many notes of each primary tag a measure holds.
type TagCounts struct {
	Single int
	Jump   int
	Hand   int
	Quad   int
	Chord  int
}

func CountTags(notes []model.Note) TagCounts {
	var c TagCounts
	for _, n := range notes {
		switch n.Tag {
		case model.TagSingle:
			c.Single++
		case model.TagJump:
			c.Jump++
		case model.TagHand:
			c.Hand++
		case model.TagQuad:
			c.Quad++
		case model.TagChord:
			c.Chord++
		}
	}
	return c
}

// JackCount is the number of neighbouring note pairs that press a common
// column. Neighbours are by position in the measure, not by time gap.
func JackCount(notes []model.Note) int {
	var count int
	for i := 1; i < len(notes); i++ {
		if notes[i].SharesColumn(notes[i-1]) {
			count++
		}
	}
	return count
}

func HasJack(notes []model.Note) bool {
	for i := 1; i < len(notes); i++ {
		if notes[i].SharesColumn(notes[i-1]) {
			return true
		}
	}
	return false
}

func HasConsecutiveJumps(notes []model.Note) bool {
	for i := 1; i < len(notes); i++ {
		if notes[i].Tag == model.TagJump && notes[i-1].Tag == model.TagJump {
			return true
		}
	}
	return false
}

// ColumnCounts is how often each column is pressed across the notes.
func ColumnCounts(notes []model.Note, keyCount int) []int {
	counts := make([]int, keyCount)
	for _, n := range notes {
		for i, active := range n.Columns {
			if active && i < keyCount {
				counts[i]++
			}
		}
	}
	return counts
}

func hasTag(tag model.PrimaryTag) func([]model.Note) bool {
	return func(notes []model.Note) bool {
		for _, n := range notes {
			if n.Tag == tag {
				return true
			}
		}
		return false
	}
}
