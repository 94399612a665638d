package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryTagFor(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(TagNone, PrimaryTagFor(0))
	assert.Equal(TagSingle, PrimaryTagFor(1))
	assert.Equal(TagJump, PrimaryTagFor(2))
	assert.Equal(TagHand, PrimaryTagFor(3))
	assert.Equal(TagQuad, PrimaryTagFor(4))
	assert.Equal(TagChord, PrimaryTagFor(5))
	assert.Equal(TagChord, PrimaryTagFor(7))
}

func TestNewNoteTagsByActiveCount(t *testing.T) {
	n := NewNote(100, Columns{true, false, true, false})

	assert := assert.New(t)
	assert.Equal(2, n.ActiveCount())
	assert.Equal(TagJump, n.Tag)
	assert.Equal("OXOX", n.String())
}

func TestSharesColumn(t *testing.T) {
	a := NewNote(0, Columns{true, false, false, false})
	b := NewNote(10, Columns{true, true, false, false})
	c := NewNote(20, Columns{false, false, true, true})

	assert := assert.New(t)
	assert.True(a.SharesColumn(b))
	assert.True(b.SharesColumn(a))
	assert.False(a.SharesColumn(c))
	assert.False(b.SharesColumn(c))
}

func TestMeasuresStayOrderedAndCountPresses(t *testing.T) {
	ms := NewMeasures()
	ms.Add(2000, NewNote(2100, Columns{true, true, false, false}))
	ms.Add(0, NewNote(0, Columns{true, false, false, false}))
	ms.Add(1000, NewNote(1000, Columns{false, true, false, false}))
	ms.Add(0, NewNote(500, Columns{false, false, true, true}))

	assert := assert.New(t)
	assert.Equal(3, ms.Len())

	var starts []int
	for _, m := range ms.All() {
		starts = append(starts, m.StartTime)
		assert.Equal(m.TotalActive(), m.NPM)
	}
	assert.Equal([]int{0, 1000, 2000}, starts)

	first, ok := ms.Get(0)
	assert.True(ok)
	assert.Len(first.Notes, 2)
	assert.Equal(3, first.NPM)
	assert.Equal(4, first.KeyCount())

	_, ok = ms.Get(500)
	assert.False(ok)
}
