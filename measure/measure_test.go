package measure

import (
	"errors"
	"math"
	"testing"

	"github.com/jsphweid/patterndex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func single(timestamp, column int) model.Note {
	columns := make(model.Columns, 4)
	columns[column] = true
	return model.NewNote(timestamp, columns)
}

func TestGroupSplitsByBeatLength(t *testing.T) {
	segments := []model.TimingSegment{{Time: 0, BeatLength: 500}}
	notes := []model.Note{single(0, 0), single(250, 1), single(500, 2), single(1100, 3)}

	measures, err := Group(notes, segments)
	require.NoError(t, err)

	all := measures.All()
	require.Len(t, all, 3)
	assert := assert.New(t)
	assert.Equal(0, all[0].StartTime)
	assert.Equal(2, all[0].NPM)
	assert.Equal(500, all[1].StartTime)
	assert.Equal(1000, all[2].StartTime)
}

func TestNPMCountsEveryPressedColumn(t *testing.T) {
	segments := []model.TimingSegment{{Time: 0, BeatLength: 1000}}
	notes := []model.Note{
		model.NewNote(0, model.Columns{true, true, true, false}),
		single(100, 3),
	}

	measures, err := Group(notes, segments)
	require.NoError(t, err)
	m, ok := measures.Get(0)
	require.True(t, ok)
	assert.Equal(t, 4, m.NPM)
	assert.Equal(t, m.TotalActive(), m.NPM)
}

func TestNotesBeforeFirstSegmentUseIt(t *testing.T) {
	segments := []model.TimingSegment{{Time: 1000, BeatLength: 400}, {Time: 5000, BeatLength: 300}}

	assert := assert.New(t)
	assert.Equal(segments[0], SegmentFor(200, segments))
	assert.Equal(segments[0], SegmentFor(4999, segments))
	assert.Equal(segments[1], SegmentFor(5000, segments))
	assert.Equal(200, StartOf(200, segments[0]))
	assert.Equal(5300, StartOf(5450, segments[1]))
}

func TestStartOfTruncatesFractionalBeats(t *testing.T) {
	seg := model.TimingSegment{Time: 10, BeatLength: 333.33}

	assert := assert.New(t)
	assert.Equal(10, StartOf(10, seg))
	assert.Equal(343, StartOf(400, seg))
	assert.Equal(676, StartOf(700, seg))
}

func TestGroupConservesNotes(t *testing.T) {
	segments := []model.TimingSegment{{Time: 0, BeatLength: 375}, {Time: 3000, BeatLength: 250}}
	var notes []model.Note
	for ts := 0; ts < 6000; ts += 125 {
		notes = append(notes, single(ts, (ts/125)%4))
	}

	measures, err := Group(notes, segments)
	require.NoError(t, err)
	var total int
	for _, m := range measures.All() {
		total += len(m.Notes)
	}
	assert.Equal(t, len(notes), total)
}

func TestGroupRejectsBadSegments(t *testing.T) {
	_, err := Group([]model.Note{single(0, 0)}, nil)
	assert.True(t, errors.Is(err, ErrEmptyTimingSegments))

	for _, beatLength := range []float64{0, -250, math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err = Group([]model.Note{single(0, 0)}, []model.TimingSegment{{Time: 0, BeatLength: beatLength}})
		assert.True(t, errors.Is(err, ErrInvalidBeatLength), "beat length %v", beatLength)
	}
}
