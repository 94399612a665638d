package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/patterndex/analyze"
	"github.com/jsphweid/patterndex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.Equal(Checksum([]byte("chart")), Checksum([]byte("chart")))
	assert.NotEqual(Checksum([]byte("chart")), Checksum([]byte("chart2")))
}

func TestBuild(t *testing.T) {
	b := &model.Beatmap{Title: "T", Artist: "A", Version: "V", Mode: model.ModeMania, CircleSize: 4}
	js := model.Jumpstream(model.SubJS)
	speed := model.Jack(model.SubSpeedjack)
	res := &analyze.Result{
		KeyCount:   4,
		AverageNPM: 8,
		Measures: []*model.Measure{
			{StartTime: 0, NPM: 8, Pattern: js, Value: 1},
			{StartTime: 500, NPM: 8, Pattern: speed, Value: 0.9},
		},
		Scores: model.Scores{js: 1, speed: 0.4},
	}
	rep := Build(b, res, []byte("raw"), 0.5)

	assert := assert.New(t)
	_, err := uuid.Parse(rep.ID)
	require.NoError(t, err)
	assert.Equal(Checksum([]byte("raw")), rep.Checksum)
	assert.Equal("T", rep.Title)
	assert.Equal(4, rep.KeyCount)
	assert.Equal(2, rep.Density.Measures)
	assert.Len(rep.Scores, 2)
	assert.Equal([]model.PatternScore{{Pattern: js, Score: 1}}, rep.Dominant)
	assert.Equal([]model.PatternScore{{Pattern: js.ToAll(), Score: 1}}, rep.DominantCategories)
	assert.False(rep.CreatedAt.IsZero())
}
