package summary

import (
	"testing"

	"github.com/jsphweid/patterndex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	js       = model.Jumpstream(model.SubJS)
	jt       = model.Jumpstream(model.SubJT)
	speed    = model.Jack(model.SubSpeedjack)
	lightHs  = model.Handstream(model.SubLightHs)
	singleSt = model.Singlestream(model.SubSinglestream)
)

func TestMaxValuesKeepsTopTier(t *testing.T) {
	scores := model.Scores{js: 10, speed: 6, jt: 5, lightHs: 4.9}
	top := MaxValues(scores)

	assert.Equal(t, []model.PatternScore{
		{Pattern: js, Score: 10},
		{Pattern: speed, Score: 6},
		{Pattern: jt, Score: 5},
	}, top)
}

func TestMaxValuesNeverEmptyForScores(t *testing.T) {
	assert := assert.New(t)
	assert.Len(MaxValues(model.Scores{singleSt: 0}), 1)
	assert.Len(MaxValues(model.Scores{singleSt: 0.01, js: 100}), 1)
	assert.Empty(MaxValues(model.Scores{}))
}

func TestOrderedBreaksTiesByPattern(t *testing.T) {
	ordered := Ordered(model.Scores{singleSt: 2, js: 2, speed: 2})

	require.Len(t, ordered, 3)
	assert.Equal(t, speed, ordered[0].Pattern)
	assert.Equal(t, js, ordered[1].Pattern)
	assert.Equal(t, singleSt, ordered[2].Pattern)
}

func TestTopTierRatio(t *testing.T) {
	scores := model.Scores{js: 10, speed: 8, jt: 3}

	assert := assert.New(t)
	assert.Len(TopTier(scores, 0.9), 1)
	assert.Len(TopTier(scores, 0.8), 2)
	assert.Len(TopTier(scores, 0), 3)
}

func TestMaxBySecondaryType(t *testing.T) {
	scores := model.Scores{js: 3, jt: 3, speed: 4, lightHs: 1}
	top := MaxBySecondaryType(scores)

	assert.Equal(t, []model.PatternScore{
		{Pattern: model.Jumpstream(model.SubAll), Score: 6},
		{Pattern: model.Jack(model.SubAll), Score: 4},
	}, top)
}

func TestDensity(t *testing.T) {
	measures := []*model.Measure{
		{StartTime: 0, NPM: 4},
		{StartTime: 500, NPM: 8},
		{StartTime: 1000, NPM: 6},
	}
	stats := Density(measures)

	assert := assert.New(t)
	assert.Equal(3, stats.Measures)
	assert.InDelta(6.0, stats.MeanNPM, 1e-9)
	assert.InDelta(2.0, stats.StdDevNPM, 1e-9)
	assert.Equal(8, stats.PeakNPM)
	assert.Equal(500, stats.PeakStart)

	assert.Equal(model.DensityStats{}, Density(nil))
}
