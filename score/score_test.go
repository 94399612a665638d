package score

import (
	"testing"

	"github.com/jsphweid/patterndex/model"
	"github.com/stretchr/testify/assert"
)

func TestDensityClampsHighRatios(t *testing.T) {
	s := Default()

	assert := assert.New(t)
	assert.Equal(5.0, s.Density(1000, 10))
	assert.InDelta(1.5, s.Density(15, 10), 1e-9)
	assert.Equal(0.0, s.Density(0, 10))
	assert.Equal(1.0, s.Density(7, 0))
}

func TestCustomClamp(t *testing.T) {
	s := Scorer{Weights: DefaultWeights(), MaxDensity: 2}
	assert.Equal(t, 2.0, s.Density(100, 10))
}

func TestUnclassifiedWeighsNothing(t *testing.T) {
	s := Default()

	assert := assert.New(t)
	assert.Equal(0.0, s.Weight(model.NonePattern))
	assert.Equal(0.7, s.Weight(model.Jumpstream(model.SubJT)))
	assert.Equal(1.1, s.Weight(model.Singlestream(model.SubSinglestream)))
}

func TestValuesAndAggregate(t *testing.T) {
	js := model.Jumpstream(model.SubJS)
	measures := []*model.Measure{
		{StartTime: 0, NPM: 10, Pattern: js},
		{StartTime: 1000, NPM: 20, Pattern: js},
		{StartTime: 2000, NPM: 10, Pattern: model.Jack(model.SubSpeedjack)},
		{StartTime: 3000, NPM: 4, Pattern: model.NonePattern},
	}
	values := Default().Values(measures, 10)
	Apply(measures, values)

	assert := assert.New(t)
	assert.InDeltaSlice([]float64{1.0, 2.0, 0.9, 0}, values, 1e-9)
	assert.Equal(2.0, measures[1].Value)

	scores := Aggregate(measures)
	assert.Len(scores, 2)
	assert.InDelta(3.0, scores[js], 1e-9)
	assert.InDelta(0.9, scores[model.Jack(model.SubSpeedjack)], 1e-9)
	_, hasNone := scores[model.NonePattern]
	assert.False(hasNone)
}

func TestRollupFoldsSubPatterns(t *testing.T) {
	scores := model.Scores{
		model.Jumpstream(model.SubJS):      2,
		model.Jumpstream(model.SubJT):      1,
		model.Jack(model.SubChordjack):     1.5,
		model.Handstream(model.SubLightHs): 0.5,
	}
	rolled := Rollup(scores)

	assert := assert.New(t)
	assert.Equal(model.Scores{
		model.Jumpstream(model.SubAll): 3,
		model.Jack(model.SubAll):       1.5,
		model.Handstream(model.SubAll): 0.5,
	}, rolled)
}
