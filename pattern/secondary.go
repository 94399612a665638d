package pattern

import (
	"github.com/jsphweid/patterndex/model"
	"gonum.org/v1/gonum/stat"
)

type rule struct {
	category model.Category
	matches  func([]model.Note) bool
}

// ladder is checked top to bottom and the first matching rule wins. A jack
// outranks every chord shape; hands outrank jumps, jumps outrank singles.
var ladder = []rule{
	{model.CategoryJack, HasJack},
	{model.CategoryHandstream, hasTag(model.TagHand)},
	{model.CategoryJumpstream, hasTag(model.TagJump)},
	{model.CategorySinglestream, hasTag(model.TagSingle)},
}

// Secondary picks the category of a measure from its notes.
func Secondary(notes []model.Note) model.Category {
	for _, r := range ladder {
		if r.matches(notes) {
			return r.category
		}
	}
	return model.CategoryNone
}

// AverageNPM is the mean notes-per-measure over the whole chart, or 0 for a
// chart without measures.
func AverageNPM(measures []*model.Measure) float64 {
	if len(measures) == 0 {
		return 0
	}
	npms := make([]float64, len(measures))
	for i, m := range measures {
		npms[i] = float64(m.NPM)
	}
	return stat.Mean(npms, nil)
}
