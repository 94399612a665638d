package pattern

import "github.com/jsphweid/patterndex/model"

// Classification is the outcome of one pass over a chart: the chart-wide
// average and one pattern per measure, in the order the measures were given.
type Classification struct {
	AverageNPM float64
	Patterns   []model.Pattern
}

// Classify labels every measure. It reads the measures without changing them;
// the caller decides when to store the labels.
func Classify(measures []*model.Measure) Classification {
	res := Classification{
		AverageNPM: AverageNPM(measures),
		Patterns:   make([]model.Pattern, len(measures)),
	}
	for i, m := range measures {
		res.Patterns[i] = Measure(m)
	}
	return res
}

// Measure classifies a single measure.
func Measure(m *model.Measure) model.Pattern {
	return Refine(Secondary(m.Notes), m)
}

// Apply stores the labels of c on the measures it was computed from.
func (c Classification) Apply(measures []*model.Measure) {
	for i, m := range measures {
		m.Pattern = c.Patterns[i]
	}
}
