package score

import "github.com/jsphweid/patterndex/model"

// DefaultMaxDensity caps how much a single dense measure can outweigh an
// average one.
const DefaultMaxDensity = 5.0

// Weights is the multiplier applied to each sub-pattern. Patterns missing
// from the table weigh nothing.
type Weights = map[model.Pattern]float64

func DefaultWeights() Weights {
	return Weights{
		model.Jack(model.SubDenseChordjack): 0.8,
		model.Jack(model.SubSpeedjack):      0.9,
		model.Jack(model.SubChordjack):      1.0,
		model.Jack(model.SubChordStream):    1.1,

		model.Handstream(model.SubLightHs):  1.1,
		model.Handstream(model.SubAnchorHs): 1.1,
		model.Handstream(model.SubDenseHs):  0.8,
		model.Handstream(model.SubHS):       1.0,

		model.Jumpstream(model.SubJT):       0.7,
		model.Jumpstream(model.SubAnchorJs): 1.1,
		model.Jumpstream(model.SubLightJs):  1.1,
		model.Jumpstream(model.SubJS):       1.0,

		model.Singlestream(model.SubSinglestream): 1.1,
	}
}

type Scorer struct {
	Weights    Weights
	MaxDensity float64
}

func Default() Scorer {
	return Scorer{Weights: DefaultWeights(), MaxDensity: DefaultMaxDensity}
}

// Density weighs a measure's npm against the chart average.
func (s Scorer) Density(npm int, averageNPM float64) float64 {
	switch {
	case npm <= 0:
		return 0
	case averageNPM <= 0:
		return 1
	}
	ratio := float64(npm) / averageNPM
	if ratio > s.MaxDensity {
		return s.MaxDensity
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}

func (s Scorer) Weight(p model.Pattern) float64 {
	return s.Weights[p]
}

func (s Scorer) Value(m *model.Measure, averageNPM float64) float64 {
	return s.Density(m.NPM, averageNPM) * s.Weight(m.Pattern)
}

// Values computes the weighted value of every measure without storing it.
func (s Scorer) Values(measures []*model.Measure, averageNPM float64) []float64 {
	res := make([]float64, len(measures))
	for i, m := range measures {
		res[i] = s.Value(m, averageNPM)
	}
	return res
}

// Apply stores values computed by Values on their measures.
func Apply(measures []*model.Measure, values []float64) {
	for i, m := range measures {
		m.Value = values[i]
	}
}

// Aggregate sums measure values per pattern, in measure order. Unclassified
// measures do not contribute.
func Aggregate(measures []*model.Measure) model.Scores {
	scores := make(model.Scores)
	for _, m := range measures {
		if m.Pattern.IsNone() {
			continue
		}
		scores[m.Pattern] += m.Value
	}
	return scores
}

// Rollup folds every sub-pattern into its category total.
func Rollup(scores model.Scores) model.Scores {
	res := make(model.Scores, len(scores))
	for _, p := range sortedPatterns(scores) {
		res[p.ToAll()] += scores[p]
	}
	return res
}
