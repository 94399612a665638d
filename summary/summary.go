package summary

import (
	"sort"

	"github.com/jsphweid/patterndex/model"
	"github.com/jsphweid/patterndex/score"
	"gonum.org/v1/gonum/stat"
)

// DefaultRatio keeps every pattern scoring at least half of the best one.
const DefaultRatio = 0.5

// Ordered lists scores from highest to lowest. Equal scores keep pattern
// order so the output is stable between runs.
func Ordered(scores model.Scores) []model.PatternScore {
	res := make([]model.PatternScore, 0, len(scores))
	for p, s := range scores {
		res = append(res, model.PatternScore{Pattern: p, Score: s})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Score != res[j].Score {
			return res[i].Score > res[j].Score
		}
		return res[i].Pattern.Less(res[j].Pattern)
	})
	return res
}

// TopTier returns the leading entries scoring at least ratio times the
// maximum.
func TopTier(scores model.Scores, ratio float64) []model.PatternScore {
	ordered := Ordered(scores)
	if len(ordered) == 0 {
		return ordered
	}
	threshold := ordered[0].Score * ratio
	for i, entry := range ordered {
		if entry.Score < threshold {
			return ordered[:i]
		}
	}
	return ordered
}

func MaxValues(scores model.Scores) []model.PatternScore {
	return TopTier(scores, DefaultRatio)
}

func SumBySecondaryType(scores model.Scores) model.Scores {
	return score.Rollup(scores)
}

func MaxBySecondaryType(scores model.Scores) []model.PatternScore {
	return TopTier(SumBySecondaryType(scores), DefaultRatio)
}

// Density summarises notes-per-measure across the chart.
func Density(measures []*model.Measure) model.DensityStats {
	stats := model.DensityStats{Measures: len(measures)}
	if len(measures) == 0 {
		return stats
	}
	npms := make([]float64, len(measures))
	for i, m := range measures {
		npms[i] = float64(m.NPM)
		if m.NPM > stats.PeakNPM {
			stats.PeakNPM = m.NPM
			stats.PeakStart = m.StartTime
		}
	}
	if len(npms) > 1 {
		stats.MeanNPM, stats.StdDevNPM = stat.MeanStdDev(npms, nil)
	} else {
		stats.MeanNPM = npms[0]
	}
	return stats
}
