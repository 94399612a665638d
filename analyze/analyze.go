// Package analyze runs the full pattern pipeline over a chart: note
// extraction, measure grouping, classification and weighting.
package analyze

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsphweid/patterndex/logger"
	"github.com/jsphweid/patterndex/measure"
	"github.com/jsphweid/patterndex/model"
	"github.com/jsphweid/patterndex/note"
	"github.com/jsphweid/patterndex/pattern"
	"github.com/jsphweid/patterndex/score"
	"github.com/mdobak/go-xerrors"
)

var ErrUnsupportedMode = errors.New("unsupported game mode")

type Result struct {
	KeyCount   int
	AverageNPM float64
	Measures   []*model.Measure
	Scores     model.Scores
}

// Analyzer holds the scoring constants used for every chart it analyses.
type Analyzer struct {
	Scorer score.Scorer
}

func New(s score.Scorer) *Analyzer {
	return &Analyzer{Scorer: s}
}

func Default() *Analyzer {
	return New(score.Default())
}

// Beatmap analyses a parsed chart. Only mania charts are supported.
func (a *Analyzer) Beatmap(b *model.Beatmap) (*Result, error) {
	if b.Mode != model.ModeMania {
		return nil, xerrors.New(fmt.Errorf("%v: %w", b.Mode, ErrUnsupportedMode))
	}
	return a.Chart(b.HitObjects, b.TimingSegments, b.KeyCount())
}

// Chart analyses raw hit objects. The full measure set is built before any
// measure is classified because classification needs the chart-wide average.
func (a *Analyzer) Chart(objects []model.HitObject, segments []model.TimingSegment, keyCount int) (*Result, error) {
	notes := note.Extract(objects, keyCount)

	grouped, err := measure.Group(notes, segments)
	if err != nil {
		return nil, fmt.Errorf("grouping measures: %w", err)
	}
	measures := grouped.All()

	classification := pattern.Classify(measures)
	classification.Apply(measures)

	score.Apply(measures, a.Scorer.Values(measures, classification.AverageNPM))

	logger.Get().Debug("chart analysed",
		slog.Int("keyCount", keyCount),
		slog.Int("notes", len(notes)),
		slog.Int("measures", len(measures)),
		slog.Float64("averageNPM", classification.AverageNPM),
	)

	return &Result{
		KeyCount:   keyCount,
		AverageNPM: classification.AverageNPM,
		Measures:   measures,
		Scores:     score.Aggregate(measures),
	}, nil
}

func Beatmap(b *model.Beatmap) (*Result, error) {
	return Default().Beatmap(b)
}
