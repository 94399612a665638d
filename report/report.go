package report

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/patterndex/analyze"
	"github.com/jsphweid/patterndex/model"
	"github.com/jsphweid/patterndex/summary"
)

func Checksum(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Build summarises an analysis. raw is the chart as read from disk or the
// network and only feeds the checksum.
func Build(b *model.Beatmap, res *analyze.Result, raw []byte, ratio float64) model.Report {
	return model.Report{
		ID:                 uuid.New().String(),
		Checksum:           Checksum(raw),
		Title:              b.Title,
		Artist:             b.Artist,
		Version:            b.Version,
		KeyCount:           res.KeyCount,
		AverageNPM:         res.AverageNPM,
		CreatedAt:          time.Now().UTC(),
		Density:            summary.Density(res.Measures),
		Scores:             summary.Ordered(res.Scores),
		Dominant:           summary.TopTier(res.Scores, ratio),
		DominantCategories: summary.TopTier(summary.SumBySecondaryType(res.Scores), ratio),
	}
}
