package note

import (
	"log/slog"

	"github.com/jsphweid/patterndex/logger"
	"github.com/jsphweid/patterndex/model"
	"github.com/jsphweid/patterndex/util"
	"golang.org/x/exp/slices"
)

// x positions of each column, left to right, per supported key count
var columnPositions = map[int][]float32{
	4: {64, 192, 320, 448},
	7: {36, 109, 182, 256, 329, 402, 475},
}

func SupportedKeyCount(keyCount int) bool {
	_, ok := columnPositions[keyCount]
	return ok
}

// ColumnX returns the x position a hit object needs to land in column.
func ColumnX(keyCount int, column int) (float32, bool) {
	positions, ok := columnPositions[keyCount]
	if !ok || column < 0 || column >= len(positions) {
		return 0, false
	}
	return positions[column], true
}

// Column returns the column index for an exact x position.
func Column(keyCount int, x float32) (int, bool) {
	positions, ok := columnPositions[keyCount]
	if !ok {
		return 0, false
	}
	i := slices.Index(positions, x)
	return i, i >= 0
}

// Extract turns hit objects into notes ordered by timestamp. Objects landing
// on the same millisecond are merged into one note. Unsupported key counts
// produce no notes.
func Extract(objects []model.HitObject, keyCount int) []model.Note {
	if !SupportedKeyCount(keyCount) {
		logger.Get().Warn("unsupported key count, no notes extracted", slog.Int("keyCount", keyCount))
		return nil
	}

	grouped := make(map[int]model.Columns)
	for _, obj := range objects {
		if obj.Kind != model.KindCircle && obj.Kind != model.KindSlider {
			continue
		}
		column, ok := Column(keyCount, obj.X)
		if !ok {
			continue
		}
		timestamp := int(obj.StartTime)
		columns, ok := grouped[timestamp]
		if !ok {
			columns = make(model.Columns, keyCount)
			grouped[timestamp] = columns
		}
		columns[column] = true
	}

	timestamps := util.SortedKeys(grouped)
	notes := make([]model.Note, 0, len(timestamps))
	for _, timestamp := range timestamps {
		notes = append(notes, model.NewNote(timestamp, grouped[timestamp]))
	}
	return notes
}
