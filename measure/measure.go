package measure

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsphweid/patterndex/model"
	"github.com/mdobak/go-xerrors"
)

var (
	ErrEmptyTimingSegments = errors.New("chart has no timing segments")
	ErrInvalidBeatLength   = errors.New("timing segment beat length must be positive and finite")
)

// SegmentFor returns the latest segment starting at or before timestamp, or
// the first segment when the timestamp precedes all of them.
func SegmentFor(timestamp int, segments []model.TimingSegment) model.TimingSegment {
	for i := len(segments) - 1; i >= 0; i-- {
		if timestamp >= segments[i].Time {
			return segments[i]
		}
	}
	return segments[0]
}

// StartOf computes the start of the measure containing timestamp. The maths
// runs in float32 and truncates after the multiply so boundaries line up
// with charts analysed by other tools.
func StartOf(timestamp int, seg model.TimingSegment) int {
	beatLen := float32(seg.BeatLength)
	offset := float32(timestamp-seg.Time) / beatLen
	index := int(math.Floor(float64(offset)))
	return seg.Time + int(float32(index)*beatLen)
}

func validate(segments []model.TimingSegment) error {
	if len(segments) == 0 {
		return xerrors.New(ErrEmptyTimingSegments)
	}
	for _, seg := range segments {
		if math.IsInf(seg.BeatLength, 0) || !(seg.BeatLength > 0) {
			return xerrors.New(fmt.Errorf("segment at %dms has beat length %v: %w", seg.Time, seg.BeatLength, ErrInvalidBeatLength))
		}
	}
	return nil
}

// Group assigns every note to its measure and counts notes per measure.
func Group(notes []model.Note, segments []model.TimingSegment) (*model.Measures, error) {
	if err := validate(segments); err != nil {
		return nil, err
	}

	measures := model.NewMeasures()
	for _, n := range notes {
		seg := SegmentFor(n.Timestamp, segments)
		measures.Add(StartOf(n.Timestamp, seg), n)
	}
	return measures, nil
}
