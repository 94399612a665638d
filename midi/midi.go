package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/patterndex/model"
	"github.com/jsphweid/patterndex/note"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNoMetricTicks = errors.New("midi file does not use metric ticks")

const defaultBPM = 120.0

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

type tempoChange struct {
	absTicks int64
	bpm      float64
}

type noteOn struct {
	absTicks int64
	key      uint8
}

// ToBeatmap lays the file's note-ons out on keyCount columns, key modulo
// keyCount, with one timing segment per tempo change.
func ToBeatmap(s *smf.SMF, keyCount int) (*model.Beatmap, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, ErrNoMetricTicks
	}

	var tempos []tempoChange
	var notes []noteOn
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			var bpm float64
			switch {
			case event.Message.GetMetaTempo(&bpm):
				tempos = append(tempos, tempoChange{absTicks: absTicks, bpm: bpm})
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				if velocity > 0 {
					notes = append(notes, noteOn{absTicks: absTicks, key: key})
				}
			}
		}
	}

	return layout(notes, tempos, ticks.Resolution(), keyCount)
}

func layout(notes []noteOn, tempos []tempoChange, resolution uint16, keyCount int) (*model.Beatmap, error) {
	if !note.SupportedKeyCount(keyCount) {
		return nil, fmt.Errorf("cannot lay out midi on %d keys", keyCount)
	}
	if resolution == 0 {
		return nil, ErrNoMetricTicks
	}

	sort.SliceStable(tempos, func(i, j int) bool {
		return tempos[i].absTicks < tempos[j].absTicks
	})
	if len(tempos) == 0 || tempos[0].absTicks > 0 {
		tempos = append([]tempoChange{{absTicks: 0, bpm: defaultBPM}}, tempos...)
	}

	tm := newTempoMap(tempos, resolution)
	b := &model.Beatmap{
		Mode:       model.ModeMania,
		CircleSize: float32(keyCount),
	}
	for i, tc := range tm.changes {
		// a later change at the same tick replaces the earlier one
		if i+1 < len(tm.changes) && tm.changes[i+1].absTicks == tc.absTicks {
			continue
		}
		b.TimingSegments = append(b.TimingSegments, model.TimingSegment{
			Time:       int(tm.startMs[i]),
			BeatLength: 60000 / tc.bpm,
		})
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].absTicks < notes[j].absTicks
	})
	for _, n := range notes {
		x, _ := note.ColumnX(keyCount, int(n.key)%keyCount)
		b.HitObjects = append(b.HitObjects, model.HitObject{
			StartTime: tm.ms(n.absTicks),
			X:         x,
			Y:         192,
			Kind:      model.KindCircle,
		})
	}
	return b, nil
}

type tempoMap struct {
	changes    []tempoChange
	startMs    []float64
	resolution float64
}

func newTempoMap(changes []tempoChange, resolution uint16) tempoMap {
	tm := tempoMap{changes: changes, resolution: float64(resolution)}
	tm.startMs = make([]float64, len(changes))
	for i := 1; i < len(changes); i++ {
		prev := changes[i-1]
		tm.startMs[i] = tm.startMs[i-1] + tm.span(changes[i].absTicks-prev.absTicks, prev.bpm)
	}
	return tm
}

func (tm tempoMap) span(ticks int64, bpm float64) float64 {
	return float64(ticks) * 60000 / (bpm * tm.resolution)
}

func (tm tempoMap) ms(absTicks int64) float64 {
	i := sort.Search(len(tm.changes), func(i int) bool {
		return tm.changes[i].absTicks > absTicks
	}) - 1
	if i < 0 {
		i = 0
	}
	return tm.startMs[i] + tm.span(absTicks-tm.changes[i].absTicks, tm.changes[i].bpm)
}
