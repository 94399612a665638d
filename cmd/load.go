package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/jsphweid/patterndex/beatmap"
	"github.com/jsphweid/patterndex/fetch"
	"github.com/jsphweid/patterndex/file"
	"github.com/jsphweid/patterndex/midi"
	"github.com/jsphweid/patterndex/model"
)

// loadChart reads a chart from a URL, a .osu file or a MIDI file. It returns
// the raw bytes alongside so reports can be checksummed.
func loadChart(ctx context.Context, source string, midiKeys int) (*model.Beatmap, []byte, error) {
	if fetch.IsURL(source) {
		raw, err := fetch.Download(ctx, source)
		if err != nil {
			return nil, nil, err
		}
		b, err := beatmap.Parse(bytes.NewReader(raw))
		return b, raw, err
	}

	raw, err := os.ReadFile(source)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", source, err)
	}

	if file.IsMidi(source) {
		s, err := midi.ReadMidiFile(source)
		if err != nil {
			return nil, nil, err
		}
		b, err := midi.ToBeatmap(s, midiKeys)
		if err != nil {
			return nil, nil, fmt.Errorf("importing %s: %w", source, err)
		}
		return b, raw, nil
	}

	b, err := beatmap.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	return b, raw, nil
}
