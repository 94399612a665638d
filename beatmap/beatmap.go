package beatmap

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jsphweid/patterndex/model"
	"github.com/mdobak/go-xerrors"
)

var ErrMalformed = errors.New("malformed chart")

const formatHeader = "osu file format v"

// hit object type bits
const (
	typeCircle  = 1
	typeSlider  = 2
	typeSpinner = 8
	typeHold    = 128
)

// circle size when [Difficulty] does not say otherwise
const defaultCircleSize = 5

type parser struct {
	b       *model.Beatmap
	section string
	line    int
}

func (p *parser) fail(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return xerrors.New(fmt.Errorf("line %d: %s: %w", p.line, msg, ErrMalformed))
}

// parseFloat rejects inf and nan, which strconv accepts.
func parseFloat(s string, bitSize int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), bitSize)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return v, nil
}

func ReadFile(path string) (*model.Beatmap, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart %s: %w", path, err)
	}
	return Parse(bytes.NewReader(dat))
}

// Parse reads a chart in the .osu text format.
func Parse(r io.Reader) (*model.Beatmap, error) {
	p := &parser{b: &model.Beatmap{CircleSize: defaultCircleSize}}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	sawHeader := false
	for scanner.Scan() {
		p.line++
		line := strings.TrimSpace(scanner.Text())
		if p.line == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if !sawHeader {
			if !strings.HasPrefix(line, formatHeader) {
				return nil, p.fail("missing %q header", formatHeader)
			}
			sawHeader = true
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			p.section = line[1 : len(line)-1]
			continue
		}
		if err := p.parseLine(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}
	if !sawHeader {
		return nil, p.fail("empty chart")
	}
	return p.b, nil
}

func (p *parser) parseLine(line string) error {
	switch p.section {
	case "General", "Metadata", "Difficulty":
		return p.parseKeyValue(line)
	case "TimingPoints":
		return p.parseTimingPoint(line)
	case "HitObjects":
		return p.parseHitObject(line)
	}
	return nil
}

func (p *parser) parseKeyValue(line string) error {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return nil
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch p.section + "." + key {
	case "General.Mode":
		mode, err := strconv.Atoi(value)
		if err != nil || mode < 0 || mode > int(model.ModeMania) {
			return p.fail("bad mode %q", value)
		}
		p.b.Mode = model.GameMode(mode)
	case "Metadata.Title":
		p.b.Title = value
	case "Metadata.Artist":
		p.b.Artist = value
	case "Metadata.Version":
		p.b.Version = value
	case "Metadata.Creator":
		p.b.Creator = value
	case "Difficulty.CircleSize":
		cs, err := parseFloat(value, 32)
		if err != nil {
			return p.fail("bad circle size %q", value)
		}
		p.b.CircleSize = float32(cs)
	}
	return nil
}

// parseTimingPoint keeps uninherited points only. Inherited points change
// scroll speed, not the beat grid.
func (p *parser) parseTimingPoint(line string) error {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return p.fail("timing point needs time and beat length")
	}
	t, err := parseFloat(fields[0], 64)
	if err != nil {
		return p.fail("bad timing point time %q", fields[0])
	}
	beatLength, err := parseFloat(fields[1], 64)
	if err != nil {
		return p.fail("bad beat length %q", fields[1])
	}

	uninherited := beatLength > 0
	if len(fields) > 6 {
		uninherited = strings.TrimSpace(fields[6]) == "1"
	}
	if !uninherited {
		return nil
	}
	p.b.TimingSegments = append(p.b.TimingSegments, model.TimingSegment{
		Time:       int(t),
		BeatLength: beatLength,
	})
	return nil
}

func (p *parser) parseHitObject(line string) error {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return p.fail("hit object needs x, y, time and type")
	}
	x, err := parseFloat(fields[0], 32)
	if err != nil {
		return p.fail("bad x %q", fields[0])
	}
	y, err := parseFloat(fields[1], 32)
	if err != nil {
		return p.fail("bad y %q", fields[1])
	}
	t, err := parseFloat(fields[2], 64)
	if err != nil {
		return p.fail("bad time %q", fields[2])
	}
	typ, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return p.fail("bad type %q", fields[3])
	}

	var kind model.HitObjectKind
	switch {
	case typ&typeCircle != 0:
		kind = model.KindCircle
	case typ&typeSlider != 0:
		kind = model.KindSlider
	case typ&typeSpinner != 0:
		kind = model.KindSpinner
	case typ&typeHold != 0:
		kind = model.KindHold
	default:
		return p.fail("unknown hit object type %d", typ)
	}

	p.b.HitObjects = append(p.b.HitObjects, model.HitObject{
		StartTime: t,
		X:         float32(x),
		Y:         float32(y),
		Kind:      kind,
	})
	return nil
}
