package model

type GameMode uint8

const (
	ModeOsu GameMode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

func (m GameMode) String() string {
	switch m {
	case ModeOsu:
		return "Osu"
	case ModeTaiko:
		return "Taiko"
	case ModeCatch:
		return "Catch"
	case ModeMania:
		return "Mania"
	}
	return "Unknown"
}

type HitObjectKind uint8

const (
	KindCircle HitObjectKind = iota
	KindSlider
	KindSpinner
	KindHold
)

type HitObject struct {
	StartTime float64
	X         float32
	Y         float32
	Kind      HitObjectKind
}

// TimingSegment is an uninherited timing point: from Time on, one beat lasts
// BeatLength milliseconds.
type TimingSegment struct {
	Time       int
	BeatLength float64
}

type Beatmap struct {
	Title      string
	Artist     string
	Version    string
	Creator    string
	Mode       GameMode
	CircleSize float32

	HitObjects     []HitObject
	TimingSegments []TimingSegment
}

// KeyCount is the column count of a mania chart, stored as its circle size.
func (b *Beatmap) KeyCount() int {
	return int(b.CircleSize)
}
