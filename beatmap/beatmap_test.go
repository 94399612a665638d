package beatmap

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsphweid/patterndex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	b, err := ReadFile("testdata/sample.osu")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("Sample Stream", b.Title)
	assert.Equal("Patterndex", b.Artist)
	assert.Equal("Easy 4K", b.Version)
	assert.Equal("tester", b.Creator)
	assert.Equal(model.ModeMania, b.Mode)
	assert.Equal(4, b.KeyCount())

	assert.Equal([]model.TimingSegment{
		{Time: 0, BeatLength: 500},
		{Time: 2000, BeatLength: 250},
	}, b.TimingSegments)

	require.Len(t, b.HitObjects, 13)
	assert.Equal(model.HitObject{StartTime: 0, X: 64, Y: 192, Kind: model.KindCircle}, b.HitObjects[0])
	assert.Equal(model.KindCircle, b.HitObjects[3].Kind)
	assert.Equal(model.KindHold, b.HitObjects[7].Kind)
	assert.Equal(model.KindSlider, b.HitObjects[8].Kind)
	assert.Equal(model.KindSpinner, b.HitObjects[9].Kind)
}

func TestParseStripsByteOrderMark(t *testing.T) {
	b, err := Parse(strings.NewReader("\ufeffosu file format v14\n[General]\nMode: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, model.ModeMania, b.Mode)
}

func TestInheritedPointsWithoutFlagAreDropped(t *testing.T) {
	chart := "osu file format v5\n[TimingPoints]\n0,400\n800,-50\n"
	b, err := Parse(strings.NewReader(chart))
	require.NoError(t, err)
	assert.Equal(t, []model.TimingSegment{{Time: 0, BeatLength: 400}}, b.TimingSegments)
}

func TestParseRejectsMalformedCharts(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"no header":       "[General]\nMode: 3\n",
		"bad mode":        "osu file format v14\n[General]\nMode: x\n",
		"mode too high":   "osu file format v14\n[General]\nMode: 9\n",
		"short timing":    "osu file format v14\n[TimingPoints]\n100\n",
		"bad beat":        "osu file format v14\n[TimingPoints]\n0,fast,4\n",
		"short object":    "osu file format v14\n[HitObjects]\n64,192,100\n",
		"bad object x":    "osu file format v14\n[HitObjects]\nleft,192,100,1\n",
		"unknown type":    "osu file format v14\n[HitObjects]\n64,192,100,4\n",
		"bad circle size": "osu file format v14\n[Difficulty]\nCircleSize: big\n",
		"infinite beat":   "osu file format v14\n[TimingPoints]\n0,inf,4,1,0,100,1,0\n",
		"nan time":        "osu file format v14\n[TimingPoints]\nNaN,500,4,1,0,100,1,0\n",
		"infinite object": "osu file format v14\n[HitObjects]\n64,192,+Inf,1,0\n",
	}
	for name, chart := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(chart))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
		})
	}
}

func TestMissingFile(t *testing.T) {
	_, err := ReadFile("testdata/nope.osu")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformed))
}
