package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestGatherChartPaths(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.osu"))
	touch(t, filepath.Join(root, "a.osu"))
	touch(t, filepath.Join(root, "nested", "c.MID"))
	touch(t, filepath.Join(root, "notes.txt"))

	paths, err := GatherChartPaths(root, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.osu"),
		filepath.Join(root, "b.osu"),
		filepath.Join(root, "nested", "c.MID"),
	}, paths)

	limited, err := GatherChartPaths(root, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestGatherChartPathsMissingRoot(t *testing.T) {
	_, err := GatherChartPaths(filepath.Join(t.TempDir(), "absent"), 0)
	assert.Error(t, err)
}

func TestCreateFileNumMap(t *testing.T) {
	m := CreateFileNumMap([]string{"x.osu", "y.osu"})
	assert.Equal(t, FileNumToChartPath{0: "x.osu", 1: "y.osu"}, m)
}

func TestIsMidi(t *testing.T) {
	assert.True(t, IsMidi("song.mid"))
	assert.True(t, IsMidi("song.MIDI"))
	assert.False(t, IsMidi("song.osu"))
}
