package file

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FileNumToChartPath numbers the charts of one indexing run.
type FileNumToChartPath = map[uint32]string

var chartExtensions = []string{".osu", ".mid", ".midi"}

func IsChart(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range chartExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func IsMidi(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".mid" || ext == ".midi"
}

// GatherChartPaths walks root for chart files in lexical order. A maxNum of
// zero means no limit.
func GatherChartPaths(root string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsChart(s) {
			return nil
		}
		if maxNum > 0 && len(res) >= maxNum {
			return filepath.SkipAll
		}
		res = append(res, s)
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, err
	}
	sort.Strings(res)
	return res, nil
}

func CreateFileNumMap(paths []string) FileNumToChartPath {
	res := make(FileNumToChartPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}
