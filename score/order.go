package score

import (
	"sort"

	"github.com/jsphweid/patterndex/model"
	"golang.org/x/exp/maps"
)

// map iteration order is random, so rollup sums walk a sorted key list
func sortedPatterns(scores model.Scores) []model.Pattern {
	keys := maps.Keys(scores)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	return keys
}
