package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/patterndex/model"
)

func printScores(w io.Writer, entries []model.PatternScore) {
	for _, e := range entries {
		fmt.Fprintf(w, "%-18s %8.3f\n", e.Pattern, e.Score)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
