package cmd

import (
	"log/slog"

	"github.com/jsphweid/patterndex/db"
	"github.com/jsphweid/patterndex/logger"
	"github.com/jsphweid/patterndex/report"
	"github.com/jsphweid/patterndex/summary"
	"github.com/jsphweid/patterndex/util"
	"github.com/spf13/cobra"
)

var (
	analyzeRollup bool
	analyzeTop    bool
	analyzeJSON   bool
	analyzeStore  bool
	analyzeLimit  int
	midiKeys      int
)

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeRollup, "rollup", false, "sum sub-patterns into their category")
	analyzeCmd.Flags().BoolVar(&analyzeTop, "top", false, "only print the dominant tier")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeStore, "store", false, "save the report to the configured store")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 0, "print at most this many patterns")
	analyzeCmd.Flags().IntVar(&midiKeys, "keys", 4, "key count used when importing MIDI files")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <chart.osu|chart.mid|url>",
	Short: "Scores the patterns of one chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		b, raw, err := loadChart(ctx, args[0], midiKeys)
		if err != nil {
			return err
		}
		res, err := newAnalyzer().Beatmap(b)
		if err != nil {
			return err
		}
		rep := report.Build(b, res, raw, tuning.GetDominanceRatio())

		if analyzeStore {
			store, err := db.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SaveReport(ctx, rep); err != nil {
				return err
			}
			logger.Get().Info("report stored", slog.String("id", rep.ID), slog.String("checksum", rep.Checksum))
		}

		out := cmd.OutOrStdout()
		if analyzeJSON {
			return printJSON(out, rep)
		}

		scores := res.Scores
		if analyzeRollup {
			scores = summary.SumBySecondaryType(scores)
		}
		entries := summary.Ordered(scores)
		if analyzeTop {
			entries = summary.TopTier(scores, tuning.GetDominanceRatio())
		}
		if analyzeLimit > 0 {
			entries = entries[:util.Min(analyzeLimit, len(entries))]
		}
		printScores(out, entries)
		return nil
	},
}
