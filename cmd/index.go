package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jsphweid/patterndex/db"
	"github.com/jsphweid/patterndex/file"
	"github.com/jsphweid/patterndex/logger"
	"github.com/jsphweid/patterndex/report"
	"github.com/jsphweid/patterndex/util"
	"github.com/spf13/cobra"
)

func init() {
	indexCmd.Flags().IntVar(&midiKeys, "keys", 4, "key count used when importing MIDI files")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index <dir> [max]",
	Short: "Analyzes and stores every chart under a directory",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("max must be a number: %w", err)
			}
			maxNum = n
		}
		return runIndex(cmd, args[0], maxNum)
	},
}

func runIndex(cmd *cobra.Command, root string, maxNum int) error {
	ctx := cmd.Context()
	paths, err := file.GatherChartPaths(root, maxNum)
	if err != nil {
		return fmt.Errorf("gathering charts under %s: %w", root, err)
	}

	store, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	log := logger.Get()
	analyzer := newAnalyzer()
	fileNumMap := file.CreateFileNumMap(paths)
	var stored int
	for i, num := range util.SortedKeys(fileNumMap) {
		path := fileNumMap[num]
		log.Info("processing chart", slog.Int("n", i+1), slog.Int("of", len(fileNumMap)), slog.String("path", path))

		b, raw, err := loadChart(ctx, path, midiKeys)
		if err != nil {
			log.Warn("skipping chart", slog.String("path", path), slog.Any("error", err))
			continue
		}
		res, err := analyzer.Beatmap(b)
		if err != nil {
			log.Warn("skipping chart", slog.String("path", path), slog.Any("error", err))
			continue
		}
		rep := report.Build(b, res, raw, tuning.GetDominanceRatio())
		if err := store.SaveReport(ctx, rep); err != nil {
			return err
		}
		stored++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "stored %d of %d charts\n", stored, len(paths))
	return nil
}
