package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/patterndex/logger"
	"github.com/jsphweid/patterndex/report"
	"github.com/spf13/cobra"
)

var (
	watchInterval time.Duration
	watchQuiet    time.Duration
)

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 500*time.Millisecond, "how often to check the file")
	watchCmd.Flags().DurationVar(&watchQuiet, "quiet", time.Second, "wait this long after the last change before re-analyzing")
	watchCmd.Flags().IntVar(&midiKeys, "keys", 4, "key count used when importing MIDI files")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <chart>",
	Short: "Re-analyzes a chart whenever it is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watch(ctx, args[0], watchInterval, debounce.New(watchQuiet), func() {
			analyzeOnce(ctx, cmd, args[0])
		})
	},
}

func analyzeOnce(ctx context.Context, cmd *cobra.Command, path string) {
	b, raw, err := loadChart(ctx, path, midiKeys)
	if err != nil {
		logger.Get().Warn("could not load chart", slog.String("path", path), slog.Any("error", err))
		return
	}
	res, err := newAnalyzer().Beatmap(b)
	if err != nil {
		logger.Get().Warn("could not analyze chart", slog.String("path", path), slog.Any("error", err))
		return
	}
	rep := report.Build(b, res, raw, tuning.GetDominanceRatio())
	printScores(cmd.OutOrStdout(), rep.Dominant)
}

// watch polls path's modification time and hands every change to debounced.
// The first analysis runs immediately. Calls still pending when ctx ends are
// dropped.
func watch(ctx context.Context, path string, interval time.Duration, debounced func(func()), run func()) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	last := info.ModTime()
	run()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				logger.Get().Warn("stat failed", slog.String("path", path), slog.Any("error", err))
				continue
			}
			if info.ModTime().Equal(last) {
				continue
			}
			last = info.ModTime()
			logger.Get().Debug("chart changed", slog.String("path", path))
			debounced(func() {
				// the debounce timer can fire after watch has returned
				if ctx.Err() != nil {
					return
				}
				run()
			})
		}
	}
}
