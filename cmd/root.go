package cmd

import (
	"context"
	"log/slog"

	"github.com/jsphweid/patterndex/analyze"
	"github.com/jsphweid/patterndex/config"
	"github.com/jsphweid/patterndex/constants"
	"github.com/jsphweid/patterndex/logger"
	"github.com/spf13/cobra"
)

var (
	envFile    string
	logLevel   string
	tuningPath string

	cfg    constants.Config
	tuning = config.EmptyTuningConfig()
)

var rootCmd = &cobra.Command{
	Use:   "patterndex",
	Short: "Classifies mania chart patterns",
	Long: `patterndex labels every measure of a 4K or 7K mania chart as jacks,
jumpstream, handstream or singlestream, and scores the chart by how much of
each pattern it contains.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			constants.LoadEnv(envFile)
		} else {
			constants.LoadEnv()
		}
		cfg = constants.FromEnv()
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		logger.Init(cfg.LogLevel)

		if tuningPath != "" {
			t, err := config.LoadTuningConfig(tuningPath)
			if err != nil {
				return err
			}
			tuning = t
			logger.Get().Debug("loaded tuning", slog.String("path", tuningPath))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "path to a .env file (default ./.env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&tuningPath, "tuning", "", "JSON file overriding weights and thresholds")
}

func newAnalyzer() *analyze.Analyzer {
	return analyze.New(tuning.Scorer())
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}
