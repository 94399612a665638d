package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/patterndex/db"
	"github.com/jsphweid/patterndex/model"
	"github.com/jsphweid/patterndex/util"
	"github.com/spf13/cobra"
)

var (
	reportLimit    int
	reportChecksum string
)

func init() {
	reportCmd.Flags().IntVar(&reportLimit, "limit", 20, "number of reports to list, 0 for all")
	reportCmd.Flags().StringVar(&reportChecksum, "checksum", "", "only list reports of this chart checksum")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Lists stored reports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := db.Open(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		var reports []model.Report
		if reportChecksum != "" {
			reports, err = store.FindByChecksum(ctx, reportChecksum)
		} else {
			reports, err = store.ListReports(ctx, reportLimit)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		measureCounts := make([]int, 0, len(reports))
		for _, r := range reports {
			measureCounts = append(measureCounts, r.Density.Measures)
			fmt.Fprintf(out, "%s  %s - %s [%s] %dK  %s\n",
				r.ID, r.Artist, r.Title, r.Version, r.KeyCount, describe(r.DominantCategories))
		}
		fmt.Fprintf(out, "%d reports, %d measures\n", len(reports), util.Sum(measureCounts))
		return nil
	},
}

func describe(entries []model.PatternScore) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s %.2f", e.Pattern, e.Score))
	}
	return strings.Join(parts, ", ")
}
