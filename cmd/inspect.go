package cmd

import (
	"fmt"

	"github.com/jsphweid/patterndex/summary"
	"github.com/spf13/cobra"
)

var inspectNotes bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectNotes, "notes", false, "print every note row under its measure")
	inspectCmd.Flags().IntVar(&midiKeys, "keys", 4, "key count used when importing MIDI files")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chart>",
	Short: "Lists every measure with its pattern and value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := loadChart(cmd.Context(), args[0], midiKeys)
		if err != nil {
			return err
		}
		res, err := newAnalyzer().Beatmap(b)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s - %s [%s] %dK\n", b.Artist, b.Title, b.Version, res.KeyCount)
		for _, m := range res.Measures {
			fmt.Fprintf(out, "%8d  npm=%-3d %-16s %6.3f\n", m.StartTime, m.NPM, m.Pattern, m.Value)
			if inspectNotes {
				for _, n := range m.Notes {
					fmt.Fprintf(out, "          %s\n", n)
				}
			}
		}

		d := summary.Density(res.Measures)
		fmt.Fprintf(out, "measures=%d mean npm=%.2f sd=%.2f peak=%d at %dms\n",
			d.Measures, d.MeanNPM, d.StdDevNPM, d.PeakNPM, d.PeakStart)
		return nil
	},
}
