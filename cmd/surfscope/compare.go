package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compareHours int

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank favorites by their best hour in the coming window",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(false)
		if err != nil {
			return err
		}
		defer app.Close()

		results, err := app.comparator.Run(cmd.Context(), compareHours)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("no favorite had a scoreable hour in the window")
			return nil
		}

		fmt.Printf("%-3s %-30s %7s %-17s %6s %6s %6s\n",
			"#", "spot", "score", "when", "hs_m", "swlp", "wind")
		for i, r := range results {
			fmt.Printf("%-3d %-30s %7.1f %-17s %6s %6s %6s\n",
				i+1, r.Spot.Place(), r.Score, r.Time,
				cellFloat(r.WaveHeight, 1),
				cellFloat(r.SwellPeriod, 0),
				cellFloat(r.WindSpeed, 0))
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().IntVar(&compareHours, "hours", 24, "Scoring window in hours (6-48)")
}
