package main

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/surfscope/surfscope/internal/forecast"
	"github.com/surfscope/surfscope/internal/openmeteo"
	"github.com/surfscope/surfscope/internal/timeseries"
)

var loadHours int

var loadCmd = &cobra.Command{
	Use:   "load <lat> <lon>",
	Short: "Fetch and print the merged forecast for a point",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("bad latitude %q", args[0])
		}
		lon, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad longitude %q", args[1])
		}

		app, err := newApp(false)
		if err != nil {
			return err
		}
		defer app.Close()

		set, err := app.store.LoadSettings()
		if err != nil {
			return err
		}

		data, err := app.loader.Load(cmd.Context(), lat, lon, set)
		if err != nil {
			return err
		}

		fmt.Printf("wave model: %s  merged extras: %v  timezone: %s\n\n",
			data.Models.WaveModel, data.Models.Merged, data.Timezone)

		mar := data.Marine
		start := timeseries.NowIndex(mar.Time, time.Now())
		end := timeseries.WindowEnd(start, loadHours, mar.Len())
		weatherIdx := timeseries.BuildIndex(data.Weather.Time)

		fmt.Printf("%-17s %6s %6s %6s %6s %7s %7s\n",
			"time", "hs_m", "per_s", "swl_m", "swlp", "wind", "rating")
		for i := start; i < end; i++ {
			hs := mar.At(openmeteo.VarWaveHeight, i)
			swellP := mar.At(openmeteo.VarSwellPeriod, i)

			wind := math.NaN()
			if wi, ok := weatherIdx[mar.Time[i]]; ok {
				wind = data.Weather.At(openmeteo.VarWindSpeed, wi)
			}

			fmt.Printf("%-17s %6s %6s %6s %6s %7s %7s\n",
				mar.Time[i],
				cellFloat(hs, 1),
				cellFloat(mar.At(openmeteo.VarWavePeriod, i), 0),
				cellFloat(mar.At(openmeteo.VarSwellHeight, i), 1),
				cellFloat(swellP, 0),
				cellFloat(wind, 0),
				forecast.Badge(forecast.SurfIndex(hs, swellP)))
		}
		return nil
	},
}

func init() {
	loadCmd.Flags().IntVar(&loadHours, "hours", 24, "Hours to print, starting at the current hour")
}

func cellFloat(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
