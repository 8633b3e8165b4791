package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/surfscope/surfscope/internal/export"
	"github.com/surfscope/surfscope/internal/timeseries"
)

var (
	exportHours int
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export <lat> <lon>",
	Short: "Export a forecast window as CSV in canonical units",
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

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		start := timeseries.NowIndex(data.Marine.Time, time.Now())
		return export.WriteCSV(out, data, start, exportHours)
	},
}

func init() {
	exportCmd.Flags().IntVar(&exportHours, "hours", 48, "Hours to export, starting at the current hour")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
}
