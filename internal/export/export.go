// Package export writes forecast windows as CSV in canonical units
// (meters, km/h, °C) regardless of display settings.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/surfscope/surfscope/internal/models"
	"github.com/surfscope/surfscope/internal/openmeteo"
	"github.com/surfscope/surfscope/internal/timeseries"
)

// Columns is the CSV header, in output order.
var Columns = []string{
	"time",
	"hs_m",
	"period_s",
	"dir_deg",
	"swell_h_m",
	"swell_p_s",
	"swell_dir_deg",
	"wind_kmh",
	"wind_dir_deg",
	"gust_kmh",
	"sea_level_m",
	"sst_c",
	"current_kmh",
	"current_dir_deg",
}

// marine variable backing each column after the time column.
var marineVars = []string{
	openmeteo.VarWaveHeight,
	openmeteo.VarWavePeriod,
	openmeteo.VarWaveDirection,
	openmeteo.VarSwellHeight,
	openmeteo.VarSwellPeriod,
	openmeteo.VarSwellDirection,
}

var weatherVars = []string{
	openmeteo.VarWindSpeed,
	openmeteo.VarWindDirection,
	openmeteo.VarWindGusts,
}

var extraVars = []string{
	openmeteo.VarSeaLevel,
	openmeteo.VarSST,
	openmeteo.VarCurrentVelocity,
	openmeteo.VarCurrentDirection,
}

// Rows renders up to hours rows starting at the marine-axis index start.
// Missing values become empty cells. Weather values are matched to the
// marine axis by timestamp; hours without a weather row get empty wind
// cells.
func Rows(data *models.MergedForecast, start, hours int) [][]string {
	if data == nil || data.Marine.Len() == 0 || hours <= 0 {
		return nil
	}
	if start < 0 {
		start = 0
	}
	end := timeseries.WindowEnd(start, hours, data.Marine.Len())
	weatherIdx := timeseries.BuildIndex(data.Weather.Time)

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		ts := data.Marine.Time[i]
		row := make([]string, 0, len(Columns))
		row = append(row, ts)
		for _, v := range marineVars {
			row = append(row, cell(data.Marine.At(v, i)))
		}
		wi, ok := weatherIdx[ts]
		for _, v := range weatherVars {
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, cell(data.Weather.At(v, wi)))
		}
		for _, v := range extraVars {
			row = append(row, cell(data.Marine.At(v, i)))
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes header plus Rows to w.
func WriteCSV(w io.Writer, data *models.MergedForecast, start, hours int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range Rows(data, start, hours) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func cell(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
