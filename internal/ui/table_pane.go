package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/surfscope/surfscope/internal/forecast"
	"github.com/surfscope/surfscope/internal/openmeteo"
	"github.com/surfscope/surfscope/internal/timeseries"
	"github.com/surfscope/surfscope/internal/units"
)

const tableRows = 16

// renderTablePane renders the hourly forecast table from the current hour
func (m Model) renderTablePane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Hourly"))
	content.WriteString("\n\n")

	if m.data == nil || m.data.Marine.Len() == 0 {
		content.WriteString(mutedStyle.Render("No forecast loaded"))
		return paneStyle.Width(width).Render(content.String())
	}

	mar := m.data.Marine
	start := timeseries.NowIndex(mar.Time, time.Now())
	end := timeseries.WindowEnd(start, tableRows, mar.Len())
	weatherIdx := timeseries.BuildIndex(m.data.Weather.Time)

	waveLabel := m.settings.WaveUnit.Label()
	speedLabel := m.settings.SpeedUnit.Label()

	header := fmt.Sprintf("%-10s %8s %6s %8s %6s %9s %5s  %s",
		"Time", "Hs "+waveLabel, "Per", "Swl "+waveLabel, "SwlP",
		"Wind "+speedLabel, "Dir", "Rating")
	content.WriteString(labelStyle.Render(header))
	content.WriteString("\n")

	for i := start; i < end; i++ {
		hs := mar.At(openmeteo.VarWaveHeight, i)
		per := mar.At(openmeteo.VarWavePeriod, i)
		swellH := mar.At(openmeteo.VarSwellHeight, i)
		swellP := mar.At(openmeteo.VarSwellPeriod, i)

		var wind, windDir float64 = math.NaN(), math.NaN()
		if wi, ok := weatherIdx[mar.Time[i]]; ok {
			wind = m.data.Weather.At(openmeteo.VarWindSpeed, wi)
			windDir = m.data.Weather.At(openmeteo.VarWindDirection, wi)
		}

		idx := forecast.SurfIndex(hs, swellP)
		badge := forecast.Badge(idx)

		row := fmt.Sprintf("%-10s %8s %6s %8s %6s %9s %5s  ",
			shortTime(mar.Time[i]),
			tblFloat(units.WaveToDisplay(hs, m.settings.WaveUnit), 1),
			tblFloat(per, 0),
			tblFloat(units.WaveToDisplay(swellH, m.settings.WaveUnit), 1),
			tblFloat(swellP, 0),
			tblFloat(units.SpeedToDisplay(wind, m.settings.SpeedUnit), 0),
			tblCardinal(windDir))
		content.WriteString(valueStyle.Render(row))
		content.WriteString(badgeStyle(badge).Render(badge))
		content.WriteString("\n")
	}

	return paneStyle.Width(width).Render(content.String())
}

func tblFloat(v float64, prec int) string {
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%.*f", prec, v)
}

func tblCardinal(deg float64) string {
	if math.IsNaN(deg) {
		return "—"
	}
	return forecast.DegToCardinal(deg)
}
