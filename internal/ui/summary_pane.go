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

// renderSummaryPane renders current conditions for the loaded spot
func (m Model) renderSummaryPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Now"))
	content.WriteString("\n\n")

	if m.data == nil || m.data.Marine.Len() == 0 {
		content.WriteString(mutedStyle.Render("No forecast loaded"))
		return paneStyle.Width(width).Render(content.String())
	}

	i := timeseries.NowIndex(m.data.Marine.Time, time.Now())
	mar := m.data.Marine

	hs := mar.At(openmeteo.VarWaveHeight, i)
	wavePeriod := mar.At(openmeteo.VarWavePeriod, i)
	waveDir := mar.At(openmeteo.VarWaveDirection, i)
	swellH := mar.At(openmeteo.VarSwellHeight, i)
	swellP := mar.At(openmeteo.VarSwellPeriod, i)
	swellDir := mar.At(openmeteo.VarSwellDirection, i)

	idx := forecast.SurfIndex(hs, swellP)
	badge := forecast.Badge(idx)

	// Rating line first
	content.WriteString(labelStyle.Render("Conditions: "))
	content.WriteString(badgeStyle(badge).Render(badge))
	content.WriteString("  " + starString(forecast.Stars(idx)))
	if !math.IsNaN(idx) {
		content.WriteString(mutedStyle.Render(fmt.Sprintf("  (index %.1f)", idx)))
	}
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("Waves: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%s @ %s from %s",
		m.fmtWave(hs), fmtSeconds(wavePeriod), fmtDirection(waveDir))))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Swell: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%s @ %s from %s",
		m.fmtWave(swellH), fmtSeconds(swellP), fmtDirection(swellDir))))
	content.WriteString("\n")

	if h2 := mar.At(openmeteo.VarSwell2Height, i); !math.IsNaN(h2) {
		content.WriteString(labelStyle.Render("Secondary: "))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%s @ %s from %s",
			m.fmtWave(h2),
			fmtSeconds(mar.At(openmeteo.VarSwell2Period, i)),
			fmtDirection(mar.At(openmeteo.VarSwell2Direction, i)))))
		content.WriteString("\n")
	}

	wind, windDir, gust := m.windAt(i)
	content.WriteString(labelStyle.Render("Wind: "))
	windStr := fmt.Sprintf("%s from %s", m.fmtSpeed(wind), fmtDirection(windDir))
	if !math.IsNaN(gust) {
		windStr += fmt.Sprintf(", gusts %s", m.fmtSpeed(gust))
	}
	content.WriteString(valueStyle.Render(windStr))
	if rel, ok := forecast.RelationToShore(windDir, m.faceDeg()); ok {
		content.WriteString("  " + relationStyle(string(rel)).Render(string(rel)))
	}
	content.WriteString("\n")

	if sst := mar.At(openmeteo.VarSST, i); !math.IsNaN(sst) {
		content.WriteString(labelStyle.Render("Water: "))
		content.WriteString(valueStyle.Render(m.fmtTemp(sst)))
		content.WriteString("\n")
	}

	if cur := mar.At(openmeteo.VarCurrentVelocity, i); !math.IsNaN(cur) {
		content.WriteString(labelStyle.Render("Current: "))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%s toward %s",
			m.fmtSpeed(cur), fmtDirection(mar.At(openmeteo.VarCurrentDirection, i)))))
		content.WriteString("\n")
	}

	if sl := mar.At(openmeteo.VarSeaLevel, i); !math.IsNaN(sl) {
		content.WriteString(labelStyle.Render("Sea level: "))
		content.WriteString(valueStyle.Render(m.fmtWave(sl) + " MSL"))
		content.WriteString("\n")
	}

	// Next tide, from the detected extrema ahead of now
	events := m.tideEvents()
	if len(events) > 0 {
		ev := events[0]
		content.WriteString("\n")
		content.WriteString(labelStyle.Render("Next tide: "))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%s %s (%s) — approximate",
			string(ev.Type), shortTime(ev.Time), m.fmtWave(ev.Height))))
		content.WriteString("\n")
	}

	return paneStyle.Width(width).Render(content.String())
}

// windAt resolves weather-axis values for a marine-axis hour by timestamp
func (m Model) windAt(i int) (speed, dir, gust float64) {
	speed, dir, gust = math.NaN(), math.NaN(), math.NaN()
	if m.data == nil || i < 0 || i >= m.data.Marine.Len() {
		return
	}
	wi, ok := timeseries.BuildIndex(m.data.Weather.Time)[m.data.Marine.Time[i]]
	if !ok {
		return
	}
	speed = m.data.Weather.At(openmeteo.VarWindSpeed, wi)
	dir = m.data.Weather.At(openmeteo.VarWindDirection, wi)
	gust = m.data.Weather.At(openmeteo.VarWindGusts, wi)
	return
}

// faceDeg resolves the shore-facing direction for the current spot, set on
// the spot itself or on its favorite entry.
func (m Model) faceDeg() *float64 {
	if m.spot == nil {
		return nil
	}
	if m.spot.FaceDeg != nil {
		return m.spot.FaceDeg
	}
	for _, f := range m.favorites {
		if f.ID == m.spot.ID {
			return f.FaceDeg
		}
	}
	return nil
}

func (m Model) fmtWave(meters float64) string {
	v := units.WaveToDisplay(meters, m.settings.WaveUnit)
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%.1f %s", v, m.settings.WaveUnit.Label())
}

func (m Model) fmtSpeed(kmh float64) string {
	v := units.SpeedToDisplay(kmh, m.settings.SpeedUnit)
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%.0f %s", v, m.settings.SpeedUnit.Label())
}

func (m Model) fmtTemp(c float64) string {
	v := units.TempToDisplay(c, m.settings.TempUnit)
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%.1f%s", v, m.settings.TempUnit.Label())
}

func fmtSeconds(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%.0fs", v)
}

func fmtDirection(deg float64) string {
	if math.IsNaN(deg) {
		return "—"
	}
	return fmt.Sprintf("%s (%.0f°)", forecast.DegToCardinal(deg), deg)
}

func starString(n int) string {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		if i < n {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}

// shortTime renders an hourly timestamp as "Mon 15:04"
func shortTime(ts string) string {
	t, err := timeseries.Parse(ts)
	if err != nil {
		return ts
	}
	return t.Format("Mon 15:04")
}
