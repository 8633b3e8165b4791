package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/surfscope/surfscope/internal/forecast"
	"github.com/surfscope/surfscope/internal/openmeteo"
	"github.com/surfscope/surfscope/internal/timeseries"
)

// renderTidePane renders detected tide extrema for the loaded spot
func (m Model) renderTidePane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Tides"))
	content.WriteString("\n\n")

	events := m.tideEvents()
	if len(events) == 0 {
		content.WriteString(mutedStyle.Render("No sea-level data for this spot"))
		return paneStyle.Width(width).Render(content.String())
	}

	for _, ev := range events {
		typeStr := string(ev.Type)
		style := valueStyle
		if ev.Type == forecast.TideHigh {
			style = successStyle
		}
		content.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			valueStyle.Render(shortTime(ev.Time)),
			style.Width(5).Render(typeStr),
			m.fmtWave(ev.Height)))
	}

	content.WriteString("\n")
	content.WriteString(mutedStyle.Render("Approximate, derived from hourly sea level — not a tide table"))

	return paneStyle.Width(width).Render(content.String())
}

func (m Model) tideEvents() []forecast.TideEvent {
	if m.data == nil || m.data.Marine.Len() == 0 {
		return nil
	}
	sea := m.data.Marine.Series(openmeteo.VarSeaLevel)
	if len(sea) != m.data.Marine.Len() {
		return nil
	}
	i := timeseries.NowIndex(m.data.Marine.Time, time.Now())
	return forecast.DetectTides(m.data.Marine.Time[i:], sea[i:])
}
