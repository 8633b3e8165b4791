package ui

import (
	"fmt"
	"strings"

	"github.com/surfscope/surfscope/internal/units"
)

// renderComparePane renders favorites ranked by their best upcoming hour
func (m Model) renderComparePane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Best Bet (next 24h)"))
	content.WriteString("\n\n")

	if m.comparing {
		content.WriteString(m.spinner.View())
		content.WriteString(" Fetching forecasts for all favorites...")
		return paneStyle.Width(width).Render(content.String())
	}

	if len(m.compareResults) == 0 {
		if m.compared {
			content.WriteString(mutedStyle.Render("No favorite had a scoreable hour in the window"))
		} else {
			content.WriteString(mutedStyle.Render("Press Enter to rank your favorites"))
		}
		return paneStyle.Width(width).Render(content.String())
	}

	waveLabel := m.settings.WaveUnit.Label()
	speedLabel := m.settings.SpeedUnit.Label()

	header := fmt.Sprintf("%-3s %-24s %7s %-10s %8s %6s %9s",
		"#", "Spot", "Score", "When", "Hs "+waveLabel, "SwlP", "Wind "+speedLabel)
	content.WriteString(labelStyle.Render(header))
	content.WriteString("\n")

	for i, r := range m.compareResults {
		row := fmt.Sprintf("%-3d %-24s %7.1f %-10s %8s %6s %9s",
			i+1,
			truncate(r.Spot.Place(), 24),
			r.Score,
			shortTime(r.Time),
			tblFloat(units.WaveToDisplay(r.WaveHeight, m.settings.WaveUnit), 1),
			tblFloat(r.SwellPeriod, 0),
			tblFloat(units.SpeedToDisplay(r.WindSpeed, m.settings.SpeedUnit), 0))

		style := valueStyle
		if i == 0 {
			style = successStyle.Bold(true)
		}
		content.WriteString(style.Render(row))
		content.WriteString("\n")
	}

	return paneStyle.Width(width).Render(content.String())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
