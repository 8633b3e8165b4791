package ui

import (
	"fmt"
	"strings"

	"github.com/surfscope/surfscope/internal/models"
	"github.com/surfscope/surfscope/internal/units"
)

// renderAlertsPane renders the configured alerts with a selection cursor
func (m Model) renderAlertsPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Alerts"))
	content.WriteString("\n\n")

	if len(m.alerts) == 0 {
		content.WriteString(mutedStyle.Render("No alerts — press N to watch the loaded spot"))
		return paneStyle.Width(width).Render(content.String())
	}

	for i, a := range m.alerts {
		cursor := "  "
		if i == m.alertCursor {
			cursor = "> "
		}

		check := "[ ]"
		nameStyle := mutedStyle
		if a.Enabled {
			check = "[x]"
			nameStyle = valueStyle
		}

		content.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor, successStyle.Render(check), nameStyle.Bold(true).Render(a.Name)))
		content.WriteString("     " + mutedStyle.Render(m.alertSummary(a)) + "\n")
	}

	return paneStyle.Width(width).Render(content.String())
}

// alertSummary renders an alert's conditions in display units
func (m Model) alertSummary(a models.Alert) string {
	var parts []string

	if a.MinHs != nil {
		parts = append(parts, fmt.Sprintf("waves ≥ %.1f %s",
			units.WaveToDisplay(*a.MinHs, m.settings.WaveUnit), m.settings.WaveUnit.Label()))
	}
	if a.MinSwellH != nil {
		parts = append(parts, fmt.Sprintf("swell ≥ %.1f %s",
			units.WaveToDisplay(*a.MinSwellH, m.settings.WaveUnit), m.settings.WaveUnit.Label()))
	}
	if a.MinSwellP != nil {
		parts = append(parts, fmt.Sprintf("period ≥ %.0fs", *a.MinSwellP))
	}
	if a.MinIndex != nil {
		parts = append(parts, fmt.Sprintf("index ≥ %.0f", *a.MinIndex))
	}
	if a.MaxWind != nil {
		parts = append(parts, fmt.Sprintf("wind ≤ %.0f %s",
			units.SpeedToDisplay(*a.MaxWind, m.settings.SpeedUnit), m.settings.SpeedUnit.Label()))
	}
	if a.WindDirCenter != nil {
		parts = append(parts, fmt.Sprintf("wind dir %.0f°±%.0f°", *a.WindDirCenter, a.Tolerance()))
	}
	if len(parts) == 0 {
		parts = append(parts, "no conditions")
	}

	scope := "current spot"
	if n := len(a.SpotIDs); n == 1 {
		scope = "1 spot"
	} else if n > 1 {
		scope = fmt.Sprintf("%d spots", n)
	}

	return fmt.Sprintf("%s • next %dh • %s", strings.Join(parts, ", "), a.Look(), scope)
}
