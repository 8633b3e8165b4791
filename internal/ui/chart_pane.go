package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/surfscope/surfscope/internal/forecast"
	"github.com/surfscope/surfscope/internal/openmeteo"
	"github.com/surfscope/surfscope/internal/timeseries"
)

const chartHours = 48

// renderChartPane renders wave-height and surf-index sparklines for the
// next two days
func (m Model) renderChartPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Next 48 Hours"))
	content.WriteString("\n\n")

	if m.data == nil || m.data.Marine.Len() == 0 {
		content.WriteString(mutedStyle.Render("No forecast loaded"))
		return paneStyle.Width(width).Render(content.String())
	}

	mar := m.data.Marine
	start := timeseries.NowIndex(mar.Time, time.Now())
	end := timeseries.WindowEnd(start, chartHours, mar.Len())

	heights := make([]float64, 0, end-start)
	indexes := make([]float64, 0, end-start)
	for i := start; i < end; i++ {
		hs := mar.At(openmeteo.VarWaveHeight, i)
		heights = append(heights, zeroNaN(hs))
		indexes = append(indexes, zeroNaN(forecast.SurfIndex(hs, mar.At(openmeteo.VarSwellPeriod, i))))
	}

	chartW := width - 8
	if chartW < 24 {
		chartW = 24
	}
	if chartW > len(heights) {
		chartW = len(heights)
	}

	content.WriteString(labelStyle.Render(fmt.Sprintf("Wave height (peak %s)", m.fmtWave(maxOf(heights)))))
	content.WriteString("\n")
	content.WriteString(drawSparkline(heights, chartW, colorPrimary))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render(fmt.Sprintf("Surf index (peak %.1f)", maxOf(indexes))))
	content.WriteString("\n")
	content.WriteString(drawSparkline(indexes, chartW, colorSuccess))
	content.WriteString("\n")

	content.WriteString(mutedStyle.Render(fmt.Sprintf("%s → %s",
		shortTime(mar.Time[start]), shortTime(mar.Time[end-1]))))

	return paneStyle.Width(width).Render(content.String())
}

func drawSparkline(vals []float64, width int, color lipgloss.Color) string {
	sl := sparkline.New(width, 4,
		sparkline.WithMaxValue(maxOf(vals)),
		sparkline.WithStyle(lipgloss.NewStyle().Foreground(color)))
	sl.PushAll(vals)
	sl.Draw()
	return sl.View()
}

func zeroNaN(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func maxOf(vals []float64) float64 {
	max := 0.0
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	return max
}
