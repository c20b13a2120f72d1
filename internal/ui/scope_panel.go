package ui

import (
	"fmt"
	"strings"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// RenderScopePanel renders the average trace: a sparkline of recent
// published means, the current readout and the batch count.
func RenderScopePanel(width, height int, values []float64, average float64, batches uint64) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render("AVERAGE TRACE")

	readout := StyleReadoutLabel.Render(" avg ") +
		StyleReadout.Render(fmt.Sprintf("%8.2f", average)) +
		StyleReadoutLabel.Render("   batches ") +
		StyleReadout.Render(fmt.Sprintf("%d", batches))

	var trace string
	if len(values) == 0 {
		trace = StyleHelp.Render(" Waiting for first batch...")
	} else {
		trace = StyleTrace.Render(Sparkline(values, innerW))
	}

	scale := ""
	if len(values) > 0 {
		lo, hi := minMax(values)
		scale = StyleHelp.Render(fmt.Sprintf(" min %.1f  max %.1f", lo, hi))
	}

	content := strings.Join([]string{title, "", readout, "", trace, scale}, "\n")
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// Sparkline maps values onto block characters, newest value rightmost,
// keeping at most width points.
func Sparkline(values []float64, width int) string {
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := minMax(values)
	span := hi - lo

	var b strings.Builder
	for _, v := range values {
		level := 0
		if span > 0 {
			level = int((v - lo) / span * float64(len(sparkLevels)-1))
		} else {
			level = len(sparkLevels) / 2
		}
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
