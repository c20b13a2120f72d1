package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, running bool, samples, drops, batches uint64, fill uint32, batch int, period time.Duration) string {
	status := ""
	if running {
		status = StyleStatusRunning.Render("[SAMPLING]")
	} else {
		status = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" Samples: %d  Drops: %d  Batches: %d  Fill: %d/%d  Rate: %.0fHz",
		samples, drops, batches, fill, batch,
		1.0/period.Seconds())

	content := status + StyleStatusBar.Foreground(ColorAmber).Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
