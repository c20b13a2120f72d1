package ui

import (
	"strings"
)

// RenderConsolePanel renders the command console: echoed lines above a
// prompt with the line being typed. Type "avg" and press enter to print
// the published average.
func RenderConsolePanel(width, height int, lines []string, input string) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render("CONSOLE")
	help := StyleHelp.Render(" type avg + enter")

	var body []string
	body = append(body, title, help, "")
	for _, line := range lines {
		if strings.HasPrefix(line, "> ") {
			body = append(body, StyleConsoleEcho.Render(truncate(line, innerW)))
		} else {
			body = append(body, StyleConsoleOut.Render(truncate(line, innerW)))
		}
	}

	prompt := StylePrompt.Render("> ") + StyleConsoleOut.Render(input) + StylePrompt.Render("_")
	body = append(body, prompt)

	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(strings.Join(body, "\n"))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
