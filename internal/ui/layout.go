package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the scope panel and console horizontally, with menu
// bar on top and status bar on bottom.
func ComposeLayout(menuBar, scopePanel, consolePanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, scopePanel, consolePanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
