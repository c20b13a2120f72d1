package ui

import "github.com/charmbracelet/lipgloss"

// Amber phosphor palette
var (
	ColorAmberBright = lipgloss.Color("#FFB000")
	ColorAmber       = lipgloss.Color("#CC8800")
	ColorMidAmber    = lipgloss.Color("#8F5E00")
	ColorDimAmber    = lipgloss.Color("#4A3000")
	ColorTrace       = lipgloss.Color("#FFD75F")
	ColorError       = lipgloss.Color("#FF3300")
	ColorWarning     = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#221800")).
			Foreground(ColorAmberBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAmberBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorAmber)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#221800")).
			Foreground(ColorAmber).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorAmberBright).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMidAmber)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAmberBright).
			Bold(true).
			Padding(0, 1)

	StyleTrace = lipgloss.NewStyle().
			Foreground(ColorTrace)

	StyleReadout = lipgloss.NewStyle().
			Foreground(ColorAmberBright).
			Bold(true)

	StyleReadoutLabel = lipgloss.NewStyle().
				Foreground(ColorMidAmber)

	StyleConsoleEcho = lipgloss.NewStyle().
				Foreground(ColorAmber)

	StyleConsoleOut = lipgloss.NewStyle().
			Foreground(ColorAmberBright)

	StylePrompt = lipgloss.NewStyle().
			Foreground(ColorAmberBright).
			Bold(true)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimAmber)
)
