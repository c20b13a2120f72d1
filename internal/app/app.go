package app

import (
	"time"

	"adc-monitor.klederson.com/internal/config"
	"adc-monitor.klederson.com/internal/sampling"
	"adc-monitor.klederson.com/internal/source"
	"adc-monitor.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	pipeline *sampling.Pipeline
	src      source.Source
	console  *Console
	history  *AvgRing
}

// AppModel is the root Bubble Tea model for ADC Monitor.
type AppModel struct {
	width  int
	height int

	shared *shared

	// Polled once per frame from the pipeline
	average float64
	stats   sampling.Stats
}

// New creates a new AppModel around a constructed (not yet started) pipeline.
func New(pipeline *sampling.Pipeline, src source.Source) AppModel {
	return AppModel{
		shared: &shared{
			pipeline: pipeline,
			src:      src,
			console:  NewConsole(config.ConsoleScrollback),
			history:  NewAvgRing(config.HistoryLen),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		// The reader side of the published-average contract: poll at frame
		// cadence, tolerating values up to one batch stale.
		m.average = m.shared.pipeline.Average()
		m.stats = m.shared.pipeline.Stats()
		return m, tickCmd()

	case sampling.AveragePublishedMsg:
		m.shared.history.Push(msg.Average)
		return m, nil

	case SourceErrorMsg:
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.shared.pipeline.Stop()
		_ = m.shared.src.Close()
		return m, tea.Quit

	case tea.KeyCtrlP:
		m.shared.pipeline.Pause()
		return m, nil

	case tea.KeyCtrlR:
		m.shared.pipeline.Resume()
		return m, nil

	case tea.KeyEnter:
		m.shared.console.Submit(m.shared.pipeline.Average())
		return m, nil

	case tea.KeyBackspace:
		m.shared.console.Backspace()
		return m, nil

	case tea.KeySpace:
		m.shared.console.Type(" ")
		return m, nil

	case tea.KeyRunes:
		m.shared.console.Type(string(msg.Runes))
		return m, nil
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing ADC Monitor..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	scopeW := m.width * 3 / 5
	if scopeW < 30 {
		scopeW = 30
	}
	consoleW := m.width - scopeW
	if consoleW < 20 {
		consoleW = 20
		scopeW = m.width - consoleW
	}

	menuBar := ui.RenderMenuBar(m.width, m.shared.src.Name(), m.shared.pipeline.Running())

	scopePanel := ui.RenderScopePanel(scopeW, bodyH, m.shared.history.Values(), m.average, m.stats.Batches)

	consoleLines := m.shared.console.Lines(bodyH - 4)
	consolePanel := ui.RenderConsolePanel(consoleW, bodyH, consoleLines, m.shared.console.Input())

	statusBar := ui.RenderStatusBar(m.width, m.shared.pipeline.Running(), m.stats.Samples,
		m.stats.Drops, m.stats.Batches, m.stats.Fill,
		m.shared.pipeline.BatchSize(), m.shared.pipeline.Period())

	return ui.ComposeLayout(menuBar, scopePanel, consolePanel, statusBar)
}

// StartPipeline starts sampling with a reference to the tea program so
// published averages arrive as messages. Must be called before p.Run().
func (m *AppModel) StartPipeline(p *tea.Program) {
	m.shared.pipeline.Start(p)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
