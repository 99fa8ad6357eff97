// Package tui holds the presentational timers. They render elapsed time
// only; nothing here touches the store or the scheduler.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type keyMap struct {
	Pause key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// CountdownModel counts a single fixed-length session down to zero.
type CountdownModel struct {
	title     string
	total     time.Duration
	remaining time.Duration
	paused    bool
	done      bool
	keys      keyMap
	help      help.Model
	progress  progress.Model
	width     int
	height    int
}

func NewCountdown(title string, d time.Duration) CountdownModel {
	return CountdownModel{
		title:     title,
		total:     d,
		remaining: d,
		keys:      defaultKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient()),
	}
}

func (m CountdownModel) Init() tea.Cmd {
	return tick()
}

func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(60, msg.Width-8)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			return m, nil
		}

	case TickMsg:
		if m.paused || m.done {
			return m, tick()
		}
		m.remaining -= time.Second
		if m.remaining <= 0 {
			m.remaining = 0
			m.done = true
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m CountdownModel) View() string {
	status := ""
	if m.paused {
		status = mutedStyle.Render("paused")
	} else if m.done {
		status = mutedStyle.Render("done!")
	}

	elapsed := 0.0
	if m.total > 0 {
		elapsed = 1 - float64(m.remaining)/float64(m.total)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.title),
		clockStyle.Render(formatRemaining(m.remaining)),
		m.progress.ViewAs(elapsed),
		status,
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Done reports whether the countdown ran to zero rather than being quit.
func (m CountdownModel) Done() bool {
	return m.done
}
