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

var breakStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("78")).
	Bold(true).
	Padding(1, 2).
	Align(lipgloss.Center)

// PomodoroModel alternates work and break phases until every work cycle has
// run.
type PomodoroModel struct {
	work      time.Duration
	rest      time.Duration
	cycles    int
	cycle     int
	onBreak   bool
	remaining time.Duration
	paused    bool
	done      bool
	keys      keyMap
	help      help.Model
	progress  progress.Model
	width     int
	height    int
}

func NewPomodoro(work, rest time.Duration, cycles int) PomodoroModel {
	return PomodoroModel{
		work:      work,
		rest:      rest,
		cycles:    cycles,
		cycle:     1,
		remaining: work,
		keys:      defaultKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient()),
	}
}

func (m PomodoroModel) Init() tea.Cmd {
	return tick()
}

func (m PomodoroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if m.remaining > 0 {
			return m, tick()
		}
		return m.advance()
	}
	return m, nil
}

// advance moves to the next phase: work -> break, break -> next work cycle.
// The final work phase ends the session without a trailing break.
func (m PomodoroModel) advance() (tea.Model, tea.Cmd) {
	if !m.onBreak {
		if m.cycle >= m.cycles {
			m.remaining = 0
			m.done = true
			return m, tea.Quit
		}
		m.onBreak = true
		m.remaining = m.rest
		return m, tick()
	}

	m.onBreak = false
	m.cycle++
	m.remaining = m.work
	return m, tick()
}

func (m PomodoroModel) View() string {
	phaseTotal := m.work
	header := titleStyle.Render(fmt.Sprintf("Pomodoro %d/%d", m.cycle, m.cycles))
	if m.onBreak {
		phaseTotal = m.rest
		header = breakStyle.Render("Break")
	}

	status := ""
	if m.paused {
		status = mutedStyle.Render("paused")
	} else if m.done {
		status = mutedStyle.Render("all cycles done!")
	}

	elapsed := 0.0
	if phaseTotal > 0 {
		elapsed = 1 - float64(m.remaining)/float64(phaseTotal)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		header,
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

// Done reports whether every cycle completed rather than being quit early.
func (m PomodoroModel) Done() bool {
	return m.done
}
