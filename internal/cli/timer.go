package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanfide/jadwalin/internal/tui"
)

type TimerCountdownCmd struct {
	Minutes int    `short:"m" help:"Session length in minutes." default:"25"`
	Title   string `help:"Session label." default:"Study session"`
}

func (c *TimerCountdownCmd) Validate() error {
	if c.Minutes <= 0 {
		return fmt.Errorf("minutes must be positive")
	}
	return nil
}

func (c *TimerCountdownCmd) Run(ctx *Context) error {
	model := tui.NewCountdown(c.Title, time.Duration(c.Minutes)*time.Minute)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("timer failed: %w", err)
	}
	if m, ok := final.(tui.CountdownModel); ok && m.Done() {
		fmt.Printf("Done: %s (%d min)\n", c.Title, c.Minutes)
	}
	return nil
}

type TimerPomodoroCmd struct {
	Work   int `short:"w" help:"Work phase length in minutes." default:"25"`
	Break  int `short:"b" help:"Break phase length in minutes." default:"5"`
	Cycles int `short:"c" help:"Number of work cycles." default:"4"`
}

func (c *TimerPomodoroCmd) Validate() error {
	if c.Work <= 0 || c.Break <= 0 {
		return fmt.Errorf("work and break lengths must be positive")
	}
	if c.Cycles <= 0 {
		return fmt.Errorf("cycles must be positive")
	}
	return nil
}

func (c *TimerPomodoroCmd) Run(ctx *Context) error {
	model := tui.NewPomodoro(
		time.Duration(c.Work)*time.Minute,
		time.Duration(c.Break)*time.Minute,
		c.Cycles,
	)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("timer failed: %w", err)
	}
	if m, ok := final.(tui.PomodoroModel); ok && m.Done() {
		fmt.Printf("Done: %d pomodoro cycle(s).\n", c.Cycles)
	}
	return nil
}
