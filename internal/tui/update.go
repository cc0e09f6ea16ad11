package tui

import (
	"time"

	"mazepath/internal/maze"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgTick is one beat of the frame clock.
type MsgTick time.Time

// MsgError indicates the maze broke and the animation cannot continue.
type MsgError error

// tickCmd schedules the next frame.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return MsgTick(t)
	})
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Help.Width = msg.Width
		return m, nil

	case MsgTick:
		if m.Err != nil || m.Session.Phase() == maze.PhaseSolved {
			// Final frame stays on screen until the user quits.
			return m, nil
		}
		if err := m.Session.Tick(); err != nil {
			return m, func() tea.Msg { return MsgError(err) }
		}
		return m, tickCmd(m.FPS)

	case MsgError:
		m.Err = msg
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
	}

	return m, nil
}
