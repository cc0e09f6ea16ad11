package tui

import (
	"mazepath/internal/config"
	"mazepath/internal/maze"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap lists the only input the animation accepts.
type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Session *maze.Session
	Err     error

	// UI State
	FPS        int
	WindowSize tea.WindowSizeMsg

	// Components
	Progress progress.Model
	Help     help.Model
	Keys     keyMap
}

// InitialModel returns the initial state, with a fresh maze ready to carve.
func InitialModel(cfg config.Config) (AppModel, error) {
	s, err := maze.NewSeededSession(cfg.Cols(), cfg.Rows(), cfg.Seed)
	if err != nil {
		return AppModel{}, err
	}
	p := progress.New(
		progress.WithGradient("#B0C4B1", "#FE5F55"),
		progress.WithoutPercentage(),
	)
	p.Width = 2 * (2*cfg.Cols() + 1)

	return AppModel{
		Session:  s,
		FPS:      cfg.FPS,
		Progress: p,
		Help:     help.New(),
		Keys:     keys,
	}, nil
}
