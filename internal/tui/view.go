package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"mazepath/internal/maze"
	"mazepath/internal/model"
	"mazepath/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2292A4")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FE5F55")).
			Bold(true)
)

// block is the text drawn for one maze block: a cell, a wall or a corner.
// Two columns keep blocks roughly square in most terminal fonts.
const block = "  "

func (m AppModel) View() string {
	if m.Err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v\n", m.Err))
	}
	snap := m.Session.Snapshot()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("mazepath"))
	sb.WriteString(" ")
	sb.WriteString(statusStyle.Render(m.status(snap)))
	sb.WriteString("\n")
	sb.WriteString(m.Progress.ViewAs(m.progress(snap)))
	sb.WriteString("\n\n")
	sb.WriteString(renderMaze(snap, render.DefaultPalette))
	sb.WriteString("\n")
	sb.WriteString(m.Help.View(m.Keys))
	return sb.String()
}

func (m AppModel) status(snap model.Snapshot) string {
	switch m.Session.Phase() {
	case maze.PhaseGenerating:
		visited := 0
		for _, c := range snap.Cells {
			if c.Visited {
				visited++
			}
		}
		return fmt.Sprintf("carving %dx%d  %d/%d cells  step %d",
			snap.Cols, snap.Rows, visited, len(snap.Cells), snap.MaxStep)
	case maze.PhaseSolving:
		return fmt.Sprintf("solving  %d/%d path cells", snap.Revealed,
			len(snap.Path))
	}
	return fmt.Sprintf("solved  path of %d cells  seed %d", len(snap.Path),
		snap.Seed)
}

// progress is the fraction of the current phase that is done.
func (m AppModel) progress(snap model.Snapshot) float64 {
	if !snap.Solving {
		// Depth-first carving takes 2n-1 steps.
		total := 2*len(snap.Cells) - 1
		if total <= 0 {
			return 1
		}
		return float64(snap.MaxStep) / float64(total)
	}
	if len(snap.Path) == 0 {
		return 1
	}
	return float64(snap.Revealed) / float64(len(snap.Path))
}

// renderMaze draws the snapshot as a (2*cols+1) x (2*rows+1) grid of blocks.
// Cells sit on odd coordinates, walls and passages between them, and corners
// on even coordinates.
func renderMaze(snap model.Snapshot, pal render.Palette) string {
	onPath := render.PathCells(snap)
	styles := make(map[string]lipgloss.Style)
	paint := func(c colorful.Color) string {
		hex := c.Hex()
		style, ok := styles[hex]
		if !ok {
			style = lipgloss.NewStyle().Background(lipgloss.Color(hex))
			styles[hex] = style
		}
		return style.Render(block)
	}

	var sb strings.Builder
	for by := 0; by <= 2*snap.Rows; by++ {
		for bx := 0; bx <= 2*snap.Cols; bx++ {
			sb.WriteString(paint(blockColor(snap, pal, onPath, bx, by)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func blockColor(snap model.Snapshot, pal render.Palette, onPath map[int]int,
	bx, by int) colorful.Color {
	cellX, cellY := bx/2, by/2
	switch {
	case (bx%2 == 0) && (by%2 == 0):
		return pal.Wall
	case (bx%2 == 1) && (by%2 == 1):
		return pal.Shade(snap, cellX+cellY*snap.Cols, onPath, true, true)
	case bx%2 == 0:
		// Vertical edge between (cellX-1, cellY) and (cellX, cellY).
		if (cellX == 0) || (cellX == snap.Cols) {
			return pal.Wall
		}
		a := cellX - 1 + cellY*snap.Cols
		if snap.Cells[a].Walls[1] {
			return pal.Wall
		}
		return pal.Passage(snap, a, a+1, onPath, true)
	default:
		// Horizontal edge between (cellX, cellY-1) and (cellX, cellY).
		if (cellY == 0) || (cellY == snap.Rows) {
			return pal.Wall
		}
		a := cellX + (cellY-1)*snap.Cols
		if snap.Cells[a].Walls[2] {
			return pal.Wall
		}
		return pal.Passage(snap, a, a+snap.Cols, onPath, true)
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.FPS)
}
