package report

import (
	"fmt"
	"strings"

	"mazepath/internal/maze"
	"mazepath/internal/model"
)

// GenerateReport renders the session as ASCII art followed by a summary. The
// verbose report adds the validation result and every path coordinate.
func GenerateReport(s *maze.Session, verbose bool) string {
	snap := s.Snapshot()
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Maze %s (%dx%d, seed %d)\n\n", snap.ID,
		snap.Cols, snap.Rows, snap.Seed))
	sb.WriteString(Draw(snap))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Phase:           %s\n", s.Phase()))
	sb.WriteString(fmt.Sprintf("Generator steps: %d\n", snap.MaxStep))
	sb.WriteString(fmt.Sprintf("Passages:        %d\n", s.Grid().Passages()))
	sb.WriteString(fmt.Sprintf("Path length:     %d cells\n", len(snap.Path)))

	if !verbose {
		return sb.String()
	}

	sb.WriteString("\nValidation:\n")
	if err := maze.Validate(s.Grid()); err != nil {
		sb.WriteString("  FAILED\n")
		for _, line := range strings.Split(strings.TrimSpace(err.Error()), "\n") {
			sb.WriteString("  " + line + "\n")
		}
	} else {
		sb.WriteString("  OK: perfect maze (spanning tree)\n")
	}

	sb.WriteString("\nPath:\n")
	for i, p := range snap.Path {
		sb.WriteString(fmt.Sprintf("  %3d. (%d, %d)\n", i+1, p.X, p.Y))
	}
	return sb.String()
}

// Draw renders a snapshot as ASCII art, marking the entry, exit, the revealed
// part of the path and, while carving, the generator position.
func Draw(snap model.Snapshot) string {
	if len(snap.Cells) == 0 {
		return "(empty maze)\n"
	}
	revealed := make(map[model.Point]bool, snap.Revealed)
	for _, p := range snap.Path[:snap.Revealed] {
		revealed[p] = true
	}

	var sb strings.Builder
	// Top boundary
	sb.WriteString(model.GlyphCorner)
	for col := 0; col < snap.Cols; col++ {
		sb.WriteString(model.GlyphWallH + model.GlyphCorner)
	}
	sb.WriteString("\n")

	for row := 0; row < snap.Rows; row++ {
		// Cell row
		cellRow := model.GlyphWallV
		for col := 0; col < snap.Cols; col++ {
			index := col + row*snap.Cols
			cell := snap.Cells[index]
			cellRow += cellGlyph(snap, index, revealed)
			if cell.Walls[1] {
				cellRow += model.GlyphWallV
			} else {
				cellRow += model.GlyphOpenV
			}
		}
		sb.WriteString(cellRow + "\n")

		// Wall row
		wallRow := model.GlyphCorner
		for col := 0; col < snap.Cols; col++ {
			cell := snap.Cells[col+row*snap.Cols]
			if cell.Walls[2] {
				wallRow += model.GlyphWallH
			} else {
				wallRow += model.GlyphOpenH
			}
			wallRow += model.GlyphCorner
		}
		sb.WriteString(wallRow + "\n")
	}
	return sb.String()
}

func cellGlyph(snap model.Snapshot, index int, revealed map[model.Point]bool) string {
	cell := snap.Cells[index]
	pt := model.Point{X: cell.X, Y: cell.Y}
	switch {
	case index == 0:
		return model.GlyphEntry
	case index == len(snap.Cells)-1:
		return model.GlyphExit
	case revealed[pt]:
		return model.GlyphPath
	case snap.Current != nil && *snap.Current == pt:
		return model.GlyphCurrent
	}
	return model.GlyphEmpty
}
