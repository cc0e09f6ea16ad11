package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"mazepath/internal/model"
)

// PathCells maps the cell index of every revealed path cell to its position
// on the path.
func PathCells(snap model.Snapshot) map[int]int {
	onPath := make(map[int]int, snap.Revealed)
	for i := 0; i < snap.Revealed; i++ {
		pt := snap.Path[i]
		onPath[pt.X+pt.Y*snap.Cols] = i
	}
	return onPath
}

// Shade returns the interior color of the cell at index. Revealed path cells
// win over the entry and exit markers, which win over the generator's current
// cell (only drawn if withCurrent is set).
func (p Palette) Shade(snap model.Snapshot, index int, onPath map[int]int,
	gradient, withCurrent bool) colorful.Color {
	cell := &(snap.Cells[index])
	if _, ok := onPath[index]; ok {
		return p.Path
	}
	if index == 0 {
		return p.Start
	}
	if index == len(snap.Cells)-1 {
		return p.End
	}
	if cur := snap.Current; withCurrent && (cur != nil) &&
		(cur.X == cell.X) && (cur.Y == cell.Y) {
		return p.Current
	}
	if !cell.Visited {
		return p.Background
	}
	if gradient {
		return p.Gradient(cell.Step, snap.MaxStep)
	}
	return p.Cell
}

// Passage returns the color of the opening between two adjacent cells whose
// shared wall has been removed.
func (p Palette) Passage(snap model.Snapshot, a, b int, onPath map[int]int,
	gradient bool) colorful.Color {
	_, aOn := onPath[a]
	_, bOn := onPath[b]
	if aOn && bOn {
		return p.Path
	}
	if !gradient {
		return p.Cell
	}
	step := snap.Cells[a].Step
	if s := snap.Cells[b].Step; s > step {
		step = s
	}
	return p.Gradient(step, snap.MaxStep)
}
