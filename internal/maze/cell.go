package maze

// Cell is a single square of the grid. Walls are stored per cell, but every
// wall removal goes through Grid.RemoveWallBetween so both copies of a shared
// edge always agree.
type Cell struct {
	// Column and row of the cell in the grid.
	X, Y int
	// Whether each wall is still standing, indexed by Direction.
	Walls [4]bool
	// Set once the generator has carved through the cell. Never reset.
	Visited bool
	// Generator tick at which this cell was last the current cell, or -1 if
	// it never was. Only used for presentation ordering.
	Step int
}

// HasWall reports whether the wall facing d is still standing.
func (c *Cell) HasWall(d Direction) bool {
	return c.Walls[d]
}

func newCell(x, y int) Cell {
	return Cell{
		X:     x,
		Y:     y,
		Walls: [4]bool{true, true, true, true},
		Step:  -1,
	}
}
