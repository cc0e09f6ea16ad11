package maze

import (
	"fmt"
)

// Grid is a fixed cols x rows array of cells. Its shape never changes after
// NewGrid; only the cell contents are mutated.
type Grid struct {
	cols  int
	rows  int
	cells []Cell
}

// NewGrid allocates a fully walled grid. A grid with zero cells is allowed and
// is treated as a degenerate maze.
func NewGrid(cols, rows int) (*Grid, error) {
	if (cols < 0) || (rows < 0) {
		return nil, fmt.Errorf("grid dimensions must not be negative, got %dx%d",
			cols, rows)
	}
	cellCount := cols * rows
	// Check for overflow.
	if (cols != 0) && (cellCount/cols != rows) {
		return nil, fmt.Errorf("the grid's size was too big: %dx%d", cols, rows)
	}
	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cellCount),
	}
	for i := range g.cells {
		g.cells[i] = newCell(i%cols, i/cols)
	}
	return g, nil
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of cells in the grid.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the grid index of the cell at (x, y).
func (g *Grid) Index(x, y int) int {
	return x + y*g.cols
}

func (g *Grid) inBounds(x, y int) bool {
	return (x >= 0) && (x < g.cols) && (y >= 0) && (y < g.rows)
}

// At returns the cell at (x, y), or nil if the position is outside the grid.
func (g *Grid) At(x, y int) *Cell {
	if !g.inBounds(x, y) {
		return nil
	}
	return &(g.cells[g.Index(x, y)])
}

// Cell returns the cell with the given grid index, or nil if out of range.
func (g *Grid) Cell(i int) *Cell {
	if (i < 0) || (i >= len(g.cells)) {
		return nil
	}
	return &(g.cells[i])
}

// Entry returns the cell at index 0, or nil for an empty grid.
func (g *Grid) Entry() *Cell {
	return g.Cell(0)
}

// Exit returns the last cell of the grid, or nil for an empty grid.
func (g *Grid) Exit() *Cell {
	return g.Cell(len(g.cells) - 1)
}

// Neighbor returns the adjacent cell in direction d, or nil at the border.
func (g *Grid) Neighbor(c *Cell, d Direction) *Cell {
	dx, dy := d.Delta()
	return g.At(c.X+dx, c.Y+dy)
}

// UnvisitedNeighbors returns the neighbors of c that the generator has not
// reached yet, in top, right, bottom, left order.
func (g *Grid) UnvisitedNeighbors(c *Cell) []*Cell {
	result := make([]*Cell, 0, len(Directions))
	for _, d := range Directions {
		n := g.Neighbor(c, d)
		if (n != nil) && !n.Visited {
			result = append(result, n)
		}
	}
	return result
}

// RemoveWallBetween clears the shared wall between two adjacent cells, on both
// sides. Panics if a and b are not adjacent: carving a non-adjacent pair would
// break the perfect-maze structure and is always a programming error.
func (g *Grid) RemoveWallBetween(a, b *Cell) {
	d, ok := directionOf(a.X, a.Y, b.X, b.Y)
	if !ok {
		panic(fmt.Sprintf("cells (%d, %d) and (%d, %d) are not adjacent",
			a.X, a.Y, b.X, b.Y))
	}
	a.Walls[d] = false
	b.Walls[d.Opposite()] = false
}

// Open reports whether c has no wall in direction d and a neighbor exists
// there.
func (g *Grid) Open(c *Cell, d Direction) (*Cell, bool) {
	if c.Walls[d] {
		return nil, false
	}
	n := g.Neighbor(c, d)
	return n, n != nil
}

// Passages counts the shared walls that have been removed. Each edge is
// counted once, from the cell on its left or top side.
func (g *Grid) Passages() int {
	count := 0
	for i := range g.cells {
		c := &(g.cells[i])
		if _, ok := g.Open(c, Right); ok {
			count++
		}
		if _, ok := g.Open(c, Bottom); ok {
			count++
		}
	}
	return count
}

// VisitedCount returns how many cells have been carved through.
func (g *Grid) VisitedCount() int {
	count := 0
	for i := range g.cells {
		if g.cells[i].Visited {
			count++
		}
	}
	return count
}
