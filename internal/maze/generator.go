package maze

// Generator carves a perfect maze into a grid with randomized depth-first
// search. It uses an explicit backtracking stack and advances one step per
// call to Step, so callers can animate the carving.
type Generator struct {
	grid    *Grid
	rng     Source
	current *Cell
	stack   []*Cell
	steps   int
	done    bool
}

// NewGenerator prepares a generator starting at the grid's entry cell. The
// grid is expected to be freshly allocated (all walls up, nothing visited).
func NewGenerator(grid *Grid, rng Source) *Generator {
	return &Generator{
		grid:    grid,
		rng:     rng,
		current: grid.Entry(),
		stack:   make([]*Cell, 0, grid.Len()/2),
		done:    grid.Len() == 0,
	}
}

// Step performs one tick of carving. Returns true if more steps remain, and
// false on the step that completes the maze. Calling Step after that is a
// no-op.
func (g *Generator) Step() bool {
	if g.done {
		return false
	}
	c := g.current
	c.Visited = true
	c.Step = g.steps
	g.steps++

	candidates := g.grid.UnvisitedNeighbors(c)
	if len(candidates) != 0 {
		next := candidates[g.rng.Intn(len(candidates))]
		g.stack = append(g.stack, c)
		g.grid.RemoveWallBetween(c, next)
		// next gets marked visited on its own step.
		g.current = next
		return true
	}
	if len(g.stack) != 0 {
		g.current = g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]
		return true
	}
	g.done = true
	return false
}

// Run steps the generator until the maze is complete.
func (g *Generator) Run() {
	for g.Step() {
	}
}

// Done reports whether generation has completed.
func (g *Generator) Done() bool {
	return g.done
}

// Current returns the cell the generator is working on. Nil for an empty grid.
func (g *Generator) Current() *Cell {
	return g.current
}

// Depth returns the current size of the backtracking stack.
func (g *Generator) Depth() int {
	return len(g.stack)
}

// Steps returns the number of steps taken so far. It is also one more than
// the largest Step value written to any cell.
func (g *Generator) Steps() int {
	return g.steps
}
