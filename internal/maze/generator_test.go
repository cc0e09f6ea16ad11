package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorPerfectMaze(t *testing.T) {
	sizes := []struct{ cols, rows int }{
		{1, 2}, {2, 1}, {2, 2}, {5, 5}, {7, 3}, {18, 32}, {40, 1},
	}
	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			name := fmt.Sprintf("%dx%d/seed%d", size.cols, size.rows, seed)
			t.Run(name, func(t *testing.T) {
				g := carved(t, size.cols, size.rows, seeded(seed))
				n := size.cols * size.rows
				assert.Equal(t, n, g.VisitedCount())
				assert.Equal(t, n-1, g.Passages())
				assert.NoError(t, Validate(g))
			})
		}
	}
}

func TestGeneratorStepCount(t *testing.T) {
	g, err := NewGrid(6, 4)
	require.NoError(t, err)
	gen := NewGenerator(g, seeded(11))

	maxDepth := 0
	for gen.Step() {
		if gen.Depth() > maxDepth {
			maxDepth = gen.Depth()
		}
	}
	assert.True(t, gen.Done())
	// One forward step and one backtrack per edge, plus the final step.
	assert.Equal(t, 2*g.Len()-1, gen.Steps())
	assert.True(t, maxDepth > 0)
	assert.Equal(t, 0, gen.Depth())
	assert.False(t, gen.Step(), "step after completion")
	assert.Equal(t, 2*g.Len()-1, gen.Steps())

	for i := 0; i < g.Len(); i++ {
		c := g.Cell(i)
		assert.True(t, c.Step >= 0 && c.Step < gen.Steps())
	}
	assert.Equal(t, gen.Steps()-1, g.Entry().Step, "last step is back at the entry")
}

func TestGeneratorMarksNeighborOnItsOwnStep(t *testing.T) {
	g, err := NewGrid(3, 1)
	require.NoError(t, err)
	gen := NewGenerator(g, firstChoice{})

	require.True(t, gen.Step())
	assert.True(t, g.At(0, 0).Visited)
	assert.False(t, g.At(1, 0).Visited)
	assert.Equal(t, g.At(1, 0), gen.Current())
	assert.Equal(t, 1, gen.Depth())

	require.True(t, gen.Step())
	assert.True(t, g.At(1, 0).Visited)
	assert.Equal(t, 1, g.At(1, 0).Step)
}

func TestGeneratorDeterminism(t *testing.T) {
	rec := &recorder{src: seeded(1234)}
	first := carved(t, 9, 7, rec)
	second := carved(t, 9, 7, &replay{choices: rec.choices})

	for i := 0; i < first.Len(); i++ {
		assert.Equal(t, *first.Cell(i), *second.Cell(i))
	}
	p1, err := Solve(first)
	require.NoError(t, err)
	p2, err := Solve(second)
	require.NoError(t, err)
	assert.Equal(t, points(p1), points(p2))

	ga := carved(t, 12, 12, seeded(99))
	gb := carved(t, 12, 12, seeded(99))
	for i := 0; i < ga.Len(); i++ {
		assert.Equal(t, ga.Cell(i).Walls, gb.Cell(i).Walls)
	}
}

// With the first candidate always chosen, carving runs right along the top
// row, down the right column, then snakes back and forth to finish at (0, 4).
func TestGeneratorFirstChoiceScenario(t *testing.T) {
	g := carved(t, 5, 5, firstChoice{})
	require.NoError(t, Validate(g))
	assert.Equal(t, 24, g.Passages())

	// The carved tree is one long corridor.
	expectedCorridor := []point{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
		{4, 1}, {4, 2}, {4, 3}, {4, 4},
		{3, 4}, {3, 3}, {3, 2}, {3, 1},
		{2, 1}, {2, 2}, {2, 3}, {2, 4},
		{1, 4}, {1, 3}, {1, 2}, {1, 1},
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
	}
	for i := 1; i < len(expectedCorridor); i++ {
		a, b := expectedCorridor[i-1], expectedCorridor[i]
		d, ok := directionOf(a.x, a.y, b.x, b.y)
		require.True(t, ok)
		assert.False(t, g.At(a.x, a.y).HasWall(d), "passage %v -> %v", a, b)
	}

	path, err := Solve(g)
	require.NoError(t, err)
	assert.Equal(t, expectedCorridor[:9], points(path))
	// Manhattan distance from corner to corner is 8 edges.
	assert.Len(t, path, 9)
}

func TestGeneratorSingleCell(t *testing.T) {
	g, err := NewGrid(1, 1)
	require.NoError(t, err)
	gen := NewGenerator(g, firstChoice{})
	assert.False(t, gen.Step())
	assert.True(t, gen.Done())
	assert.Equal(t, 1, gen.Steps())
	assert.Equal(t, 0, g.Passages())
	assert.True(t, g.Entry().Visited)
	assert.NoError(t, Validate(g))

	path, err := Solve(g)
	require.NoError(t, err)
	assert.Equal(t, Path{g.Entry()}, path)
}

func TestGeneratorEmptyGrid(t *testing.T) {
	g, err := NewGrid(0, 0)
	require.NoError(t, err)
	gen := NewGenerator(g, firstChoice{})
	assert.True(t, gen.Done())
	assert.False(t, gen.Step())
	assert.Equal(t, 0, gen.Steps())
	assert.Nil(t, gen.Current())
}
