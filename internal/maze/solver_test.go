package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// treeDistance counts the edges between two cells by depth-first search over
// removed walls. In a perfect maze the simple path is unique.
func treeDistance(g *Grid, from, to *Cell) int {
	var walk func(c, parent *Cell, depth int) int
	walk = func(c, parent *Cell, depth int) int {
		if c == to {
			return depth
		}
		for _, d := range Directions {
			n, ok := g.Open(c, d)
			if !ok || n == parent {
				continue
			}
			if found := walk(n, c, depth+1); found >= 0 {
				return found
			}
		}
		return -1
	}
	return walk(from, nil, 0)
}

func TestSolvePathValidity(t *testing.T) {
	sizes := []struct{ cols, rows int }{{2, 2}, {4, 6}, {10, 10}, {18, 32}, {1, 9}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 4; seed++ {
			t.Run(fmt.Sprintf("%dx%d/seed%d", size.cols, size.rows, seed), func(t *testing.T) {
				g := carved(t, size.cols, size.rows, seeded(seed))
				path, err := Solve(g)
				require.NoError(t, err)
				require.NotEmpty(t, path)

				assert.Equal(t, g.At(0, 0), path[0])
				assert.Equal(t, g.At(size.cols-1, size.rows-1), path[len(path)-1])
				for i := 1; i < len(path); i++ {
					a, b := path[i-1], path[i]
					d, ok := directionOf(a.X, a.Y, b.X, b.Y)
					require.True(t, ok, "cells %d and %d are not adjacent", i-1, i)
					assert.False(t, a.HasWall(d))
					assert.False(t, b.HasWall(d.Opposite()))
				}
				assert.Equal(t, treeDistance(g, g.Entry(), g.Exit()), len(path)-1)
			})
		}
	}
}

func TestSolveSmallMazes(t *testing.T) {
	t.Run("first choice 2x2", func(t *testing.T) {
		g := carved(t, 2, 2, firstChoice{})
		path, err := Solve(g)
		require.NoError(t, err)
		assert.Equal(t, []point{{0, 0}, {1, 0}, {1, 1}}, points(path))
	})

	t.Run("last choice 2x2", func(t *testing.T) {
		g := carved(t, 2, 2, lastChoice{})
		path, err := Solve(g)
		require.NoError(t, err)
		assert.Equal(t, []point{{0, 0}, {0, 1}, {1, 1}}, points(path))
	})

	t.Run("single row", func(t *testing.T) {
		g := carved(t, 5, 1, seeded(3))
		path, err := Solve(g)
		require.NoError(t, err)
		assert.Len(t, path, 5)
	})
}

func TestSolveUnreachable(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	g.RemoveWallBetween(g.At(0, 0), g.At(1, 0))

	path, err := Solve(g)
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Nil(t, path)
}

func TestSolveEmptyGrid(t *testing.T) {
	g, err := NewGrid(0, 0)
	require.NoError(t, err)
	path, err := Solve(g)
	assert.NoError(t, err)
	assert.Empty(t, path)
}
