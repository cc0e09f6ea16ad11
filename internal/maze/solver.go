package maze

import (
	"errors"
	"fmt"
)

// ErrUnreachable is returned by Solve when the exit cell cannot be reached
// from the entry. A correctly generated maze never produces it.
var ErrUnreachable = errors.New("exit cell is unreachable from the entry")

// Path is an ordered sequence of cells running from the entry to the exit.
// Consecutive cells are adjacent and share a removed wall.
type Path []*Cell

// Solve finds the shortest path from the entry cell to the exit cell with a
// breadth-first search over removed walls. For a zero-cell grid the path is
// empty.
func Solve(g *Grid) (Path, error) {
	start := g.Entry()
	end := g.Exit()
	if start == nil {
		return nil, nil
	}
	// A nil value marks the start cell; presence in the map marks discovery.
	parents := map[*Cell]*Cell{start: nil}
	queue := make([]*Cell, 0, g.Len())
	queue = append(queue, start)
	found := false
	for len(queue) != 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			found = true
			break
		}
		for _, d := range Directions {
			neighbor, ok := g.Open(current, d)
			if !ok {
				continue
			}
			if _, seen := parents[neighbor]; seen {
				continue
			}
			parents[neighbor] = current
			queue = append(queue, neighbor)
		}
	}
	if !found {
		return nil, fmt.Errorf("solving %dx%d maze: %w", g.Cols(), g.Rows(),
			ErrUnreachable)
	}

	var path Path
	for c := end; c != nil; c = parents[c] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
