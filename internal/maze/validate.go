package maze

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/zyedidia/generic/mapset"
)

// Validate checks that a finished grid is a perfect maze: every cell visited,
// walls symmetric, exactly cols*rows-1 passages and every cell reachable from
// the entry. A connected graph with n-1 edges has no cycles, so together
// these prove the carved passages form a spanning tree. All violations found
// are returned in a single error.
func Validate(g *Grid) error {
	var result *multierror.Error
	n := g.Len()
	if n == 0 {
		return nil
	}

	if visited := g.VisitedCount(); visited != n {
		result = multierror.Append(result, fmt.Errorf("%d of %d cells visited",
			visited, n))
	}

	for i := 0; i < n; i++ {
		c := g.Cell(i)
		for _, d := range Directions {
			neighbor := g.Neighbor(c, d)
			if neighbor == nil {
				if !c.Walls[d] {
					result = multierror.Append(result, fmt.Errorf(
						"cell (%d, %d) has no %s wall at the grid border",
						c.X, c.Y, d))
				}
				continue
			}
			// Each shared edge is compared once, from its left or top cell.
			if (d == Right || d == Bottom) && c.Walls[d] != neighbor.Walls[d.Opposite()] {
				result = multierror.Append(result, fmt.Errorf(
					"asymmetric wall between (%d, %d) and (%d, %d)",
					c.X, c.Y, neighbor.X, neighbor.Y))
			}
		}
	}

	if passages := g.Passages(); passages != n-1 {
		result = multierror.Append(result, fmt.Errorf(
			"%d passages carved, a spanning tree over %d cells has %d",
			passages, n, n-1))
	}

	if reached := reachable(g); reached.Size() != n {
		result = multierror.Append(result, fmt.Errorf(
			"%d of %d cells reachable from the entry", reached.Size(), n))
	}
	return result.ErrorOrNil()
}

// reachable returns every cell connected to the entry through removed walls.
func reachable(g *Grid) mapset.Set[*Cell] {
	seen := mapset.New[*Cell]()
	queue := []*Cell{g.Entry()}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if seen.Has(current) {
			continue
		}
		seen.Put(current)
		for _, d := range Directions {
			if n, ok := g.Open(current, d); ok && !seen.Has(n) {
				queue = append(queue, n)
			}
		}
	}
	return seen
}
