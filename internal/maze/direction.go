package maze

import "fmt"

// Direction is one of the four compass directions a cell has a wall in.
type Direction uint8

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions lists every direction in enumeration order. Neighbor scans and
// the solver both walk walls in this order.
var Directions = [4]Direction{Top, Right, Bottom, Left}

var opposites = [4]Direction{
	Top:    Bottom,
	Right:  Left,
	Bottom: Top,
	Left:   Right,
}

var deltas = [4][2]int{
	Top:    {0, -1},
	Right:  {1, 0},
	Bottom: {0, 1},
	Left:   {-1, 0},
}

// Opposite returns the direction facing back toward d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Delta returns the (dx, dy) offset of a step in direction d.
func (d Direction) Delta() (int, int) {
	return deltas[d][0], deltas[d][1]
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Unknown direction: %d", uint8(d))
}

// directionOf returns the direction pointing from (x0, y0) to an adjacent
// (x1, y1). ok is false when the two positions are not grid-adjacent.
func directionOf(x0, y0, x1, y1 int) (Direction, bool) {
	dx, dy := x1-x0, y1-y0
	for _, d := range Directions {
		if deltas[d][0] == dx && deltas[d][1] == dy {
			return d, true
		}
	}
	return 0, false
}
