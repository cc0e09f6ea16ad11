// Package render turns maze snapshots into pictures. Everything here is
// presentation: the maze core never sees colors.
package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of colors used to draw a maze.
type Palette struct {
	Background colorful.Color // Unvisited cells
	Wall       colorful.Color
	Cell       colorful.Color // Visited cells when no gradient is drawn
	Start      colorful.Color // Entry cell, and the first gradient stop
	End        colorful.Color // Exit cell, and the last gradient stop
	Current    colorful.Color // Generator position while carving
	Path       colorful.Color // Revealed solution path
}

// DefaultPalette is the slate/mango scheme.
var DefaultPalette = Palette{
	Background: mustHex("#313638"),
	Wall:       mustHex("#2F3537"),
	Cell:       mustHex("#7ECA9C"),
	Start:      mustHex("#B0C4B1"),
	End:        mustHex("#FE5F55"),
	Current:    mustHex("#2292A4"),
	Path:       mustHex("#90E39A"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Gradient returns the color of a cell last touched at generation tick step,
// out of maxStep ticks so far. Early cells take the start color and the most
// recent ones approach the end color. With almost no history everything is
// drawn in the start color.
func (p Palette) Gradient(step, maxStep int) colorful.Color {
	if (step < 0) || (maxStep < 2) {
		return p.Start
	}
	t := float64(step) / float64(maxStep)
	if t > 1 {
		t = 1
	}
	return p.Start.BlendRgb(p.End, t)
}
