package render

import (
	"image"
	"image/color"

	"mazepath/internal/model"
)

// Picture satisfies image.Image, drawing a maze snapshot with square cells
// of Tile pixels each.
type Picture struct {
	snap     model.Snapshot
	tile     int
	wall     int
	palette  Palette
	gradient bool
	// Position on the path of each cell index, for revealed path cells.
	onPath map[int]int
}

// NewPicture returns an image of the snapshot. If gradient is set, visited
// cells are tinted by their generation step instead of a flat color.
func NewPicture(snap model.Snapshot, tile int, palette Palette,
	gradient bool) *Picture {
	if tile < 1 {
		tile = 1
	}
	// Walls are a third of a tile thick, split between the two cells that
	// share them.
	wall := (tile + 5) / 6
	return &Picture{
		snap:     snap,
		tile:     tile,
		wall:     wall,
		palette:  palette,
		gradient: gradient,
		onPath:   PathCells(snap),
	}
}

func (p *Picture) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *Picture) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.snap.Cols*p.tile, p.snap.Rows*p.tile)
}

func (p *Picture) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x >= p.snap.Cols*p.tile) ||
		(y >= p.snap.Rows*p.tile) {
		return color.Transparent
	}
	col := x / p.tile
	row := y / p.tile
	ox := x % p.tile
	oy := y % p.tile
	index := col + row*p.snap.Cols
	cell := &(p.snap.Cells[index])

	nearLeft := ox < p.wall
	nearRight := ox >= p.tile-p.wall
	nearTop := oy < p.wall
	nearBottom := oy >= p.tile-p.wall
	// Corners are always drawn so wall segments join up.
	if (nearLeft || nearRight) && (nearTop || nearBottom) {
		return p.palette.Wall
	}
	if (nearTop && cell.Walls[0]) || (nearRight && cell.Walls[1]) ||
		(nearBottom && cell.Walls[2]) || (nearLeft && cell.Walls[3]) {
		return p.palette.Wall
	}
	return p.fill(index, ox, oy)
}

// fill returns the interior color of a cell. The current cell is inset by
// two pixels.
func (p *Picture) fill(index, ox, oy int) color.Color {
	inset := (ox >= 2) && (oy >= 2) && (ox < p.tile-2) && (oy < p.tile-2)
	return p.palette.Shade(p.snap, index, p.onPath, p.gradient, inset)
}
