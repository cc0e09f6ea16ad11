package model

// CellView is the read-only view of a single maze cell handed to renderers.
type CellView struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Walls   [4]bool `json:"walls"`   // top, right, bottom, left
	Visited bool    `json:"visited"` // carved through by the generator
	Step    int     `json:"step"`    // generation tick, -1 if never current
}

// Point is a cell coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	ID       string     `json:"id"`   // Session identity
	Seed     int64      `json:"seed"` // Random seed, 0 if unknown
	Cols     int        `json:"cols"`
	Rows     int        `json:"rows"`
	Cells    []CellView `json:"cells"`
	Current  *Point     `json:"current,omitempty"` // Generator position while carving
	MaxStep  int        `json:"max_step"`          // Generator steps taken so far
	Solving  bool       `json:"solving"`           // Generation complete, path available
	Path     []Point    `json:"path"`              // Entry to exit, empty until solving
	Revealed int        `json:"revealed"`          // How many path cells to show
}
