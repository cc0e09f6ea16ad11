package maze

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mazepath/internal/logging"
	"mazepath/internal/model"
)

// Phase is the stage a Session is in.
type Phase uint8

const (
	// PhaseGenerating: the generator is still carving.
	PhaseGenerating Phase = iota
	// PhaseSolving: the path is known and is being revealed.
	PhaseSolving
	// PhaseSolved: the whole path has been revealed.
	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseGenerating:
		return "generating"
	case PhaseSolving:
		return "solving"
	case PhaseSolved:
		return "solved"
	}
	return fmt.Sprintf("Unknown phase: %d", uint8(p))
}

// Session owns one maze from allocation to solution: the grid, the
// generator's progress, the solved path and how much of it has been revealed.
// It is advanced one tick at a time by a renderer's frame clock and is not
// safe for concurrent use.
type Session struct {
	ID        uuid.UUID
	Seed      int64
	grid      *Grid
	generator *Generator
	phase     Phase
	path      Path
	onPath    map[*Cell]int
	revealed  int
	// Set when solving fails; the session is stuck and returns it forever.
	err error
	log *logrus.Entry
}

// NewSession allocates a cols x rows grid and prepares to carve it with the
// given random source. seed is informational and only reported in snapshots.
func NewSession(cols, rows int, rng Source, seed int64) (*Session, error) {
	grid, e := NewGrid(cols, rows)
	if e != nil {
		return nil, fmt.Errorf("error allocating grid: %w", e)
	}
	id := uuid.New()
	s := &Session{
		ID:        id,
		Seed:      seed,
		grid:      grid,
		generator: NewGenerator(grid, rng),
		phase:     PhaseGenerating,
		log: logging.Log.WithFields(logrus.Fields{
			"session": id.String(),
			"cols":    cols,
			"rows":    rows,
		}),
	}
	return s, nil
}

// NewSeededSession is NewSession with a math/rand source built from seed. A
// seed of 0 or less is replaced with one derived from the clock.
func NewSeededSession(cols, rows int, seed int64) (*Session, error) {
	rng, used := NewSource(seed)
	return NewSession(cols, rows, rng, used)
}

func (s *Session) Grid() *Grid           { return s.grid }
func (s *Session) Generator() *Generator { return s.generator }
func (s *Session) Phase() Phase          { return s.phase }

// Solving reports whether generation has completed and the path is known.
func (s *Session) Solving() bool {
	return s.phase != PhaseGenerating
}

// Path returns the full solution. Empty until generation completes.
func (s *Session) Path() Path {
	return s.path
}

// Revealed returns the part of the path that should be drawn so far.
func (s *Session) Revealed() Path {
	return s.path[:s.revealed]
}

// PathIndex returns the position of c on the path, or -1 if it is not on it.
func (s *Session) PathIndex(c *Cell) int {
	if i, ok := s.onPath[c]; ok {
		return i
	}
	return -1
}

// Tick advances the session by one unit: a generator step while carving, then
// one more revealed path cell per tick. The solver runs exactly once, on the
// tick that completes generation. A non-nil error means the maze is broken
// and the session cannot continue; later ticks return the same error.
func (s *Session) Tick() error {
	if s.err != nil {
		return s.err
	}
	switch s.phase {
	case PhaseGenerating:
		if s.generator.Step() {
			return nil
		}
		return s.solve()
	case PhaseSolving:
		if s.revealed < len(s.path) {
			s.revealed++
		}
		if s.revealed == len(s.path) {
			s.phase = PhaseSolved
		}
	}
	return nil
}

func (s *Session) solve() error {
	s.log.WithField("steps", s.generator.Steps()).Debug("generation complete")
	path, e := Solve(s.grid)
	if e != nil {
		s.log.WithError(e).Error("maze has no path from entry to exit")
		s.err = e
		return e
	}
	s.path = path
	s.onPath = make(map[*Cell]int, len(path))
	for i, c := range path {
		s.onPath[c] = i
	}
	s.phase = PhaseSolving
	s.log.WithField("path_len", len(path)).Info("path solved")
	return nil
}

// Finish runs the session to the end: the maze is fully generated, solved and
// the whole path revealed.
func (s *Session) Finish() error {
	for s.phase != PhaseSolved {
		if e := s.Tick(); e != nil {
			return e
		}
	}
	return nil
}

// Snapshot copies the state a renderer needs into plain data.
func (s *Session) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		ID:       s.ID.String(),
		Seed:     s.Seed,
		Cols:     s.grid.Cols(),
		Rows:     s.grid.Rows(),
		Cells:    make([]model.CellView, s.grid.Len()),
		MaxStep:  s.generator.Steps(),
		Solving:  s.Solving(),
		Path:     make([]model.Point, len(s.path)),
		Revealed: s.revealed,
	}
	for i := range snap.Cells {
		c := s.grid.Cell(i)
		snap.Cells[i] = model.CellView{
			X:       c.X,
			Y:       c.Y,
			Walls:   c.Walls,
			Visited: c.Visited,
			Step:    c.Step,
		}
	}
	if cur := s.generator.Current(); (cur != nil) && !s.Solving() {
		snap.Current = &model.Point{X: cur.X, Y: cur.Y}
	}
	for i, c := range s.path {
		snap.Path[i] = model.Point{X: c.X, Y: c.Y}
	}
	return snap
}
