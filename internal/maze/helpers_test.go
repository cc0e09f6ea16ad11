package maze

import "testing"

// firstChoice always picks the first candidate in top, right, bottom, left
// order.
type firstChoice struct{}

func (firstChoice) Intn(n int) int { return 0 }

// lastChoice always picks the last candidate.
type lastChoice struct{}

func (lastChoice) Intn(n int) int { return n - 1 }

// recorder wraps a Source and remembers every choice it made.
type recorder struct {
	src     Source
	choices []int
}

func (r *recorder) Intn(n int) int {
	v := r.src.Intn(n)
	r.choices = append(r.choices, v)
	return v
}

// replay hands back a fixed sequence of choices.
type replay struct {
	choices []int
	next    int
}

func (r *replay) Intn(n int) int {
	v := r.choices[r.next]
	r.next++
	return v
}

func carved(t *testing.T, cols, rows int, src Source) *Grid {
	t.Helper()
	g, err := NewGrid(cols, rows)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", cols, rows, err)
	}
	NewGenerator(g, src).Run()
	return g
}

type point struct{ x, y int }

func points(p Path) []point {
	result := make([]point, len(p))
	for i, c := range p {
		result[i] = point{c.X, c.Y}
	}
	return result
}

func seeded(seed int64) Source {
	src, _ := NewSource(seed)
	return src
}
