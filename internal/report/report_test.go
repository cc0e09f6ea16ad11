package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazepath/internal/maze"
	"mazepath/internal/model"
)

type firstChoice struct{}

func (firstChoice) Intn(n int) int { return 0 }

func TestDraw(t *testing.T) {
	s, err := maze.NewSession(3, 2, firstChoice{}, 1)
	require.NoError(t, err)
	require.NoError(t, s.Finish())

	// First-choice carving: right along the top row, down, then back left.
	// The path runs (0,0) (1,0) (2,0) (2,1).
	expected := strings.Join([]string{
		"+---+---+---+",
		"| S   *   * |",
		"+---+---+   +",
		"|         E |",
		"+---+---+---+",
	}, "\n") + "\n"
	assert.Equal(t, expected, Draw(s.Snapshot()))
}

func TestDrawWhileCarving(t *testing.T) {
	s, err := maze.NewSession(3, 1, firstChoice{}, 1)
	require.NoError(t, err)
	require.NoError(t, s.Tick())
	out := Draw(s.Snapshot())
	assert.Contains(t, out, model.GlyphCurrent)
	assert.NotContains(t, out, model.GlyphPath)
}

func TestDrawEmpty(t *testing.T) {
	s, err := maze.NewSession(0, 0, firstChoice{}, 1)
	require.NoError(t, err)
	assert.Equal(t, "(empty maze)\n", Draw(s.Snapshot()))
}

func TestGenerateReport(t *testing.T) {
	s, err := maze.NewSeededSession(6, 6, 21)
	require.NoError(t, err)
	require.NoError(t, s.Finish())

	short := GenerateReport(s, false)
	assert.Contains(t, short, s.ID.String())
	assert.Contains(t, short, "seed 21")
	assert.Contains(t, short, "Phase:           solved")
	assert.Contains(t, short, "Generator steps: 71")
	assert.Contains(t, short, "Passages:        35")
	assert.NotContains(t, short, "Validation:")

	verbose := GenerateReport(s, true)
	assert.Contains(t, verbose, "OK: perfect maze")
	assert.Contains(t, verbose, "  1. (0, 0)")
	assert.Contains(t, verbose, "(5, 5)")
}

func TestGlyphWidths(t *testing.T) {
	for _, g := range []string{model.GlyphWallH, model.GlyphOpenH, model.GlyphEmpty,
		model.GlyphPath, model.GlyphEntry, model.GlyphExit, model.GlyphCurrent} {
		assert.Len(t, g, 3, "%q", g)
	}
	for _, g := range []string{model.GlyphCorner, model.GlyphWallV, model.GlyphOpenV} {
		assert.Len(t, g, 1, "%q", g)
	}
}
