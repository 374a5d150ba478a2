package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects malformed grids.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", maze.ErrEmptyGrid},
		{"OnlyBlankLines", "\n\n", maze.ErrEmptyGrid},
		{"NonRectangular", "#####\n#S.E\n#####", maze.ErrNonRectangular},
		{"UnknownSymbol", "#####\n#SxE#\n#####", maze.ErrUnknownSymbol},
		{"NoStart", "#####\n#..E#\n#####", maze.ErrNoStart},
		{"TwoStarts", "#####\n#SSE#\n#####", maze.ErrMultipleStarts},
		{"NoGoal", "#####\n#S..#\n#####", maze.ErrNoGoal},
		{"TwoGoals", "#####\n#SEE#\n#####", maze.ErrMultipleGoals},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.Parse(tc.text)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, m)
		})
	}
}

// TestParse_Basic checks dimensions, endpoints and wall lookup.
func TestParse_Basic(t *testing.T) {
	m, err := maze.Parse("#####\r\n#S.E#\r\n#.#.#\r\n#####\r\n\r\n")
	require.NoError(t, err)

	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 4, m.Height())
	assert.Equal(t, maze.Position{X: 1, Y: 1}, m.Start())
	assert.Equal(t, maze.Position{X: 3, Y: 1}, m.Goal())

	assert.True(t, m.IsWall(maze.Position{X: 0, Y: 0}))
	assert.True(t, m.IsWall(maze.Position{X: 2, Y: 2}))
	assert.False(t, m.IsWall(maze.Position{X: 2, Y: 1}))
	assert.True(t, m.IsOpen(maze.Position{X: 1, Y: 2}))
	assert.Equal(t, 5, m.OpenCells())
}

// TestParse_BlankLinesAround checks that blank lines before and after the
// grid are ignored.
func TestParse_BlankLinesAround(t *testing.T) {
	m, err := maze.Parse("\n\r\n#####\n#S.E#\n#####\n\n")
	require.NoError(t, err)
	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, maze.Position{X: 1, Y: 1}, m.Start())
	assert.Equal(t, maze.Position{X: 3, Y: 1}, m.Goal())
}

// TestInBounds checks that out-of-grid positions are reported as walls.
func TestInBounds(t *testing.T) {
	m, err := maze.Parse("S.E")
	require.NoError(t, err)

	for _, p := range []maze.Position{{X: 0, Y: 0}, {X: 2, Y: 0}} {
		assert.True(t, m.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []maze.Position{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}} {
		assert.False(t, m.InBounds(p), "InBounds(%v)", p)
		assert.True(t, m.IsWall(p), "IsWall(%v)", p)
	}
}

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

func TestNew(t *testing.T) {
	walls := []maze.Position{{X: 1, Y: 0}}
	start := maze.Position{X: 0, Y: 0}
	goal := maze.Position{X: 2, Y: 1}

	m, err := maze.New(3, 2, walls, start, goal)
	require.NoError(t, err)
	assert.Equal(t, "S#.\n..E\n", m.String())

	_, err = maze.New(0, 2, nil, start, goal)
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)

	_, err = maze.New(3, 2, []maze.Position{{X: 5, Y: 5}}, start, goal)
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)

	_, err = maze.New(3, 2, nil, start, maze.Position{X: 3, Y: 0})
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)

	_, err = maze.New(3, 2, []maze.Position{start}, start, goal)
	assert.ErrorIs(t, err, maze.ErrBlockedEndpoint)
}

//----------------------------------------------------------------------------//
// Render and CellSet Tests
//----------------------------------------------------------------------------//

func TestRender_MarksCells(t *testing.T) {
	text := "#####\n#S.E#\n#...#\n#####\n"
	m, err := maze.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, text, m.String())

	cells := maze.CellSet{}
	cells.Add(m.Start())
	cells.Add(maze.Position{X: 2, Y: 1})
	cells.Add(m.Goal())

	want := "#####\n#SOE#\n#...#\n#####\n"
	assert.Equal(t, want, m.Render(cells.Contains))
}

func TestCellSet(t *testing.T) {
	s := maze.CellSet{}
	s.Add(maze.Position{X: 2, Y: 1})
	s.Add(maze.Position{X: 0, Y: 1})
	s.Add(maze.Position{X: 5, Y: 0})
	s.Add(maze.Position{X: 2, Y: 1})

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(maze.Position{X: 0, Y: 1}))
	assert.False(t, s.Contains(maze.Position{X: 1, Y: 1}))
	assert.Equal(t, []maze.Position{{X: 5, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}}, s.Sorted())
}
