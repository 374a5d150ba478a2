// Package maze defines core types and sentinel errors for the maze grid model.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownSymbol indicates a character other than '#', '.', 'S' or 'E'.
	ErrUnknownSymbol = errors.New("maze: unknown grid symbol")
	// ErrNoStart indicates the grid has no start marker.
	ErrNoStart = errors.New("maze: no start marker 'S'")
	// ErrMultipleStarts indicates the grid has more than one start marker.
	ErrMultipleStarts = errors.New("maze: more than one start marker 'S'")
	// ErrNoGoal indicates the grid has no goal marker.
	ErrNoGoal = errors.New("maze: no goal marker 'E'")
	// ErrMultipleGoals indicates the grid has more than one goal marker.
	ErrMultipleGoals = errors.New("maze: more than one goal marker 'E'")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrBlockedEndpoint indicates the start or goal coincides with a wall.
	ErrBlockedEndpoint = errors.New("maze: start or goal is a wall")
	// ErrUnknownHeading indicates a heading name that ParseHeading cannot read.
	ErrUnknownHeading = errors.New("maze: unknown heading")
)

// Grid symbols.
const (
	SymbolWall  = '#'
	SymbolOpen  = '.'
	SymbolStart = 'S'
	SymbolGoal  = 'E'
	SymbolMark  = 'O'
)

// Position is a cell coordinate; X grows east, Y grows south.
type Position struct {
	X, Y int
}

// Travel returns the neighboring position one step along h.
func (p Position) Travel(h Heading) Position {
	d := h.Delta()
	return Position{X: p.X + d[0], Y: p.Y + d[1]}
}

// Manhattan returns |dx| + |dy| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String formats p as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Maze is an immutable rectangular maze. Walls are stored row-major;
// every position outside [0,Width)×[0,Height) is treated as a wall.
type Maze struct {
	width, height int
	walls         []bool
	start, goal   Position
}
