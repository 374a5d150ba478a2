package maze

import (
	"fmt"
	"strings"
)

// Parse builds a Maze from its ASCII form, one row per line.
// Carriage returns and leading or trailing blank lines are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol, ErrNoStart,
// ErrMultipleStarts, ErrNoGoal or ErrMultipleGoals (wrapped with the offending
// row/column where one exists).
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Maze, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	h, w := len(lines), len(lines[0])
	m := &Maze{
		width:  w,
		height: h,
		walls:  make([]bool, w*h),
	}
	var starts, goals int
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		for x := 0; x < w; x++ {
			switch line[x] {
			case SymbolWall:
				m.walls[m.index(x, y)] = true
			case SymbolOpen:
			case SymbolStart:
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: second at (%d,%d)", ErrMultipleStarts, x, y)
				}
				m.start = Position{X: x, Y: y}
			case SymbolGoal:
				goals++
				if goals > 1 {
					return nil, fmt.Errorf("%w: second at (%d,%d)", ErrMultipleGoals, x, y)
				}
				m.goal = Position{X: x, Y: y}
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, line[x], x, y)
			}
		}
	}
	if starts == 0 {
		return nil, ErrNoStart
	}
	if goals == 0 {
		return nil, ErrNoGoal
	}

	return m, nil
}

// New constructs a width×height Maze from an explicit wall list.
// Returns ErrEmptyGrid for non-positive dimensions, ErrOutOfBounds if any
// position lies outside the grid, ErrBlockedEndpoint if start or goal is a wall.
func New(width, height int, walls []Position, start, goal Position) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	m := &Maze{
		width:  width,
		height: height,
		walls:  make([]bool, width*height),
		start:  start,
		goal:   goal,
	}
	for _, p := range walls {
		if !m.InBounds(p) {
			return nil, fmt.Errorf("%w: wall at %v", ErrOutOfBounds, p)
		}
		m.walls[m.index(p.X, p.Y)] = true
	}
	for _, p := range []Position{start, goal} {
		if !m.InBounds(p) {
			return nil, fmt.Errorf("%w: endpoint at %v", ErrOutOfBounds, p)
		}
		if m.walls[m.index(p.X, p.Y)] {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, p)
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the start position.
func (m *Maze) Start() Position { return m.start }

// Goal returns the goal position.
func (m *Maze) Goal() Position { return m.goal }

// InBounds reports whether p lies within the grid boundaries.
func (m *Maze) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// IsWall reports whether p is a wall. Positions outside the grid are walls.
func (m *Maze) IsWall(p Position) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.walls[m.index(p.X, p.Y)]
}

// IsOpen reports whether p is inside the grid and not a wall.
func (m *Maze) IsOpen(p Position) bool {
	return !m.IsWall(p)
}

// OpenCells counts the non-wall cells.
func (m *Maze) OpenCells() int {
	n := 0
	for _, wall := range m.walls {
		if !wall {
			n++
		}
	}
	return n
}

// Render draws the maze in its ASCII form. Open cells for which mark
// returns true are drawn as 'O'; start and goal keep their symbols.
// A nil mark draws the plain maze.
func (m *Maze) Render(mark func(Position) bool) string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case m.walls[m.index(x, y)]:
				sb.WriteByte(SymbolWall)
			case p == m.start:
				sb.WriteByte(SymbolStart)
			case p == m.goal:
				sb.WriteByte(SymbolGoal)
			case mark != nil && mark(p):
				sb.WriteByte(SymbolMark)
			default:
				sb.WriteByte(SymbolOpen)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the plain maze.
func (m *Maze) String() string {
	return m.Render(nil)
}

// index maps (x,y) to a row-major index: y*Width + x.
func (m *Maze) index(x, y int) int {
	return y*m.width + x
}
