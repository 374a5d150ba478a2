package mazetest

import (
	"github.com/katalvlaran/lvmaze/maze"
)

// Exhaustive enumerates every simple path (no repeated cell) from the start
// to the goal of m and returns the minimal cost, the union of cells of all
// paths achieving it, and whether any path exists.
//
// A path never benefits from revisiting a cell under positive step and turn
// costs, so the minimum over simple paths is the true minimum. Exponential;
// use only on tiny mazes.
func Exhaustive(m *maze.Maze, turnCost, stepCost int64, heading maze.Heading) (int64, maze.CellSet, bool) {
	e := &enumerator{
		m:       m,
		turn:    turnCost,
		step:    stepCost,
		visited: maze.CellSet{},
		best:    -1,
		cells:   maze.CellSet{},
	}
	e.walk(m.Start(), heading, 0)
	if e.best < 0 {
		return 0, maze.CellSet{}, false
	}
	return e.best, e.cells, true
}

type enumerator struct {
	m          *maze.Maze
	turn, step int64
	visited    maze.CellSet
	path       []maze.Position
	best       int64
	cells      maze.CellSet
}

func (e *enumerator) walk(p maze.Position, h maze.Heading, cost int64) {
	e.visited.Add(p)
	e.path = append(e.path, p)
	defer func() {
		delete(e.visited, p)
		e.path = e.path[:len(e.path)-1]
	}()

	if p == e.m.Goal() {
		switch {
		case e.best < 0 || cost < e.best:
			e.best = cost
			e.cells = maze.CellSet{}
			fallthrough
		case cost == e.best:
			for _, q := range e.path {
				e.cells.Add(q)
			}
		}
		return
	}

	for _, next := range maze.Headings {
		q := p.Travel(next)
		if e.m.IsWall(q) || e.visited.Contains(q) {
			continue
		}
		e.walk(q, next, cost+e.turn*int64(h.Turns(next))+e.step)
	}
}
