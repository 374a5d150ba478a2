// Package reconstruct recovers every grid cell that lies on at least one
// minimum-cost path, given the frozen distance map of a dijkstra.Solve run.
//
// The walk goes backwards from the goal over states, not bare cells. A state
// t is kept when it is the goal at the minimal cost, or when it is the
// predecessor of a kept state u with
//
//	dist[t] + cost(t → u) == dist[u]
//
// Because the cost of t → u depends on the heading of t, comparing raw
// per-cell costs is not enough: a heading recorded cheaper at a cell may
// need an extra turn to continue along the kept path, and a heading recorded
// more expensive may need none. The equality above accounts for both.
//
// The traversal uses an explicit worklist, so stack depth does not grow
// with the maze. Each state is expanded at most once.
package reconstruct

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/statespace"
)

var (
	// ErrNilResult is returned when OptimalCells receives a nil result or space.
	ErrNilResult = errors.New("reconstruct: nil result or state space")

	// ErrInconsistentDistances is returned when the distance map does not
	// match the state space being walked (e.g. a map from a different maze).
	// It is a caller contract violation; no partial cell set is returned.
	ErrInconsistentDistances = errors.New("reconstruct: distance map inconsistent with state space")
)

// Space is the reverse view of the state graph. *statespace.Space implements it.
type Space interface {
	Start() statespace.State
	IsGoal(s statespace.State) bool
	Predecessors(s statespace.State) []statespace.Predecessor
}

// OptimalCells returns the union of cells on all minimum-cost paths from the
// start state to the goal. The set always contains both endpoints.
// An unreached result yields an empty set and no error.
//
// Complexity: O(S) time and memory, S = number of states in res.Dist.
func OptimalCells(sp Space, res *dijkstra.Result) (maze.CellSet, error) {
	if sp == nil || res == nil {
		return nil, ErrNilResult
	}
	if s, ok := sp.(*statespace.Space); ok && s == nil {
		return nil, ErrNilResult
	}
	cells := maze.CellSet{}
	if !res.Reached {
		return cells, nil
	}

	// Seed with every goal state recorded at the minimal cost.
	var stack []statespace.State
	seen := make(map[statespace.State]bool)
	for s, c := range res.Dist {
		if sp.IsGoal(s) && c == res.Cost {
			stack = append(stack, s)
			seen[s] = true
		}
	}
	if len(stack) == 0 {
		return nil, fmt.Errorf("%w: no goal state recorded at cost %d", ErrInconsistentDistances, res.Cost)
	}

	start := sp.Start()
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells.Add(s.Pos)

		if s == start {
			continue
		}

		cost := res.Dist[s]
		found := false
		for _, pr := range sp.Predecessors(s) {
			d, ok := res.Dist[pr.From]
			if !ok || d+pr.Cost != cost {
				continue
			}
			found = true
			if !seen[pr.From] {
				seen[pr.From] = true
				stack = append(stack, pr.From)
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no optimal predecessor for %v at cost %d", ErrInconsistentDistances, s, cost)
		}
	}

	return cells, nil
}
