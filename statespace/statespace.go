package statespace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmaze/maze"
)

// Space is the weighted state graph of a maze under a cost model.
// It is immutable once built and safe for concurrent readers.
type Space struct {
	maze *maze.Maze
	opts Options
}

// New builds the state space of m. Returns ErrNilMaze for a nil maze and
// ErrOptionViolation for an invalid option, including a cost model whose
// reversal cost 2×TurnCost + StepCost does not fit in an int64.
func New(m *maze.Maze, opts ...Option) (*Space, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.TurnCost > (math.MaxInt64-cfg.StepCost)/2 {
		return nil, fmt.Errorf("%w: reversal cost 2×%d+%d overflows int64",
			ErrOptionViolation, cfg.TurnCost, cfg.StepCost)
	}

	return &Space{maze: m, opts: cfg}, nil
}

// Maze returns the underlying maze.
func (sp *Space) Maze() *maze.Maze { return sp.maze }

// Options returns the effective configuration.
func (sp *Space) Options() Options { return sp.opts }

// Start returns the start state: the start cell facing StartHeading.
func (sp *Space) Start() State {
	return State{Pos: sp.maze.Start(), Heading: sp.opts.StartHeading}
}

// IsGoal reports whether s stands on the goal cell, whatever its heading.
func (sp *Space) IsGoal(s State) bool {
	return s.Pos == sp.maze.Goal()
}

// TurnPenalty returns TurnCost per 90° rotation needed from h to to.
func (sp *Space) TurnPenalty(h, to maze.Heading) int64 {
	return sp.opts.TurnCost * int64(h.Turns(to))
}

// Cost returns the cost of leaving a cell facing to while currently facing h.
func (sp *Space) Cost(h, to maze.Heading) int64 {
	return sp.TurnPenalty(h, to) + sp.opts.StepCost
}

// Moves enumerates the legal moves out of s, in heading order.
// A move is legal iff the target cell is inside the grid and not a wall;
// reversals are skipped when pruning is enabled, except from the start state.
func (sp *Space) Moves(s State) []Move {
	moves := make([]Move, 0, maze.HeadingCount)
	for _, h := range maze.Headings {
		if sp.pruned(s, h) {
			continue
		}
		to := s.Pos.Travel(h)
		if sp.maze.IsWall(to) {
			continue
		}
		moves = append(moves, Move{Heading: h, To: to, Cost: sp.Cost(s.Heading, h)})
	}

	return moves
}

// Predecessors enumerates every legal transition that arrives in s.
// It is the exact reverse of Moves: p is returned iff s is among
// Moves(p.From) with the same cost.
func (sp *Space) Predecessors(s State) []Predecessor {
	from := s.Pos.Travel(s.Heading.Opposite())
	if sp.maze.IsWall(from) {
		return nil
	}
	preds := make([]Predecessor, 0, maze.HeadingCount)
	for _, h := range maze.Headings {
		prev := State{Pos: from, Heading: h}
		if sp.pruned(prev, s.Heading) {
			continue
		}
		preds = append(preds, Predecessor{From: prev, Cost: sp.Cost(h, s.Heading)})
	}

	return preds
}

// pruned reports whether the move from s towards h is dropped as a reversal.
func (sp *Space) pruned(s State, h maze.Heading) bool {
	return sp.opts.PruneReversals && h == s.Heading.Opposite() && s != sp.Start()
}
