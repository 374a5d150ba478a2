// Package dijkstra defines core types and configuration options
// for the state-space shortest-path search.
package dijkstra

import (
	"errors"
	"io"
	"math"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/statespace"
	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the Solve implementation.
var (
	// ErrNilGraph indicates that a nil state graph was passed to Solve.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Graph is the state graph Solve walks. *statespace.Space implements it.
// Every Move cost must be strictly positive.
type Graph interface {
	Start() statespace.State
	IsGoal(s statespace.State) bool
	Moves(s statespace.State) []statespace.Move
}

// DistanceMap maps each reached state to the smallest cost discovered for it.
// States never reached are absent. After Solve returns it is read-only.
type DistanceMap map[statespace.State]int64

// Get returns the recorded cost of s and whether s was reached.
func (d DistanceMap) Get(s statespace.State) (int64, bool) {
	c, ok := d[s]
	return c, ok
}

// Len returns the number of reached states.
func (d DistanceMap) Len() int { return len(d) }

// AtPosition returns the recorded cost of every heading reached at p.
func (d DistanceMap) AtPosition(p maze.Position) map[maze.Heading]int64 {
	out := make(map[maze.Heading]int64, maze.HeadingCount)
	for _, h := range maze.Headings {
		if c, ok := d[statespace.State{Pos: p, Heading: h}]; ok {
			out[h] = c
		}
	}
	return out
}

// Clone returns an independent copy of d.
func (d DistanceMap) Clone() DistanceMap {
	out := make(DistanceMap, len(d))
	for s, c := range d {
		out[s] = c
	}
	return out
}

// Stats counts heap traffic of a single Solve.
type Stats struct {
	Pushed  int // entries pushed onto the heap, including the start
	Popped  int // entries popped, stale ones included
	Stale   int // popped entries discarded because a cheaper cost was already recorded
	Settled int // states finalized (moves relaxed)
}

// Result is the outcome of Solve.
//
//   - Reached: whether any goal state was popped.
//   - Cost:    minimal cost to the goal position (meaningful only if Reached).
//   - Goal:    the first goal state popped.
//   - Dist:    best-known cost per reached state.
type Result struct {
	Reached bool
	Cost    int64
	Goal    statespace.State
	Dist    DistanceMap
	Stats   Stats
}

// Options configures the behavior of Solve.
//
//   - MaxDistance: states whose cost would exceed this value are not explored.
//     Must be ≥ 0. Default is math.MaxInt64 (no cap).
//   - FullExploration: if true, keep settling states after the goal is popped.
//   - OnSettle: called with each state and its final cost when it is settled.
//   - Logger: receives debug tracing; defaults to a discarding logger.
type Options struct {
	MaxDistance     int64
	FullExploration bool
	OnSettle        func(s statespace.State, cost int64)
	Logger          logrus.FieldLogger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// States whose shortest distance would exceed this value are not explored,
// so a goal beyond the cap is reported as unreached.
// A negative value panics with ErrBadMaxDistance when the option is applied.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithFullExploration disables the early stop at the first goal pop.
func WithFullExploration() Option {
	return func(o *Options) {
		o.FullExploration = true
	}
}

// WithOnSettle registers a callback run each time a state is settled.
func WithOnSettle(fn func(s statespace.State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithLogger routes debug tracing to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance:     math.MaxInt64 (no distance limit).
//   - FullExploration: false (stop at the first goal pop).
//   - OnSettle:        no-op.
//   - Logger:          logrus logger writing to io.Discard.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return Options{
		MaxDistance:     math.MaxInt64,
		FullExploration: false,
		OnSettle:        func(statespace.State, int64) {},
		Logger:          discard,
	}
}
