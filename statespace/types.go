// Package statespace defines the search node, transitions and cost model
// that turn a maze into a weighted state graph.
//
// A search node is a (position, heading) pair: arriving at the same cell
// facing a different direction is a different state, because the cost of
// the next move depends on the current heading.
//
// Cost model:
//
//	cost(h, h') = TurnCost × Turns(h, h') + StepCost
//
// where Turns is the minimal number of 90° rotations (0, 1 or 2). With the
// default costs (TurnCost=1000, StepCost=1) a straight step costs 1, a left
// or right turn followed by a step costs 1001 and a reversal costs 2001.
//
// Options:
//
//	– TurnCost:        cost of one 90° rotation (must be > 0).
//	– StepCost:        cost of one step into a neighboring cell (must be > 0).
//	– StartHeading:    facing of the start state (default East).
//	– PruneReversals:  drop 180° moves from every state except the start state.
//
// Errors (sentinel):
//
//	– ErrNilMaze          if New receives a nil maze.
//	– ErrOptionViolation  if an option carries an invalid value.
package statespace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors for state-space construction.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed to New.
	ErrNilMaze = errors.New("statespace: maze is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("statespace: invalid option supplied")
)

// Default cost model.
const (
	DefaultTurnCost int64 = 1000
	DefaultStepCost int64 = 1
)

// State is the node the solver operates on. Two states are equal iff both
// fields match, so State is usable as a map key.
type State struct {
	Pos     maze.Position
	Heading maze.Heading
}

func (s State) String() string {
	return fmt.Sprintf("(%v %v)", s.Pos, s.Heading)
}

// Move is a legal forward transition out of a state.
type Move struct {
	Heading maze.Heading  // heading after the move
	To      maze.Position // resulting position
	Cost    int64         // turn penalty plus step cost
}

// State returns the state the move arrives in.
func (m Move) State() State {
	return State{Pos: m.To, Heading: m.Heading}
}

// Predecessor is a legal transition into a state, seen from its target.
type Predecessor struct {
	From State // state the transition leaves
	Cost int64 // cost of the transition
}

// Option configures the cost model via functional arguments.
// If an Option is invalid it is recorded internally and surfaced
// as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the cost model and search-space parameters.
type Options struct {
	TurnCost       int64
	StepCost       int64
	StartHeading   maze.Heading
	PruneReversals bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the standard cost model:
//   - TurnCost 1000, StepCost 1
//   - StartHeading East
//   - PruneReversals enabled
func DefaultOptions() Options {
	return Options{
		TurnCost:       DefaultTurnCost,
		StepCost:       DefaultStepCost,
		StartHeading:   maze.East,
		PruneReversals: true,
	}
}

// WithTurnCost sets the cost of one 90° rotation. c must be positive.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: TurnCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.TurnCost = c
	}
}

// WithStepCost sets the cost of one step. c must be positive.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: StepCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.StepCost = c
	}
}

// WithStartHeading sets the facing of the start state.
func WithStartHeading(h maze.Heading) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.err = fmt.Errorf("%w: start heading %v", ErrOptionViolation, h)
			return
		}
		o.StartHeading = h
	}
}

// WithReversalPruning enables or disables dropping 180° moves.
func WithReversalPruning(on bool) Option {
	return func(o *Options) {
		o.PruneReversals = on
	}
}
