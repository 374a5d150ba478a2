// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// (position, heading) state graph.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: an improved cost is pushed as a
//     new heap entry and outdated entries are ignored when popped.
//   - Heap entries are ordered by cost, then by insertion sequence, so runs
//     are fully deterministic regardless of how states compare.
//   - We stop at the first goal pop unless FullExploration is set: all move
//     costs are positive, so the first goal popped carries the minimal cost.
//   - We stop exploring once the minimum cost in the heap exceeds MaxDistance.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/lvmaze/statespace"
	"github.com/sirupsen/logrus"
)

// Solve runs the search from g.Start() until a goal state is popped (or, with
// WithFullExploration, until the heap is empty).
//
// Returns:
//
//   - *Result with Reached=false if the goal cannot be reached within
//     MaxDistance; this is a normal outcome, not an error.
//   - ErrNilGraph if g is nil.
//
// Complexity:
//
//   - Time:  O(S log S), S = number of states.
//   - Space: O(S).
func Solve(g Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil (including a typed nil *Space)
	if g == nil {
		return nil, ErrNilGraph
	}
	if sp, ok := g.(*statespace.Space); ok && sp == nil {
		return nil, ErrNilGraph
	}

	// 3) Initialize runner and run main loop.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(DistanceMap),
		pq:      make(statePQ, 0, 64),
	}
	r.init()
	r.process()

	cfg.Logger.WithFields(logrus.Fields{
		"reached": r.res.Reached,
		"cost":    r.res.Cost,
		"states":  len(r.dist),
		"pushed":  r.res.Stats.Pushed,
		"popped":  r.res.Stats.Popped,
		"stale":   r.res.Stats.Stale,
		"settled": r.res.Stats.Settled,
	}).Debug("dijkstra: search finished")

	r.res.Dist = r.dist

	return &r.res, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	g       Graph       // The input graph; read-only within Solve.
	options Options     // Configuration options.
	dist    DistanceMap // Best-known cost per reached state.
	pq      statePQ     // Min-heap of *stateItem for lazy priority queue.
	seq     uint64      // Next insertion sequence number.
	res     Result      // Accumulated outcome.
}

// init records the start state at cost zero and pushes it.
func (r *runner) init() {
	start := r.g.Start()
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)

	r.options.Logger.WithField("start", start.String()).Debug("dijkstra: search started")
}

// push appends a heap entry tagged with the next sequence number.
func (r *runner) push(s statespace.State, cost int64) {
	heap.Push(&r.pq, &stateItem{state: s, cost: cost, seq: r.seq})
	r.seq++
	r.res.Stats.Pushed++
}

// process is the core loop. It repeatedly extracts the cheapest pending
// entry, discards it if stale, stops at the goal, and otherwise relaxes
// the moves of the popped state.
//
// Loop termination conditions:
//
//   - A goal state is popped (unless FullExploration).
//   - The heap becomes empty (all reachable states processed).
//   - The minimum cost in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest item from the heap.
		item := heap.Pop(&r.pq).(*stateItem)
		r.res.Stats.Popped++

		// 2) Beyond the cap nothing cheaper remains; stop.
		if item.cost > r.options.MaxDistance {
			break
		}

		// 3) A cheaper cost was already recorded and processed: stale entry.
		if best := r.dist[item.state]; best < item.cost {
			r.res.Stats.Stale++
			continue
		}

		// 4) The cost of this state is now final.
		r.res.Stats.Settled++
		r.options.OnSettle(item.state, item.cost)

		// 5) First goal pop carries the minimal goal cost.
		if r.g.IsGoal(item.state) && !r.res.Reached {
			r.res.Reached = true
			r.res.Cost = item.cost
			r.res.Goal = item.state
			r.options.Logger.WithFields(logrus.Fields{
				"goal": item.state.String(),
				"cost": item.cost,
			}).Debug("dijkstra: goal reached")
			if !r.options.FullExploration {
				return
			}
		}

		// 6) Relax all moves out of the state.
		r.relax(item.state, item.cost)
	}
}

// relax attempts to improve the cost of every state reachable in one move
// from s. If a strictly cheaper cost is found, it is recorded and pushed.
// Moves whose accumulated cost overflows int64 are dropped.
func (r *runner) relax(s statespace.State, cost int64) {
	for _, mv := range r.g.Moves(s) {
		next := cost + mv.Cost
		// A sum that wraps below cost has overflowed int64.
		if next < cost || next > r.options.MaxDistance {
			continue
		}
		ns := mv.State()
		// “<” rather than “≤” avoids pushing duplicates when costs tie.
		if old, ok := r.dist[ns]; ok && next >= old {
			continue
		}
		r.dist[ns] = next
		r.push(ns, next)
	}
}

// stateItem is a heap entry: a state, the cost it was pushed with, and its
// insertion sequence number used as tie-break.
type stateItem struct {
	state statespace.State
	cost  int64
	seq   uint64
}

// statePQ is a min-heap of *stateItem ordered by (cost, seq) ascending.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost, breaking ties by insertion order.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element of the underlying slice.
// Called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
