// Package dijkstra provides a generalized Dijkstra shortest-path search over an
// augmented state space (position × heading) with strictly positive move costs.
//
// Overview:
//
//   - Solve computes the minimum cost from the start state to any state whose
//     position is the goal, and retains the best-known cost of every state it
//     reached in a DistanceMap.
//   - It relies on a min-heap ordered by (cost, insertion sequence); the
//     sequence number is a deterministic tie-break with no semantic meaning.
//   - Supports an optional distance cap, full exploration past the goal, a
//     settle hook and an explicit logrus logger.
//
// When to use:
//
//   - Any maze or grid walk where the cost of a step depends on the direction
//     the walker currently faces (turn penalties), so a bare cell graph is not
//     enough.
//   - As the first half of optimal-path reconstruction: the reconstruct
//     package consumes the frozen DistanceMap.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithMaxDistance: stops exploring once the cheapest pending cost exceeds the cap.
//   - WithFullExploration: keeps going after the goal is first popped so that
//     every reachable state ends up with its true minimal cost.
//   - WithOnSettle: callback invoked each time a state is finalized.
//   - WithLogger: debug tracing through a caller-supplied logrus.FieldLogger;
//     there is no package-level logging state.
//
// Performance and complexity:
//
//   - Time:  O(S log S) with S = 4 × W × H states (each state has ≤ 4 moves).
//   - Space: O(S) for the distance map and O(S) worst-case heap entries under
//     the lazy decrease-key strategy: a state may be pushed several times
//     before it is settled, and stale entries are discarded on pop.
//
// Unreachable goals:
//
//   - Not an error. Result.Reached is false and Result.Cost is zero.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       Returned if Solve receives a nil graph.
//   - ErrBadMaxDistance: Returned (via panic) if you set MaxDistance to a negative value.
//
// Thread safety:
//
//   - A single Solve call is single-threaded and owns its heap and distance map.
//   - Concurrent Solve calls on the same statespace.Space are safe: the space is read-only.
//
// Example:
//
//	sp, _ := statespace.New(m)
//	res, err := dijkstra.Solve(sp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Reached {
//	    fmt.Println("cost:", res.Cost)
//	}
package dijkstra
