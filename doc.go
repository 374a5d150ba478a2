// Package lvmaze finds minimum-cost routes through ASCII mazes in which the
// walker has a facing direction and every 90° turn costs far more than a step.
//
// 🚀 What is lvmaze?
//
//	A small, zero-global-state toolkit that brings together:
//		• Grid model: walls, start, goal, headings, ASCII parsing & rendering
//		• State space: (position, heading) nodes with a turn + step cost model
//		• Shortest path: lazy decrease-key Dijkstra with deterministic tie-breaks
//		• Reconstruction: every cell on any minimum-cost route, not just one route
//
// Under the hood, everything is organized under these subpackages:
//
//	maze/           Position, Heading, Maze, CellSet; Parse and Render
//	statespace/     State, Move, Predecessor and the cost model options
//	dijkstra/       Solve, DistanceMap, Result
//	reconstruct/    OptimalCells over a solved DistanceMap
//	cmd/mazerunner/ command-line front end
//
// Quick ASCII example:
//
//	#####
//	#...#
//	#S#E#
//	#...#
//	#####
//
// Facing East, the walker must turn to go over or under the pillar; both
// routes cost 3004, so all eight open cells lie on an optimal route.
package lvmaze
