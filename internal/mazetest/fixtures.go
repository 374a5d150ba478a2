// Package mazetest holds maze fixtures and an exhaustive reference search
// shared by the solver and reconstructor tests.
package mazetest

// Fixture is a named maze with its known minimal cost and optimal cell count.
// Cost < 0 marks an unreachable goal.
type Fixture struct {
	Name  string
	Text  string
	Cost  int64
	Cells int

	// Enumerable marks mazes small enough for Exhaustive.
	Enumerable bool
}

// Corridor is a straight open corridor: 4 steps east, no turns.
const Corridor = "" +
	"#######\n" +
	"#S...E#\n" +
	"#######\n"

// OneTurn needs three steps east then two north: one 90° turn.
const OneTurn = "" +
	"######\n" +
	"####E#\n" +
	"####.#\n" +
	"#S...#\n" +
	"######\n"

// TwinRoutes has two disjoint routes of equal cost around a pillar.
const TwinRoutes = "" +
	"#####\n" +
	"#...#\n" +
	"#S#E#\n" +
	"#...#\n" +
	"#####\n"

// Behind places the goal west of a start that faces east.
const Behind = "" +
	"#######\n" +
	"#E...S#\n" +
	"#######\n"

// Walled has no route from start to goal.
const Walled = "" +
	"#######\n" +
	"#S.#.E#\n" +
	"#######\n"

// Open is a small open room; only the route with a single turn is optimal.
const Open = "" +
	"######\n" +
	"#...E#\n" +
	"#....#\n" +
	"#S...#\n" +
	"######\n"

// Small is the first reference maze of the reindeer puzzle.
const Small = "" +
	"###############\n" +
	"#.......#....E#\n" +
	"#.#.###.#.###.#\n" +
	"#.....#.#...#.#\n" +
	"#.###.#####.#.#\n" +
	"#.#.#.......#.#\n" +
	"#.#.#####.###.#\n" +
	"#...........#.#\n" +
	"###.#.#####.#.#\n" +
	"#...#.....#.#.#\n" +
	"#.#.#.###.#.#.#\n" +
	"#.....#...#.#.#\n" +
	"#.###.#.#.#.#.#\n" +
	"#S..#.....#...#\n" +
	"###############\n"

// Medium is the second reference maze of the reindeer puzzle.
const Medium = "" +
	"#################\n" +
	"#...#...#...#..E#\n" +
	"#.#.#.#.#.#.#.#.#\n" +
	"#.#.#.#...#...#.#\n" +
	"#.#.#.#.###.#.#.#\n" +
	"#...#.#.#.....#.#\n" +
	"#.#.#.#.#.#####.#\n" +
	"#.#...#.#.#.....#\n" +
	"#.#.#####.#.###.#\n" +
	"#.#.#.......#...#\n" +
	"#.#.###.#####.###\n" +
	"#.#.#...#.....#.#\n" +
	"#.#.#.#####.###.#\n" +
	"#.#.#.........#.#\n" +
	"#.#.#.#########.#\n" +
	"#S#.............#\n" +
	"#################\n"

// Fixtures lists every maze with its expected answers under the default
// cost model (turn 1000, step 1, start facing East).
func Fixtures() []Fixture {
	return []Fixture{
		{Name: "Corridor", Text: Corridor, Cost: 4, Cells: 5, Enumerable: true},
		{Name: "OneTurn", Text: OneTurn, Cost: 1005, Cells: 6, Enumerable: true},
		{Name: "TwinRoutes", Text: TwinRoutes, Cost: 3004, Cells: 8, Enumerable: true},
		{Name: "Behind", Text: Behind, Cost: 2004, Cells: 5, Enumerable: true},
		{Name: "Walled", Text: Walled, Cost: -1, Cells: 0, Enumerable: true},
		{Name: "Open", Text: Open, Cost: 1005, Cells: 6, Enumerable: true},
		{Name: "Small", Text: Small, Cost: 7036, Cells: 45},
		{Name: "Medium", Text: Medium, Cost: 11048, Cells: 64},
	}
}
