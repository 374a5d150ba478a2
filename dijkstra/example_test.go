// Package dijkstra_test provides examples demonstrating how to use Solve.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/statespace"
)

// ExampleSolve_corner demonstrates the turn penalty: the walker starts facing
// East, walks three cells, turns North once and walks two more.
// Complexity: O(S log S) with S = 4 × W × H states.
func ExampleSolve_corner() {
	// 1) Parse the maze; '#' walls, 'S' start, 'E' goal.
	m, err := maze.Parse("######\n####E#\n####.#\n#S...#\n######")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Build the state space with the default cost model (turn 1000, step 1).
	sp, err := statespace.New(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Solve and print the minimal cost and the heading at the goal.
	res, err := dijkstra.Solve(sp)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("reached=%v cost=%d heading=%v\n", res.Reached, res.Cost, res.Goal.Heading)
	// Output: reached=true cost=1005 heading=North
}

// ExampleSolve_unreachable shows that a walled-off goal is a normal outcome.
func ExampleSolve_unreachable() {
	m, _ := maze.Parse("#######\n#S.#.E#\n#######")
	sp, _ := statespace.New(m)

	res, err := dijkstra.Solve(sp)
	fmt.Println("err:", err)
	fmt.Println("reached:", res.Reached)
	// Output:
	// err: <nil>
	// reached: false
}
