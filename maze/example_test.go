// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleParse reads a small maze and queries its endpoints.
func ExampleParse() {
	m, err := maze.Parse("#####\n#S..#\n#.#E#\n#####")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("size:", m.Width(), "x", m.Height())
	fmt.Println("start:", m.Start(), "goal:", m.Goal())
	fmt.Println("open cells:", m.OpenCells())

	// Output:
	// size: 5 x 4
	// start: 1,1 goal: 3,2
	// open cells: 5
}
