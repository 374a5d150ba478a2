// Package maze models an immutable rectangular maze made of walls and open
// cells, with exactly one start cell and one goal cell.
//
// What:
//
//   - Maze wraps a W×H grid of wall flags plus the start and goal positions.
//   - Parse reads the ASCII form ('#' wall, '.' open, 'S' start, 'E' goal).
//   - New builds a maze programmatically from a wall list.
//   - Heading enumerates the four cardinal facings in cyclic order
//     North → East → South → West and counts the 90° turns between two of them.
//   - CellSet collects positions; Render draws a maze with marked cells.
//
// Why:
//
//   - The maze is the read-only ground truth for the state-space adapter
//     (statespace) and the solver (dijkstra); it never changes after
//     construction, so it can be shared freely between solves.
//
// Complexity:
//
//   - Parse, New:        O(W×H) time and memory.
//   - InBounds, IsWall:  O(1).
//   - Render:            O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrUnknownSymbol:   a character outside "#.SE".
//   - ErrNoStart, ErrMultipleStarts: not exactly one 'S'.
//   - ErrNoGoal, ErrMultipleGoals:   not exactly one 'E'.
//   - ErrOutOfBounds:     New received a start/goal/wall outside the grid.
//   - ErrBlockedEndpoint: New received a start or goal that is also a wall.
//
// All construction errors are fatal for the input: no partial maze is returned.
package maze
