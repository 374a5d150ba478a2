package maze

import "sort"

// CellSet is a set of grid positions.
type CellSet map[Position]struct{}

// Add inserts p; adding a present position is a no-op.
func (s CellSet) Add(p Position) {
	s[p] = struct{}{}
}

// Contains reports whether p is in the set.
func (s CellSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of distinct positions.
func (s CellSet) Len() int {
	return len(s)
}

// Sorted returns the positions in row-major order (by Y, then X).
func (s CellSet) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
