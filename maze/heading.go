package maze

import (
	"fmt"
	"strings"
)

// Heading is one of the four cardinal facings. The numeric values define
// the cyclic order used to count turns.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// HeadingCount is the number of cardinal headings.
const HeadingCount = 4

// Headings lists every heading in cyclic order.
var Headings = [HeadingCount]Heading{North, East, South, West}

// offsets[h] is the (dx, dy) step for heading h.
var offsets = [HeadingCount][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var headingNames = [HeadingCount]string{"North", "East", "South", "West"}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool {
	return h >= North && h <= West
}

// Delta returns the (dx, dy) offset of a single step along h.
// An invalid heading has a zero offset.
func (h Heading) Delta() [2]int {
	if !h.Valid() {
		return [2]int{}
	}
	return offsets[h]
}

// Opposite returns the heading rotated by 180°.
func (h Heading) Opposite() Heading {
	return (h + 2) % HeadingCount
}

// Turns returns the minimal number of 90° rotations (0, 1 or 2) from h to to.
func (h Heading) Turns(to Heading) int {
	d := int(h) - int(to)
	if d < 0 {
		d = -d
	}
	if HeadingCount-d < d {
		return HeadingCount - d
	}
	return d
}

func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return headingNames[h]
}

// ParseHeading reads a heading name ("north", "E", "West", ...), case-insensitively.
func ParseHeading(s string) (Heading, error) {
	s = strings.TrimSpace(s)
	for _, h := range Headings {
		name := headingNames[h]
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:1]) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeading, s)
}
