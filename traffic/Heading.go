package traffic

import "fmt"

// Heading is a unit direction on the grid. The y axis points south, so
// North is (0, -1).
type Heading struct {
	DX, DY int
}

var (
	North = Heading{0, -1}
	East  = Heading{1, 0}
	South = Heading{0, 1}
	West  = Heading{-1, 0}
)

// Headings returns the four valid headings
func Headings() []Heading {
	return []Heading{East, North, West, South}
}

// TurnLeft returns the heading after a left turn
func (h Heading) TurnLeft() Heading {
	return Heading{h.DY, -h.DX}
}

// TurnRight returns the heading after a right turn
func (h Heading) TurnRight() Heading {
	return Heading{-h.DY, h.DX}
}

// Dot returns the dot product of two headings. Opposite headings have a
// dot product of -1.
func (h Heading) Dot(other Heading) int {
	return h.DX*other.DX + h.DY*other.DY
}

// NorthSouth returns whether the heading is along the north-south axis
func (h Heading) NorthSouth() bool {
	return h.DY != 0
}

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("(%d, %d)", h.DX, h.DY)
	}
}
