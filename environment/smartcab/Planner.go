package smartcab

import (
	"github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/traffic"
)

// RoutePlanner suggests the next waypoint towards a destination. It
// corrects the x offset before the y offset and does not route across
// the wrap-around edges of the grid.
type RoutePlanner struct {
	destination environment.Location
}

// RouteTo sets the destination of the planner
func (r *RoutePlanner) RouteTo(destination environment.Location) {
	r.destination = destination
}

// Destination returns the destination of the planner
func (r *RoutePlanner) Destination() environment.Location {
	return r.destination
}

// NextWaypoint returns the action that moves a car at location with
// heading towards the destination. If the car is at the destination,
// traffic.None is returned.
func (r *RoutePlanner) NextWaypoint(location environment.Location,
	heading traffic.Heading) traffic.Action {
	dx := r.destination.X - location.X
	dy := r.destination.Y - location.Y

	switch {
	case dx == 0 && dy == 0:
		return traffic.None

	case dx != 0:
		switch {
		case dx*heading.DX > 0:
			return traffic.Forward
		case dx*heading.DX < 0:
			return traffic.Right // Turn around
		case dx*heading.DY > 0:
			return traffic.Left
		default:
			return traffic.Right
		}

	default:
		switch {
		case dy*heading.DY > 0:
			return traffic.Forward
		case dy*heading.DY < 0:
			return traffic.Right // Turn around
		case dy*heading.DX > 0:
			return traffic.Right
		default:
			return traffic.Left
		}
	}
}
