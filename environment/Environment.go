// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/traffic"
)

// Location is an intersection on the grid
type Location struct {
	X, Y int
}

// Distance returns the Manhattan distance between two locations
func (l Location) Distance(other Location) int {
	return abs(l.X-other.X) + abs(l.Y-other.Y)
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Starter implements a distribution of trip starts and samples the
// starting location, destination, and starting heading of a trip
type Starter interface {
	Start() (start, destination Location, heading traffic.Heading)
}

// Task implements the reward scheme for taking actions in some
// environment
type Task interface {
	// GetReward returns the reward for taking action when the route
	// planner suggested waypoint. The legal argument is whether the
	// action is permitted by the traffic rules.
	GetReward(action, waypoint traffic.Action, legal bool) float64

	// GoalReward returns the bonus for reaching the destination with
	// the argument deadline remaining
	GoalReward(deadline int) float64
}

// Ender determines when trips end. If a trip should end, End modifies
// the TimeStep so that it is the last of the trip and returns true.
type Ender interface {
	End(t *timestep.TimeStep) bool
}

// Environment implements a simulated environment, which includes a Task
// to complete
type Environment interface {
	Reset() timestep.TimeStep // Resets between trips
	Step(action traffic.Action) (timestep.TimeStep, bool)
	LastTimeStep() timestep.TimeStep

	Sense() traffic.Inputs        // Inputs at the primary agent's intersection
	NextWaypoint() traffic.Action // Route guidance for the primary agent
	Deadline() int                // Steps remaining in the current trip
}
