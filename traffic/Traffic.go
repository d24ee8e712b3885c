// Package traffic defines the vocabulary shared by the smartcab
// simulator and the agents that drive in it: traffic lights, movements
// and the inputs sensed at an intersection.
package traffic

import "fmt"

// Light is the colour of a traffic light as seen by a single car
type Light int

const (
	Red Light = iota
	Green
)

func (l Light) String() string {
	switch l {
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("Light(%d)", int(l))
	}
}

// Action is a movement through an intersection. The same type is used
// for the actions a car takes, the waypoints suggested by a route
// planner, and the intentions of other cars sensed at an intersection.
//
// None is the idle action. When used as a sensed input, None means that
// no car is present in that direction (or that the car present has no
// next waypoint).
type Action int

const (
	// Invalid marks the absence of an action, e.g. before the first
	// step of a trip. It is never taken in an environment.
	Invalid Action = iota - 1
	None
	Right
	Left
	Forward
)

// NumActions is the number of valid actions
const NumActions = 4

// Actions returns all valid actions, in enumeration order
func Actions() []Action {
	return []Action{None, Right, Left, Forward}
}

// Moves returns the actions that move a car, i.e. all valid actions
// except None
func Moves() []Action {
	return []Action{Right, Left, Forward}
}

// Valid returns whether the action is one of the valid actions
func (a Action) Valid() bool {
	return a >= None && a <= Forward
}

// Index returns the index of the action in Actions()
func (a Action) Index() int {
	if !a.Valid() {
		panic(fmt.Sprintf("index: no index for action %v", a))
	}
	return int(a)
}

func (a Action) String() string {
	switch a {
	case Invalid:
		return "invalid"
	case None:
		return "none"
	case Right:
		return "right"
	case Left:
		return "left"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ActionAt returns the action with index i in Actions()
func ActionAt(i int) Action {
	a := Action(i)
	if !a.Valid() {
		panic(fmt.Sprintf("actionAt: no action at index %d", i))
	}
	return a
}

// Inputs packages together everything a car senses at an intersection:
// the colour of its light and the next waypoint of any car oncoming,
// to its left, or to its right.
type Inputs struct {
	Light    Light
	Oncoming Action
	Left     Action
	Right    Action
}

func (i Inputs) String() string {
	return fmt.Sprintf("{light: %v, oncoming: %v, left: %v, right: %v}",
		i.Light, i.Oncoming, i.Left, i.Right)
}
