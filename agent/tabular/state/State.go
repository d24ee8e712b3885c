// Package state implements the state abstraction used by tabular
// smartcab agents.
//
// The raw inputs sensed at an intersection (light colour, the intentions
// of cars oncoming, to the left and to the right) together with the
// waypoint suggested by the route planner are collapsed into one of nine
// states. Combinations of inputs which do not change the set of legal
// and safe actions are mapped to the same state.
package state

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/traffic"
)

// State is a discrete state of a smartcab agent
type State int

const (
	// Invalid marks the absence of a state, e.g. before the first step
	// of a trip. Encode never returns Invalid.
	Invalid State = iota - 1

	RedNotRight
	RedRightLeftClear
	RedRightLeftNotForward
	RedRightLeftForward
	GreenRight
	GreenForward
	GreenLeftClear
	GreenLeftOncomingLeft
	GreenLeftOncomingBlocked
)

// NumStates is the number of states Encode can produce
const NumStates = 9

var descriptions = [NumStates]string{
	"red light, next waypoint not right",
	"red light, next waypoint right, clear on the left",
	"red light, next waypoint right, left car not going forward",
	"red light, next waypoint right, left car going forward",
	"green light, next waypoint right",
	"green light, next waypoint forward",
	"green light, next waypoint left, clear oncoming",
	"green light, next waypoint left, oncoming car turning left",
	"green light, next waypoint left, oncoming car not turning left",
}

// States returns all states that Encode can produce, in enumeration
// order
func States() []State {
	states := make([]State, NumStates)
	for i := range states {
		states[i] = State(i)
	}
	return states
}

// Valid returns whether s is a state that Encode can produce
func (s State) Valid() bool {
	return s >= 0 && s < NumStates
}

// Index returns the row of the state in a state-action table
func (s State) Index() int {
	if !s.Valid() {
		panic(fmt.Sprintf("index: no index for state %v", s))
	}
	return int(s)
}

func (s State) String() string {
	if s == Invalid {
		return "invalid"
	}
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return descriptions[s]
}

// Encode maps the inputs sensed at an intersection and the next
// waypoint to a State. The first matching rule wins:
//
//	red light:
//		waypoint not right                 -> RedNotRight
//		left lane clear                    -> RedRightLeftClear
//		left car not going forward         -> RedRightLeftNotForward
//		left car going forward             -> RedRightLeftForward
//	green light:
//		waypoint right                     -> GreenRight
//		waypoint forward                   -> GreenForward
//		oncoming lane clear                -> GreenLeftClear
//		oncoming car turning left          -> GreenLeftOncomingLeft
//		oncoming car not turning left      -> GreenLeftOncomingBlocked
//
// Encode panics if the light is neither red nor green.
func Encode(inputs traffic.Inputs, waypoint traffic.Action) State {
	switch inputs.Light {
	case traffic.Red:
		if waypoint != traffic.Right {
			return RedNotRight
		}
		switch inputs.Left {
		case traffic.None:
			return RedRightLeftClear
		case traffic.Forward:
			return RedRightLeftForward
		default:
			return RedRightLeftNotForward
		}

	case traffic.Green:
		switch waypoint {
		case traffic.Right:
			return GreenRight
		case traffic.Forward:
			return GreenForward
		}
		switch inputs.Oncoming {
		case traffic.None:
			return GreenLeftClear
		case traffic.Left:
			return GreenLeftOncomingLeft
		default:
			return GreenLeftOncomingBlocked
		}
	}

	panic(fmt.Sprintf("encode: unknown light %v", inputs.Light))
}
