// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/traffic"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType determines how a trip ended
type EndType int

const (
	Unended EndType = iota

	// Success denotes that the destination was reached
	Success

	// Timeout denotes that the enforced deadline ran out
	Timeout

	// HardLimit denotes that the hard time limit was reached, which
	// happens only when deadlines are not enforced
	HardLimit
)

func (e EndType) String() string {
	switch e {
	case Success:
		return "Success"
	case Timeout:
		return "Timeout"
	case HardLimit:
		return "HardLimit"
	default:
		return "Unended"
	}
}

// TimeStep packages together a single timestep in an environment.
//
// Reward is the reward for the action that led to this TimeStep.
// Inputs, Waypoint and Deadline describe what the primary agent senses
// at this TimeStep, before it acts.
type TimeStep struct {
	StepType
	EndType
	Reward   float64
	Deadline int
	Inputs   traffic.Inputs
	Waypoint traffic.Action
	Number   int
}

// New returns a new TimeStep
func New(t StepType, r float64, deadline int, inputs traffic.Inputs,
	waypoint traffic.Action, n int) TimeStep {
	return TimeStep{
		StepType: t,
		Reward:   r,
		Deadline: deadline,
		Inputs:   inputs,
		Waypoint: waypoint,
		Number:   n,
	}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd marks the TimeStep as the last in its trip, ending with e
func (t *TimeStep) SetEnd(e EndType) {
	t.StepType = Last
	t.EndType = e
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Deadline: %d  |  " +
		"Inputs: %v  |  Waypoint: %v  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Deadline, t.Inputs,
		t.Waypoint, t.Number)
}
