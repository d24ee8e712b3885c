package policy

import (
	"fmt"
	"math"
)

// Schedule determines the exploration rate ε of an ε-greedy policy as a
// function of the number of steps taken over an entire run (not per
// trip).
type Schedule interface {
	Epsilon(step int) float64
}

// ScheduleType names a Schedule so that it can be configured
type ScheduleType string

const (
	CutoffSchedule     ScheduleType = "cutoff"
	ConstantSchedule   ScheduleType = "constant"
	LogSchedule        ScheduleType = "log"
	HyperbolicSchedule ScheduleType = "hyperbolic"
)

// NewSchedule returns the Schedule of type t. The epsilon argument is
// the base exploration rate of the schedule and steps is the schedule's
// time constant: the cut-off step for CutoffSchedule and the decay rate
// for HyperbolicSchedule. Other schedules ignore steps.
func NewSchedule(t ScheduleType, epsilon float64, steps int) (Schedule,
	error) {
	if epsilon < 0 || epsilon > 1 {
		return nil, fmt.Errorf("newSchedule: epsilon must be in [0, 1] "+
			"(epsilon = %v)", epsilon)
	}

	switch t {
	case CutoffSchedule, "":
		if steps < 0 {
			return nil, fmt.Errorf("newSchedule: cut-off step cannot be "+
				"negative (steps = %d)", steps)
		}
		return Cutoff{Epsilon: epsilon, Steps: steps}, nil

	case ConstantSchedule:
		return Constant(epsilon), nil

	case LogSchedule:
		return LogDecay{Scale: epsilon}, nil

	case HyperbolicSchedule:
		if steps <= 0 {
			return nil, fmt.Errorf("newSchedule: decay rate must be "+
				"positive (steps = %d)", steps)
		}
		return HyperbolicDecay{Initial: epsilon, Rate: float64(steps)}, nil
	}

	return nil, fmt.Errorf("newSchedule: no such schedule %q", t)
}

// Cutoff explores with a constant ε for the first Steps steps of a run
// and never explores afterwards
type Cutoff struct {
	Epsilon float64
	Steps   int
}

// Epsilon returns the exploration rate at the argument step
func (c Cutoff) Epsilon(step int) float64 {
	if step < c.Steps {
		return c.Epsilon
	}
	return 0.0
}

// Constant explores with the same ε on every step
type Constant float64

// Epsilon returns the exploration rate at the argument step
func (c Constant) Epsilon(int) float64 {
	return float64(c)
}

// LogDecay decays ε as Scale / ln(step + 2)
type LogDecay struct {
	Scale float64
}

// Epsilon returns the exploration rate at the argument step
func (l LogDecay) Epsilon(step int) float64 {
	return l.Scale / math.Log(float64(step)+2)
}

// HyperbolicDecay decays ε as Initial / (1 + step / Rate)
type HyperbolicDecay struct {
	Initial float64
	Rate    float64
}

// Epsilon returns the exploration rate at the argument step
func (h HyperbolicDecay) Epsilon(step int) float64 {
	return h.Initial / (1 + float64(step)/h.Rate)
}
