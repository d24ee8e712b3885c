package environment

import "github.com/samuelfneumann/smartcab/timestep"

// DeadlineLimit implements the Ender interface to end trips once the
// step taken with a deadline of 0 has been taken
type DeadlineLimit struct{}

// NewDeadlineLimit creates and returns a new deadline limit
func NewDeadlineLimit() DeadlineLimit {
	return DeadlineLimit{}
}

// End determines whether or not the current trip should be ended,
// returning a boolean to indicate trip termination. If the trip should
// be ended End() will modify the timestep so that its StepType field is
// timestep.Last and its EndType is timestep.Timeout
func (d DeadlineLimit) End(t *timestep.TimeStep) bool {
	if t.Deadline < 0 {
		t.SetEnd(timestep.Timeout)
		return true
	}
	return false
}

// HardLimit implements the Ender interface to end trips that have run
// far past their deadline. It is used when deadlines are not enforced.
type HardLimit struct {
	limit int
}

// NewHardLimit creates and returns a new hard limit. Trips end once the
// step taken with a deadline of limit has been taken.
func NewHardLimit(limit int) HardLimit {
	return HardLimit{limit}
}

// End determines whether or not the current trip should be ended,
// returning a boolean to indicate trip termination. If the trip should
// be ended End() will modify the timestep so that its StepType field is
// timestep.Last and its EndType is timestep.HardLimit
func (h HardLimit) End(t *timestep.TimeStep) bool {
	if t.Deadline < h.limit {
		t.SetEnd(timestep.HardLimit)
		return true
	}
	return false
}
