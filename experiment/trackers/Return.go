package trackers

import (
	"fmt"

	ts "github.com/samuelfneumann/smartcab/timestep"
)

// Return tracks and saves the return of each trip in an experiment.
// When the world returns a TimeStep, this Tracker will extract the
// reward and accumulate the return for the current trip.
//
// Note: A trip must finish for this Tracker to save its data. If the
// last trip in an experiment does not finish, that trip's return will
// not be saved.
type Return struct {
	lastTimeStep  int
	currentReturn float64
	tripReturns   []float64
	filename      string
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn(filename string) *Return {
	return &Return{lastTimeStep: -1, filename: filename}
}

// Track tracks the rewards seen on a timestep. When a new trip starts,
// this method will automatically detect this and start accumulating
// the rewards for the new trip separately.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return) Track(step ts.TimeStep) {
	if r.lastTimeStep+1 != step.Number {
		msg := fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number)
		panic(msg)
	}

	r.currentReturn += step.Reward
	if !step.Last() {
		r.lastTimeStep = step.Number
		return
	}

	// Trip has ended, cache the return and begin tracking the return
	// of the next trip
	r.tripReturns = append(r.tripReturns, r.currentReturn)
	r.currentReturn = 0.0
	r.lastTimeStep = -1
}

// Data returns the return of each finished trip
func (r *Return) Data() []float64 {
	return append([]float64(nil), r.tripReturns...)
}

// Save saves the data tracked by the Return Tracker to disk.
func (r *Return) Save() {
	save(r.filename, r.tripReturns)
}
