package trackers

import (
	ts "github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/utils/floatutils"
)

// DeadlineFraction tracks and saves, for each trip, the fraction of the
// starting deadline that remained when the last action of the trip was
// taken. Trips that ran out of time have a fraction of 0.
type DeadlineFraction struct {
	start     int
	fractions []float64
	filename  string
}

// NewDeadlineFraction returns a new DeadlineFraction Tracker which will
// save its data at the specified location filename
func NewDeadlineFraction(filename string) *DeadlineFraction {
	return &DeadlineFraction{filename: filename}
}

// Track records the starting deadline on the first timestep of a trip
// and the remaining fraction on the last
func (d *DeadlineFraction) Track(step ts.TimeStep) {
	if step.First() {
		d.start = step.Deadline
		return
	}
	if !step.Last() {
		return
	}

	fraction := 0.0
	if d.start > 0 {
		// The deadline was decremented after the last action was taken
		remaining := float64(step.Deadline + 1)
		fraction = floatutils.Clip(remaining/float64(d.start), 0, 1)
	}
	d.fractions = append(d.fractions, fraction)
}

// Data returns the deadline fraction of each finished trip
func (d *DeadlineFraction) Data() []float64 {
	return append([]float64(nil), d.fractions...)
}

// Save saves the data tracked by the DeadlineFraction Tracker to disk.
func (d *DeadlineFraction) Save() {
	save(d.filename, d.fractions)
}
