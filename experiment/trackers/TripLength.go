package trackers

import (
	ts "github.com/samuelfneumann/smartcab/timestep"
)

// TripLength tracks and saves the number of steps taken in each trip
// of an experiment.
//
// Note that a trip must finish for this Tracker to save its data.
// If the last trip in an experiment does not finish, that trip's
// length will not be saved.
type TripLength struct {
	tripLengths []float64
	filename    string
}

// NewTripLength returns a new TripLength Tracker which will save its
// data at the specified location filename
func NewTripLength(filename string) *TripLength {
	return &TripLength{filename: filename}
}

// Track caches the trip length if the timestep passed to it is the
// last timestep in the trip
func (t *TripLength) Track(step ts.TimeStep) {
	if step.Last() {
		t.tripLengths = append(t.tripLengths, float64(step.Number))
	}
}

// Data returns the length of each finished trip
func (t *TripLength) Data() []float64 {
	return append([]float64(nil), t.tripLengths...)
}

// Save saves the data tracked by the TripLength Tracker to disk.
func (t *TripLength) Save() {
	save(t.filename, t.tripLengths)
}
