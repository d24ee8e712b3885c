package qlearning

import (
	"gonum.org/v1/gonum/stat"
)

// Metrics measures the performance of an agent over an entire run.
// Metrics are used for reporting only and are never part of the
// learning signal.
type Metrics struct {
	CumulativeReward float64
	SuccessfulTrips  int
	WrongMoves       int
	Steps            int

	// DeadlineFractions holds, for each completed trip in order, the
	// fraction of the starting deadline that remained when the trip
	// ended. Trips that ran out of time have a fraction of 0.
	DeadlineFractions []float64

	successReward    float64
	violationRewards []float64
}

// NewMetrics returns a new Metrics. A reward of at least successReward
// signals that the destination was reached. Negative rewards, or
// rewards exactly equal to one of violationRewards, are counted as
// wrong moves.
func NewMetrics(successReward float64, violationRewards []float64) *Metrics {
	v := make([]float64, len(violationRewards))
	copy(v, violationRewards)

	return &Metrics{
		successReward:    successReward,
		violationRewards: v,
	}
}

// Record records the reward received on a single step
func (m *Metrics) Record(reward float64) {
	m.Steps++
	m.CumulativeReward += reward

	if m.Success(reward) {
		m.SuccessfulTrips++
	}
	if m.Wrong(reward) {
		m.WrongMoves++
	}
}

// Success returns whether the reward signals that the destination was
// reached
func (m *Metrics) Success(reward float64) bool {
	return reward >= m.successReward
}

// Wrong returns whether the reward signals a traffic violation. Some
// rewards above the success threshold also signal a violation, since
// the destination can be reached on an illegal or off-route move.
func (m *Metrics) Wrong(reward float64) bool {
	if reward < 0 {
		return true
	}
	for _, v := range m.violationRewards {
		if reward == v {
			return true
		}
	}
	return false
}

// EndTrip records the deadline fraction of a completed trip
func (m *Metrics) EndTrip(deadlineFraction float64) {
	m.DeadlineFractions = append(m.DeadlineFractions, deadlineFraction)
}

// Trips returns the number of completed trips
func (m *Metrics) Trips() int {
	return len(m.DeadlineFractions)
}

// LastFailedTrip returns the 1-based index of the most recent trip that
// ended with a deadline fraction of 0. If no trip has failed, ok is
// false.
func (m *Metrics) LastFailedTrip() (trip int, ok bool) {
	for i := len(m.DeadlineFractions) - 1; i >= 0; i-- {
		if m.DeadlineFractions[i] == 0 {
			return i + 1, true
		}
	}
	return 0, false
}

// FailuresInLast returns the number of failed trips among the most
// recent n completed trips
func (m *Metrics) FailuresInLast(n int) int {
	start := len(m.DeadlineFractions) - n
	if start < 0 {
		start = 0
	}

	failures := 0
	for _, fraction := range m.DeadlineFractions[start:] {
		if fraction == 0 {
			failures++
		}
	}
	return failures
}

// AverageDeadlineFraction returns the mean deadline fraction over all
// completed trips, or 0 if no trip has been completed
func (m *Metrics) AverageDeadlineFraction() float64 {
	if len(m.DeadlineFractions) == 0 {
		return 0.0
	}
	return stat.Mean(m.DeadlineFractions, nil)
}

// Clone returns a deep copy of the Metrics
func (m *Metrics) Clone() *Metrics {
	clone := *m
	clone.DeadlineFractions = append([]float64(nil), m.DeadlineFractions...)
	clone.violationRewards = append([]float64(nil), m.violationRewards...)
	return &clone
}

// DeadlineFraction returns the fraction of the starting deadline that
// remains. If the starting deadline is 0, the fraction is 0.
func DeadlineFraction(deadline, start int) float64 {
	if start == 0 {
		return 0.0
	}
	return float64(deadline) / float64(start)
}
