package smartcab

import "github.com/samuelfneumann/smartcab/traffic"

// Rewards implements the environment.Task interface for the smartcab.
// Legal moves are rewarded by whether they follow the route planner,
// idling earns Idle and illegal moves are penalized with Violation.
// Reaching the destination in time earns an additional Goal.
type Rewards struct {
	Waypoint  float64 // Legal move that follows the waypoint
	OffRoute  float64 // Legal move that does not
	Idle      float64
	Violation float64
	Goal      float64
}

// DefaultRewards returns the default reward scheme
func DefaultRewards() Rewards {
	return Rewards{
		Waypoint:  2.0,
		OffRoute:  -0.5,
		Idle:      0.0,
		Violation: -1.0,
		Goal:      10.0,
	}
}

// GetReward returns the reward for taking action when the route planner
// suggested waypoint
func (r Rewards) GetReward(action, waypoint traffic.Action, legal bool) float64 {
	switch {
	case !legal:
		return r.Violation
	case action == traffic.None:
		return r.Idle
	case action == waypoint:
		return r.Waypoint
	default:
		return r.OffRoute
	}
}

// GoalReward returns the bonus for reaching the destination. No bonus is
// given once the deadline has passed.
func (r Rewards) GoalReward(deadline int) float64 {
	if deadline >= 0 {
		return r.Goal
	}
	return 0.0
}
