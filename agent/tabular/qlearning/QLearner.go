package qlearning

import (
	"fmt"
	"os"

	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	"github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/traffic"
	"gonum.org/v1/gonum/mat"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm.
//
// Updates lag one step behind action selection: the value of the
// previous state-action pair is updated once the current state and
// action are known, using the reward received for the previous action:
//
//	Q[s'][a'] ← (1 - α) Q[s'][a'] + α (r' + γ Q[s][a])
//
// where s', a' and r' are the previous state, action and reward, and s,
// a are the current state and action.
type QLearner struct {
	table        *mat.Dense
	learningRate float64
	discount     float64

	// Previous state, action and reward. These are reset to
	// state.Invalid, traffic.Invalid, and 0 at the start of each trip.
	prevState  state.State
	prevAction traffic.Action
	prevReward float64

	// Current state, action and the reward received for the action
	state  state.State
	action traffic.Action
	reward float64
}

// NewQLearner creates a new QLearner struct
//
// table is the state-action table of the policy to learn
func NewQLearner(table *mat.Dense, learningRate,
	discount float64) (*QLearner, error) {
	if learningRate <= 0 || learningRate > 1 {
		return nil, fmt.Errorf("newQLearner: learning rate must be in "+
			"(0, 1] (learning rate = %v)", learningRate)
	}
	if discount <= 0 || discount > 1 {
		return nil, fmt.Errorf("newQLearner: discount must be in (0, 1] "+
			"(discount = %v)", discount)
	}

	q := &QLearner{
		table:        table,
		learningRate: learningRate,
		discount:     discount,
	}
	q.Reset()

	return q, nil
}

// Reset clears the previous and current state, action, and reward so
// that the next step is treated as the first step of a trip
func (q *QLearner) Reset() {
	q.prevState, q.prevAction, q.prevReward = state.Invalid, traffic.Invalid, 0
	q.state, q.action, q.reward = state.Invalid, traffic.Invalid, 0
}

// ObserveFirst observes and records the first timestep of a trip
func (q *QLearner) ObserveFirst(t timestep.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n",
			t.Number)
	}
	q.Reset()
}

// Record records the current state and the action selected in it
func (q *QLearner) Record(s state.State, a traffic.Action) {
	q.state = s
	q.action = a
	q.reward = 0
}

// Observe records the reward received for taking action in the current
// state
func (q *QLearner) Observe(action traffic.Action, nextStep timestep.TimeStep) {
	if action != q.action {
		fmt.Fprintf(os.Stderr, "Warning: observed action %v but recorded "+
			"action %v (current timestep = %d)\n", action, q.action,
			nextStep.Number)
	}
	q.reward = nextStep.Reward
}

// Step updates the value of the previous state-action pair, then shifts
// the current state, action and reward into the previous ones. No
// update is performed on the first step of a trip since there is no
// previous state-action pair.
func (q *QLearner) Step() {
	if !q.state.Valid() {
		fmt.Fprintf(os.Stderr, "Warning: Step() called before any state "+
			"was recorded\n")
		return
	}

	if q.prevState.Valid() {
		q.Update(q.prevState, q.prevAction, q.prevReward, q.state, q.action)
	}

	q.prevState, q.prevAction, q.prevReward = q.state, q.action, q.reward
}

// Update performs a single temporal difference update of the value of
// action a in state s given that reward r was received and action next
// was selected in state nextState
func (q *QLearner) Update(s state.State, a traffic.Action, r float64,
	nextState state.State, next traffic.Action) {
	row, col := s.Index(), a.Index()

	target := r + q.discount*q.table.At(nextState.Index(), next.Index())
	value := (1-q.learningRate)*q.table.At(row, col) + q.learningRate*target

	q.table.Set(row, col, value)
}

// Previous returns the previous state, action, and reward
func (q *QLearner) Previous() (state.State, traffic.Action, float64) {
	return q.prevState, q.prevAction, q.prevReward
}

// Weights gets and returns the table of the learner
func (q *QLearner) Weights() map[string]*mat.Dense {
	weights := make(map[string]*mat.Dense)
	weights[policy.TableKey] = q.table

	return weights
}
