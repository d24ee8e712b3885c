// Package qlearning implements tabular Q-Learning for the smartcab.
//
// The agent encodes what it senses at each intersection into one of the
// states of package state, selects actions with an ε-greedy policy over
// a state-action table, and updates the table with a one-step delayed
// temporal difference rule. Alongside learning, the agent keeps
// performance metrics over the whole run: cumulative reward, successful
// trips, wrong moves, and the fraction of the deadline remaining at the
// end of each trip.
package qlearning

import (
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	"github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/traffic"
	"gonum.org/v1/gonum/mat"
)

// Phase is the phase of the current trip from the agent's perspective
type Phase int

const (
	AwaitingFirstStep Phase = iota
	Stepping
	TripEnded
)

func (p Phase) String() string {
	switch p {
	case AwaitingFirstStep:
		return "AwaitingFirstStep"
	case Stepping:
		return "Stepping"
	default:
		return "TripEnded"
	}
}

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	learner   *QLearner
	behaviour *policy.EGreedy
	metrics   *Metrics
	seed      uint64

	phase         Phase
	deadline      int // Deadline sensed before the current action
	deadlineStart int // Largest deadline sensed in the current trip
	state         state.State
}

// New creates a new QLearning agent with a zero-initialized table. All
// random draws made by the agent come from a single source seeded with
// seed.
func New(config Config, seed uint64) (*QLearning, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("qlearning: invalid config: %v", err)
	}

	schedule, err := policy.NewSchedule(config.Schedule, config.Epsilon,
		config.ExplorationSteps)
	if err != nil {
		return nil, fmt.Errorf("qlearning: invalid schedule: %v", err)
	}

	behaviour, err := policy.NewEGreedy(schedule, rand.NewSource(seed))
	if err != nil {
		return nil, fmt.Errorf("qlearning: invalid behaviour policy: %v",
			err)
	}

	// Ensure the policy and learner reference the same table
	table := behaviour.Weights()[policy.TableKey]
	learner, err := NewQLearner(table, config.LearningRate, config.Discount)
	if err != nil {
		return nil, fmt.Errorf("qlearning: cannot create learner: %v", err)
	}

	return &QLearning{
		learner:   learner,
		behaviour: behaviour,
		metrics:   NewMetrics(config.SuccessReward, config.ViolationRewards),
		seed:      seed,
		state:     state.Invalid,
	}, nil
}

// Reset prepares the agent for a new trip. The previous state, action,
// and reward are cleared, while the table and all metrics are kept.
func (q *QLearning) Reset() {
	q.learner.Reset()
	q.phase = AwaitingFirstStep
	q.deadline = 0
	q.deadlineStart = 0
	q.state = state.Invalid
}

// ObserveFirst observes and records the first timestep of a trip
func (q *QLearning) ObserveFirst(t timestep.TimeStep) {
	q.learner.ObserveFirst(t)
	q.Reset()
}

// SelectAction encodes what the agent senses in the TimeStep and selects
// an action in the resulting state
func (q *QLearning) SelectAction(t timestep.TimeStep) traffic.Action {
	if t.Deadline > q.deadlineStart {
		q.deadlineStart = t.Deadline
	}
	q.deadline = t.Deadline

	q.state = state.Encode(t.Inputs, t.Waypoint)
	action := q.behaviour.Select(q.state)
	q.learner.Record(q.state, action)

	if q.phase == AwaitingFirstStep {
		q.phase = Stepping
	}
	return action
}

// Act selects an action given the inputs and waypoint sensed at an
// intersection and the current deadline
func (q *QLearning) Act(inputs traffic.Inputs, waypoint traffic.Action,
	deadline int) traffic.Action {
	t := timestep.TimeStep{
		StepType: timestep.Mid,
		Inputs:   inputs,
		Waypoint: waypoint,
		Deadline: deadline,
	}
	return q.SelectAction(t)
}

// Simulator is the view of the world the agent needs to drive itself
// through a single tick
type Simulator interface {
	Sense() traffic.Inputs
	NextWaypoint() traffic.Action
	Deadline() int
	Step(action traffic.Action) (timestep.TimeStep, bool)
}

// Update performs a single tick: the agent senses the world, selects
// and takes an action, then learns from the reward. Update returns
// whether the world ended the trip.
func (q *QLearning) Update(sim Simulator) bool {
	action := q.Act(sim.Sense(), sim.NextWaypoint(), sim.Deadline())
	next, done := sim.Step(action)

	q.Observe(action, next)
	q.Step()
	return done
}

// Observe records the reward received for the last selected action and
// updates the metrics. A trip ends, from the agent's perspective, when
// the reward signals that the destination was reached or when the
// action was taken with a deadline of 0. Each trip is recorded in the
// metrics at most once.
func (q *QLearning) Observe(action traffic.Action, nextStep timestep.TimeStep) {
	if q.phase == AwaitingFirstStep {
		fmt.Fprintf(os.Stderr, "Warning: Observe() called before an "+
			"action was selected (current timestep = %d)\n", nextStep.Number)
	}

	q.learner.Observe(action, nextStep)

	reward := nextStep.Reward
	q.metrics.Record(reward)

	if q.phase == TripEnded {
		return
	}
	if q.deadline == 0 || q.metrics.Success(reward) {
		q.metrics.EndTrip(DeadlineFraction(q.deadline, q.deadlineStart))
		q.phase = TripEnded
	}
}

// Step updates the table using the previous state-action pair
func (q *QLearning) Step() {
	q.learner.Step()
}

// Phase returns the phase of the current trip
func (q *QLearning) Phase() Phase {
	return q.phase
}

// State returns the state the agent was in when it last selected an
// action
func (q *QLearning) State() state.State {
	return q.state
}

// DeadlineStart returns the starting deadline of the current trip
func (q *QLearning) DeadlineStart() int {
	return q.deadlineStart
}

// Previous returns the previous state, action and reward
func (q *QLearning) Previous() (state.State, traffic.Action, float64) {
	return q.learner.Previous()
}

// Metrics returns a copy of the agent's metrics
func (q *QLearning) Metrics() *Metrics {
	return q.metrics.Clone()
}

// Epsilon returns the exploration rate for the next action selection
func (q *QLearning) Epsilon() float64 {
	return q.behaviour.Epsilon()
}

// Value returns the estimated value of action a in state s
func (q *QLearning) Value(s state.State, a traffic.Action) float64 {
	return q.behaviour.Value(s, a)
}

// Weights returns the state-action table
func (q *QLearning) Weights() map[string]*mat.Dense {
	return q.behaviour.Weights()
}

// SetWeights sets the state-action table used by both the policy and
// the learner
func (q *QLearning) SetWeights(weights map[string]*mat.Dense) error {
	if err := q.behaviour.SetWeights(weights); err != nil {
		return err
	}
	q.learner.table = weights[policy.TableKey]
	return nil
}

// Eval sets the agent's policy to evaluation mode
func (q *QLearning) Eval() {
	q.behaviour.Eval()
}

// Train sets the agent's policy to training mode
func (q *QLearning) Train() {
	q.behaviour.Train()
}

// IsEval returns whether the agent's policy is in evaluation mode
func (q *QLearning) IsEval() bool {
	return q.behaviour.IsEval()
}

// Seed returns the seed of the agent's random source
func (q *QLearning) Seed() uint64 {
	return q.seed
}
