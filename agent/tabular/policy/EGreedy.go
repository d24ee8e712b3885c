// Package policy implements tabular policies over the smartcab state
// abstraction
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	"github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/traffic"
	"github.com/samuelfneumann/smartcab/utils/floatutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// Keys for weights map: map[string]*mat.Dense
	TableKey string = "table"
)

// EGreedy implements an ε-greedy policy over a state-action table.
//
// The table has one row per state and one column per action, both in
// enumeration order. With probability ε a uniformly random action is
// chosen. Otherwise, the action with the highest value is chosen. If
// all action values in a state are equal, a uniformly random action is
// chosen instead, so that an untrained table is not biased towards the
// first action. Ties between some but not all actions go to the action
// that comes first in enumeration order.
type EGreedy struct {
	table    *mat.Dense
	schedule Schedule
	steps    int // Global steps taken in training mode
	eval     bool

	source  rand.Source // Shared by all random draws
	uniform distuv.Categorical
}

// NewEGreedy returns a new EGreedy policy with a zero-initialized
// table. The schedule determines ε at each step and src is the source
// of all random draws made by the policy.
func NewEGreedy(schedule Schedule, src rand.Source) (*EGreedy, error) {
	if schedule == nil {
		return nil, fmt.Errorf("newEGreedy: schedule cannot be nil")
	}
	if src == nil {
		return nil, fmt.Errorf("newEGreedy: random source cannot be nil")
	}

	weights := make([]float64, traffic.NumActions)
	for i := range weights {
		weights[i] = 1.0
	}

	return &EGreedy{
		table:    mat.NewDense(state.NumStates, traffic.NumActions, nil),
		schedule: schedule,
		source:   src,
		uniform:  distuv.NewCategorical(weights, src),
	}, nil
}

// Epsilon returns the exploration rate for the next action selection
func (p *EGreedy) Epsilon() float64 {
	if p.eval {
		return 0.0
	}
	return floatutils.Clip(p.schedule.Epsilon(p.steps), 0.0, 1.0)
}

// Steps returns the number of actions selected in training mode over
// the lifetime of the policy
func (p *EGreedy) Steps() int {
	return p.steps
}

// SelectAction encodes the inputs and waypoint of a TimeStep and
// selects an action in the resulting state
func (p *EGreedy) SelectAction(t timestep.TimeStep) traffic.Action {
	return p.Select(state.Encode(t.Inputs, t.Waypoint))
}

// Select selects an action in state s
func (p *EGreedy) Select(s state.State) traffic.Action {
	epsilon := p.Epsilon()
	if !p.eval {
		p.steps++
	}

	explore := distuv.Bernoulli{P: epsilon, Src: p.source}
	if explore.Rand() == 1.0 {
		return p.random()
	}
	return p.greedy(s)
}

// greedy returns the greedy action in state s, randomizing only if all
// action values in s are equal
func (p *EGreedy) greedy(s state.State) traffic.Action {
	values := p.table.RawRowView(s.Index())
	if floatutils.AllEqual(values) {
		return p.random()
	}

	_, indices := floatutils.MaxSlice(values)
	return traffic.ActionAt(indices[0])
}

// random returns an action sampled uniformly at random
func (p *EGreedy) random() traffic.Action {
	return traffic.ActionAt(int(p.uniform.Rand()))
}

// Value returns the value of action a in state s
func (p *EGreedy) Value(s state.State, a traffic.Action) float64 {
	return p.table.At(s.Index(), a.Index())
}

// Weights gets and returns the table of the EGreedy policy as a
// string description -> table
func (p *EGreedy) Weights() map[string]*mat.Dense {
	weights := make(map[string]*mat.Dense)
	weights[TableKey] = p.table

	return weights
}

// SetWeights sets the table pointer to point to a new table. The
// SetWeights function can take the output of a call to Weights() on
// another EGreedy Policy directly
func (p *EGreedy) SetWeights(weights map[string]*mat.Dense) error {
	newTable, ok := weights[TableKey]
	if !ok {
		return fmt.Errorf("setWeights: no weights named \"%v\"", TableKey)
	}

	if r, c := newTable.Dims(); r != state.NumStates || c != traffic.NumActions {
		return fmt.Errorf("setWeights: table must have shape (%d, %d) "+
			"but got (%d, %d)", state.NumStates, traffic.NumActions, r, c)
	}

	p.table = newTable
	return nil
}

// Eval sets the policy to evaluation mode, in which it never explores
// and does not advance its schedule
func (p *EGreedy) Eval() {
	p.eval = true
}

// Train sets the policy to training mode
func (p *EGreedy) Train() {
	p.eval = false
}

// IsEval returns whether the policy is in evaluation mode
func (p *EGreedy) IsEval() bool {
	return p.eval
}
