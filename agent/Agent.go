// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/traffic"
	"gonum.org/v1/gonum/mat"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// Policy.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action
// values are updated.
//
// A Learner determines how values are changed, and therefore how a
// Policy changes over time. The Learner and Policy of an Agent should
// have pointers to the same table so that the Learner can use the
// transitions chosen by the Policy to update the table appropriately.
type Learner interface {
	// Step performs a single update to the learner
	Step()

	// Observe records that an action lead to some timestep
	Observe(action traffic.Action, nextStep timestep.TimeStep)

	// ObserveFirst records the first timestep in a trip
	ObserveFirst(timestep.TimeStep)

	Weights() map[string]*mat.Dense
	SetWeights(map[string]*mat.Dense) error
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. For a given agent, the
// Policy and Learner should have pointers to the same table so that any
// changes the learner makes to the table are reflected in the actions
// the Policy chooses
type Policy interface {
	SelectAction(t timestep.TimeStep) traffic.Action
	Weights() map[string]*mat.Dense
	SetWeights(map[string]*mat.Dense) error
	Eval()        // Set policy to evaluation mode
	Train()       // Set policy to training mode
	IsEval() bool // Indicates if in evaluation mode
}
