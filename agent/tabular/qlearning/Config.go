package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/agent"
	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
)

// Config represents a configuration for the QLearning agent
type Config struct {
	Epsilon          float64 // Base exploration rate of the schedule
	ExplorationSteps int     // Time constant of the schedule
	Schedule         policy.ScheduleType

	LearningRate float64
	Discount     float64

	// Metric thresholds
	SuccessReward    float64
	ViolationRewards []float64
	FailureWindow    int // Number of recent trips to count failures in
}

// DefaultConfig returns the default configuration: explore with
// ε = 0.02 for the first 1500 steps of a run and never afterwards,
// with α = 0.1 and γ = 0.1.
func DefaultConfig() Config {
	return Config{
		Epsilon:          0.02,
		ExplorationSteps: 1500,
		Schedule:         policy.CutoffSchedule,
		LearningRate:     0.1,
		Discount:         0.1,
		SuccessReward:    9.0,
		ViolationRewards: []float64{9.0, 9.5},
		FailureWindow:    10,
	}
}

// CreateAgent creates the agent from the Config. The table is always
// initialized to zero.
func (c Config) CreateAgent(seed uint64) (agent.Agent, error) {
	q, err := New(c, seed)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1]")
	}
	if c.ExplorationSteps < 0 {
		return fmt.Errorf("exploration steps cannot be negative")
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate must be in (0, 1]")
	}
	if c.Discount <= 0 || c.Discount > 1 {
		return fmt.Errorf("discount must be in (0, 1]")
	}
	if c.FailureWindow <= 0 {
		return fmt.Errorf("failure window must be positive")
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("Q-Learning | ε: %v (%v, %d steps)  |  α: %v  |  γ: %v",
		c.Epsilon, c.Schedule, c.ExplorationSteps, c.LearningRate,
		c.Discount)
}

// ConfigList implements functionality for storing a number of Config's
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values. Fields that are not swept are
// taken from Base.
type ConfigList struct {
	Base Config

	Epsilon          []float64
	ExplorationSteps []int
	LearningRate     []float64
	Discount         []float64
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return len(c.Epsilon) * len(c.ExplorationSteps) *
		len(c.LearningRate) * len(c.Discount)
}

// At returns the Config at index i of the list. The last field varies
// fastest.
func (c ConfigList) At(i int) Config {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("at: index %d out of range [0, %d)", i, c.Len()))
	}

	config := c.Base
	config.ViolationRewards = append([]float64(nil), c.Base.ViolationRewards...)

	config.Discount = c.Discount[i%len(c.Discount)]
	i /= len(c.Discount)

	config.LearningRate = c.LearningRate[i%len(c.LearningRate)]
	i /= len(c.LearningRate)

	config.ExplorationSteps = c.ExplorationSteps[i%len(c.ExplorationSteps)]
	i /= len(c.ExplorationSteps)

	config.Epsilon = c.Epsilon[i]

	return config
}
