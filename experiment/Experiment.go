// Package experiment implements functionality for running an experiment
package experiment

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/samuelfneumann/smartcab/agent/tabular/qlearning"
	"github.com/samuelfneumann/smartcab/environment/envconfig"
	"github.com/samuelfneumann/smartcab/environment/smartcab"
	"github.com/samuelfneumann/smartcab/experiment/trackers"
	ts "github.com/samuelfneumann/smartcab/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each TimeStep of the world to Trackers, which cache
// the data they track in RAM to be later saved to disk. The Save()
// function will then save all cached data. The Run() method runs all
// trials and the RunTrip() method runs a single trial.
type Experiment interface {
	Run()
	RunTrip() bool // Returns whether or not all trials have finished

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save()

	// Adds a new Tracker to the (possibly already running) experiment.
	Register(t trackers.Tracker)
}

// Config represents a configuration of an experiment. Configs are JSON
// serializable.
type Config struct {
	Trials int
	Seed   uint64
	Env    envconfig.Config
	Agent  qlearning.Config
}

// DefaultConfig returns the default experiment: 100 trials of the
// default world with the default agent
func DefaultConfig() Config {
	return Config{
		Trials: 100,
		Seed:   0,
		Env:    envconfig.Default(),
		Agent:  qlearning.DefaultConfig(),
	}
}

// LoadConfig loads a Config from a JSON file. Fields missing from the
// file keep their default values.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not read config: %v",
			err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not decode config: %v",
			err)
	}

	return config, nil
}

// Environment variables that override Config fields
const (
	TrialsVar          = "SMARTCAB_TRIALS"
	SeedVar            = "SMARTCAB_SEED"
	EpsilonVar         = "SMARTCAB_EPSILON"
	LearningRateVar    = "SMARTCAB_ALPHA"
	DiscountVar        = "SMARTCAB_GAMMA"
	DummiesVar         = "SMARTCAB_DUMMIES"
	EnforceDeadlineVar = "SMARTCAB_ENFORCE_DEADLINE"
)

// Override overrides the fields of the Config with the values of the
// SMARTCAB_* environment variables found by lookup. Unset variables
// leave their fields unchanged.
func (c *Config) Override(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		TrialsVar:  &c.Trials,
		DummiesVar: &c.Env.Dummies,
	}
	for name, field := range ints {
		if value, ok := lookup(name); ok {
			v, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("override: %v: %v", name, err)
			}
			*field = v
		}
	}

	float64s := map[string]*float64{
		EpsilonVar:      &c.Agent.Epsilon,
		LearningRateVar: &c.Agent.LearningRate,
		DiscountVar:     &c.Agent.Discount,
	}
	for name, field := range float64s {
		if value, ok := lookup(name); ok {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("override: %v: %v", name, err)
			}
			*field = v
		}
	}

	if value, ok := lookup(SeedVar); ok {
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("override: %v: %v", SeedVar, err)
		}
		c.Seed = v
	}

	if value, ok := lookup(EnforceDeadlineVar); ok {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("override: %v: %v", EnforceDeadlineVar, err)
		}
		c.Env.EnforceDeadline = v
	}

	return nil
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("number of trials must be positive")
	}
	if err := c.Env.Validate(); err != nil {
		return fmt.Errorf("invalid environment: %v", err)
	}
	if err := c.Agent.Validate(); err != nil {
		return fmt.Errorf("invalid agent: %v", err)
	}
	return nil
}

// CreateExp creates the world and agent described by the Config and
// returns an Online experiment running them. The world is seeded with
// Seed and the agent with Seed+2, so that no two share a source.
func (c Config) CreateExp(logger *log.Logger, t ...trackers.Tracker) (*Online,
	*smartcab.World, *qlearning.QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("createExp: invalid config: %v", err)
	}

	world, _, err := c.Env.Create(c.Seed)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("createExp: could not create "+
			"world: %v", err)
	}

	agent, err := qlearning.New(c.Agent, c.Seed+2)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("createExp: could not create "+
			"agent: %v", err)
	}

	return NewOnline(world, agent, c.Trials, logger, t...), world, agent, nil
}
