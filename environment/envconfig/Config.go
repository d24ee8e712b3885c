// Package envconfig provides configuration structs for configuring the
// smartcab world with default parameters. Configurations in this package
// are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/environment/smartcab"
	ts "github.com/samuelfneumann/smartcab/timestep"
)

// Config implements a specific configuration of the smartcab world
type Config struct {
	Cols, Rows      int
	Dummies         int
	EnforceDeadline bool

	// HardTimeLimit ends trips whose deadline falls below it, whether or
	// not deadlines are enforced
	HardTimeLimit  int
	DeadlineFactor int
	MinDistance    int // Between the start and destination of a trip

	Rewards smartcab.Rewards
}

// Default returns the default configuration: an 8x6 grid with 3 dummy
// cars and enforced deadlines of 5 steps per block
func Default() Config {
	return Config{
		Cols:            8,
		Rows:            6,
		Dummies:         3,
		EnforceDeadline: true,
		HardTimeLimit:   -100,
		DeadlineFactor:  5,
		MinDistance:     4,
		Rewards:         smartcab.DefaultRewards(),
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("grid must have positive dimensions")
	}
	if c.Dummies < 0 {
		return fmt.Errorf("number of dummy cars cannot be negative")
	}
	if c.DeadlineFactor <= 0 {
		return fmt.Errorf("deadline factor must be positive")
	}
	if c.HardTimeLimit > 0 {
		return fmt.Errorf("hard time limit cannot be positive")
	}
	if c.MinDistance > c.Cols-1+c.Rows-1 {
		return fmt.Errorf("minimum distance %d unreachable on a %dx%d grid",
			c.MinDistance, c.Cols, c.Rows)
	}
	return nil
}

// Create returns the world described by the Config as well as the first
// timestep of the world. Trip starts are sampled from a source seeded
// with seed, and lights and dummy cars from a source seeded with seed+1.
func (c Config) Create(seed uint64) (*smartcab.World, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: invalid config: %v",
			err)
	}

	starter, err := env.NewCategoricalStarter(c.Cols, c.Rows, c.MinDistance,
		seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	enders := []env.Ender{env.NewHardLimit(c.HardTimeLimit)}
	if c.EnforceDeadline {
		enders = append([]env.Ender{env.NewDeadlineLimit()}, enders...)
	}

	return smartcab.New(c.Cols, c.Rows, c.Rewards, starter, c.Dummies,
		c.DeadlineFactor, seed+1, enders...)
}

func (c Config) String() string {
	return fmt.Sprintf("Smartcab | %dx%d  |  dummies: %d  |  enforce "+
		"deadline: %v", c.Cols, c.Rows, c.Dummies, c.EnforceDeadline)
}
