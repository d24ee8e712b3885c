package experiment

import (
	"log"
	"os"

	"github.com/samuelfneumann/smartcab/agent"
	env "github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/experiment/trackers"
	ts "github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/utils/progressbar"
)

// Online is an Experiment that runs an agent online only, learning
// during every trial. Each trial is a single trip in the world.
type Online struct {
	env.Environment
	agent.Agent
	trials   int
	trial    int
	trackers []trackers.Tracker

	logger    *log.Logger
	verbose   bool
	bar       *progressbar.ManualProgressBar
	afterTrip []func(trial int, last ts.TimeStep)
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The trials parameter determines how
// many trips the experiment is run for, and the t parameter is a slice
// of trackers.Tracker which determine what data is saved. Trip
// summaries are written to logger. If logger is nil, nothing is logged.
func NewOnline(e env.Environment, a agent.Agent, trials int,
	logger *log.Logger, t ...trackers.Tracker) *Online {
	return &Online{
		Environment: e,
		Agent:       a,
		trials:      trials,
		trackers:    t,
		logger:      logger,
	}
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Verbose sets whether every step is logged, rather than only the end
// of every trip
func (o *Online) Verbose(verbose bool) {
	o.verbose = verbose
}

// ProgressBar displays a progress bar of width characters, advanced
// after each trip
func (o *Online) ProgressBar(width int) {
	o.bar = progressbar.NewLabelled(os.Stdout, "trips", width, o.trials)
}

// AfterTrip registers f to be called with the last timestep of each
// trip, before the world is reset
func (o *Online) AfterTrip(f func(trial int, last ts.TimeStep)) {
	o.afterTrip = append(o.afterTrip, f)
}

// Trial returns the number of trials run so far
func (o *Online) Trial() int {
	return o.trial
}

// RunTrip runs a single trip of the experiment
func (o *Online) RunTrip() bool {
	if o.trial >= o.trials {
		return true
	}
	o.trial++

	step := o.Environment.Reset()
	o.Agent.ObserveFirst(step)
	o.track(step)
	start := step.Deadline

	ret := 0.0
	for !step.Last() {
		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		before := step
		step, _ = o.Environment.Step(action)
		ret += step.Reward

		if o.verbose && o.logger != nil {
			o.logger.Printf("trial %d step %d: inputs = %v, waypoint = %v, "+
				"deadline = %d, action = %v, reward = %.2f", o.trial,
				step.Number, before.Inputs, before.Waypoint, before.Deadline,
				action, step.Reward)
		}

		// Cache the environment step in each Tracker
		o.track(step)

		// Observe the timestep and step the agent
		o.Agent.Observe(action, step)
		o.Agent.Step()
	}

	if o.logger != nil {
		o.logger.Printf("trial %d: %v after %d steps (deadline %d/%d), "+
			"return = %.2f", o.trial, step.EndType, step.Number,
			step.Deadline+1, start, ret)
	}
	for _, f := range o.afterTrip {
		f(o.trial, step)
	}
	if o.bar != nil {
		o.bar.Increment()
		o.bar.Display()
	}

	// Return whether or not all trials have been run
	return o.trial >= o.trials
}

// Run runs the entire experiment for all trials
func (o *Online) Run() {
	ended := false

	for !ended {
		ended = o.RunTrip()
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, tracker := range o.trackers {
		tracker.Save()
	}
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
