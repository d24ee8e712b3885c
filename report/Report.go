// Package report prints and charts the performance of a learning agent
// over a run
package report

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
	"github.com/samuelfneumann/smartcab/agent/tabular/qlearning"
	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	"github.com/samuelfneumann/smartcab/traffic"
	"github.com/samuelfneumann/smartcab/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// Summary summarizes the metrics of an agent after a run
type Summary struct {
	Config  qlearning.Config
	Epsilon float64 // Exploration rate at the end of the run

	Trips            int
	Steps            int
	CumulativeReward float64
	SuccessfulTrips  int
	WrongMoves       int

	// LastFailedTrip is the 1-based index of the last failed trip, or 0
	// if no trip failed
	LastFailedTrip int
	RecentFailures int // Failed trips among the last FailureWindow

	DeadlineFractions       []float64
	AverageDeadlineFraction float64
}

// New returns the Summary of an agent's metrics
func New(agent *qlearning.QLearning, config qlearning.Config) Summary {
	m := agent.Metrics()
	lastFailed, _ := m.LastFailedTrip()

	return Summary{
		Config:                  config,
		Epsilon:                 agent.Epsilon(),
		Trips:                   m.Trips(),
		Steps:                   m.Steps,
		CumulativeReward:        m.CumulativeReward,
		SuccessfulTrips:         m.SuccessfulTrips,
		WrongMoves:              m.WrongMoves,
		LastFailedTrip:          lastFailed,
		RecentFailures:          m.FailuresInLast(config.FailureWindow),
		DeadlineFractions:       m.DeadlineFractions,
		AverageDeadlineFraction: m.AverageDeadlineFraction(),
	}
}

// SuccessRate returns the fraction of trips that reached the destination
func (s Summary) SuccessRate() float64 {
	if s.Trips == 0 {
		return 0.0
	}
	return float64(s.SuccessfulTrips) / float64(s.Trips)
}

// Printer writes reports to a writer, optionally in colour
type Printer struct {
	w  io.Writer
	au aurora.Aurora
}

// NewPrinter returns a new Printer writing to w
func NewPrinter(w io.Writer, colour bool) *Printer {
	return &Printer{w: w, au: aurora.NewAurora(colour)}
}

// Summary prints the summary of a run
func (p *Printer) Summary(s Summary) {
	fmt.Fprintln(p.w, p.au.Bold(s.Config))

	rate := p.au.Green(fmt.Sprintf("%d/%d", s.SuccessfulTrips, s.Trips))
	if s.SuccessRate() < 0.5 {
		rate = p.au.Red(fmt.Sprintf("%d/%d", s.SuccessfulTrips, s.Trips))
	}
	fmt.Fprintf(p.w, "Successful trips:          %v\n", rate)
	fmt.Fprintf(p.w, "Simulated steps:           %d\n", s.Steps)
	fmt.Fprintf(p.w, "Cumulative reward:         %.2f\n", s.CumulativeReward)
	fmt.Fprintf(p.w, "Wrong moves:               %v\n",
		p.au.Yellow(s.WrongMoves))

	if s.LastFailedTrip == 0 {
		fmt.Fprintf(p.w, "Last failed trip:          %v\n", p.au.Green("none"))
	} else {
		fmt.Fprintf(p.w, "Last failed trip:          %v\n",
			p.au.Red(s.LastFailedTrip))
	}
	fmt.Fprintf(p.w, "Failed trips in last %-4d  %d\n",
		s.Config.FailureWindow, s.RecentFailures)
	fmt.Fprintf(p.w, "Average deadline fraction: %.4f\n",
		s.AverageDeadlineFraction)
	fmt.Fprintf(p.w, "Final epsilon:             %v\n", s.Epsilon)
}

// Table prints a state-action table, one row per state, highlighting
// the greedy action of each state. Rows end with the state's
// description.
func (p *Printer) Table(table *mat.Dense) {
	fmt.Fprintf(p.w, "%-6s", "state")
	for _, a := range traffic.Actions() {
		fmt.Fprintf(p.w, "%9v", p.au.Cyan(a))
	}
	fmt.Fprintln(p.w)

	for _, s := range state.States() {
		fmt.Fprintf(p.w, "%-6d", s.Index())

		row := table.RawRowView(s.Index())
		_, greedy := floatutils.MaxSlice(row)
		tied := floatutils.AllEqual(row)
		for i, v := range row {
			cell := fmt.Sprintf("%9.3f", v)
			if !tied && i == greedy[0] {
				fmt.Fprint(p.w, p.au.Green(cell))
			} else {
				fmt.Fprint(p.w, cell)
			}
		}
		fmt.Fprintf(p.w, "   %v\n", s)
	}
}

// Weights prints the table of an agent's weights
func (p *Printer) Weights(weights map[string]*mat.Dense) error {
	table, ok := weights[policy.TableKey]
	if !ok {
		return fmt.Errorf("weights: no table in weights")
	}
	p.Table(table)
	return nil
}
