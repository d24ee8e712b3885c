package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
	"github.com/samuelfneumann/smartcab/agent/tabular/qlearning"
	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	"github.com/samuelfneumann/smartcab/traffic"
	"gonum.org/v1/gonum/mat"
)

func TestNew(t *testing.T) {
	config := qlearning.DefaultConfig()
	agent, err := qlearning.New(config, 1)
	if err != nil {
		t.Fatalf("could not create agent: %v", err)
	}

	s := New(agent, config)
	if s.Trips != 0 || s.LastFailedTrip != 0 || s.SuccessRate() != 0 {
		t.Errorf("expected empty summary, received %+v", s)
	}
	if s.Epsilon != config.Epsilon {
		t.Errorf("expected epsilon %v, received %v", config.Epsilon, s.Epsilon)
	}
}

func TestPrintSummary(t *testing.T) {
	s := Summary{
		Config:                  qlearning.DefaultConfig(),
		Trips:                   4,
		SuccessfulTrips:         3,
		WrongMoves:              5,
		LastFailedTrip:          2,
		RecentFailures:          1,
		DeadlineFractions:       []float64{0.5, 0, 0.25, 0.25},
		AverageDeadlineFraction: 0.25,
	}

	var buf bytes.Buffer
	NewPrinter(&buf, false).Summary(s)
	out := buf.String()

	for _, want := range []string{
		"Successful trips:          3/4",
		"Wrong moves:               5",
		"Last failed trip:          2",
		"Failed trips in last 10",
		"Average deadline fraction: 0.2500",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in summary:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("expected no colour codes when colour is disabled")
	}
}

func TestPrintTable(t *testing.T) {
	table := mat.NewDense(state.NumStates, traffic.NumActions, nil)
	table.Set(state.GreenForward.Index(), traffic.Forward.Index(), 2.6)

	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	if err := p.Weights(map[string]*mat.Dense{policy.TableKey: table}); err != nil {
		t.Fatalf("could not print table: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != state.NumStates+1 {
		t.Fatalf("expected %d lines, received %d", state.NumStates+1,
			len(lines))
	}
	if !strings.Contains(buf.String(), "2.600") {
		t.Errorf("expected value 2.600 in table:\n%s", buf.String())
	}

	if err := p.Weights(map[string]*mat.Dense{}); err == nil {
		t.Error("expected error for missing table")
	}
}

func TestChart(t *testing.T) {
	s := Summary{
		Config:            qlearning.DefaultConfig(),
		DeadlineFractions: []float64{0.5, 0, 0.25},
	}

	var buf bytes.Buffer
	if err := Chart(&buf, s, []float64{12, -3, 8}); err != nil {
		t.Fatalf("could not render chart: %v", err)
	}
	if !strings.Contains(buf.String(), "Cumulative reward") {
		t.Error("expected cumulative reward chart in page")
	}
}
