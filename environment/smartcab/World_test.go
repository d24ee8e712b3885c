package smartcab

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/traffic"
)

var _ environment.Environment = (*World)(nil)

type fixedStarter struct {
	start, destination environment.Location
	heading            traffic.Heading
}

func (f fixedStarter) Start() (environment.Location, environment.Location,
	traffic.Heading) {
	return f.start, f.destination, f.heading
}

func loc(x, y int) environment.Location {
	return environment.Location{X: x, Y: y}
}

// newTestWorld returns an 8x6 World without dummy cars whose lights never
// switch during a test
func newTestWorld(t *testing.T, starter fixedStarter, northSouth bool,
	enders ...environment.Ender) *World {
	if len(enders) == 0 {
		enders = []environment.Ender{
			environment.NewDeadlineLimit(),
			environment.NewHardLimit(-100),
		}
	}

	w, _, err := New(8, 6, DefaultRewards(), starter, 0, 5, 1, enders...)
	if err != nil {
		t.Fatalf("could not create world: %v", err)
	}

	for i := range w.lights {
		w.lights[i] = NewTrafficLight(northSouth, 1000)
	}
	w.Reset()
	return w
}

func newDummy(location environment.Location, heading traffic.Heading,
	waypoint traffic.Action) *Dummy {
	d := NewDummy(rand.NewSource(1))
	d.Location = location
	d.Heading = heading
	d.Waypoint = waypoint
	return d
}

func TestNextWaypoint(t *testing.T) {
	tests := []struct {
		heading     traffic.Heading
		destination environment.Location
		want        traffic.Action
	}{
		{traffic.North, loc(3, 3), traffic.None},
		{traffic.North, loc(3, 0), traffic.Forward},
		{traffic.North, loc(3, 5), traffic.Right},
		{traffic.North, loc(6, 3), traffic.Right},
		{traffic.North, loc(1, 0), traffic.Left},
		{traffic.East, loc(6, 3), traffic.Forward},
		{traffic.East, loc(0, 3), traffic.Right},
		{traffic.East, loc(3, 5), traffic.Right},
		{traffic.East, loc(3, 0), traffic.Left},
		{traffic.South, loc(5, 3), traffic.Left},
		{traffic.West, loc(3, 0), traffic.Right},
	}

	var planner RoutePlanner
	for _, test := range tests {
		planner.RouteTo(test.destination)
		if got := planner.NextWaypoint(loc(3, 3), test.heading); got != test.want {
			t.Errorf("heading %v to %v: expected %v, received %v",
				test.heading, test.destination, test.want, got)
		}
	}
}

func TestTrafficLight(t *testing.T) {
	light := NewTrafficLight(true, 3)

	if l := light.Light(traffic.North); l != traffic.Green {
		t.Errorf("north: expected green, received %v", l)
	}
	if l := light.Light(traffic.East); l != traffic.Red {
		t.Errorf("east: expected red, received %v", l)
	}

	for i, want := range []bool{true, true, false, false, false, true} {
		light.Update(i + 1)
		if light.NorthSouth() != want {
			t.Errorf("t = %d: expected north-south %v, received %v", i+1,
				want, light.NorthSouth())
		}
	}
}

func TestReset(t *testing.T) {
	starter := fixedStarter{loc(0, 0), loc(4, 2), traffic.East}
	w := newTestWorld(t, starter, true)

	w.Step(traffic.Forward)
	step := w.Reset()

	if !step.First() {
		t.Errorf("expected first timestep, received %v", step.StepType)
	}
	if step.Deadline != 30 || w.Deadline() != 30 {
		t.Errorf("expected deadline 30, received %d", step.Deadline)
	}
	if w.Primary().Location != starter.start || w.Time() != 0 {
		t.Errorf("expected primary at %v at time 0, received %v at %d",
			starter.start, w.Primary().Location, w.Time())
	}
	if step.Waypoint != traffic.Forward {
		t.Errorf("expected waypoint forward, received %v", step.Waypoint)
	}
}

func TestMoves(t *testing.T) {
	tests := []struct {
		name       string
		northSouth bool
		action     traffic.Action
		location   environment.Location
		heading    traffic.Heading
		reward     float64
	}{
		{"forward on green", true, traffic.Forward, loc(3, 2), traffic.North, 2.0},
		{"right on green", true, traffic.Right, loc(4, 3), traffic.East, -0.5},
		{"left on green", true, traffic.Left, loc(2, 3), traffic.West, -0.5},
		{"idle on green", true, traffic.None, loc(3, 3), traffic.North, 0.0},
		{"forward on red", false, traffic.Forward, loc(3, 3), traffic.North, -1.0},
		{"left on red", false, traffic.Left, loc(3, 3), traffic.North, -1.0},
		{"right on red", false, traffic.Right, loc(4, 3), traffic.East, -0.5},
		{"idle on red", false, traffic.None, loc(3, 3), traffic.North, 0.0},
	}

	for _, test := range tests {
		starter := fixedStarter{loc(3, 3), loc(3, 0), traffic.North}
		w := newTestWorld(t, starter, test.northSouth)

		step, done := w.Step(test.action)
		if done {
			t.Errorf("%s: trip should not have ended", test.name)
		}
		if step.Reward != test.reward {
			t.Errorf("%s: expected reward %v, received %v", test.name,
				test.reward, step.Reward)
		}
		if p := w.Primary(); p.Location != test.location || p.Heading != test.heading {
			t.Errorf("%s: expected %v %v, received %v %v", test.name,
				test.location, test.heading, p.Location, p.Heading)
		}
		if step.Deadline != 14 {
			t.Errorf("%s: expected deadline 14, received %d", test.name,
				step.Deadline)
		}
	}
}

func TestLeftYieldsToOncoming(t *testing.T) {
	starter := fixedStarter{loc(3, 3), loc(0, 0), traffic.North}

	for oncoming, want := range map[traffic.Action]bool{
		traffic.Forward: false,
		traffic.Right:   false,
		traffic.Left:    true,
	} {
		w := newTestWorld(t, starter, true)
		w.dummies = []*Dummy{newDummy(loc(3, 3), traffic.South, oncoming)}

		step, _ := w.Step(traffic.Left)
		if legal := step.Reward != -1.0; legal != want {
			t.Errorf("oncoming %v: expected legal = %v", oncoming, want)
		}
	}
}

func TestRightOnRedYieldsToLeft(t *testing.T) {
	starter := fixedStarter{loc(3, 3), loc(0, 0), traffic.North}
	w := newTestWorld(t, starter, false)

	// Heading east, so approaching from the primary's left
	w.dummies = []*Dummy{newDummy(loc(3, 3), traffic.East, traffic.Forward)}

	step, _ := w.Step(traffic.Right)
	if step.Reward != -1.0 {
		t.Errorf("expected violation, received reward %v", step.Reward)
	}
	if w.Primary().Location != loc(3, 3) {
		t.Errorf("expected primary to stay put, received %v",
			w.Primary().Location)
	}
}

func TestWrapAround(t *testing.T) {
	starter := fixedStarter{loc(3, 0), loc(7, 5), traffic.North}
	w := newTestWorld(t, starter, true)

	w.Step(traffic.Forward)
	if l := w.Primary().Location; l != loc(3, 5) {
		t.Errorf("expected wrap to (3, 5), received %v", l)
	}

	starter = fixedStarter{loc(7, 2), loc(0, 5), traffic.East}
	w = newTestWorld(t, starter, false)

	w.Step(traffic.Forward)
	if l := w.Primary().Location; l != loc(0, 2) {
		t.Errorf("expected wrap to (0, 2), received %v", l)
	}
}

func TestSuccess(t *testing.T) {
	starter := fixedStarter{loc(3, 1), loc(3, 0), traffic.North}
	w := newTestWorld(t, starter, true)

	step, done := w.Step(traffic.Forward)
	if !done || !step.Last() || step.EndType != timestep.Success {
		t.Fatalf("expected trip to end with success, received %v", step)
	}
	if step.Reward != 12.0 {
		t.Errorf("expected reward 12, received %v", step.Reward)
	}
}

func TestDeadlineEndsTrip(t *testing.T) {
	starter := fixedStarter{loc(0, 0), loc(4, 0), traffic.East}
	w := newTestWorld(t, starter, true)

	for i := 0; i < 20; i++ {
		if step, done := w.Step(traffic.None); done {
			t.Fatalf("trip ended early at step %d (deadline %d)", i+1,
				step.Deadline)
		}
	}

	step, done := w.Step(traffic.None)
	if !done || step.EndType != timestep.Timeout {
		t.Errorf("expected timeout, received %v (%v)", step.StepType,
			step.EndType)
	}
	if step.Deadline != -1 {
		t.Errorf("expected deadline -1, received %d", step.Deadline)
	}

	// Stepping after the trip ended does nothing
	after, done := w.Step(traffic.Forward)
	if !done || after != step {
		t.Errorf("expected last timestep to be repeated, received %v", after)
	}
}

func TestHardLimitEndsTrip(t *testing.T) {
	starter := fixedStarter{loc(0, 0), loc(4, 0), traffic.East}
	w := newTestWorld(t, starter, true, environment.NewHardLimit(-100))

	steps := 0
	for {
		steps++
		step, done := w.Step(traffic.None)
		if done {
			if step.EndType != timestep.HardLimit {
				t.Errorf("expected hard limit, received %v", step.EndType)
			}
			break
		}
	}

	if steps != 121 {
		t.Errorf("expected 121 steps, received %d", steps)
	}
}

func TestSense(t *testing.T) {
	tests := []struct {
		name    string
		dummies []*Dummy
		want    traffic.Inputs
	}{
		{
			name: "empty",
			want: traffic.Inputs{Light: traffic.Green},
		},
		{
			name: "all directions",
			dummies: []*Dummy{
				newDummy(loc(3, 3), traffic.South, traffic.Right),
				newDummy(loc(3, 3), traffic.West, traffic.Forward),
				newDummy(loc(3, 3), traffic.East, traffic.Left),
			},
			want: traffic.Inputs{
				Light:    traffic.Green,
				Oncoming: traffic.Right,
				Right:    traffic.Forward,
				Left:     traffic.Left,
			},
		},
		{
			name: "ignored",
			dummies: []*Dummy{
				newDummy(loc(3, 3), traffic.North, traffic.Forward),
				newDummy(loc(3, 4), traffic.South, traffic.Forward),
			},
			want: traffic.Inputs{Light: traffic.Green},
		},
		{
			name: "oncoming left kept",
			dummies: []*Dummy{
				newDummy(loc(3, 3), traffic.South, traffic.Left),
				newDummy(loc(3, 3), traffic.South, traffic.Forward),
			},
			want: traffic.Inputs{Light: traffic.Green, Oncoming: traffic.Left},
		},
		{
			name: "oncoming overwritten",
			dummies: []*Dummy{
				newDummy(loc(3, 3), traffic.South, traffic.Forward),
				newDummy(loc(3, 3), traffic.South, traffic.Right),
			},
			want: traffic.Inputs{Light: traffic.Green, Oncoming: traffic.Right},
		},
		{
			name: "right left kept",
			dummies: []*Dummy{
				newDummy(loc(3, 3), traffic.West, traffic.Left),
				newDummy(loc(3, 3), traffic.West, traffic.Right),
			},
			want: traffic.Inputs{Light: traffic.Green, Right: traffic.Left},
		},
		{
			name: "left forward kept",
			dummies: []*Dummy{
				newDummy(loc(3, 3), traffic.East, traffic.Forward),
				newDummy(loc(3, 3), traffic.East, traffic.Left),
			},
			want: traffic.Inputs{Light: traffic.Green, Left: traffic.Forward},
		},
	}

	starter := fixedStarter{loc(3, 3), loc(0, 0), traffic.North}
	for _, test := range tests {
		w := newTestWorld(t, starter, true)
		w.dummies = test.dummies

		if got := w.Sense(); got != test.want {
			t.Errorf("%s: expected %v, received %v", test.name, test.want, got)
		}
	}
}

func TestDummyDecide(t *testing.T) {
	tests := []struct {
		waypoint traffic.Action
		inputs   traffic.Inputs
		want     traffic.Action
	}{
		{traffic.Forward, traffic.Inputs{Light: traffic.Red}, traffic.None},
		{traffic.Forward, traffic.Inputs{Light: traffic.Green}, traffic.Forward},
		{traffic.Right, traffic.Inputs{Light: traffic.Red}, traffic.Right},
		{traffic.Right, traffic.Inputs{Light: traffic.Red, Left: traffic.Forward}, traffic.None},
		{traffic.Right, traffic.Inputs{Light: traffic.Green, Left: traffic.Forward}, traffic.Right},
		{traffic.Left, traffic.Inputs{Light: traffic.Red}, traffic.None},
		{traffic.Left, traffic.Inputs{Light: traffic.Green, Oncoming: traffic.Forward}, traffic.None},
		{traffic.Left, traffic.Inputs{Light: traffic.Green, Oncoming: traffic.Right}, traffic.None},
		{traffic.Left, traffic.Inputs{Light: traffic.Green, Oncoming: traffic.Left}, traffic.Left},
	}

	for _, test := range tests {
		d := newDummy(loc(0, 0), traffic.North, test.waypoint)
		if got := d.Decide(test.inputs); got != test.want {
			t.Errorf("waypoint %v with %v: expected %v, received %v",
				test.waypoint, test.inputs, test.want, got)
		}
	}
}

func TestDummiesObeyRules(t *testing.T) {
	starter := fixedStarter{loc(0, 0), loc(7, 5), traffic.East}
	w, _, err := New(8, 6, DefaultRewards(), starter, 20, 5, 7,
		environment.NewHardLimit(-100))
	if err != nil {
		t.Fatalf("could not create world: %v", err)
	}

	for i := 0; i < 100; i++ {
		w.Step(traffic.None)
		cols, rows := w.Dims()
		for _, d := range w.Dummies() {
			if d.Location.X < 0 || d.Location.X >= cols ||
				d.Location.Y < 0 || d.Location.Y >= rows {
				t.Fatalf("dummy left the grid: %v", d.Location)
			}
			if !d.Waypoint.Valid() || d.Waypoint == traffic.None {
				t.Fatalf("dummy has invalid waypoint %v", d.Waypoint)
			}
		}
	}
}

func TestNewValidates(t *testing.T) {
	starter := fixedStarter{loc(0, 0), loc(4, 0), traffic.East}
	if _, _, err := New(0, 6, DefaultRewards(), starter, 0, 5, 1); err == nil {
		t.Error("expected error for empty grid")
	}
	if _, _, err := New(8, 6, DefaultRewards(), starter, -1, 5, 1); err == nil {
		t.Error("expected error for negative dummies")
	}
	if _, _, err := New(8, 6, DefaultRewards(), starter, 0, 0, 1); err == nil {
		t.Error("expected error for zero deadline factor")
	}
}
