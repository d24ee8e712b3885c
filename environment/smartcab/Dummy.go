package smartcab

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/traffic"
	"gonum.org/v1/gonum/stat/distuv"
)

// Car is a car at an intersection of the grid. Waypoint is the move
// the car intends to make next, which other cars at the same
// intersection can sense.
type Car struct {
	Location environment.Location
	Heading  traffic.Heading
	Waypoint traffic.Action
}

// Dummy is a car that drives around randomly while obeying the traffic
// rules. It picks a random move, waits at the intersection until the
// move is allowed, and then picks a new random move.
type Dummy struct {
	Car
	moves distuv.Categorical
}

// NewDummy returns a new Dummy whose moves are drawn from source
func NewDummy(source rand.Source) *Dummy {
	d := &Dummy{
		moves: distuv.NewCategorical([]float64{1, 1, 1}, source),
	}
	d.Replan()
	return d
}

// Replan picks a new random move
func (d *Dummy) Replan() {
	d.Waypoint = traffic.Moves()[int(d.moves.Rand())]
}

// Decide returns the action the dummy takes given its inputs, which is
// either its planned move or traffic.None if the move is not allowed
func (d *Dummy) Decide(inputs traffic.Inputs) traffic.Action {
	red := inputs.Light == traffic.Red

	var blocked bool
	switch d.Waypoint {
	case traffic.Right:
		blocked = red && inputs.Left == traffic.Forward
	case traffic.Forward:
		blocked = red
	case traffic.Left:
		blocked = red || inputs.Oncoming == traffic.Forward ||
			inputs.Oncoming == traffic.Right
	}

	if blocked {
		return traffic.None
	}
	return d.Waypoint
}
