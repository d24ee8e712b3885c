// Package smartcab implements a grid of intersections controlled by
// traffic lights. A primary car must reach a destination before its
// deadline runs out while sharing the roads with dummy cars that drive
// around randomly. The grid wraps around at its edges.
package smartcab

import (
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/traffic"
)

// World implements the smartcab environment
type World struct {
	environment.Task
	environment.Starter
	enders []environment.Ender

	cols, rows     int
	deadlineFactor int
	lights         []*TrafficLight // Indexed by y*cols + x

	primary Car
	planner RoutePlanner
	dummies []*Dummy

	t           int
	deadline    int
	currentStep timestep.TimeStep
	rng         *rand.Rand
}

// New creates a new World with cols x rows intersections and the
// argument number of dummy cars. Trip deadlines are deadlineFactor
// times the Manhattan distance from start to destination. Lights and
// dummy cars are randomized with seed. Trips end when the destination
// is reached or when any of enders ends them.
func New(cols, rows int, task environment.Task, starter environment.Starter,
	dummies, deadlineFactor int, seed uint64,
	enders ...environment.Ender) (*World, timestep.TimeStep, error) {
	if cols <= 0 || rows <= 0 {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: grid must have "+
			"positive dimensions (cols = %d, rows = %d)", cols, rows)
	}
	if dummies < 0 {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: number of dummy "+
			"cars cannot be negative (dummies = %d)", dummies)
	}
	if deadlineFactor <= 0 {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: deadline factor "+
			"must be positive (deadline factor = %d)", deadlineFactor)
	}

	source := rand.NewSource(seed)
	rng := rand.New(source)

	lights := make([]*TrafficLight, cols*rows)
	for i := range lights {
		lights[i] = NewTrafficLight(rng.Intn(2) == 1, 3+rng.Intn(3))
	}

	cars := make([]*Dummy, dummies)
	for i := range cars {
		cars[i] = NewDummy(source)
	}

	w := &World{
		Task:           task,
		Starter:        starter,
		enders:         enders,
		cols:           cols,
		rows:           rows,
		deadlineFactor: deadlineFactor,
		lights:         lights,
		dummies:        cars,
		rng:            rng,
	}

	return w, w.Reset(), nil
}

// Reset resets the World to begin a new trip
func (w *World) Reset() timestep.TimeStep {
	w.t = 0
	for _, light := range w.lights {
		light.Reset()
	}

	start, destination, heading := w.Start()
	w.planner.RouteTo(destination)
	w.primary = Car{Location: start, Heading: heading}
	w.primary.Waypoint = w.planner.NextWaypoint(start, heading)
	w.deadline = start.Distance(destination) * w.deadlineFactor

	headings := traffic.Headings()
	for _, d := range w.dummies {
		d.Location = environment.Location{
			X: w.rng.Intn(w.cols),
			Y: w.rng.Intn(w.rows),
		}
		d.Heading = headings[w.rng.Intn(len(headings))]
		d.Replan()
	}

	step := timestep.New(timestep.First, 0.0, w.deadline, w.Sense(),
		w.primary.Waypoint, 0)
	w.currentStep = step

	return step
}

// Step takes one step in the World. The primary car takes action, then
// each dummy car acts, then time advances and the lights are updated.
// The returned TimeStep holds the reward for action and what the
// primary car senses next.
func (w *World) Step(action traffic.Action) (timestep.TimeStep, bool) {
	if w.currentStep.Last() {
		fmt.Fprintf(os.Stderr, "Warning: Step() called after the trip "+
			"ended (current timestep = %d)\n", w.currentStep.Number)
		return w.currentStep, true
	}
	if !action.Valid() {
		panic(fmt.Sprintf("step: invalid action %v", action))
	}

	inputs := w.Sense()
	waypoint := w.primary.Waypoint
	legal := w.move(&w.primary, action, inputs)
	w.primary.Waypoint = w.planner.NextWaypoint(w.primary.Location,
		w.primary.Heading)

	reward := w.GetReward(action, waypoint, legal)
	arrived := w.primary.Location == w.planner.Destination()
	if arrived {
		reward += w.GoalReward(w.deadline)
	}

	for _, d := range w.dummies {
		inputs := w.sense(&d.Car)
		if a := d.Decide(inputs); a != traffic.None {
			w.move(&d.Car, a, inputs)
			d.Replan()
		}
	}

	w.t++
	w.deadline--
	for _, light := range w.lights {
		light.Update(w.t)
	}

	step := timestep.New(timestep.Mid, reward, w.deadline, w.Sense(),
		w.primary.Waypoint, w.currentStep.Number+1)
	if arrived {
		step.SetEnd(timestep.Success)
	} else {
		for _, ender := range w.enders {
			if ender.End(&step) {
				break
			}
		}
	}
	w.currentStep = step

	return step, step.Last()
}

// move moves car c with action if the traffic rules allow it, returning
// whether the action was legal. Idling is always legal.
func (w *World) move(c *Car, action traffic.Action,
	inputs traffic.Inputs) bool {
	green := inputs.Light == traffic.Green
	heading := c.Heading

	switch action {
	case traffic.None:
		return true

	case traffic.Forward:
		if !green {
			return false
		}

	case traffic.Left:
		if !green || (inputs.Oncoming != traffic.None &&
			inputs.Oncoming != traffic.Left) {
			return false
		}
		heading = heading.TurnLeft()

	case traffic.Right:
		if !green && inputs.Left == traffic.Forward {
			return false
		}
		heading = heading.TurnRight()
	}

	c.Heading = heading
	c.Location = w.wrap(environment.Location{
		X: c.Location.X + heading.DX,
		Y: c.Location.Y + heading.DY,
	})
	return true
}

// wrap wraps a location around the edges of the grid
func (w *World) wrap(l environment.Location) environment.Location {
	return environment.Location{
		X: ((l.X % w.cols) + w.cols) % w.cols,
		Y: ((l.Y % w.rows) + w.rows) % w.rows,
	}
}

// sense returns the inputs sensed by car c. Only cars at the same
// intersection with a different heading are sensed. A car that intends
// to turn left is never overwritten in the oncoming direction, and a
// car that intends to go forward is never overwritten on either side.
func (w *World) sense(c *Car) traffic.Inputs {
	inputs := traffic.Inputs{
		Light:    w.LightAt(c.Location).Light(c.Heading),
		Oncoming: traffic.None,
		Left:     traffic.None,
		Right:    traffic.None,
	}

	for _, other := range w.cars() {
		if other == c || other.Location != c.Location ||
			other.Heading == c.Heading {
			continue
		}

		switch {
		case c.Heading.Dot(other.Heading) == -1:
			if inputs.Oncoming != traffic.Left {
				inputs.Oncoming = other.Waypoint
			}

		case other.Heading == c.Heading.TurnLeft():
			// Heading across from the right
			if inputs.Right != traffic.Forward && inputs.Right != traffic.Left {
				inputs.Right = other.Waypoint
			}

		default:
			if inputs.Left != traffic.Forward {
				inputs.Left = other.Waypoint
			}
		}
	}

	return inputs
}

// cars returns all cars in the World, primary car first
func (w *World) cars() []*Car {
	cars := make([]*Car, 0, len(w.dummies)+1)
	cars = append(cars, &w.primary)
	for _, d := range w.dummies {
		cars = append(cars, &d.Car)
	}
	return cars
}

// Sense returns the inputs sensed by the primary car
func (w *World) Sense() traffic.Inputs {
	return w.sense(&w.primary)
}

// NextWaypoint returns the route planner's suggested move for the
// primary car
func (w *World) NextWaypoint() traffic.Action {
	return w.primary.Waypoint
}

// Deadline returns the number of steps remaining in the current trip
func (w *World) Deadline() int {
	return w.deadline
}

// LastTimeStep returns the last TimeStep that occurred in the World
func (w *World) LastTimeStep() timestep.TimeStep {
	return w.currentStep
}

// Time returns the number of steps taken in the current trip
func (w *World) Time() int {
	return w.t
}

// Dims gets the columns and rows of the grid
func (w *World) Dims() (cols, rows int) {
	return w.cols, w.rows
}

// LightAt returns the traffic light at location l
func (w *World) LightAt(l environment.Location) *TrafficLight {
	return w.lights[l.Y*w.cols+l.X]
}

// Primary returns the primary car
func (w *World) Primary() Car {
	return w.primary
}

// Destination returns the destination of the current trip
func (w *World) Destination() environment.Location {
	return w.planner.Destination()
}

// Dummies returns the dummy cars
func (w *World) Dummies() []Car {
	cars := make([]Car, len(w.dummies))
	for i, d := range w.dummies {
		cars[i] = d.Car
	}
	return cars
}

func (w *World) String() string {
	return fmt.Sprintf("World | %dx%d  |  t: %d  |  deadline: %d  |  "+
		"primary: %v %v  |  destination: %v", w.cols, w.rows, w.t,
		w.deadline, w.primary.Location, w.primary.Heading,
		w.planner.Destination())
}
