package smartcab

import "github.com/samuelfneumann/smartcab/traffic"

// TrafficLight is the light at a single intersection. It lets traffic
// through along one axis at a time and switches axes every period steps.
type TrafficLight struct {
	northSouth  bool // Whether north-south traffic has the green light
	period      int
	lastUpdated int
}

// NewTrafficLight returns a new TrafficLight
func NewTrafficLight(northSouth bool, period int) *TrafficLight {
	return &TrafficLight{northSouth: northSouth, period: period}
}

// Reset resets the light's timer
func (l *TrafficLight) Reset() {
	l.lastUpdated = 0
}

// Update switches the light if period steps have passed since it last
// switched. t is the current time in the world.
func (l *TrafficLight) Update(t int) {
	if t-l.lastUpdated >= l.period {
		l.northSouth = !l.northSouth
		l.lastUpdated = t
	}
}

// Light returns the colour of the light for a car with heading h
func (l *TrafficLight) Light(h traffic.Heading) traffic.Light {
	if l.northSouth == h.NorthSouth() {
		return traffic.Green
	}
	return traffic.Red
}

// NorthSouth returns whether north-south traffic has the green light
func (l *TrafficLight) NorthSouth() bool {
	return l.northSouth
}

// Period returns the number of steps between switches
func (l *TrafficLight) Period() int {
	return l.period
}
