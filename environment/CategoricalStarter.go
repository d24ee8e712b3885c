package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/traffic"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter samples trip starts from uniform categorical
// distributions over the intersections of a grid and over the four
// headings. Starts and destinations are resampled until they are at
// least some minimum Manhattan distance apart.
type CategoricalStarter struct {
	cols, rows  int
	minDistance int
	x, y        distuv.Categorical
	heading     distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter on a grid of
// cols x rows intersections
func NewCategoricalStarter(cols, rows, minDistance int,
	seed uint64) (*CategoricalStarter, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("newCategoricalStarter: grid must have "+
			"positive dimensions (cols = %d, rows = %d)", cols, rows)
	}
	if cols*rows < 2 {
		return nil, fmt.Errorf("newCategoricalStarter: grid must have at "+
			"least two intersections")
	}
	if minDistance > cols-1+rows-1 {
		return nil, fmt.Errorf("newCategoricalStarter: minimum distance %d "+
			"exceeds grid diameter %d", minDistance, cols-1+rows-1)
	}

	source := rand.NewSource(seed)

	return &CategoricalStarter{
		cols:        cols,
		rows:        rows,
		minDistance: minDistance,
		x:           distuv.NewCategorical(uniform(cols), source),
		y:           distuv.NewCategorical(uniform(rows), source),
		heading:     distuv.NewCategorical(uniform(len(traffic.Headings())), source),
	}, nil
}

// uniform returns the weights of a uniform categorical distribution
// over n categories
func uniform(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0 / float64(n)
	}
	return weights
}

// Place samples a single location and heading
func (c *CategoricalStarter) Place() (Location, traffic.Heading) {
	location := Location{X: int(c.x.Rand()), Y: int(c.y.Rand())}
	heading := traffic.Headings()[int(c.heading.Rand())]
	return location, heading
}

// Start samples the start, destination, and starting heading of a trip
func (c *CategoricalStarter) Start() (start, destination Location,
	heading traffic.Heading) {
	for {
		start, heading = c.Place()
		destination, _ = c.Place()
		if start.Distance(destination) >= c.minDistance && start != destination {
			return start, destination, heading
		}
	}
}
