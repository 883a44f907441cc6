package cartogram

import (
	"errors"
	"fmt"

	"github.com/ctessum/geom"
)

// Errors reported by New before any iteration runs. Numeric edge cases
// encountered during iteration (a vertex sitting exactly on a centroid, a
// transiently zero-area polygon) are recovered internally and never abort
// a run.
var (
	// ErrCountMismatch means the polygon and weight slices have
	// different lengths.
	ErrCountMismatch = errors.New("cartogram: polygon and weight counts differ")

	// ErrNoPolygons means the input was empty.
	ErrNoPolygons = errors.New("cartogram: no polygons")

	// ErrInvalidWeight means a weight was negative or the weights
	// summed to zero.
	ErrInvalidWeight = errors.New("cartogram: weights must be non-negative and sum to a positive value")

	// ErrDegeneratePolygon means an exterior ring had fewer than three
	// distinct points.
	ErrDegeneratePolygon = errors.New("cartogram: polygon exterior ring has fewer than 3 distinct points")
)

// Config holds the iteration parameters for cartogram creation.
// The zero value of each field selects its default, so a nil *Config is
// valid and equivalent to the defaults.
type Config struct {
	// IterMax is the maximum number of displacement iterations to
	// perform. Default 5.
	IterMax int

	// MaxSizeError is the mean size error below which the procedure
	// terminates early. Default 1.0001.
	MaxSizeError float64

	// Epsilon replaces a desired area of zero to prevent zero division.
	// Default 0.01.
	Epsilon float64

	// Verbose prints the mean size error of each iteration.
	Verbose bool
}

func (c *Config) withDefaults() Config {
	o := Config{IterMax: 5, MaxSizeError: 1.0001, Epsilon: 0.01}
	if c == nil {
		return o
	}
	if c.IterMax > 0 {
		o.IterMax = c.IterMax
	}
	if c.MaxSizeError > 0 {
		o.MaxSizeError = c.MaxSizeError
	}
	if c.Epsilon > 0 {
		o.Epsilon = c.Epsilon
	}
	o.Verbose = c.Verbose
	return o
}

// New generates an area-equalizing contiguous cartogram from the given
// polygons and their weights. Vertices are iteratively displaced until each
// polygon's area is approximately proportional to its weight, or until the
// iteration budget is spent.
//
// The result has the same length and order as the input. Only exterior
// rings are displaced; interior rings are copied through unchanged, so the
// position of holes relative to their distorted exterior is approximate.
// The input polygons are never modified.
func New(polygons []geom.Polygon, weights []float64, cfg *Config) ([]geom.Polygon, error) {
	c := cfg.withDefaults()
	if len(polygons) != len(weights) {
		return nil, ErrCountMismatch
	}
	if len(polygons) == 0 {
		return nil, ErrNoPolygons
	}
	var totalValue float64
	for _, w := range weights {
		if w < 0 {
			return nil, ErrInvalidWeight
		}
		totalValue += w
	}
	if totalValue <= 0 {
		return nil, ErrInvalidWeight
	}
	work := make([]geom.Polygon, len(polygons))
	for i, p := range polygons {
		if len(p) == 0 || countDistinct(p[0]) < 3 {
			return nil, fmt.Errorf("%w (polygon %d)", ErrDegeneratePolygon, i)
		}
		work[i] = clonePolygon(p)
	}

	for iter := 0; iter < c.IterMax; iter++ {
		// Metrics and force parameters for the whole iteration come
		// from a single snapshot taken before any vertex moves. The
		// convergence check runs on the fresh statistic, before any
		// displacement, so an already-converged input is returned
		// without being touched.
		m := measure(work)
		f := forceField(m, weights, totalValue, c.Epsilon)
		if f.meanSizeError < c.MaxSizeError {
			break
		}
		if c.Verbose {
			fmt.Printf("cartogram: mean size error at iteration %d: %g\n", iter+1, f.meanSizeError)
		}
		displaceAll(work, m, f)
	}
	return work, nil
}

// countDistinct returns the number of distinct coordinates in a ring.
func countDistinct(ring []geom.Point) int {
	seen := make(map[geom.Point]struct{}, len(ring))
	for _, p := range ring {
		seen[p] = struct{}{}
	}
	return len(seen)
}

func clonePolygon(p geom.Polygon) geom.Polygon {
	o := make(geom.Polygon, len(p))
	for i, r := range p {
		o[i] = make([]geom.Point, len(r))
		copy(o[i], r)
	}
	return o
}
