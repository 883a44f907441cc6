// Copyright ©2024 The cartogram Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cartogram

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// forceParams holds the per-polygon force field for one iteration together
// with the iteration's global convergence statistics.
type forceParams struct {
	// desired is the area each polygon's weight entitles it to.
	desired []float64
	// mass is the signed growth magnitude: the difference between the
	// equivalent-circle radii of the desired and the measured area.
	mass []float64
	// radius is the equivalent-circle radius of the measured area, the
	// threshold between the near-field and far-field force laws.
	radius []float64

	meanSizeError  float64
	forceReduction float64
}

// forceField derives each polygon's force parameters from the gap between
// its measured area and the share of the total area its weight entitles it
// to. All quantities come from the same metrics snapshot; nothing here
// reads the working polygons. totalValue is the weight sum computed once
// per invocation.
func forceField(m *polygonMetrics, weights []float64, totalValue, epsilon float64) *forceParams {
	n := len(weights)
	f := &forceParams{
		desired: make([]float64, n),
		mass:    make([]float64, n),
		radius:  make([]float64, n),
	}
	sizeError := make([]float64, n)
	for i, w := range weights {
		d := m.totalArea * w / totalValue
		if d == 0 {
			d = epsilon // prevent zero division
		}
		f.desired[i] = d
		f.radius[i] = math.Sqrt(m.areas[i] / math.Pi)
		f.mass[i] = math.Sqrt(d/math.Pi) - f.radius[i]
		sizeError[i] = math.Abs(d - m.areas[i])
	}
	f.meanSizeError = floats.Sum(sizeError) / float64(n)
	// Dampen displacement while the overall fit is still bad, so early
	// badly-mismatched iterations do not overshoot.
	f.forceReduction = 1 / (1 + f.meanSizeError)
	return f
}
