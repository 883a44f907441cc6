// Copyright ©2024 The cartogram Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cartogram

import (
	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// polygonMetrics is a snapshot of every polygon's size and location, taken
// once per iteration before any vertex is displaced.
type polygonMetrics struct {
	centroids []geom.Point
	areas     []float64
	totalArea float64
}

// measure computes the area and area-weighted centroid of each polygon's
// exterior ring. Interior rings are excluded on purpose: holes are carried
// through the distortion untouched, so counting their occluded area against
// the polygon would make the target areas unreachable.
func measure(polys []geom.Polygon) *polygonMetrics {
	m := &polygonMetrics{
		centroids: make([]geom.Point, len(polys)),
		areas:     make([]float64, len(polys)),
	}
	for i, p := range polys {
		ext := exterior(p)
		m.areas[i] = ext.Area()
		m.centroids[i] = ext.Centroid()
	}
	m.totalArea = floats.Sum(m.areas)
	return m
}

// exterior returns a view of p holding only its exterior ring.
func exterior(p geom.Polygon) geom.Polygon {
	return p[:1]
}
