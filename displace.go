// Copyright ©2024 The cartogram Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cartogram

import (
	"math"

	"github.com/ctessum/geom"
)

// displaceAll moves every exterior-ring vertex of every polygon under the
// combined force field and rebuilds the rings in place. The metrics and
// force parameters must come from a snapshot taken before any vertex moved:
// every polygon pushes on every vertex with its pre-iteration geometry.
func displaceAll(polys []geom.Polygon, m *polygonMetrics, f *forceParams) {
	for i := range polys {
		displace(polys[i], m, f)
	}
}

// displace updates the exterior ring of one polygon. Coordinates occurring
// more than once in the ring (rings close on their first point, and rings
// touching along a shared boundary can revisit a point) are displaced once,
// with the result written to every slot sharing the coordinate, so
// coincident points stay coincident.
func displace(p geom.Polygon, m *polygonMetrics, f *forceParams) {
	ring := p[0]
	slots := make(map[geom.Point][]int, len(ring))
	for k, pt := range ring {
		slots[pt] = append(slots[pt], k)
	}
	for pt, idx := range slots {
		moved := displacePoint(pt, m, f)
		for _, k := range idx {
			ring[k] = moved
		}
	}
}

// displacePoint applies the sum of every polygon's force contribution to
// one coordinate. A polygon's own mass acts on its own vertices too; the
// reference algorithm includes this self-force and it is kept here.
func displacePoint(v geom.Point, m *polygonMetrics, f *forceParams) geom.Point {
	var dx, dy float64
	for j, c := range m.centroids {
		ex, ey := v.X-c.X, v.Y-c.Y
		dist := math.Hypot(ex, ey)
		if dist == 0 || f.radius[j] == 0 {
			// A vertex sitting exactly on a centroid has no defined
			// push direction, and a zero-area polygon has no
			// equivalent circle. Neither contributes any force.
			continue
		}
		force := forceAt(f.mass[j], f.radius[j], dist)
		force *= f.forceReduction / dist
		dx += force * ex
		dy += force * ey
	}
	return geom.Point{X: v.X + dx, Y: v.Y + dy}
}

// forceAt is the magnitude of the force a polygon with the given mass and
// equivalent-circle radius exerts at the given centroid distance. Inside
// the radius a cubic blend replaces the inverse-distance law to avoid its
// singularity near the centroid; the two laws agree at dist == radius.
func forceAt(mass, radius, dist float64) float64 {
	if dist > radius {
		return mass * radius / dist
	}
	q := dist / radius
	return mass * q * q * (4 - 3*q)
}
