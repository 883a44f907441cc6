// Copyright ©2024 The cartogram Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cartogram

import (
	"fmt"

	"github.com/ctessum/geom"
)

// Weighter is a holder for an individual spatial unit paired with the value
// its area should become proportional to.
type Weighter interface {
	geom.Polygonal

	// Weight is the value of the characteristic attribute
	// of the receiver. Population count is a typical weight value.
	Weight() float64
}

// Data is an implementation of the Weighter interface.
type Data struct {
	geom.Polygonal
	W float64 // Weight
}

// NewData pairs a geometry with its weight.
func NewData(p geom.Polygonal, weight float64) *Data {
	return &Data{Polygonal: p, W: weight}
}

// Weight implements the Weighter interface.
func (d *Data) Weight() float64 {
	return d.W
}

// NewFromData generates a cartogram from data records that carry their own
// weights. Each record must decompose to a single polygon; multipart
// geometries are not supported.
func NewFromData(data []Weighter, cfg *Config) ([]geom.Polygon, error) {
	polys := make([]geom.Polygon, len(data))
	weights := make([]float64, len(data))
	for i, d := range data {
		pp := d.Polygons()
		if len(pp) != 1 {
			return nil, fmt.Errorf("cartogram: record %d is a multipart geometry with %d parts", i, len(pp))
		}
		polys[i] = pp[0]
		weights[i] = d.Weight()
	}
	return New(polys, weights, cfg)
}
