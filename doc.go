// Copyright ©2024 The cartogram Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cartogram contains functions for creating contiguous
// area-equalizing cartograms.
// Cartograms are cartographic maps that distort the area of each polygon
// to represent a data value rather than its true geographic extent,
// while keeping neighboring polygons attached to each other.
// The distortion applies the rubber-sheet algorithm described in the
// article below:
//
// Dougenik, J. A., Chrisman, N. R., & Niemeyer, D. R. (1985). An algorithm
// to construct continuous area cartograms. The Professional Geographer,
// 37(1), 75–81. http://doi.org/10.1111/j.0033-0124.1985.00075.x
package cartogram
