package cartogram

import (
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// indexedPolygon ties a polygon's exterior ring to its input position for
// spatial queries.
type indexedPolygon struct {
	geom.Polygon
	i int
}

// Overlaps reports the index pairs of polygons whose exterior rings
// intersect with positive area. Large weight ratios or generous iteration
// budgets can fold neighboring polygons into each other; running Overlaps
// on a cartogram's output identifies where that happened. Polygons that
// merely share a boundary do not count as overlapping. Pairs are returned
// with i < j, in lexicographic order.
func Overlaps(polys []geom.Polygon) [][2]int {
	index := rtree.NewTree(25, 50)
	for i, p := range polys {
		if len(p) == 0 {
			continue
		}
		index.Insert(&indexedPolygon{Polygon: exterior(p), i: i})
	}
	var o [][2]int
	for i, p := range polys {
		if len(p) == 0 {
			continue
		}
		ext := exterior(p)
		for _, cI := range index.SearchIntersect(ext.Bounds()) {
			c := cI.(*indexedPolygon)
			if c.i <= i {
				continue
			}
			if ext.Intersection(c.Polygon).Area() > 0 {
				o = append(o, [2]int{i, c.i})
			}
		}
	}
	sort.Slice(o, func(a, b int) bool {
		if o[a][0] != o[b][0] {
			return o[a][0] < o[b][0]
		}
		return o[a][1] < o[b][1]
	})
	return o
}
