// SPDX-License-Identifier: MIT

package landscape

import (
	"github.com/katalvlaran/landstats/geom"
)

// patchTable holds one row per patch across every class, in sorted class
// order and label order within a class. It is never handed out; accessors
// build fresh slices from it.
type patchTable struct {
	class []float64
	cells []int
	edges []geom.EdgeCount
}

func (t *patchTable) len() int {
	return len(t.class)
}

// table builds the patch table once per Landscape.
//
// Areas come from one counting pass per class (Labeling.Sizes); perimeters
// from each patch's bounding box masked to its own label.
// Complexity: O(C×W×H + Σ bbox) time.
func (l *Landscape) table() *patchTable {
	l.patchOnce.Do(func() {
		t := &patchTable{}
		classes := l.grid.Classes()
		for _, c := range classes {
			lb := l.labeling(c)
			sizes := lb.Sizes()
			bounds := lb.Bounds()
			for i := 0; i < lb.Count; i++ {
				t.class = append(t.class, c)
				t.cells = append(t.cells, sizes[i])
				t.edges = append(t.edges, geom.PerimeterCells(lb.PatchMask(i+1, bounds[i])))
			}
		}
		l.patches = t
		Logger().Debug("landscape: patch table built", "classes", len(classes), "patches", t.len())
	})
	return l.patches
}

// patchScalar maps every selected patch row to a value.
func (l *Landscape) patchScalar(f ClassFilter, fn func(t *patchTable, i int) float64) PatchSeries {
	t := l.table()
	var out PatchSeries
	for i := 0; i < t.len(); i++ {
		if !f.match(t.class[i]) {
			continue
		}
		out = append(out, PatchValue{PatchID: i, Class: t.class[i], Value: fn(t, i)})
	}
	return out
}

// patchArea returns patch i's area in real units.
func (l *Landscape) patchArea(t *patchTable, i int) float64 {
	return float64(t.cells[i]) * l.grid.CellArea()
}

// patchPerimeter returns patch i's perimeter in real units.
func (l *Landscape) patchPerimeter(t *patchTable, i int) float64 {
	return t.edges[i].Length(l.grid.Resolution)
}
