// SPDX-License-Identifier: MIT

package landscape

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/landstats/geom"
)

// TotalArea returns the summed patch area of the selected class, or the
// landscape area for AllClasses. Reads Options.Hectares. ta > 0.
func (l *Landscape) TotalArea(f ClassFilter, o Options) float64 {
	if f.IsAll() {
		if o.Hectares {
			return l.Area() / hectare
		}
		return l.Area()
	}
	return floats.Sum(l.patchAreas(f, o).Values())
}

// ProportionOfLandscape returns the share of the landscape covered by the
// selected class: a fraction, or a percentage (PLAND) when Options.Percent
// is set. 0 < pland <= 100. Returns ErrClassRequired for AllClasses.
func (l *Landscape) ProportionOfLandscape(f ClassFilter, o Options) (float64, error) {
	if f.IsAll() {
		return 0, landscapeErrorf("ProportionOfLandscape", ErrClassRequired)
	}
	num := l.TotalArea(f, Options{Hectares: false})
	if o.Percent {
		num *= 100
	}
	return num / l.Area(), nil
}

// NumberOfPatches returns the patch count of the selected class, or of the
// whole landscape.
func (l *Landscape) NumberOfPatches(f ClassFilter) int {
	if c, ok := f.Value(); ok {
		return l.numPatches(c)
	}
	n := 0
	for _, c := range l.grid.Classes() {
		n += l.numPatches(c)
	}
	return n
}

// PatchDensity returns the number of patches per landscape area unit,
// scaled by 100 with Options.Percent and by 10000 with Options.Hectares
// (patches per 100 ha in the FRAGSTATS default). pd > 0.
func (l *Landscape) PatchDensity(f ClassFilter, o Options) float64 {
	num := float64(l.NumberOfPatches(f))
	if o.Percent {
		num *= 100
	}
	if o.Hectares {
		num *= hectare
	}
	return num / l.Area()
}

// LargestPatchIndex returns the area of the largest selected patch over the
// landscape area, ×100 with Options.Percent. 0 < lpi <= 100. NaN when the
// selection holds no patch.
func (l *Landscape) LargestPatchIndex(f ClassFilter, o Options) float64 {
	areas := l.patchAreas(f, Options{Hectares: false}).Values()
	if len(areas) == 0 {
		return math.NaN()
	}
	num := floats.Max(areas)
	if o.Percent {
		num *= 100
	}
	return num / l.Area()
}

// TotalEdge returns the total edge length of the selected class, or of the
// whole landscape, in real units. Reads Options.CountBoundary: when false,
// edges against the grid border and nodata are left out. te >= 0.
//
// Complexity: O(W×H).
func (l *Landscape) TotalEdge(f ClassFilter, o Options) float64 {
	c, ok := f.Value()
	if !ok {
		return geom.LandscapeEdgeCells(l.grid, o.CountBoundary).Length(l.grid.Resolution)
	}
	if o.CountBoundary {
		return floats.Sum(l.perimeters(f, o).Values())
	}
	return geom.ClassEdgeCells(l.classMask(c), l.validMask(), false).Length(l.grid.Resolution)
}

// EdgeDensity returns TotalEdge per landscape area unit, per hectare when
// Options.Hectares is set. Reads Options.CountBoundary. ed >= 0.
func (l *Landscape) EdgeDensity(f ClassFilter, o Options) float64 {
	num := l.TotalEdge(f, o)
	if o.Hectares {
		num *= hectare
	}
	return num / l.Area()
}

// LandscapeShapeIndex returns the class edge, boundary included, over the
// minimum edge achievable by the class cell count: 1 when the class is one
// maximally compact patch, growing as it disaggregates. lsi >= 1.
//
// For AllClasses the landscape is padded with nodata and the result is the
// landscape cell count over the total edge in cell sides, boundary
// included.
func (l *Landscape) LandscapeShapeIndex(f ClassFilter) float64 {
	c, ok := f.Value()
	if !ok {
		perimeter := geom.LandscapeEdgeCells(l.grid, true).Total()
		return float64(l.grid.ValidCount()) / float64(perimeter)
	}
	m := l.classMask(c)
	area := geom.Area(m, 0, true)
	perimeter := geom.ClassEdgeCells(m, l.validMask(), true).Total()
	return geom.ShapeIndex(area, float64(perimeter))
}
